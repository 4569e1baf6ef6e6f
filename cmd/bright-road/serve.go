package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	httpadapter "github.com/PabloGalante/bright-road/internal/adapters/http"
	"github.com/PabloGalante/bright-road/internal/observability"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           httpadapter.NewServer(a.conv, a.catalog, a.bookings),
			ReadHeaderTimeout: 10 * time.Second,
		}

		log := observability.Logger()
		errCh := make(chan error, 1)
		go func() {
			log.Info("Bright Road API listening", "addr", srv.Addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("port", "8080", "port to listen on")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
}
