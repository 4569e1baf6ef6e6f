package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PabloGalante/bright-road/internal/config"
	"github.com/PabloGalante/bright-road/internal/observability"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bright-road",
	Short: "Bright Road - Oman travel catalog and assistant",
	Long: `Bright Road serves a small Oman travel catalog (destinations, hotels,
rental cars) and a conversational travel assistant backed by Gemini with
Google Maps grounding.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(catalogCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bright-road.yaml)")
}

func initConfig() {
	// Load .env file if it exists
	_ = godotenv.Load()

	config.Bind(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".bright-road")
	}

	if err := viper.ReadInConfig(); err == nil {
		observability.Logger().Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := observability.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}
