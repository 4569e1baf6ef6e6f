package main

import (
	"context"

	"github.com/PabloGalante/bright-road/internal/adapters/llm"
	memstore "github.com/PabloGalante/bright-road/internal/adapters/storage/memory"
	"github.com/PabloGalante/bright-road/internal/app/booking"
	"github.com/PabloGalante/bright-road/internal/app/conversation"
	"github.com/PabloGalante/bright-road/internal/assistant"
	"github.com/PabloGalante/bright-road/internal/catalog"
	"github.com/PabloGalante/bright-road/internal/config"
	"github.com/PabloGalante/bright-road/internal/domain"
	"github.com/PabloGalante/bright-road/internal/observability"
)

type app struct {
	catalog  *catalog.Store
	conv     *conversation.Service
	bookings *booking.Service
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	endpoint := newEndpoint(ctx, cfg, cat)

	conv := conversation.NewService(
		endpoint,
		cat,
		assistant.Options{Model: cfg.ModelName, MapsGrounding: cfg.MapsGrounding},
		memstore.NewSessionStore(cfg.SessionTTL),
		memstore.NewMessageStore(),
	)

	return &app{
		catalog:  cat,
		conv:     conv,
		bookings: booking.NewService(cat),
	}, nil
}

// newEndpoint never fails: without credentials every session opens as
// failed and the visitor sees the unavailable notice.
func newEndpoint(ctx context.Context, cfg *config.Config, cat *catalog.Store) domain.ChatEndpoint {
	log := observability.Logger()

	if cfg.UseMockLLM {
		log.Info("using mock assistant endpoint")
		return llm.NewMockLLM(cat)
	}

	endpoint, err := llm.NewGeminiEndpoint(ctx, llm.GeminiOptions{
		Backend:  cfg.Backend,
		APIKey:   cfg.APIKey,
		Project:  cfg.GCPProjectID,
		Location: cfg.GCPLocation,
		BaseURL:  cfg.BaseURL,
	})
	if err != nil {
		log.Warn("assistant endpoint unavailable", "error", err)
		return llm.NewUnavailableEndpoint(err)
	}

	log.Info("using gemini endpoint", "backend", cfg.Backend, "model", cfg.ModelName)
	return endpoint
}
