package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/PabloGalante/bright-road/internal/domain"
	"github.com/PabloGalante/bright-road/internal/observability"
)

const DefaultModel = "gemini-2.5-flash"

// Options configures the chat opened by a Session.
type Options struct {
	Model         string
	MapsGrounding bool
}

// Session manages exactly one conversation with a hosted chat endpoint.
//
// States move Unopened -> Open or Unopened -> Failed and never leave Open or
// Failed. A Session is owned by one caller, which must not overlap
// SendMessage calls.
type Session struct {
	endpoint domain.ChatEndpoint
	catalog  domain.CatalogReader
	opts     Options

	state   domain.AssistantState
	chat    domain.ChatHandle
	initErr error
}

// New returns an unopened session. Nothing touches the network until Open.
func New(endpoint domain.ChatEndpoint, catalog domain.CatalogReader, opts Options) *Session {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	return &Session{
		endpoint: endpoint,
		catalog:  catalog,
		opts:     opts,
		state:    domain.AssistantUnopened,
	}
}

func (s *Session) State() domain.AssistantState {
	return s.state
}

// Ready reports whether messages can be sent.
func (s *Session) Ready() bool {
	return s.state == domain.AssistantOpen
}

// Open builds the system instruction and opens the remote chat. A failure
// is final: later calls return the same ErrInitialization error.
func (s *Session) Open(ctx context.Context) error {
	switch s.state {
	case domain.AssistantOpen:
		return nil
	case domain.AssistantFailed:
		return s.initErr
	}

	ctx, span := observability.Tracer().Start(ctx, "assistant.Open")
	defer span.End()
	span.SetAttributes(
		attribute.String("model", s.opts.Model),
		attribute.Bool("maps_grounding", s.opts.MapsGrounding),
	)

	log := observability.LoggerFromContext(ctx).With("model", s.opts.Model)

	chat, err := s.open(ctx)
	if err != nil {
		s.state = domain.AssistantFailed
		s.initErr = err
		observability.RecordError(span, err)
		log.Warn("assistant session failed to open", "error", err)
		return err
	}

	s.chat = chat
	s.state = domain.AssistantOpen
	log.Info("assistant session opened")
	return nil
}

func (s *Session) open(ctx context.Context) (domain.ChatHandle, error) {
	if s.endpoint == nil {
		return nil, fmt.Errorf("%w: no chat endpoint configured", domain.ErrInitialization)
	}

	instruction, err := BuildSystemInstruction(s.catalog)
	if err != nil {
		return nil, fmt.Errorf("%w: build system instruction: %w", domain.ErrInitialization, err)
	}

	chat, err := s.endpoint.OpenChat(ctx, domain.ChatConfig{
		Model:             s.opts.Model,
		SystemInstruction: instruction,
		MapsGrounding:     s.opts.MapsGrounding,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInitialization) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInitialization, err)
	}
	return chat, nil
}

// SendMessage sends one utterance and waits for the reply.
//
// It returns ErrNotReady without contacting the endpoint when the session
// is not open, and ErrTransport when the exchange fails; the latter leaves
// the session open.
func (s *Session) SendMessage(ctx context.Context, text string) (*Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyMessage
	}
	if s.state != domain.AssistantOpen {
		return nil, fmt.Errorf("%w (state %s)", domain.ErrNotReady, s.state)
	}

	ctx, span := observability.Tracer().Start(ctx, "assistant.SendMessage")
	defer span.End()
	span.SetAttributes(attribute.Int("utterance_len", len(text)))

	raw, err := s.chat.Send(ctx, text)
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrTransport, err)
		observability.RecordError(span, err)
		return nil, err
	}
	if raw == nil {
		err = fmt.Errorf("%w: empty response from endpoint", domain.ErrTransport)
		observability.RecordError(span, err)
		return nil, err
	}

	reply := buildReply(raw)
	span.SetAttributes(attribute.Int("citations", len(reply.Citations)))
	return reply, nil
}
