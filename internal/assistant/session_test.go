package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/bright-road/internal/assistant"
	"github.com/PabloGalante/bright-road/internal/catalog"
	"github.com/PabloGalante/bright-road/internal/domain"
)

// stubEndpoint stands in for the hosted model.
type stubEndpoint struct {
	openErr error
	opens   int
	cfg     domain.ChatConfig
	chat    *stubChat
}

func (e *stubEndpoint) OpenChat(_ context.Context, cfg domain.ChatConfig) (domain.ChatHandle, error) {
	e.opens++
	e.cfg = cfg
	if e.openErr != nil {
		return nil, e.openErr
	}
	if e.chat == nil {
		e.chat = &stubChat{}
	}
	e.chat.cfg = cfg
	return e.chat, nil
}

type stubChat struct {
	cfg     domain.ChatConfig
	sent    []string
	respond func(cfg domain.ChatConfig, text string) (*domain.EndpointReply, error)
}

func (c *stubChat) Send(_ context.Context, text string) (*domain.EndpointReply, error) {
	c.sent = append(c.sent, text)
	if c.respond == nil {
		return &domain.EndpointReply{Text: "ok"}, nil
	}
	return c.respond(c.cfg, text)
}

func newSession(t *testing.T, ep *stubEndpoint) *assistant.Session {
	t.Helper()
	return assistant.New(ep, catalog.MustLoad(), assistant.Options{MapsGrounding: true})
}

func TestSendMessageUsesSeededCatalogPrices(t *testing.T) {
	chat := &stubChat{
		respond: func(cfg domain.ChatConfig, text string) (*domain.EndpointReply, error) {
			if strings.Contains(text, "Al Bustan Palace") &&
				strings.Contains(cfg.SystemInstruction, `{"name":"Al Bustan Palace","location":"Muscat","price":350}`) {
				return &domain.EndpointReply{Text: "Al Bustan Palace is $350 per night."}, nil
			}
			return &domain.EndpointReply{Text: "I don't know."}, nil
		},
	}
	ep := &stubEndpoint{chat: chat}
	s := newSession(t, ep)

	require.NoError(t, s.Open(context.Background()))
	assert.Equal(t, domain.AssistantOpen, s.State())
	assert.Equal(t, assistant.DefaultModel, ep.cfg.Model)
	assert.True(t, ep.cfg.MapsGrounding)

	reply, err := s.SendMessage(context.Background(), "How much is Al Bustan Palace?")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Text)
	assert.Contains(t, reply.Text, "350")
	assert.Empty(t, reply.Citations)
	assert.Equal(t, []string{"How much is Al Bustan Palace?"}, chat.sent)
}

func TestOpenFailureIsTerminal(t *testing.T) {
	ep := &stubEndpoint{openErr: errors.New("API key is missing")}
	s := newSession(t, ep)

	err := s.Open(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInitialization)
	assert.Equal(t, domain.AssistantFailed, s.State())
	assert.False(t, s.Ready())

	// no second attempt against the endpoint
	err = s.Open(context.Background())
	assert.ErrorIs(t, err, domain.ErrInitialization)
	assert.Equal(t, 1, ep.opens)

	_, err = s.SendMessage(context.Background(), "hello?")
	assert.ErrorIs(t, err, domain.ErrNotReady)
	assert.Nil(t, ep.chat)
}

func TestOpenKeepsInitializationErrorFromEndpoint(t *testing.T) {
	ep := &stubEndpoint{openErr: domain.ErrInitialization}
	s := newSession(t, ep)

	err := s.Open(context.Background())
	assert.Equal(t, domain.ErrInitialization, err)
}

func TestNilEndpointFailsToOpen(t *testing.T) {
	s := assistant.New(nil, catalog.MustLoad(), assistant.Options{})

	err := s.Open(context.Background())
	assert.ErrorIs(t, err, domain.ErrInitialization)
}

func TestSendBeforeOpenIsNotReady(t *testing.T) {
	ep := &stubEndpoint{chat: &stubChat{}}
	s := newSession(t, ep)

	_, err := s.SendMessage(context.Background(), "hi")
	assert.ErrorIs(t, err, domain.ErrNotReady)
	assert.Zero(t, ep.opens)
	assert.Empty(t, ep.chat.sent)
}

func TestSendRejectsBlankText(t *testing.T) {
	ep := &stubEndpoint{}
	s := newSession(t, ep)
	require.NoError(t, s.Open(context.Background()))

	_, err := s.SendMessage(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.Empty(t, ep.chat.sent)
}

func TestTransportErrorKeepsSessionOpen(t *testing.T) {
	calls := 0
	chat := &stubChat{
		respond: func(domain.ChatConfig, string) (*domain.EndpointReply, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("connection reset by peer")
			}
			return &domain.EndpointReply{Text: "Back online."}, nil
		},
	}
	s := newSession(t, &stubEndpoint{chat: chat})
	require.NoError(t, s.Open(context.Background()))

	_, err := s.SendMessage(context.Background(), "first")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, domain.AssistantOpen, s.State())

	reply, err := s.SendMessage(context.Background(), "second")
	require.NoError(t, err)
	assert.Equal(t, "Back online.", reply.Text)
}

func TestNilEndpointReplyIsTransportError(t *testing.T) {
	chat := &stubChat{
		respond: func(domain.ChatConfig, string) (*domain.EndpointReply, error) { return nil, nil },
	}
	s := newSession(t, &stubEndpoint{chat: chat})
	require.NoError(t, s.Open(context.Background()))

	_, err := s.SendMessage(context.Background(), "hi")
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestEmptyReplyFallsBack(t *testing.T) {
	chat := &stubChat{
		respond: func(domain.ChatConfig, string) (*domain.EndpointReply, error) {
			return &domain.EndpointReply{Text: "  "}, nil
		},
	}
	s := newSession(t, &stubEndpoint{chat: chat})
	require.NoError(t, s.Open(context.Background()))

	reply, err := s.SendMessage(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, assistant.EmptyReplyText, reply.Text)
}

func TestCitationsKeepOnlyCompleteReferences(t *testing.T) {
	chat := &stubChat{
		respond: func(domain.ChatConfig, string) (*domain.EndpointReply, error) {
			return &domain.EndpointReply{
				Text: "Wadi Shab is near Tiwi.",
				Grounding: []domain.Citation{
					{Kind: domain.CitationWeb, Title: "Wadi Shab guide", URI: "https://example.com/wadi-shab"},
					{Kind: domain.CitationMaps, Title: "", URI: "https://maps.google.com/?cid=1"},
					{Kind: domain.CitationMaps, Title: "Wadi Shab", URI: "https://maps.google.com/?cid=2"},
					{Kind: domain.CitationWeb, Title: "No link", URI: ""},
				},
			}, nil
		},
	}
	s := newSession(t, &stubEndpoint{chat: chat})
	require.NoError(t, s.Open(context.Background()))

	reply, err := s.SendMessage(context.Background(), "Where is Wadi Shab?")
	require.NoError(t, err)

	require.Len(t, reply.Citations, 2)
	assert.Equal(t, domain.CitationWeb, reply.Citations[0].Kind)
	assert.Equal(t, domain.CitationMaps, reply.Citations[1].Kind)

	want := "Wadi Shab is near Tiwi.\n\n**Sources & Map Links:**\n" +
		"- [Wadi Shab guide](https://example.com/wadi-shab)\n" +
		"- [Wadi Shab](https://maps.google.com/?cid=2)\n"
	assert.Equal(t, want, reply.Text)
	assert.NotContains(t, reply.Text, "cid=1")
	assert.NotContains(t, reply.Text, "No link")
}

func TestNoSourcesSectionWithoutCompleteCitations(t *testing.T) {
	chat := &stubChat{
		respond: func(domain.ChatConfig, string) (*domain.EndpointReply, error) {
			return &domain.EndpointReply{
				Text:      "Sure.",
				Grounding: []domain.Citation{{Kind: domain.CitationMaps, URI: "https://maps.google.com"}},
			}, nil
		},
	}
	s := newSession(t, &stubEndpoint{chat: chat})
	require.NoError(t, s.Open(context.Background()))

	reply, err := s.SendMessage(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Sure.", reply.Text)
	assert.Empty(t, reply.Citations)
}
