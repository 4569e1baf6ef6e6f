package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/bright-road/internal/adapters/llm"
	memstore "github.com/PabloGalante/bright-road/internal/adapters/storage/memory"
	"github.com/PabloGalante/bright-road/internal/app/conversation"
	"github.com/PabloGalante/bright-road/internal/assistant"
	"github.com/PabloGalante/bright-road/internal/catalog"
	"github.com/PabloGalante/bright-road/internal/config"
	"github.com/PabloGalante/bright-road/internal/domain"
)

func newConversation(endpoint domain.ChatEndpoint) *conversation.Service {
	return conversation.NewService(endpoint, catalog.MustLoad(), assistant.Options{},
		memstore.NewSessionStore(time.Hour), memstore.NewMessageStore())
}

func TestRunChat(t *testing.T) {
	conv := newConversation(llm.NewMockLLM(catalog.MustLoad()))
	in := strings.NewReader("\n   \nHow much is Al Bustan Palace?\n/quit\nnever sent\n")
	var out bytes.Buffer

	require.NoError(t, runChat(context.Background(), conv, in, &out))

	text := out.String()
	assert.Contains(t, text, "assistant> "+assistant.WelcomeText)
	assert.Equal(t, 1, strings.Count(text, "Assistant is thinking..."))
	assert.Contains(t, text, "$350 per night")
	assert.NotContains(t, text, "never sent")
}

func TestRunChat_Unavailable(t *testing.T) {
	conv := newConversation(llm.NewUnavailableEndpoint(errors.New("no key")))
	var out bytes.Buffer

	require.NoError(t, runChat(context.Background(), conv, strings.NewReader("hi\n"), &out))

	text := out.String()
	assert.Contains(t, text, "notice> "+assistant.UnavailableNoticeText)
	assert.Contains(t, text, "assistant> "+assistant.NotReadyText)
}

func TestPrintCatalog(t *testing.T) {
	cat := catalog.MustLoad()

	var out bytes.Buffer
	require.NoError(t, printCatalog(&out, cat, "hotels"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, out.String(), "$350")

	out.Reset()
	catalogCarType = "Crossover"
	t.Cleanup(func() { catalogCarType = "" })
	require.NoError(t, printCatalog(&out, cat, "cars"))
	assert.Contains(t, out.String(), "Hyundai Tucson")
	assert.NotContains(t, out.String(), "Nissan Patrol")

	assert.Error(t, printCatalog(&out, cat, "flights"))
}

func TestNewEndpoint(t *testing.T) {
	ctx := context.Background()
	cat := catalog.MustLoad()

	_, ok := newEndpoint(ctx, &config.Config{UseMockLLM: true}, cat).(*llm.MockEndpoint)
	assert.True(t, ok)

	endpoint := newEndpoint(ctx, &config.Config{Backend: config.BackendGemini}, cat)
	_, ok = endpoint.(*llm.UnavailableEndpoint)
	require.True(t, ok, "a missing key must not stop the process")

	_, err := endpoint.OpenChat(ctx, domain.ChatConfig{})
	assert.ErrorIs(t, err, domain.ErrInitialization)
}
