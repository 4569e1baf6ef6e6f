package llm

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/PabloGalante/bright-road/internal/domain"
	"github.com/PabloGalante/bright-road/internal/observability"
)

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

// GeminiOptions selects how the genai client authenticates.
// The Gemini API backend needs APIKey; Vertex AI needs Project and Location
// and uses application default credentials.
type GeminiOptions struct {
	Backend  string
	APIKey   string
	Project  string
	Location string

	// BaseURL overrides the API endpoint, e.g. for a proxy.
	BaseURL string
}

// GeminiEndpoint opens chats against Gemini through google.golang.org/genai.
type GeminiEndpoint struct {
	client *genai.Client
}

// NewGeminiEndpoint creates the genai client. Missing credentials are
// reported as domain.ErrInitialization so callers can fall back to an
// UnavailableEndpoint instead of exiting.
func NewGeminiEndpoint(ctx context.Context, opts GeminiOptions) (*GeminiEndpoint, error) {
	cc := &genai.ClientConfig{}

	switch strings.ToLower(opts.Backend) {
	case "", BackendGemini:
		if strings.TrimSpace(opts.APIKey) == "" {
			return nil, fmt.Errorf("%w: API key is missing", domain.ErrInitialization)
		}
		cc.APIKey = opts.APIKey
		cc.Backend = genai.BackendGeminiAPI
	case BackendVertex:
		if opts.Project == "" || opts.Location == "" {
			return nil, fmt.Errorf("%w: GCP project and location must be set for the vertex backend", domain.ErrInitialization)
		}
		cc.Project = opts.Project
		cc.Location = opts.Location
		cc.Backend = genai.BackendVertexAI
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", domain.ErrInitialization, opts.Backend)
	}

	cc.HTTPOptions.BaseURL = opts.BaseURL

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("%w: creating genai client: %w", domain.ErrInitialization, err)
	}

	return &GeminiEndpoint{client: client}, nil
}

// OpenChat implements domain.ChatEndpoint. The genai chat keeps the turn
// history in memory; nothing is sent until the first message.
func (g *GeminiEndpoint) OpenChat(ctx context.Context, cfg domain.ChatConfig) (domain.ChatHandle, error) {
	gcfg := &genai.GenerateContentConfig{
		// genai takes the system instruction as plain user-role content
		SystemInstruction: genai.NewContentFromText(cfg.SystemInstruction, genai.RoleUser),
	}
	if cfg.MapsGrounding {
		gcfg.Tools = []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}}
	}

	chat, err := g.client.Chats.Create(ctx, cfg.Model, gcfg, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating gemini chat: %w", domain.ErrInitialization, err)
	}

	return &geminiChat{chat: chat, model: cfg.Model}, nil
}

type geminiChat struct {
	chat  *genai.Chat
	model string
}

func (c *geminiChat) Send(ctx context.Context, text string) (*domain.EndpointReply, error) {
	ctx, span := observability.Tracer().Start(ctx, "gemini.SendMessage")
	defer span.End()
	span.SetAttributes(attribute.String("model", c.model))

	res, err := c.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("gemini send message: %w", err)
	}
	if res == nil {
		err := fmt.Errorf("gemini returned no response")
		observability.RecordError(span, err)
		return nil, err
	}
	return toEndpointReply(span, res), nil
}

// toEndpointReply maps a response to a reply. A response without candidates
// (for example one blocked by safety filters) is an empty reply, not an error.
func toEndpointReply(span trace.Span, res *genai.GenerateContentResponse) *domain.EndpointReply {
	if len(res.Candidates) == 0 {
		span.SetAttributes(attribute.Bool("empty_response", true))
		return &domain.EndpointReply{}
	}

	reply := &domain.EndpointReply{
		Text:      res.Text(),
		Grounding: groundingFromResponse(res),
	}
	span.SetAttributes(attribute.Int("grounding_chunks", len(reply.Grounding)))
	return reply
}
