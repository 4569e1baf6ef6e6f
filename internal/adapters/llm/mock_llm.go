package llm

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PabloGalante/bright-road/internal/domain"
)

// MockEndpoint is an offline endpoint for development. It answers from the
// catalog instead of a model: prices for hotels and cars, locations (with a
// maps link) for destinations.
type MockEndpoint struct {
	catalog domain.CatalogReader
}

func NewMockLLM(catalog domain.CatalogReader) *MockEndpoint {
	return &MockEndpoint{catalog: catalog}
}

func (m *MockEndpoint) OpenChat(_ context.Context, _ domain.ChatConfig) (domain.ChatHandle, error) {
	return &mockChat{catalog: m.catalog}, nil
}

type mockChat struct {
	catalog domain.CatalogReader
	turns   int
}

func (c *mockChat) Send(_ context.Context, text string) (*domain.EndpointReply, error) {
	c.turns++
	q := strings.ToLower(text)

	for _, h := range c.catalog.Hotels() {
		if strings.Contains(q, strings.ToLower(h.Name)) {
			return &domain.EndpointReply{
				Text: fmt.Sprintf("%s in %s costs $%s per night and is rated %s/5. 🏨", h.Name, h.Location, money(h.Price), money(h.Rating)),
			}, nil
		}
	}

	for _, car := range c.catalog.Cars() {
		if strings.Contains(q, strings.ToLower(car.Name)) {
			return &domain.EndpointReply{
				Text: fmt.Sprintf("The %s (%s) rents for $%s per day. 🚙", car.Name, car.Type, money(car.PricePerDay)),
			}, nil
		}
	}

	for _, d := range c.catalog.Destinations() {
		if strings.Contains(q, strings.ToLower(d.Name)) {
			return &domain.EndpointReply{
				Text: fmt.Sprintf("%s is in %s. %s", d.Name, d.Location, d.Description),
				Grounding: []domain.Citation{{
					Kind:  domain.CitationMaps,
					Title: d.Name,
					URI:   mapsSearchURL(d.Name + ", " + d.Location + ", Oman"),
				}},
			}, nil
		}
	}

	return &domain.EndpointReply{
		Text: fmt.Sprintf("I'm running in offline mode (turn %d). You said %q. Ask me about a hotel, a rental car or a destination from the catalog.", c.turns, text),
	}, nil
}

func mapsSearchURL(query string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
