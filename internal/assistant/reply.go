package assistant

import (
	"strings"

	"github.com/PabloGalante/bright-road/internal/domain"
)

// Reply is what a visitor sees for one successful exchange.
type Reply struct {
	// Text is markdown; when Citations is non-empty it already ends with
	// the sources section.
	Text      string
	Citations []domain.Citation
}

func buildReply(raw *domain.EndpointReply) *Reply {
	text := raw.Text
	if strings.TrimSpace(text) == "" {
		text = EmptyReplyText
	}

	var citations []domain.Citation
	for _, c := range raw.Grounding {
		if c.Complete() {
			citations = append(citations, c)
		}
	}

	if len(citations) > 0 {
		text += renderCitations(citations)
	}

	return &Reply{
		Text:      text,
		Citations: citations,
	}
}

func renderCitations(citations []domain.Citation) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(citationsHeading)
	b.WriteString("\n")
	for _, c := range citations {
		b.WriteString("- [")
		b.WriteString(c.Title)
		b.WriteString("](")
		b.WriteString(c.URI)
		b.WriteString(")\n")
	}
	return b.String()
}
