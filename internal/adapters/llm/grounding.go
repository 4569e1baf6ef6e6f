package llm

import (
	"google.golang.org/genai"

	"github.com/PabloGalante/bright-road/internal/domain"
)

// groundingFromResponse flattens the first candidate's grounding chunks.
// A chunk carrying both a web and a maps reference yields two citations.
// Incomplete references are kept; the assistant decides what to show.
func groundingFromResponse(res *genai.GenerateContentResponse) []domain.Citation {
	if res == nil || len(res.Candidates) == 0 {
		return nil
	}
	meta := res.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}

	var out []domain.Citation
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil {
			continue
		}
		if chunk.Web != nil {
			out = append(out, domain.Citation{
				Kind:  domain.CitationWeb,
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		}
		if chunk.Maps != nil {
			out = append(out, domain.Citation{
				Kind:  domain.CitationMaps,
				Title: chunk.Maps.Title,
				URI:   chunk.Maps.URI,
			})
		}
	}
	return out
}
