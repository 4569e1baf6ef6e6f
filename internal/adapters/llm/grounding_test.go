package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/PabloGalante/bright-road/internal/domain"
)

func TestGroundingFromResponse(t *testing.T) {
	res := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{Web: &genai.GroundingChunkWeb{Title: "Oman Tourism", URI: "https://omantourism.gov.om"}},
					nil,
					{Maps: &genai.GroundingChunkMaps{Title: "Wadi Shab", URI: "https://maps.google.com/?cid=1"}},
					{
						Web:  &genai.GroundingChunkWeb{Title: "Both", URI: "https://example.com"},
						Maps: &genai.GroundingChunkMaps{Title: "Both map", URI: "https://maps.google.com/?cid=2"},
					},
					{Maps: &genai.GroundingChunkMaps{Title: "No link"}},
				},
			},
		}},
	}

	got := groundingFromResponse(res)

	assert.Equal(t, []domain.Citation{
		{Kind: domain.CitationWeb, Title: "Oman Tourism", URI: "https://omantourism.gov.om"},
		{Kind: domain.CitationMaps, Title: "Wadi Shab", URI: "https://maps.google.com/?cid=1"},
		{Kind: domain.CitationWeb, Title: "Both", URI: "https://example.com"},
		{Kind: domain.CitationMaps, Title: "Both map", URI: "https://maps.google.com/?cid=2"},
		{Kind: domain.CitationMaps, Title: "No link"},
	}, got)
}

func TestGroundingFromResponse_NoMetadata(t *testing.T) {
	assert.Nil(t, groundingFromResponse(nil))
	assert.Nil(t, groundingFromResponse(&genai.GenerateContentResponse{}))
	assert.Nil(t, groundingFromResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))
}
