package assistant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/bright-road/internal/assistant"
	"github.com/PabloGalante/bright-road/internal/catalog"
	"github.com/PabloGalante/bright-road/internal/domain"
)

func TestBuildSystemInstruction(t *testing.T) {
	instruction, err := assistant.BuildSystemInstruction(catalog.MustLoad())
	require.NoError(t, err)

	assert.Contains(t, instruction, `You are "Bright Road Assistant"`)
	assert.Contains(t, instruction, "Google Maps tool")

	assert.Contains(t, instruction, `{"name":"Wadi Shab","location":"Tiwi"}`)
	assert.Contains(t, instruction, `{"name":"Desert Nights Camp","location":"Wahiba Sands","price":200}`)
	assert.Contains(t, instruction, `{"name":"Hyundai Tucson","type":"Crossover","price":45}`)

	// descriptive fields are not projected
	assert.NotContains(t, instruction, "Persian rugs")
	assert.NotContains(t, instruction, "image")
	assert.NotContains(t, instruction, "Infinity Pool")
}

type emptyCatalog struct{}

func (emptyCatalog) Destinations() []domain.Destination { return nil }
func (emptyCatalog) Hotels() []domain.Hotel             { return nil }
func (emptyCatalog) Cars() []domain.Car                 { return nil }

func TestBuildSystemInstruction_EmptyCatalogRendersEmptyLists(t *testing.T) {
	instruction, err := assistant.BuildSystemInstruction(emptyCatalog{})
	require.NoError(t, err)

	assert.Contains(t, instruction, "DESTINATIONS:\n[]\n")
	assert.Contains(t, instruction, "HOTELS:\n[]\n")
	assert.Contains(t, instruction, "CARS:\n[]\n")
	assert.NotContains(t, instruction, "null")
}
