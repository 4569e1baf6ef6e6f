package assistant

import (
	"encoding/json"
	"strings"

	"github.com/PabloGalante/bright-road/internal/domain"
)

const persona = `
You are "Bright Road Assistant", a knowledgeable and friendly AI guide for Oman tourism.
Your goal is to help users explore Oman, find hotels, rent cars, and plan their trips.
The app "Bright Road" has the following specific inventory:
`

const guidance = `
When users ask about these specific places or items, provide details based on this data.
If they ask general questions about Oman (culture, visa, weather, other locations), use your general knowledge and the Google Maps tool to provide accurate answers.
Be concise, helpful, and polite. Use emojis sparingly but effectively to keep the tone light and vacation-oriented.
`

type destinationLine struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type hotelLine struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
}

type carLine struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// BuildSystemInstruction renders the persona, the catalog projection and
// the behavioral guidance. Only names, locations, types and prices are
// projected; descriptions and images stay out of the prompt.
func BuildSystemInstruction(catalog domain.CatalogReader) (string, error) {
	ds := catalog.Destinations()
	destinations := make([]destinationLine, 0, len(ds))
	for _, d := range ds {
		destinations = append(destinations, destinationLine{Name: d.Name, Location: d.Location})
	}

	hs := catalog.Hotels()
	hotels := make([]hotelLine, 0, len(hs))
	for _, h := range hs {
		hotels = append(hotels, hotelLine{Name: h.Name, Location: h.Location, Price: h.Price})
	}

	cs := catalog.Cars()
	cars := make([]carLine, 0, len(cs))
	for _, c := range cs {
		cars = append(cars, carLine{Name: c.Name, Type: c.Type, Price: c.PricePerDay})
	}

	var b strings.Builder
	b.WriteString(persona)

	sections := []struct {
		title string
		rows  any
	}{
		{"DESTINATIONS", destinations},
		{"HOTELS", hotels},
		{"CARS", cars},
	}
	for _, sec := range sections {
		raw, err := json.Marshal(sec.rows)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(sec.title)
		b.WriteString(":\n")
		b.Write(raw)
		b.WriteString("\n")
	}

	b.WriteString(guidance)
	return b.String(), nil
}
