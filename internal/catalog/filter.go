package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PabloGalante/bright-road/internal/domain"
)

// HotelTier is one of the price/rating shortcuts offered on the hotels page.
type HotelTier string

const (
	TierAll      HotelTier = "all"
	TierUnder250 HotelTier = "under-250"
	TierLuxury   HotelTier = "luxury"
	TierTopRated HotelTier = "top-rated"
)

const (
	budgetCeiling = 250
	luxuryFloor   = 300
	topRatedFloor = 4.8
)

// ParseHotelTier accepts the tier names used by the API; empty means all.
func ParseHotelTier(s string) (HotelTier, error) {
	switch HotelTier(strings.ToLower(strings.TrimSpace(s))) {
	case "", TierAll:
		return TierAll, nil
	case TierUnder250:
		return TierUnder250, nil
	case TierLuxury:
		return TierLuxury, nil
	case TierTopRated:
		return TierTopRated, nil
	default:
		return "", fmt.Errorf("unknown hotel tier %q", s)
	}
}

type DestinationFilter struct {
	Search    string // matches name or location, case-insensitive
	Highlight string // exact highlight; empty matches all
}

type HotelFilter struct {
	Search string // matches name or location, case-insensitive
	Tier   HotelTier
}

type CarFilter struct {
	Search string // matches name, case-insensitive
	Type   string // exact car type; empty matches all
}

func (s *Store) FilterDestinations(f DestinationFilter) []domain.Destination {
	out := []domain.Destination{}
	for _, d := range s.Destinations() {
		if !containsFold(f.Search, d.Name, d.Location) {
			continue
		}
		if f.Highlight != "" && !slices.Contains(d.Highlights, f.Highlight) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (s *Store) FilterHotels(f HotelFilter) []domain.Hotel {
	out := []domain.Hotel{}
	for _, h := range s.Hotels() {
		if !containsFold(f.Search, h.Name, h.Location) {
			continue
		}
		if !f.Tier.matches(h) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func (s *Store) FilterCars(f CarFilter) []domain.Car {
	out := []domain.Car{}
	for _, c := range s.Cars() {
		if !containsFold(f.Search, c.Name) {
			continue
		}
		if f.Type != "" && c.Type != f.Type {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (t HotelTier) matches(h domain.Hotel) bool {
	switch t {
	case TierUnder250:
		return h.Price < budgetCeiling
	case TierLuxury:
		return h.Price >= luxuryFloor
	case TierTopRated:
		return h.Rating >= topRatedFloor
	default:
		return true
	}
}

func containsFold(needle string, fields ...string) bool {
	needle = strings.ToLower(needle)
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
