package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/PabloGalante/bright-road/internal/domain"
)

//go:embed catalog.yaml
var bundled []byte

type document struct {
	Destinations []domain.Destination `yaml:"destinations"`
	Hotels       []domain.Hotel       `yaml:"hotels"`
	Cars         []domain.Car         `yaml:"cars"`
}

// Store holds the three catalog lists. It is never mutated after Load;
// every accessor hands out copies.
type Store struct {
	destinations []domain.Destination
	hotels       []domain.Hotel
	cars         []domain.Car
}

// Load decodes the catalog bundled with the binary.
func Load() (*Store, error) {
	return Parse(bundled)
}

// MustLoad is Load for process startup, where a broken bundle is a build defect.
func MustLoad() *Store {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes a catalog document and checks that ids are unique per kind.
func Parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := checkIDs("destination", len(doc.Destinations), func(i int) string { return doc.Destinations[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("hotel", len(doc.Hotels), func(i int) string { return doc.Hotels[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("car", len(doc.Cars), func(i int) string { return doc.Cars[i].ID }); err != nil {
		return nil, err
	}

	return &Store{
		destinations: doc.Destinations,
		hotels:       doc.Hotels,
		cars:         doc.Cars,
	}, nil
}

func checkIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return fmt.Errorf("catalog: %s at index %d has no id", kind, i)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("catalog: duplicate %s id %q", kind, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func (s *Store) Destinations() []domain.Destination {
	out := make([]domain.Destination, len(s.destinations))
	for i, d := range s.destinations {
		d.Highlights = cloneStrings(d.Highlights)
		out[i] = d
	}
	return out
}

func (s *Store) Hotels() []domain.Hotel {
	out := make([]domain.Hotel, len(s.hotels))
	for i, h := range s.hotels {
		h.Amenities = cloneStrings(h.Amenities)
		out[i] = h
	}
	return out
}

func (s *Store) Cars() []domain.Car {
	out := make([]domain.Car, len(s.cars))
	for i, c := range s.cars {
		c.Features = cloneStrings(c.Features)
		out[i] = c
	}
	return out
}

// Destination returns the destination with the given id.
func (s *Store) Destination(id string) (domain.Destination, error) {
	for _, d := range s.Destinations() {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Destination{}, fmt.Errorf("destination %q: %w", id, domain.ErrCatalogItemNotFound)
}

// Hotel returns the hotel with the given id.
func (s *Store) Hotel(id string) (domain.Hotel, error) {
	for _, h := range s.Hotels() {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, fmt.Errorf("hotel %q: %w", id, domain.ErrCatalogItemNotFound)
}

// Car returns the car with the given id.
func (s *Store) Car(id string) (domain.Car, error) {
	for _, c := range s.Cars() {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Car{}, fmt.Errorf("car %q: %w", id, domain.ErrCatalogItemNotFound)
}

// Highlights lists every destination highlight once, in first-seen order.
func (s *Store) Highlights() []string {
	var out []string
	seen := map[string]bool{}
	for _, d := range s.destinations {
		for _, h := range d.Highlights {
			if !seen[h] {
				seen[h] = true
				out = append(out, h)
			}
		}
	}
	return out
}

// CarTypes lists every car type once, in first-seen order.
func (s *Store) CarTypes() []string {
	var out []string
	seen := map[string]bool{}
	for _, c := range s.cars {
		if !seen[c.Type] {
			seen[c.Type] = true
			out = append(out, c.Type)
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
