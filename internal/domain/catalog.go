package domain

// Destination is a place worth visiting.
type Destination struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Location    string   `json:"location" yaml:"location"`
	ImageURL    string   `json:"image_url" yaml:"image_url"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
}

// Hotel is a bookable stay. Price is per night, in USD.
type Hotel struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Price     float64  `json:"price" yaml:"price"`
	Rating    float64  `json:"rating" yaml:"rating"`
	Location  string   `json:"location" yaml:"location"`
	ImageURL  string   `json:"image_url" yaml:"image_url"`
	Amenities []string `json:"amenities" yaml:"amenities"`
}

// Car is a rental vehicle.
type Car struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"`
	PricePerDay float64  `json:"price_per_day" yaml:"price_per_day"`
	ImageURL    string   `json:"image_url" yaml:"image_url"`
	Features    []string `json:"features" yaml:"features"`
}

// CatalogReader is the read-only view of the catalog store.
type CatalogReader interface {
	Destinations() []Destination
	Hotels() []Hotel
	Cars() []Car
}
