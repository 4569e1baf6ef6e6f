package domain

import "time"

// BookingKind tells a hotel booking apart from a car rental.
type BookingKind string

const (
	BookingHotel BookingKind = "hotel"
	BookingCar   BookingKind = "car"
)

// Confirmation acknowledges a booking request. It is not a reservation:
// nothing is held or charged.
type Confirmation struct {
	Reference   string      `json:"reference"`
	Kind        BookingKind `json:"kind"`
	ItemID      string      `json:"item_id"`
	ItemName    string      `json:"item_name"`
	Price       float64     `json:"price"`
	Message     string      `json:"message"`
	RequestedAt time.Time   `json:"requested_at"`
}
