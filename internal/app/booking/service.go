package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGalante/bright-road/internal/domain"
	"github.com/PabloGalante/bright-road/internal/observability"
)

// Inventory looks up bookable catalog items by id.
type Inventory interface {
	Hotel(id string) (domain.Hotel, error)
	Car(id string) (domain.Car, error)
}

// Service answers the "Book Now" and "Rent Now" actions of the catalog.
type Service struct {
	inventory Inventory
	now       func() time.Time
}

// NewService creates a booking service over the catalog.
func NewService(inventory Inventory) *Service {
	return &Service{
		inventory: inventory,
		now:       time.Now,
	}
}

// BookHotel acknowledges a booking request for one hotel.
func (s *Service) BookHotel(ctx context.Context, hotelID string) (*domain.Confirmation, error) {
	hotel, err := s.inventory.Hotel(hotelID)
	if err != nil {
		return nil, err
	}

	conf := s.confirm(domain.BookingHotel, hotel.ID, hotel.Name, hotel.Price,
		fmt.Sprintf("Booking request for %s sent! Check your email for confirmation.", hotel.Name))

	observability.LoggerFromContext(ctx).Info("hotel booking requested",
		"reference", conf.Reference,
		"hotel_id", hotel.ID,
	)
	return conf, nil
}

// RentCar acknowledges a rental request for one car.
func (s *Service) RentCar(ctx context.Context, carID string) (*domain.Confirmation, error) {
	car, err := s.inventory.Car(carID)
	if err != nil {
		return nil, err
	}

	conf := s.confirm(domain.BookingCar, car.ID, car.Name, car.PricePerDay,
		fmt.Sprintf("Reservation request for %s initiated! We will contact you shortly.", car.Name))

	observability.LoggerFromContext(ctx).Info("car rental requested",
		"reference", conf.Reference,
		"car_id", car.ID,
	)
	return conf, nil
}

func (s *Service) confirm(kind domain.BookingKind, id, name string, price float64, msg string) *domain.Confirmation {
	return &domain.Confirmation{
		Reference:   uuid.NewString(),
		Kind:        kind,
		ItemID:      id,
		ItemName:    name,
		Price:       price,
		Message:     msg,
		RequestedAt: s.now(),
	}
}
