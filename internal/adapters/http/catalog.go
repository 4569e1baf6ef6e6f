package httpadapter

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PabloGalante/bright-road/internal/catalog"
	"github.com/PabloGalante/bright-road/internal/domain"
)

type destinationsResponse struct {
	Destinations []domain.Destination `json:"destinations"`
}

type hotelsResponse struct {
	Hotels []domain.Hotel `json:"hotels"`
}

type carsResponse struct {
	Cars []domain.Car `json:"cars"`
}

func (s *Server) handleListDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, destinationsResponse{
		Destinations: s.catalog.FilterDestinations(catalog.DestinationFilter{
			Search:    q.Get("q"),
			Highlight: q.Get("highlight"),
		}),
	})
}

func (s *Server) handleGetDestination(w http.ResponseWriter, r *http.Request) {
	d, err := s.catalog.Destination(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleHighlights(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"highlights": nonNil(s.catalog.Highlights()),
	})
}

func (s *Server) handleListHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tier, err := catalog.ParseHotelTier(q.Get("tier"))
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, hotelsResponse{
		Hotels: s.catalog.FilterHotels(catalog.HotelFilter{
			Search: q.Get("q"),
			Tier:   tier,
		}),
	})
}

func (s *Server) handleListCars(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, carsResponse{
		Cars: s.catalog.FilterCars(catalog.CarFilter{
			Search: q.Get("q"),
			Type:   q.Get("type"),
		}),
	})
}

func (s *Server) handleCarTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"car_types": nonNil(s.catalog.CarTypes()),
	})
}

func (s *Server) handleBookHotel(w http.ResponseWriter, r *http.Request) {
	conf, err := s.bookings.BookHotel(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conf)
}

func (s *Server) handleRentCar(w http.ResponseWriter, r *http.Request) {
	conf, err := s.bookings.RentCar(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conf)
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
