package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PabloGalante/bright-road/internal/app/booking"
	"github.com/PabloGalante/bright-road/internal/app/conversation"
	"github.com/PabloGalante/bright-road/internal/catalog"
	"github.com/PabloGalante/bright-road/internal/domain"
	"github.com/PabloGalante/bright-road/internal/observability"
)

type Server struct {
	conv     *conversation.Service
	catalog  *catalog.Store
	bookings *booking.Service
}

func NewServer(conv *conversation.Service, cat *catalog.Store, bookings *booking.Service) http.Handler {
	s := &Server{conv: conv, catalog: cat, bookings: bookings}

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		notFound(w, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		methodNotAllowed(w)
	})

	router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	browse := router.PathPrefix("/catalog").Subrouter()
	browse.HandleFunc("/destinations", s.handleListDestinations).Methods(http.MethodGet)
	browse.HandleFunc("/destinations/{id}", s.handleGetDestination).Methods(http.MethodGet)
	browse.HandleFunc("/highlights", s.handleHighlights).Methods(http.MethodGet)
	browse.HandleFunc("/hotels", s.handleListHotels).Methods(http.MethodGet)
	browse.HandleFunc("/cars", s.handleListCars).Methods(http.MethodGet)
	browse.HandleFunc("/car-types", s.handleCarTypes).Methods(http.MethodGet)

	router.HandleFunc("/hotels/{id}/book", s.handleBookHotel).Methods(http.MethodPost)
	router.HandleFunc("/cars/{id}/rent", s.handleRentCar).Methods(http.MethodPost)

	sessions := router.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", s.handleCreateSession).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", s.handleGetSession).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", s.handleEndSession).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/messages", s.handleSendMessage).Methods(http.MethodPost)

	// innermost first: requests pass request id -> logging -> CORS -> router
	return chainMiddlewares(router, withCORS, withLogging, withRequestID)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		badRequest(w, err.Error())
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrCatalogItemNotFound):
		notFound(w, err.Error())
	case errors.Is(err, domain.ErrSessionBusy):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": err.Error(),
		})
	default:
		internalError(w, r, err)
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func notFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	observability.LoggerFromContext(r.Context()).Error("request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
