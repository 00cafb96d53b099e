package mock

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route keys accepted by Override.
const (
	RouteRegister       = "POST /api/auth/register"
	RouteLogin          = "POST /api/auth/login"
	RouteGetProfile     = "GET /api/patient/profile"
	RouteUpdateProfile  = "PUT /api/patient/profile"
	RouteListBookings   = "GET /api/bookings"
	RouteCreateBooking  = "POST /api/bookings"
	RouteCancelBooking  = "PUT /api/patient/bookings/{id}/cancel"
	RouteCreateLocation = "POST /api/location"
	RouteTripHistory    = "GET /api/patient/trips"
	RouteTripDetails    = "GET /api/trips/{id}"
)

type contextKey string

const userIDKey contextKey = "userID"

// Handler returns the chi router serving every backend endpoint.
func (s *DispatchService) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(echoRequestID)
	if s.Cors != nil {
		r.Use(s.Cors.Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/api/auth/register", s.route(RouteRegister, s.register))
	r.Post("/api/auth/login", s.route(RouteLogin, s.login))

	r.Get("/api/patient/profile", s.protected(RouteGetProfile, s.getProfile))
	r.Put("/api/patient/profile", s.protected(RouteUpdateProfile, s.updateProfileHandler))
	r.Get("/api/bookings", s.protected(RouteListBookings, s.listBookings))
	r.Post("/api/bookings", s.protected(RouteCreateBooking, s.createBooking))
	r.Put("/api/patient/bookings/{id}/cancel", s.protected(RouteCancelBooking, s.cancelBookingHandler))
	r.Post("/api/location", s.protected(RouteCreateLocation, s.createLocation))
	r.Get("/api/patient/trips", s.protected(RouteTripHistory, s.tripHistory))
	r.Get("/api/trips/{id}", s.protected(RouteTripDetails, s.tripDetails))
	return r
}

// protected serves handler behind the bearer check. An override registered
// for key replaces both, so it sees whatever Authorization header was sent.
func (s *DispatchService) protected(key string, handler http.HandlerFunc) http.HandlerFunc {
	return s.route(key, s.authenticate(handler).ServeHTTP)
}

// route dispatches to an override when one is registered for key.
func (s *DispatchService) route(key string, fallback http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := s.overrides.Get(key); ok {
			handler(w, r)
			return
		}
		fallback(w, r)
	}
}

// authenticate enforces Authorization: Bearer <JWT> and stores the user id in context.
func (s *DispatchService) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" {
			writeMessage(w, http.StatusUnauthorized, "missing Authorization header")
			return
		}
		const prefix = "Bearer "
		if !strings.HasPrefix(authz, prefix) {
			writeMessage(w, http.StatusUnauthorized, "malformed Authorization header")
			return
		}
		id, err := s.verifyJWT(strings.TrimSpace(strings.TrimPrefix(authz, prefix)))
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if _, ok := s.lookupUser(id); !ok {
			writeMessage(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
	})
}

func echoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set("X-Request-ID", id)
		}
		next.ServeHTTP(w, r)
	})
}

func userID(r *http.Request) int {
	id, _ := r.Context().Value(userIDKey).(int)
	return id
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
