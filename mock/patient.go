package mock

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/medivac/portal/service"
)

func (s *DispatchService) getProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := s.lookupUser(userID(r))
	if !ok {
		writeMessage(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, u.Profile)
}

func (s *DispatchService) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var update service.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(update.Name) == "" {
		writeMessage(w, http.StatusBadRequest, "name is required")
		return
	}
	profile, err := s.updateProfile(userID(r), &update)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *DispatchService) listBookings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.userBookings(userID(r)))
}

func (s *DispatchService) createBooking(w http.ResponseWriter, r *http.Request) {
	var request service.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	booking, err := s.addBooking(userID(r), &request)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (s *DispatchService) cancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	booking, err := s.cancelBooking(userID(r), id)
	switch {
	case errors.Is(err, ErrUnknownBooking):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errNotPending):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case err != nil:
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeJSON(w, http.StatusOK, booking)
	}
}

func (s *DispatchService) createLocation(w http.ResponseWriter, r *http.Request) {
	var location service.Location
	if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(location.Address) == "" {
		writeMessage(w, http.StatusBadRequest, "address is required")
		return
	}
	id := s.addLocation(&location)
	writeJSON(w, http.StatusCreated, service.LocationResult{LocationID: id, Message: "Location created successfully"})
}

func (s *DispatchService) tripHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.userTrips(userID(r)))
}

func (s *DispatchService) tripDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	trip, ok := s.userTrip(userID(r), id)
	if !ok {
		writeMessage(w, http.StatusNotFound, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
