package view

import (
	"context"
	"strconv"
	"strings"

	"github.com/medivac/portal/api"
	"github.com/medivac/portal/service"
)

// BookingFallback is shown when a booking failure carries no message.
const BookingFallback = "Failed to create booking"

// LocationInput is a location as typed by the patient.
type LocationInput struct {
	Address   string
	Latitude  string
	Longitude string
}

// BookingForm collects the pickup and drop locations of a new booking.
type BookingForm struct {
	Pickup LocationInput
	Drop   LocationInput
}

// Validate converts both inputs, failing with a validation error naming the
// first incomplete or malformed location.
func (f *BookingForm) Validate() (pickup, drop *service.Location, err error) {
	if pickup, err = f.Pickup.location("pickup"); err != nil {
		return nil, nil, err
	}
	if drop, err = f.Drop.location("drop"); err != nil {
		return nil, nil, err
	}
	return pickup, drop, nil
}

// Submit registers the pickup location, then the drop location, then the
// booking. A failure stops the sequence; locations already created are kept.
func (f *BookingForm) Submit(ctx context.Context, locations LocationCreator, bookings BookingCreator) (*service.Booking, error) {
	pickup, drop, err := f.Validate()
	if err != nil {
		return nil, err
	}
	pickupResult, err := locations.Create(ctx, pickup)
	if err != nil {
		return nil, err
	}
	dropResult, err := locations.Create(ctx, drop)
	if err != nil {
		return nil, err
	}
	return bookings.Create(ctx, &service.BookingRequest{
		PickupLocationID: pickupResult.LocationID,
		DropLocationID:   dropResult.LocationID,
	})
}

func (l *LocationInput) location(kind string) (*service.Location, error) {
	address := strings.TrimSpace(l.Address)
	latitude := strings.TrimSpace(l.Latitude)
	longitude := strings.TrimSpace(l.Longitude)
	if address == "" || latitude == "" || longitude == "" {
		return nil, api.NewValidationMessage("Please fill in all " + kind + " location fields")
	}
	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, api.NewValidationError(map[string]string{kind + ".latitude": "Please enter a valid " + kind + " latitude"})
	}
	lng, err := strconv.ParseFloat(longitude, 64)
	if err != nil || lng < -180 || lng > 180 {
		return nil, api.NewValidationError(map[string]string{kind + ".longitude": "Please enter a valid " + kind + " longitude"})
	}
	return &service.Location{Address: address, Latitude: lat, Longitude: lng}, nil
}
