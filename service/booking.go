package service

import (
	"context"
	"fmt"

	"github.com/medivac/portal/api"
)

const bookingsPath = "/api/bookings"

// Bookings lists, creates and cancels ambulance bookings.
type Bookings struct {
	client *api.Client
}

// List returns every booking of the signed-in patient.
func (b *Bookings) List(ctx context.Context) ([]*Booking, error) {
	var ret []*Booking
	if err := b.client.Get(ctx, bookingsPath, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (b *Bookings) Create(ctx context.Context, request *BookingRequest) (*Booking, error) {
	ret := &Booking{}
	if err := b.client.Post(ctx, bookingsPath, request, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Cancel asks the backend to cancel a booking. The backend decides whether
// the booking's current status allows it.
func (b *Bookings) Cancel(ctx context.Context, id int) (*Booking, error) {
	ret := &Booking{}
	if err := b.client.Put(ctx, fmt.Sprintf("/api/patient/bookings/%d/cancel", id), nil, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func NewBookings(client *api.Client) *Bookings {
	return &Bookings{client: client}
}
