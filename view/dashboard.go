package view

import (
	"context"

	"github.com/medivac/portal/service"
	"golang.org/x/sync/errgroup"
)

// Dashboard is the patient landing screen.
type Dashboard struct {
	Profile *service.Profile
	// Pending holds only bookings still awaiting dispatch.
	Pending []*service.Booking
}

// LoadDashboard fetches the profile and bookings concurrently. It fails when
// either call fails; there is no partial dashboard.
func LoadDashboard(ctx context.Context, profiles ProfileSource, bookings BookingSource) (*Dashboard, error) {
	var (
		group    errgroup.Group
		profile  *service.Profile
		upcoming []*service.Booking
	)
	group.Go(func() (err error) {
		profile, err = profiles.Get(ctx)
		return err
	})
	group.Go(func() (err error) {
		upcoming, err = bookings.List(ctx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &Dashboard{Profile: profile, Pending: Pending(upcoming)}, nil
}

// Pending filters bookings down to those with status pending.
func Pending(bookings []*service.Booking) []*service.Booking {
	ret := make([]*service.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.Status == service.BookingPending {
			ret = append(ret, booking)
		}
	}
	return ret
}
