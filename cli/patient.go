package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/medivac/portal/route"
	"github.com/medivac/portal/service"
	"github.com/medivac/portal/view"
)

func (c *dashboardCommand) Execute(_ []string) error {
	app, _, err := c.runner.open(route.Dashboard)
	if err != nil {
		return err
	}
	dashboard, err := app.Dashboard(c.runner.ctx)
	if err != nil {
		return fail(err, "Failed to load dashboard")
	}
	c.runner.printf("Welcome, %v\n\n", dashboard.Profile.Name)
	if len(dashboard.Pending) == 0 {
		c.runner.printf("No pending bookings\n")
		return nil
	}
	c.runner.printf("Pending bookings\n")
	return renderBookings(c.runner.out, dashboard.Pending)
}

func (c *profileCommand) Execute(_ []string) error {
	app, _, err := c.runner.open(route.Profile)
	if err != nil {
		return err
	}
	profile, err := app.Patient.Profiles.Get(c.runner.ctx)
	if err != nil {
		return fail(err, "Failed to load profile")
	}
	return renderProfile(c.runner.out, profile)
}

func (c *updateProfileCommand) Execute(_ []string) error {
	app, _, err := c.runner.open(route.Profile)
	if err != nil {
		return err
	}
	profile, err := app.Patient.Profiles.Update(c.runner.ctx, &service.ProfileUpdate{Name: c.Name, Phone: c.Phone})
	if err != nil {
		return fail(err, "Failed to update profile")
	}
	return renderProfile(c.runner.out, profile)
}

func (c *bookingsCommand) Execute(_ []string) error {
	app, _, err := c.runner.open(route.Bookings)
	if err != nil {
		return err
	}
	screen := view.NewScreen[[]*service.Booking]()
	defer screen.Unmount()
	ctx := c.runner.ctx
	for refresh := 1; ; refresh++ {
		screen.Load(ctx, app.Patient.Bookings.List)
		state := screen.State()
		if state.Err != nil {
			return fail(state.Err, "Failed to load bookings")
		}
		if c.Watch > 0 {
			c.runner.printf("%v\n", time.Now().Format(time.Kitchen))
		}
		if err = renderBookings(c.runner.out, state.Value); err != nil {
			return err
		}
		if c.Watch <= 0 || (c.Count > 0 && refresh >= c.Count) {
			return nil
		}
		if !sleep(ctx, c.Watch) {
			return nil
		}
	}
}

func (c *bookCommand) Execute(_ []string) error {
	app, _, err := c.runner.open(route.NewBooking)
	if err != nil {
		return err
	}
	form := &view.BookingForm{
		Pickup: view.LocationInput{Address: c.PickupAddress, Latitude: coordinate(c.PickupLatitude), Longitude: coordinate(c.PickupLongitude)},
		Drop:   view.LocationInput{Address: c.DropAddress, Latitude: coordinate(c.DropLatitude), Longitude: coordinate(c.DropLongitude)},
	}
	booking, err := form.Submit(c.runner.ctx, app.Patient.Locations, app.Patient.Bookings)
	if err != nil {
		return fail(err, view.BookingFallback)
	}
	app.Navigator.Replace(route.Bookings)
	c.runner.printf("Booking %v created, status %v\n", booking.ID, view.StatusLabel(booking.Status))
	return nil
}

func (c *cancelCommand) Execute(_ []string) error {
	app, _, err := c.runner.open(route.Bookings)
	if err != nil {
		return err
	}
	booking, err := app.Patient.Bookings.Cancel(c.runner.ctx, c.Args.ID)
	if err != nil {
		return fail(err, "Failed to cancel booking")
	}
	c.runner.printf("Booking %v is now %v\n", booking.ID, view.StatusLabel(booking.Status))
	return nil
}

func (c *tripsCommand) Execute(_ []string) error {
	app, _, err := c.runner.open(route.Trips)
	if err != nil {
		return err
	}
	trips, err := app.Patient.Trips.History(c.runner.ctx)
	if err != nil {
		return fail(err, "Failed to load trips")
	}
	return renderTrips(c.runner.out, trips)
}

func (c *tripCommand) Execute(_ []string) error {
	app, _, err := c.runner.open(route.TripPath(c.Args.ID))
	if err != nil {
		return err
	}
	trip, err := app.Patient.Trips.Details(c.runner.ctx, c.Args.ID)
	if err != nil {
		return fail(err, "Failed to load trip details")
	}
	return renderTrip(c.runner.out, trip)
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// coordinate renders a flag value for the booking form; an absent flag stays empty.
func coordinate(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
