package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/medivac/portal/service"
	"github.com/medivac/portal/view"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func row(table io.Writer, cells ...string) {
	_, _ = fmt.Fprintln(table, strings.Join(cells, "\t"))
}

func renderProfile(out io.Writer, profile *service.Profile) error {
	table := newTable(out)
	row(table, "Name", profile.Name)
	row(table, "Email", profile.Email)
	row(table, "Phone", profile.Phone)
	row(table, "Role", view.StatusLabel(profile.Role))
	return table.Flush()
}

func renderBookings(out io.Writer, bookings []*service.Booking) error {
	if len(bookings) == 0 {
		_, err := fmt.Fprintln(out, "No bookings yet")
		return err
	}
	table := newTable(out)
	row(table, "ID", "STATUS", "PICKUP", "DROP", "REQUESTED", "CANCELLABLE")
	for _, b := range bookings {
		cancellable := "no"
		if view.CanCancel(b.Status) {
			cancellable = "yes"
		}
		row(table,
			strconv.Itoa(b.ID),
			view.StatusLabel(b.Status),
			strconv.Itoa(b.PickupLocationID),
			strconv.Itoa(b.DropLocationID),
			view.DateTime(b.RequestedAt),
			cancellable,
		)
	}
	return table.Flush()
}

func renderTrips(out io.Writer, trips []*service.Trip) error {
	if len(trips) == 0 {
		_, err := fmt.Fprintln(out, "No trips yet")
		return err
	}
	table := newTable(out)
	row(table, "ID", "DATE", "STATUS", "FROM", "TO", "FARE")
	for _, trip := range trips {
		row(table,
			strconv.Itoa(trip.TripID),
			view.Date(trip.StartTime),
			view.StatusLabel(trip.Status),
			trip.PickupLocation.Address,
			trip.DropLocation.Address,
			view.Money(trip.Fare),
		)
	}
	return table.Flush()
}

func renderTrip(out io.Writer, trip *service.Trip) error {
	table := newTable(out)
	row(table, "Trip", strconv.Itoa(trip.TripID))
	row(table, "Status", view.StatusLabel(trip.Status))
	row(table, "Started", view.LongDateTime(trip.StartTime))
	if trip.EndTime != "" {
		row(table, "Ended", view.LongDateTime(trip.EndTime))
	}
	row(table, "From", trip.PickupLocation.Address)
	row(table, "To", trip.DropLocation.Address)
	row(table, "Fare", view.Money(trip.Fare))
	row(table, "Driver", trip.Driver.DriverName)
	row(table, "Driver phone", trip.Driver.DriverPhone)
	row(table, "Ambulance", strings.TrimSpace(trip.Driver.AmbulanceNumber+" "+trip.Driver.AmbulanceType))
	row(table, "Payment", fmt.Sprintf("%v by %v, %v", view.Money(trip.Payment.Amount), trip.Payment.Method, view.StatusLabel(trip.Payment.Status)))
	routeMap := view.NewRouteMap(trip)
	row(table, "Map", routeMap.CenterURL())
	row(table, "Directions", routeMap.DirectionsURL())
	return table.Flush()
}
