package route

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Page identifies a portal screen.
type Page string

const (
	PageLogin       Page = "login"
	PageRegister    Page = "register"
	PageDashboard   Page = "dashboard"
	PageProfile     Page = "profile"
	PageBookings    Page = "bookings"
	PageNewBooking  Page = "booking-new"
	PageTrips       Page = "trips"
	PageTripDetails Page = "trip-details"
)

// Portal paths.
const (
	Root           = "/"
	Login          = "/login"
	Register       = "/register"
	Dashboard      = "/patient/dashboard"
	DashboardAlias = "/dashboard"
	Profile        = "/profile"
	Bookings       = "/bookings"
	NewBooking     = "/booking/new"
	Trips          = "/trips"
	TripDetails    = "/trips/{id}"
)

// Route is one entry of the route table.
type Route struct {
	Pattern   string
	Page      Page
	Protected bool
	// RedirectTo sends the path elsewhere, replacing the history entry.
	RedirectTo string
}

// Table returns the portal route table.
func Table() []*Route {
	return []*Route{
		{Pattern: Login, Page: PageLogin},
		{Pattern: Register, Page: PageRegister},
		{Pattern: Dashboard, Page: PageDashboard, Protected: true},
		{Pattern: DashboardAlias, Page: PageDashboard, Protected: true},
		{Pattern: Profile, Page: PageProfile, Protected: true},
		{Pattern: Bookings, Page: PageBookings, Protected: true},
		{Pattern: NewBooking, Page: PageNewBooking, Protected: true},
		{Pattern: Trips, Page: PageTrips, Protected: true},
		{Pattern: TripDetails, Page: PageTripDetails, Protected: true},
		{Pattern: Root, RedirectTo: DashboardAlias},
	}
}

// TripPath returns the details path of a trip.
func TripPath(id int) string {
	return strings.Replace(TripDetails, "{id}", strconv.Itoa(id), 1)
}

// matcher finds routes with a chi tree; handlers are never served.
type matcher struct {
	mux    *chi.Mux
	routes map[string]*Route
}

func newMatcher(routes []*Route) *matcher {
	ret := &matcher{mux: chi.NewRouter(), routes: map[string]*Route{}}
	for _, r := range routes {
		ret.routes[r.Pattern] = r
		ret.mux.Get(r.Pattern, http.NotFound)
	}
	return ret
}

func (m *matcher) match(path string) (*Route, map[string]string) {
	rctx := chi.NewRouteContext()
	if !m.mux.Match(rctx, http.MethodGet, path) {
		return nil, nil
	}
	r, ok := m.routes[rctx.RoutePattern()]
	if !ok {
		return nil, nil
	}
	var params map[string]string
	for i, key := range rctx.URLParams.Keys {
		if params == nil {
			params = map[string]string{}
		}
		params[key] = rctx.URLParams.Values[i]
	}
	return r, params
}

// normalize drops the query and fragment and any trailing slash.
func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i != -1 {
		path = path[:i]
	}
	if path == "" {
		return Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = Root
		}
	}
	return path
}
