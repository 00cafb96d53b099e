package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/medivac/portal/api"
	"github.com/medivac/portal/mock"
	"github.com/medivac/portal/service"
	"github.com/medivac/portal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	email    = "jane@x.io"
	password = "Secret1!x"
)

// signedIn starts a backend with one patient and returns clients holding its credential.
func signedIn(t *testing.T) (*mock.HTTPTestDispatchServer, *service.Patient) {
	t.Helper()
	srv, err := mock.NewHTTPTestServer()
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	_, err = srv.AddUser("Jane", email, "5551234567", password, "")
	require.NoError(t, err)

	sess := session.New()
	client := api.New(srv.URL, api.WithInterceptors(api.BearerAuth(sess), api.RequestID()))
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, client.Post(context.Background(), "/api/auth/login", map[string]string{"email": email, "password": password}, &login))
	sess.Set(context.Background(), login.Token)
	return srv, service.NewPatient(client)
}

func createBooking(t *testing.T, patient *service.Patient) *service.Booking {
	t.Helper()
	ctx := context.Background()
	pickup, err := patient.Locations.Create(ctx, &service.Location{Address: "1 Main St", Latitude: 1, Longitude: 2})
	require.NoError(t, err)
	drop, err := patient.Locations.Create(ctx, &service.Location{Address: "General Hospital", Latitude: 3, Longitude: 4})
	require.NoError(t, err)
	booking, err := patient.Bookings.Create(ctx, &service.BookingRequest{PickupLocationID: pickup.LocationID, DropLocationID: drop.LocationID})
	require.NoError(t, err)
	return booking
}

func TestProfiles(t *testing.T) {
	_, patient := signedIn(t)
	ctx := context.Background()
	profile, err := patient.Profiles.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.Name)
	assert.Equal(t, email, profile.Email)

	updated, err := patient.Profiles.Update(ctx, &service.ProfileUpdate{Name: "Jane Doe", Phone: "5550000000"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "5550000000", updated.Phone)

	_, err = patient.Profiles.Update(ctx, &service.ProfileUpdate{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))
	assert.Equal(t, "name is required", err.Error())
}

func TestBookings(t *testing.T) {
	srv, patient := signedIn(t)
	ctx := context.Background()

	bookings, err := patient.Bookings.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	booking := createBooking(t, patient)
	assert.Equal(t, service.BookingPending, booking.Status)
	bookings, err = patient.Bookings.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.ID, bookings[0].ID)

	cancelled, err := patient.Bookings.Cancel(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, service.BookingCancelled, cancelled.Status)

	accepted := createBooking(t, patient)
	require.NoError(t, srv.SetBookingStatus(accepted.ID, service.BookingAccepted))
	_, err = patient.Bookings.Cancel(ctx, accepted.ID)
	require.Error(t, err)
	apiErr, ok := err.(*api.Error)
	require.True(t, ok)
	assert.Equal(t, api.KindHTTP, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "only pending bookings can be cancelled", apiErr.Message)

	_, err = patient.Bookings.Create(ctx, &service.BookingRequest{PickupLocationID: 404, DropLocationID: 405})
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))
}

func TestTrips(t *testing.T) {
	srv, patient := signedIn(t)
	ctx := context.Background()
	id, err := srv.AddTrip(email, service.Trip{
		Status:  service.TripCompleted,
		Fare:    120.5,
		Driver:  service.TripDriver{DriverName: "Sam", AmbulanceNumber: "AMB-42"},
		Payment: service.TripPayment{Amount: 120.5, Method: "card", Status: "paid"},
	})
	require.NoError(t, err)

	trips, err := patient.Trips.History(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, id, trips[0].TripID)

	trip, err := patient.Trips.Details(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "AMB-42", trip.Driver.AmbulanceNumber)
	assert.Equal(t, "card", trip.Payment.Method)

	_, err = patient.Trips.Details(ctx, id+1000)
	assert.Equal(t, http.StatusNotFound, api.StatusCode(err))
}

func TestUnauthenticated(t *testing.T) {
	srv, err := mock.NewHTTPTestServer()
	require.NoError(t, err)
	defer srv.Close()
	patient := service.NewPatient(api.New(srv.URL, api.WithInterceptors(api.BearerAuth(session.New()))))
	_, err = patient.Bookings.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, api.StatusCode(err))
}
