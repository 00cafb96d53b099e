package service

import "github.com/medivac/portal/api"

// Patient groups the domain clients a signed-in patient uses.
type Patient struct {
	Profiles  *Profiles
	Bookings  *Bookings
	Locations *Locations
	Trips     *Trips
}

func NewPatient(client *api.Client) *Patient {
	return &Patient{
		Profiles:  NewProfiles(client),
		Bookings:  NewBookings(client),
		Locations: NewLocations(client),
		Trips:     NewTrips(client),
	}
}
