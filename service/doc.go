// Package service contains thin clients for the patient resources of the
// ambulance backend: profile, bookings, locations and trips.
//
// Each operation maps to exactly one backend call and returns the
// *api.Error it received unchanged. There is no caching, no optimistic
// update and no retry; a result reflects backend state at call time.
package service
