package view

import (
	"fmt"
	"math"

	"github.com/medivac/portal/service"
)

const (
	defaultZoom        = 12
	osmDirectionsURL   = "https://www.openstreetmap.org/directions?engine=fossgis_osrm_car&route=%.5f%%2C%.5f%%3B%.5f%%2C%.5f"
	osmMarkerURLFormat = "https://www.openstreetmap.org/?mlat=%.5f&mlon=%.5f#map=%d/%.5f/%.5f"
)

// Point is a latitude/longitude pair.
type Point struct {
	Lat float64
	Lng float64
}

// Bounds is the box enclosing both stops.
type Bounds struct {
	SouthWest Point
	NorthEast Point
}

// RouteMap describes how to frame a trip between its pickup and drop stops.
type RouteMap struct {
	Pickup Point
	Drop   Point
	Center Point
	Bounds Bounds
	Zoom   int
}

// DirectionsURL links to driving directions between the stops.
func (m *RouteMap) DirectionsURL() string {
	return fmt.Sprintf(osmDirectionsURL, m.Pickup.Lat, m.Pickup.Lng, m.Drop.Lat, m.Drop.Lng)
}

// CenterURL links to a map centred between the stops.
func (m *RouteMap) CenterURL() string {
	return fmt.Sprintf(osmMarkerURLFormat, m.Center.Lat, m.Center.Lng, m.Zoom, m.Center.Lat, m.Center.Lng)
}

// NewRouteMap frames trip with the map centred on the midpoint of its stops.
func NewRouteMap(trip *service.Trip) *RouteMap {
	pickup := Point{Lat: trip.PickupLocation.Lat, Lng: trip.PickupLocation.Lng}
	drop := Point{Lat: trip.DropLocation.Lat, Lng: trip.DropLocation.Lng}
	return &RouteMap{
		Pickup: pickup,
		Drop:   drop,
		Center: Point{Lat: (pickup.Lat + drop.Lat) / 2, Lng: (pickup.Lng + drop.Lng) / 2},
		Bounds: Bounds{
			SouthWest: Point{Lat: math.Min(pickup.Lat, drop.Lat), Lng: math.Min(pickup.Lng, drop.Lng)},
			NorthEast: Point{Lat: math.Max(pickup.Lat, drop.Lat), Lng: math.Max(pickup.Lng, drop.Lng)},
		},
		Zoom: defaultZoom,
	}
}
