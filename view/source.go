package view

import (
	"context"

	"github.com/medivac/portal/service"
)

type (
	ProfileSource interface {
		Get(ctx context.Context) (*service.Profile, error)
	}

	BookingSource interface {
		List(ctx context.Context) ([]*service.Booking, error)
	}

	BookingCreator interface {
		Create(ctx context.Context, request *service.BookingRequest) (*service.Booking, error)
	}

	LocationCreator interface {
		Create(ctx context.Context, location *service.Location) (*service.LocationResult, error)
	}
)
