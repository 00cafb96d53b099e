package service

import (
	"context"

	"github.com/medivac/portal/api"
)

// Locations registers pickup and drop addresses.
type Locations struct {
	client *api.Client
}

func (l *Locations) Create(ctx context.Context, location *Location) (*LocationResult, error) {
	ret := &LocationResult{}
	if err := l.client.Post(ctx, "/api/location", location, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func NewLocations(client *api.Client) *Locations {
	return &Locations{client: client}
}
