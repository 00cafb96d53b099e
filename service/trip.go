package service

import (
	"context"
	"fmt"

	"github.com/medivac/portal/api"
)

// Trips reads the patient's trip history.
type Trips struct {
	client *api.Client
}

func (t *Trips) History(ctx context.Context) ([]*Trip, error) {
	var ret []*Trip
	if err := t.client.Get(ctx, "/api/patient/trips", &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Details returns a trip with its driver, payment and locations.
func (t *Trips) Details(ctx context.Context, id int) (*Trip, error) {
	ret := &Trip{}
	if err := t.client.Get(ctx, fmt.Sprintf("/api/trips/%d", id), ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func NewTrips(client *api.Client) *Trips {
	return &Trips{client: client}
}
