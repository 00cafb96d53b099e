package service

import (
	"context"

	"github.com/medivac/portal/api"
)

const profilePath = "/api/patient/profile"

// Profiles reads and updates the signed-in patient's profile.
type Profiles struct {
	client *api.Client
}

func (p *Profiles) Get(ctx context.Context) (*Profile, error) {
	ret := &Profile{}
	if err := p.client.Get(ctx, profilePath, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (p *Profiles) Update(ctx context.Context, update *ProfileUpdate) (*Profile, error) {
	ret := &Profile{}
	if err := p.client.Put(ctx, profilePath, update, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func NewProfiles(client *api.Client) *Profiles {
	return &Profiles{client: client}
}
