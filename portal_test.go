package portal

import (
	"context"
	"net/http"
	"testing"

	"github.com/medivac/portal/api"
	"github.com/medivac/portal/auth"
	"github.com/medivac/portal/mock"
	"github.com/medivac/portal/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortal_Lifecycle(t *testing.T) {
	ctx := context.Background()
	srv, err := mock.NewHTTPTestServer()
	require.NoError(t, err)
	defer srv.Close()
	require.NoError(t, srv.SeedDemo())

	var userAgent string
	options := &Options{BaseURL: srv.URL, SessionURL: "mem://localhost/portal/lifecycle.json", UserAgent: "portal-test"}
	p, err := New(ctx, options)
	require.NoError(t, err)
	assert.Equal(t, auth.Unauthenticated, p.Auth.State())
	assert.Equal(t, route.PageLogin, p.Navigator.Push(route.Bookings).Page)
	assert.Equal(t, route.Login, p.Navigator.Current())

	_, err = p.Dashboard(ctx)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, api.StatusCode(err))

	_, err = p.Auth.Login(ctx, &auth.LoginRequest{Email: mock.DemoEmail, Password: mock.DemoPassword})
	require.NoError(t, err)
	dashboard, err := p.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, mock.DemoName, dashboard.Profile.Name)
	assert.Len(t, dashboard.Pending, 1)

	srv.Override(mock.RouteTripHistory, func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[]`))
	})
	_, err = p.Patient.Trips.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, "portal-test", userAgent)

	restored, err := New(ctx, &Options{BaseURL: srv.URL, SessionURL: options.SessionURL})
	require.NoError(t, err)
	assert.Equal(t, auth.Authenticated, restored.Auth.State())
	profile, err := restored.Patient.Profiles.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, mock.DemoEmail, profile.Email)

	restored.Auth.Logout(ctx)
	again, err := New(ctx, &Options{BaseURL: srv.URL, SessionURL: options.SessionURL})
	require.NoError(t, err)
	assert.Equal(t, auth.Unauthenticated, again.Auth.State())
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(context.Background(), &Options{BaseURL: "localhost", SessionURL: MemorySession})
	assert.Error(t, err)
}
