package auth

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/medivac/portal/api"
	"github.com/medivac/portal/mock"
	"github.com/medivac/portal/service"
	"github.com/medivac/portal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	server  *mock.HTTPTestDispatchServer
	session *session.Session
	client  *api.Client
	gateway *Gateway
}

func newFixture(t *testing.T, options ...mock.Option) *fixture {
	t.Helper()
	srv, err := mock.NewHTTPTestServer(options...)
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	sess := session.New()
	client := api.New(srv.URL, api.WithInterceptors(api.BearerAuth(sess)))
	return &fixture{server: srv, session: sess, client: client, gateway: NewGateway(client, sess)}
}

func validRegistration() *RegisterRequest {
	return &RegisterRequest{
		Name:            "Jane Doe",
		Email:           "jane@x.io",
		Phone:           "+1 (555) 123-4567",
		Password:        "Secret1!x",
		ConfirmPassword: "Secret1!x",
	}
}

func TestGateway_LoginStoresToken(t *testing.T) {
	f := newFixture(t)
	f.server.Override(mock.RouteLogin, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc123"}`))
	})
	var authorization atomic.Value
	f.server.Override(mock.RouteListBookings, func(w http.ResponseWriter, r *http.Request) {
		authorization.Store(r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})

	assert.Equal(t, Unauthenticated, f.gateway.State())
	response, err := f.gateway.Login(context.Background(), &LoginRequest{Email: "jane@x.io", Password: "whatever"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", response.Token)
	assert.Equal(t, "abc123", f.session.Get())
	assert.Equal(t, Authenticated, f.gateway.State())

	// the mock validates JWTs, so bookings is overridden to accept the opaque token
	_, err = service.NewBookings(f.client).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", authorization.Load())
}

func TestGateway_LoginWithoutToken(t *testing.T) {
	f := newFixture(t)
	f.server.Override(mock.RouteLogin, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Login successful"}`))
	})
	_, err := f.gateway.Login(context.Background(), &LoginRequest{Email: "jane@x.io", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, InvalidLogin, err.Error())
	assert.Equal(t, Unauthenticated, f.gateway.State())
}

func TestGateway_LoginAgainstBackend(t *testing.T) {
	f := newFixture(t)
	_, err := f.server.AddUser("Jane", "jane@x.io", "5551234567", "Secret1!x", "")
	require.NoError(t, err)

	_, err = f.gateway.Login(context.Background(), &LoginRequest{Email: "jane@x.io", Password: "Wrong1!xx"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, api.StatusCode(err))
	assert.Equal(t, "invalid email or password", api.Message(err, LoginFallback))
	assert.Equal(t, Unauthenticated, f.gateway.State())

	_, err = f.gateway.Login(context.Background(), &LoginRequest{Email: "jane@x.io", Password: "Secret1!x"})
	require.NoError(t, err)
	profile, err := service.NewProfiles(f.client).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jane@x.io", profile.Email)

	claims, err := InspectToken(f.session.Get())
	require.NoError(t, err)
	assert.Equal(t, "jane@x.io", claims.Email)
	assert.Equal(t, DefaultRole, claims.Role)
}

func TestGateway_ValidationBeforeNetwork(t *testing.T) {
	f := newFixture(t)
	var calls atomic.Int32
	count := func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}
	f.server.Override(mock.RouteLogin, count)
	f.server.Override(mock.RouteRegister, count)

	_, err := f.gateway.Login(context.Background(), &LoginRequest{Email: "not-an-email", Password: ""})
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindValidation))

	request := validRegistration()
	request.ConfirmPassword = "Other1!xx"
	_, err = f.gateway.Register(context.Background(), request)
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindValidation))
	assert.Equal(t, int32(0), calls.Load())
}

func TestGateway_RegisterKeepsState(t *testing.T) {
	testCases := []struct {
		description string
		options     []mock.Option
		hasToken    bool
	}{
		{description: "success variant"},
		{description: "token variant", options: []mock.Option{mock.WithRegisterToken()}, hasToken: true},
	}
	for _, tc := range testCases {
		f := newFixture(t, tc.options...)
		request := validRegistration()
		response, err := f.gateway.Register(context.Background(), request)
		require.NoError(t, err, tc.description)
		assert.Empty(t, request.Role, tc.description)
		assert.Equal(t, tc.hasToken, response.Token != "", tc.description)
		if tc.hasToken {
			require.NotNil(t, response.User, tc.description)
			assert.Equal(t, DefaultRole, response.User.Role, tc.description)
		} else {
			assert.True(t, response.Success, tc.description)
		}
		assert.Equal(t, Unauthenticated, f.gateway.State(), tc.description)
		assert.Empty(t, f.session.Get(), tc.description)
	}
}

func TestGateway_RegisterDuplicate(t *testing.T) {
	f := newFixture(t)
	_, err := f.gateway.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	_, err = f.gateway.Register(context.Background(), validRegistration())
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, api.StatusCode(err))
	assert.Equal(t, "email already registered", err.Error())
}

func TestGateway_FallbackMessages(t *testing.T) {
	f := newFixture(t)
	f.server.Override(mock.RouteLogin, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	f.server.Override(mock.RouteRegister, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := f.gateway.Login(context.Background(), &LoginRequest{Email: "jane@x.io", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, LoginFallback, err.Error())
	assert.Equal(t, http.StatusBadGateway, api.StatusCode(err))

	_, err = f.gateway.Register(context.Background(), validRegistration())
	require.Error(t, err)
	assert.Equal(t, RegisterFallback, err.Error())

	f.server.Close()
	_, err = f.gateway.Login(context.Background(), &LoginRequest{Email: "jane@x.io", Password: "x"})
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindTransport))
	assert.Equal(t, LoginFallback, err.Error())
}

func TestGateway_Logout(t *testing.T) {
	f := newFixture(t)
	f.gateway.Logout(context.Background())
	assert.Equal(t, Unauthenticated, f.gateway.State())

	f.session.Set(context.Background(), "abc123")
	assert.Equal(t, Authenticated, f.gateway.State())
	f.gateway.Logout(context.Background())
	f.gateway.Logout(context.Background())
	assert.Equal(t, Unauthenticated, f.gateway.State())
	assert.Empty(t, f.session.Get())
}
