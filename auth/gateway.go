package auth

import (
	"context"
	"errors"

	"github.com/medivac/portal/api"
	"github.com/medivac/portal/session"
)

const (
	registerPath = "/api/auth/register"
	loginPath    = "/api/auth/login"
)

// Messages reported when the backend gives no explanation of its own.
const (
	RegisterFallback = "Registration failed. Please try again."
	LoginFallback    = "Login failed. Please try again."
	// InvalidLogin is reported when a login succeeds without a token.
	InvalidLogin = "Invalid login response"
)

// Gateway wraps the login and registration calls and owns the transitions
// between Unauthenticated and Authenticated.
type Gateway struct {
	client  *api.Client
	session *session.Session
}

// State reports the current state; a stored credential counts as Authenticated.
func (g *Gateway) State() State {
	if g.session.Authenticated() {
		return Authenticated
	}
	return Unauthenticated
}

// Register creates an account. It never signs the user in, even when the
// backend answers with a token.
func (g *Gateway) Register(ctx context.Context, request *RegisterRequest) (*RegisterResponse, error) {
	payload := *request
	if payload.Role == "" {
		payload.Role = DefaultRole
	}
	if err := ValidateRegistration(&payload); err != nil {
		return nil, err
	}
	ret := &RegisterResponse{}
	if err := g.client.Post(ctx, registerPath, &payload, ret); err != nil {
		return nil, normalize(err, RegisterFallback)
	}
	return ret, nil
}

// Login signs in and stores the returned token in the session before returning.
func (g *Gateway) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	if err := ValidateLogin(request); err != nil {
		return nil, err
	}
	ret := &LoginResponse{}
	if err := g.client.Post(ctx, loginPath, request, ret); err != nil {
		return nil, normalize(err, LoginFallback)
	}
	if ret.Token == "" {
		return nil, &api.Error{Kind: api.KindDecode, Message: InvalidLogin}
	}
	g.session.Set(ctx, ret.Token)
	return ret, nil
}

// Logout clears the session; calling it while signed out is a no-op.
func (g *Gateway) Logout(ctx context.Context) {
	g.session.Clear(ctx)
}

// normalize fills in fallback as the message of errors the backend did not explain.
func normalize(err error, fallback string) error {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return &api.Error{Kind: api.KindTransport, Message: fallback, Err: err}
	}
	if apiErr.Message != "" {
		return apiErr
	}
	normalized := *apiErr
	normalized.Message = fallback
	if normalized.Err == nil {
		normalized.Err = apiErr
	}
	return &normalized
}

// NewGateway creates a gateway storing credentials in sess.
func NewGateway(client *api.Client, sess *session.Session) *Gateway {
	return &Gateway{client: client, session: sess}
}
