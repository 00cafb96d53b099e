package api

import (
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Headers set by the built-in interceptors.
const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
)

// Interceptor mutates an outgoing request before it is sent.
type Interceptor func(req *http.Request) error

// BearerAuth attaches the current credential of source; when source holds
// none, the request leaves without an Authorization header.
func BearerAuth(source oauth2.TokenSource) Interceptor {
	return func(req *http.Request) error {
		req.Header.Del(HeaderAuthorization)
		token, err := source.Token()
		if err != nil || token == nil || token.AccessToken == "" {
			return nil
		}
		token.SetAuthHeader(req)
		return nil
	}
}

// RequestID tags each request with a fresh X-Request-ID.
func RequestID() Interceptor {
	return func(req *http.Request) error {
		if req.Header.Get(HeaderRequestID) == "" {
			req.Header.Set(HeaderRequestID, uuid.NewString())
		}
		return nil
	}
}

// Header sets a static header unless the request already has one.
func Header(name, value string) Interceptor {
	return func(req *http.Request) error {
		if req.Header.Get(name) == "" {
			req.Header.Set(name, value)
		}
		return nil
	}
}

// Transport is an http.RoundTripper applying interceptors to a clone of each request.
type Transport struct {
	interceptors []Interceptor
	transport    http.RoundTripper
}

// NewTransport wraps base (http.DefaultTransport when nil).
func NewTransport(base http.RoundTripper, interceptors ...Interceptor) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{transport: base, interceptors: interceptors}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := clone(req)
	for _, intercept := range t.interceptors {
		if err := intercept(cloned); err != nil {
			closeBody(req)
			return nil, err
		}
	}
	return t.transport.RoundTrip(cloned)
}
