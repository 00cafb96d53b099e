package mock

import "time"

// Option configures a DispatchService.
type Option func(s *DispatchService)

// WithSecret sets the HMAC secret used to sign tokens.
func WithSecret(secret []byte) Option {
	return func(s *DispatchService) {
		s.Secret = secret
	}
}

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *DispatchService) {
		s.TokenTTL = ttl
	}
}

// WithRegisterToken makes registration answer with {token,user} instead of {success,message}.
func WithRegisterToken() Option {
	return func(s *DispatchService) {
		s.RegisterIssuesToken = true
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *DispatchService) {
		s.now = now
	}
}

// WithCors enables CORS headers for browser front ends.
func WithCors(cors *Cors) Option {
	return func(s *DispatchService) {
		s.Cors = cors
	}
}
