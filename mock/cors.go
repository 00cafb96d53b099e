package mock

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	allowOriginHeader      = "Access-Control-Allow-Origin"
	allowHeadersHeader     = "Access-Control-Allow-Headers"
	allowMethodsHeader     = "Access-Control-Allow-Methods"
	requestMethodHeader    = "Access-Control-Request-Method"
	allowCredentialsHeader = "Access-Control-Allow-Credentials"
	exposeHeadersHeader    = "Access-Control-Expose-Headers"
	maxAgeHeader           = "Access-Control-Max-Age"
	separator              = ", "
)

// Cors lets browser front ends served from another origin call the fake backend.
type Cors struct {
	AllowOrigins     []string `yaml:"allowOrigins,omitempty"`
	AllowHeaders     []string `yaml:"allowHeaders,omitempty"`
	ExposeHeaders    []string `yaml:"exposeHeaders,omitempty"`
	AllowCredentials bool     `yaml:"allowCredentials,omitempty"`
	MaxAge           int      `yaml:"maxAge,omitempty"`
}

// DefaultCors allows any origin to send JSON with a bearer credential.
func DefaultCors() *Cors {
	return &Cors{
		AllowOrigins:  []string{"*"},
		AllowHeaders:  []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        600,
	}
}

func (c *Cors) allowed(origin string) bool {
	for _, candidate := range c.AllowOrigins {
		if candidate == "*" || candidate == origin {
			return true
		}
	}
	return false
}

// Middleware sets CORS headers and answers preflight requests itself.
func (c *Cors) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !c.allowed(origin) {
			next.ServeHTTP(w, r)
			return
		}
		header := w.Header()
		header.Set(allowOriginHeader, origin)
		header.Add("Vary", "Origin")
		if c.AllowCredentials {
			header.Set(allowCredentialsHeader, strconv.FormatBool(true))
		}
		if len(c.ExposeHeaders) > 0 {
			header.Set(exposeHeadersHeader, strings.Join(c.ExposeHeaders, separator))
		}
		if r.Method != http.MethodOptions || r.Header.Get(requestMethodHeader) == "" {
			next.ServeHTTP(w, r)
			return
		}
		header.Set(allowMethodsHeader, r.Header.Get(requestMethodHeader))
		if len(c.AllowHeaders) > 0 {
			header.Set(allowHeadersHeader, strings.Join(c.AllowHeaders, separator))
		}
		if c.MaxAge > 0 {
			header.Set(maxAgeHeader, strconv.Itoa(c.MaxAge))
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
