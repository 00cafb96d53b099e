package route

import "net/http"

// Authenticator reports whether a credential is present.
type Authenticator interface {
	Authenticated() bool
}

// Decision is the outcome of resolving a path.
type Decision struct {
	// Path is the page to render or, when Redirect is set, where to go instead.
	Path     string
	Page     Page
	Params   map[string]string
	Redirect bool
	Replace  bool
	// Status is http.StatusOK, http.StatusFound or http.StatusNotFound.
	Status int
}

// NotFound reports whether no route matched.
func (d *Decision) NotFound() bool {
	return d.Status == http.StatusNotFound
}

// Param returns a path parameter, e.g. the trip id.
func (d *Decision) Param(name string) string {
	return d.Params[name]
}

// Guard gates protected pages on credential presence.
type Guard struct {
	auth    Authenticator
	matcher *matcher
}

// Resolve decides what to do with path. A protected page renders
// unconditionally when a credential is present, and redirects to login,
// replacing the history entry, when it is not.
func (g *Guard) Resolve(path string) *Decision {
	path = normalize(path)
	r, params := g.matcher.match(path)
	switch {
	case r == nil:
		return &Decision{Path: path, Status: http.StatusNotFound}
	case r.RedirectTo != "":
		return &Decision{Path: r.RedirectTo, Redirect: true, Replace: true, Status: http.StatusFound}
	case r.Protected && !g.auth.Authenticated():
		return &Decision{Path: Login, Page: PageLogin, Redirect: true, Replace: true, Status: http.StatusFound}
	}
	return &Decision{Path: path, Page: r.Page, Params: params, Status: http.StatusOK}
}

// Allowed reports whether page may render now.
func (g *Guard) Allowed(page Page) bool {
	for _, r := range g.matcher.routes {
		if r.Page == page && r.Protected {
			return g.auth.Authenticated()
		}
	}
	return true
}

func NewGuard(auth Authenticator) *Guard {
	return &Guard{auth: auth, matcher: newMatcher(Table())}
}
