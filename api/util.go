package api

import (
	"net/http"
	"strings"
)

// clone copies req with its own header map; the body is shared since the
// request is sent exactly once.
func clone(r *http.Request) *http.Request {
	return r.Clone(r.Context())
}

func closeBody(r *http.Request) {
	if r.Body != nil {
		_ = r.Body.Close()
	}
}

func joinURL(baseURL, path string) string {
	if path == "" {
		return strings.TrimRight(baseURL, "/")
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
