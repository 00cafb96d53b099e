// Package route maps portal paths to pages and decides, from the presence of
// a stored credential alone, whether a page renders or redirects to login.
//
// Resolution is pure and synchronous: it never calls the backend and never
// inspects the credential. A server that later rejects the credential is
// handled by the caller through the error it receives, not here.
package route
