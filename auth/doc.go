// Package auth implements the login, registration and logout flows of the portal.
//
// Gateway is a two-state machine (Unauthenticated, Authenticated) whose state
// lives entirely in the session: a successful Login writes the returned token
// into the session before returning, Logout clears it unconditionally, and
// Register never changes state. Input is validated locally first so invalid
// forms fail with a validation error without touching the network.
package auth
