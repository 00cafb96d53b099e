// Package cli implements the portal command line: account commands
// (register, login, logout, whoami, save-credentials) and patient commands
// that go through the route guard before calling the backend.
package cli
