// Package mock provides an in-memory ambulance backend that speaks the same
// REST contract as the real dispatch service.
//
// It exists so the portal client can be exercised end to end without a real
// backend: tests start it with NewHTTPTestServer, and the portal-mock binary
// serves it locally. Any route can be replaced at runtime with Override to
// simulate backend variants or failures.
package mock
