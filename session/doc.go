// Package session holds the single bearer credential of a portal client.
//
// A Session keeps the active token in memory and mirrors every change into a
// pluggable Store so the credential survives process restarts. The in-memory
// store is meant for tests; NewURLStore persists the token through afs, so any
// afs-supported location (local file, mem://, cloud storage) can back it.
//
// Presence of a token is the only notion of "authenticated" here; the backend
// remains the sole authority on whether the token is still valid.
package session
