// Package api implements the single configured transport used for every
// backend call of the portal.
//
// A Client is built once with a base address, default headers and a chain of
// request interceptors. Interceptors run on a clone of each outgoing request,
// so the credential is read from the session at send time instead of being
// kept as mutable client state:
//
//	sess := session.New()
//	client := api.New("http://localhost:8080",
//		api.WithInterceptors(api.BearerAuth(sess), api.RequestID()))
//	var profile service.Profile
//	err := client.Get(ctx, "/api/patient/profile", &profile)
//
// Every failure is reported as *Error with a closed Kind: validation,
// transport, http or decode. The client never retries, queues or deduplicates.
package api
