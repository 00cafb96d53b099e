// Package portal assembles the patient portal client: the credential
// session, the authenticated API client, the auth gateway, the patient
// service clients and the route guard.
//
// A Portal is built once per process from Options:
//
//	options, err := portal.LoadOptions(ctx, "config.yaml")
//	if err != nil {
//		return err
//	}
//	p, err := portal.New(ctx, options)
//	if err != nil {
//		return err
//	}
//	_, err = p.Auth.Login(ctx, &auth.LoginRequest{Email: email, Password: password})
//
// The stored credential is restored once by New; every later request carries
// it through the API client's bearer interceptor.
package portal
