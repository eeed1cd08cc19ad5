// Package auth provides client-side authentication against the cloudkit
// backend: a controller that dispatches login attempts to pluggable
// providers, stores the issued session token, and keeps the current user in
// sync across login and logout.
//
// # Providers
//
// Every authentication method implements Provider. Three families ship with
// the package:
//
//   - basic: email and password, plus account management (signup, password
//     reset) through the BasicProvider interface
//   - custom: an opaque application-defined credential payload the backend
//     interprets on its own
//   - social: facebook, github, google, instagram, linkedin and twitter via
//     the OAuth 2.0 authorization-code flow
//
// Social providers additionally implement SocialAuthenticator: AuthURL
// produces the browser URL and the CSRF state for the external leg of the
// flow, and Authenticate then redeems the authorization code.
//
// # Controller
//
// Service wires the providers to the session and user layers:
//
//	authSvc := auth.NewService(tokens, users, events,
//		auth.WithProvider(auth.NewBasicProvider(appID, api)),
//		auth.WithProvider(auth.NewGoogleProvider(appID, api, googleCfg)),
//	)
//
//	u, err := authSvc.Login(ctx, auth.ProviderBasic, auth.BasicCredentials{
//		Email:    "user@example.com",
//		Password: "secret",
//	}, nil)
//
// A nil *LoginOptions remembers the session across restarts; pass
// &LoginOptions{Remember: false} for a session-only login. One login runs
// at a time; a concurrent attempt fails with ErrLoginInProgress. Logout is
// local, idempotent and never fails.
//
// Lifecycle transitions are published on the emitter under the Event*
// names, so application code can react to logins and logouts without
// polling.
package auth
