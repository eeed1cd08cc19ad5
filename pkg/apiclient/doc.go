// Package apiclient is the JSON HTTP client the SDK uses to talk to the
// backend API. When a TokenSource is configured, every request carries the
// current session token as a bearer credential.
//
//	client := apiclient.New("https://api.cloudkit.dev",
//		apiclient.WithTokenSource(func(ctx context.Context) string {
//			tok, _ := tokens.Get(ctx)
//			return tok
//		}),
//	)
//
//	var resp loginResponse
//	err := client.Post(ctx, "/auth/login", loginRequest{...}, &resp)
package apiclient
