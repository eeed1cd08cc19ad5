// Package cloudkit is a client SDK for the cloudkit backend: session token
// management with "remember me" semantics, a locally cached user record
// kept in sync with the remote identity store, and authentication through
// pluggable providers (email+password, custom exchange, and six social
// platforms).
//
// The Client type wires the subsystems together:
//
//	var cfg config.Config
//	config.MustLoad(&cfg)
//	kit := cloudkit.New(cfg,
//		cloudkit.WithBasicAuth(),
//		cloudkit.WithGoogleAuth(googleCfg),
//		cloudkit.WithDurableStrategy(redisStrategy),
//	)
//
//	u, err := kit.Auth().Login(ctx, auth.ProviderBasic, auth.BasicCredentials{
//		Email:    "user@example.com",
//		Password: "secret",
//	}, nil)
//
// Each subsystem is also usable on its own; see the pkg subdirectories.
package cloudkit
