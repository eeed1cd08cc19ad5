// Package user holds the canonical "current user": an in-memory record with
// profile details, social-identity bindings and a free-form data bag, a
// durable Context that persists it across restarts, and a single-user
// Service that keeps it synchronized with the remote identity store.
//
// The record is shared by reference. Clear resets it in place so every
// holder observes the transition to anonymous; Load applies remote state to
// the same instance instead of replacing it.
//
//	users := user.NewService(client, user.NewContext(store, "user_"+appID))
//
//	u := users.Current()            // restored from storage on first access
//	if u.IsAnonymous() { ... }
//
//	err := users.Load(ctx)          // refresh from the backend
//	err = users.Save(ctx)           // submit local changes
package user
