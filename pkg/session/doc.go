// Package session persists the opaque session token issued by the backend.
//
// TokenContext is a single labeled storage slot. CombinedTokenContext
// composes a permanent and a temporary slot into "remember me" semantics:
// writing one tier clears the other, reads prefer the permanent tier, and
// delete clears both. Storage failures propagate unchanged; this layer
// performs no retries.
//
//	durable := storage.New[string](redisStrategy)
//	ephemeral := storage.New[string](storage.NewMemoryStrategy())
//	label := cfg.AuthLabel()
//
//	tokens := session.NewCombinedTokenContext(
//		session.NewTokenContext(durable, label),
//		session.NewTokenContext(ephemeral, label),
//	)
//
//	_ = tokens.Store(ctx, "tok", session.Temporary()) // session-only login
package session
