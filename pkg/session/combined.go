package session

import (
	"context"
	"errors"
	"sync"
)

// CombinedTokenContext composes a permanent and a temporary token slot to
// implement "remember me" semantics. At most one tier holds a token at a
// time: storing into one tier clears the other, so a remembered session and
// a one-time session can never coexist for the same label.
type CombinedTokenContext struct {
	mu        sync.Mutex
	permanent *TokenContext
	temporary *TokenContext
}

// NewCombinedTokenContext composes the two tiers. The permanent context must
// be backed by durable storage, the temporary one by process-scoped storage.
func NewCombinedTokenContext(permanent, temporary *TokenContext) *CombinedTokenContext {
	return &CombinedTokenContext{permanent: permanent, temporary: temporary}
}

// StoreOption configures a Store call.
type StoreOption func(*storeSettings)

type storeSettings struct {
	permanent bool
}

// Temporary stores the token in the session-scoped tier instead of the
// default permanent tier.
func Temporary() StoreOption {
	return func(s *storeSettings) { s.permanent = false }
}

// Store writes the token to one tier and clears the other. Permanent is the
// default: a caller that does not choose a tier gets a remembered session.
// The pair of writes is a single logical unit; concurrent callers never
// observe a half-updated tier pair through this context.
func (c *CombinedTokenContext) Store(ctx context.Context, token string, opts ...StoreOption) error {
	settings := storeSettings{permanent: true}
	for _, opt := range opts {
		opt(&settings)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if settings.permanent {
		if err := c.permanent.Store(ctx, token); err != nil {
			return err
		}
		return c.temporary.Delete(ctx)
	}

	if err := c.temporary.Store(ctx, token); err != nil {
		return err
	}
	return c.permanent.Delete(ctx)
}

// Get returns the active token. The permanent tier wins: a remembered
// session always takes precedence over a one-time session.
func (c *CombinedTokenContext) Get(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	token, err := c.permanent.Get(ctx)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}
	return c.temporary.Get(ctx)
}

// Delete clears both tiers unconditionally so logout can never leave a
// stale token behind. Both deletes are attempted even when the first fails.
func (c *CombinedTokenContext) Delete(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return errors.Join(
		c.permanent.Delete(ctx),
		c.temporary.Delete(ctx),
	)
}
