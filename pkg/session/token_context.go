package session

import (
	"context"

	"github.com/dmitrymomot/cloudkit/pkg/storage"
)

// TokenContext owns one storage slot holding an opaque session token.
// The label isolates applications sharing the same device storage and is
// conventionally derived from the app id ("auth_<app_id>").
//
// Token contents are passed through unmodified; validation and expiry
// belong to the backend.
type TokenContext struct {
	storage *storage.Storage[string]
	label   string
}

// NewTokenContext creates a token context writing under the given label.
func NewTokenContext(st *storage.Storage[string], label string) *TokenContext {
	return &TokenContext{storage: st, label: label}
}

// Label returns the storage label this context writes under.
func (c *TokenContext) Label() string {
	return c.label
}

// Get returns the stored token, or an empty string when no token is stored.
func (c *TokenContext) Get(ctx context.Context) (string, error) {
	token, _, err := c.storage.Get(ctx, c.label)
	return token, err
}

// Store persists the token, replacing any previous value.
func (c *TokenContext) Store(ctx context.Context, token string) error {
	return c.storage.Set(ctx, c.label, token)
}

// Delete removes the stored token. Deleting an empty slot is not an error.
func (c *TokenContext) Delete(ctx context.Context) error {
	return c.storage.Delete(ctx, c.label)
}
