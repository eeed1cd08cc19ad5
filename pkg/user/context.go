package user

import (
	"context"

	"github.com/dmitrymomot/cloudkit/pkg/storage"
)

// Context persists and restores one user record in durable storage. It is
// the only component that reads or writes the per-user slot.
type Context struct {
	storage *storage.Storage[StoredUser]
	label   string
}

// NewContext creates a user context writing under the given label,
// conventionally derived from the app id ("user_<app_id>").
func NewContext(st *storage.Storage[StoredUser], label string) *Context {
	return &Context{storage: st, label: label}
}

// Label returns the storage label this context writes under.
func (c *Context) Label() string {
	return c.label
}

// Load restores the previously stored record into template and returns the
// same instance, preserving identity for callers already holding it. When
// nothing is stored the template is left anonymous.
func (c *Context) Load(ctx context.Context, template *User) (*User, error) {
	stored, found, err := c.storage.Get(ctx, c.label)
	if err != nil {
		return template, err
	}
	if found {
		template.restore(stored)
	}
	return template, nil
}

// Store persists the record's storage form.
func (c *Context) Store(ctx context.Context, u *User) error {
	return c.storage.Set(ctx, c.label, u.SerializeForStorage())
}

// Unstore deletes the persisted record.
func (c *Context) Unstore(ctx context.Context) error {
	return c.storage.Delete(ctx, c.label)
}
