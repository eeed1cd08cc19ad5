package user

import (
	"context"
	"maps"
	"sync"
)

// Details is the provider-facing profile of a user. It is the only part of
// the record submitted back to the API on save.
type Details struct {
	Email    string         `json:"email,omitempty"`
	Username string         `json:"username,omitempty"`
	Password string         `json:"password,omitempty"`
	Name     string         `json:"name,omitempty"`
	Image    string         `json:"image,omitempty"`
	Custom   map[string]any `json:"custom,omitempty"`
}

// SocialDetails is the normalized profile snapshot captured from a social
// login provider.
type SocialDetails struct {
	Email          string         `json:"email,omitempty"`
	Username       string         `json:"username,omitempty"`
	FullName       string         `json:"full_name,omitempty"`
	ProfilePicture string         `json:"profile_picture,omitempty"`
	Raw            map[string]any `json:"raw_data,omitempty"`
}

// SocialProvider binds the user to one external identity.
type SocialProvider struct {
	UID  string        `json:"uid"`
	Data SocialDetails `json:"data"`
}

// Social holds the user's external-identity bindings keyed by provider name.
type Social map[string]SocialProvider

// StoredUser is the storage-form serialization of a user record.
type StoredUser struct {
	ID      string         `json:"id"`
	Data    map[string]any `json:"data"`
	Details Details        `json:"details"`
	Social  Social         `json:"social"`
	Fresh   bool           `json:"fresh"`
}

// User is the in-memory representation of the authenticated identity. A
// record with an empty id is anonymous. All methods are safe for concurrent
// use; the instance is shared by reference and never copied.
type User struct {
	mu      sync.RWMutex
	id      string
	fresh   bool
	details Details
	social  Social
	data    map[string]any

	// Back-reference set by the owning Service; nil for detached records.
	service *Service
}

// New creates an anonymous, fresh user record.
func New() *User {
	return &User{
		fresh:  true,
		social: make(Social),
		data:   make(map[string]any),
	}
}

// ID returns the user identifier; empty for anonymous records.
func (u *User) ID() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.id
}

// SetID assigns the user identifier.
func (u *User) SetID(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.id = id
}

// IsAnonymous reports whether the record has no identity.
func (u *User) IsAnonymous() bool {
	return u.ID() == ""
}

// Fresh reports whether the record has not yet been confirmed to exist on
// the backend.
func (u *User) Fresh() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.fresh
}

// SetFresh marks whether the record is confirmed remotely.
func (u *User) SetFresh(fresh bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.fresh = fresh
}

// Details returns a copy of the profile details.
func (u *User) Details() Details {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.details
}

// SetDetails replaces the profile details.
func (u *User) SetDetails(d Details) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.details = d
}

// Social returns a copy of the external-identity bindings.
func (u *User) Social() Social {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make(Social, len(u.social))
	maps.Copy(out, u.social)
	return out
}

// SetSocialProvider records the binding for one provider.
func (u *User) SetSocialProvider(name string, p SocialProvider) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.social[name] = p
}

// Get reads a value from the data bag, falling back to def when the key is
// absent.
func (u *User) Get(key string, def any) any {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if v, ok := u.data[key]; ok {
		return v
	}
	return def
}

// Set writes a value into the data bag.
func (u *User) Set(key string, value any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.data[key] = value
}

// Unset removes a key from the data bag.
func (u *User) Unset(key string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.data, key)
}

// Clear resets the record to anonymous in place. Callers holding the
// reference observe the reset; the instance identity never changes.
func (u *User) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.id = ""
	u.fresh = true
	u.details = Details{}
	u.social = make(Social)
	u.data = make(map[string]any)
}

// SerializeForAPI returns the API-submission view of the record: details
// only.
func (u *User) SerializeForAPI() Details {
	return u.Details()
}

// SerializeForStorage returns the storage-form view of the record.
func (u *User) SerializeForStorage() StoredUser {
	u.mu.RLock()
	defer u.mu.RUnlock()

	data := make(map[string]any, len(u.data))
	maps.Copy(data, u.data)
	social := make(Social, len(u.social))
	maps.Copy(social, u.social)

	return StoredUser{
		ID:      u.id,
		Data:    data,
		Details: u.details,
		Social:  social,
		Fresh:   u.fresh,
	}
}

// restore overwrites record state from its storage form.
func (u *User) restore(stored StoredUser) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.id = stored.ID
	u.fresh = stored.Fresh
	u.details = stored.Details

	u.social = make(Social, len(stored.Social))
	maps.Copy(u.social, stored.Social)
	u.data = make(map[string]any, len(stored.Data))
	maps.Copy(u.data, stored.Data)
}

// Store persists the record through the owning service.
func (u *User) Store(ctx context.Context) error {
	if u.service == nil {
		return ErrNotManaged
	}
	return u.service.Store(ctx)
}

// Unstore evicts the persisted record through the owning service.
func (u *User) Unstore(ctx context.Context) error {
	if u.service == nil {
		return ErrNotManaged
	}
	return u.service.Unstore(ctx)
}

// Save submits the record to the backend through the owning service.
func (u *User) Save(ctx context.Context) error {
	if u.service == nil {
		return ErrNotManaged
	}
	return u.service.Save(ctx)
}

// Delete removes the record remotely and locally through the owning service.
func (u *User) Delete(ctx context.Context) error {
	if u.service == nil {
		return ErrNotManaged
	}
	return u.service.Delete(ctx)
}
