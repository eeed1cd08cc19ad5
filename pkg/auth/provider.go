package auth

import (
	"context"

	"github.com/dmitrymomot/cloudkit/pkg/user"
)

// Provider identifiers registered by default. Social providers use their
// platform name.
const (
	ProviderBasic     = "basic"
	ProviderCustom    = "custom"
	ProviderFacebook  = "facebook"
	ProviderGithub    = "github"
	ProviderGoogle    = "google"
	ProviderInstagram = "instagram"
	ProviderLinkedIn  = "linkedin"
	ProviderTwitter   = "twitter"
)

// ProviderResult is the normalized outcome of a successful authentication
// exchange: the session token issued by the backend plus enough profile data
// to populate the current user.
type ProviderResult struct {
	Token   string
	UserID  string
	Details user.Details
	Social  user.Social
}

// Provider is one authentication method. Credentials are provider-specific
// (BasicCredentials, CustomCredentials, SocialCredentials); a provider
// rejects a mismatched type with ErrInvalidCredentialsType.
type Provider interface {
	ID() string
	Authenticate(ctx context.Context, credentials any, opts *LoginOptions) (*ProviderResult, error)
}

// BasicProvider extends the common capability with account management
// operations only the password-based method supports.
type BasicProvider interface {
	Provider

	Signup(ctx context.Context, details user.Details) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, code int, newPassword string) error
}

// BasicCredentials is an email and password pair.
type BasicCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CustomCredentials is an opaque application-defined payload forwarded to
// the backend's custom authentication endpoint unmodified.
type CustomCredentials map[string]any

// SocialCredentials carries the authorization code produced by the external
// browser flow of a social provider.
type SocialCredentials struct {
	Code string `json:"code"`
}

// LoginOptions tunes a login attempt. A nil *LoginOptions means "remember
// the session": the token goes to the permanent tier. Pass an explicit
// &LoginOptions{Remember: false} for a session-only login.
type LoginOptions struct {
	Remember bool
}
