package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

type basicProvider struct {
	api   *apiclient.Client
	appID string
}

// NewBasicProvider creates the email+password authentication method.
func NewBasicProvider(appID string, api *apiclient.Client) BasicProvider {
	return &basicProvider{api: api, appID: appID}
}

func (p *basicProvider) ID() string {
	return ProviderBasic
}

// Authenticate exchanges an email and password for a session token.
// A backend rejection surfaces as ErrInvalidCredentials regardless of the
// exact status to avoid leaking which field was wrong.
func (p *basicProvider) Authenticate(ctx context.Context, credentials any, opts *LoginOptions) (*ProviderResult, error) {
	creds, ok := credentials.(BasicCredentials)
	if !ok {
		return nil, ErrInvalidCredentialsType
	}

	body := struct {
		AppID    string `json:"app_id"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{p.appID, creds.Email, creds.Password}

	var resp sessionResponse
	if err := p.api.Post(ctx, "/auth/login", body, &resp); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, errors.Join(ErrInvalidCredentials, err)
		}
		return nil, err
	}

	return resp.result(), nil
}

// Signup registers a new account. It does not authenticate: the caller
// still logs in afterwards.
func (p *basicProvider) Signup(ctx context.Context, details user.Details) error {
	body := struct {
		AppID   string       `json:"app_id"`
		Details user.Details `json:"details"`
	}{p.appID, details}

	return p.api.Post(ctx, "/users", body, nil)
}

// RequestPasswordReset asks the backend to send a reset code to the email.
func (p *basicProvider) RequestPasswordReset(ctx context.Context, email string) error {
	body := struct {
		AppID string `json:"app_id"`
		Email string `json:"email"`
	}{p.appID, email}

	return p.api.Post(ctx, "/auth/password/reset", body, nil)
}

// ConfirmPasswordReset redeems a reset code for a new password.
func (p *basicProvider) ConfirmPasswordReset(ctx context.Context, code int, newPassword string) error {
	body := struct {
		AppID       string `json:"app_id"`
		Code        int    `json:"code"`
		NewPassword string `json:"new_password"`
	}{p.appID, code, newPassword}

	return p.api.Post(ctx, "/auth/password/confirm", body, nil)
}

var _ BasicProvider = (*basicProvider)(nil)
