package auth

import (
	"context"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
)

type customProvider struct {
	api   *apiclient.Client
	appID string
}

// NewCustomProvider creates the application-defined token exchange method.
// Whatever the application puts in CustomCredentials is forwarded to the
// backend as-is; the backend owns its interpretation.
func NewCustomProvider(appID string, api *apiclient.Client) Provider {
	return &customProvider{api: api, appID: appID}
}

func (p *customProvider) ID() string {
	return ProviderCustom
}

func (p *customProvider) Authenticate(ctx context.Context, credentials any, opts *LoginOptions) (*ProviderResult, error) {
	creds, ok := credentials.(CustomCredentials)
	if !ok {
		return nil, ErrInvalidCredentialsType
	}

	body := struct {
		AppID       string         `json:"app_id"`
		Credentials map[string]any `json:"credentials"`
	}{p.appID, creds}

	var resp sessionResponse
	if err := p.api.Post(ctx, "/auth/custom", body, &resp); err != nil {
		return nil, err
	}

	return resp.result(), nil
}

var _ Provider = (*customProvider)(nil)
