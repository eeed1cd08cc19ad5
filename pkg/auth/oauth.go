package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

// OAuthConfig holds the application's registration with a social provider.
type OAuthConfig struct {
	ClientID     string   `env:"CLIENT_ID,required"`
	ClientSecret string   `env:"CLIENT_SECRET,required"`
	RedirectURL  string   `env:"REDIRECT_URL,required"`
	Scopes       []string `env:"SCOPES" envSeparator:","`
}

// normalizeFunc maps a provider's raw profile payload to an external uid and
// the normalized snapshot stored on the user record.
type normalizeFunc func(raw map[string]any) (string, user.SocialDetails)

// socialProvider implements the shared OAuth flow: exchange the
// authorization code for a provider token, fetch the profile, then trade
// both to the backend for a session token.
type socialProvider struct {
	id         string
	conf       *oauth2.Config
	api        *apiclient.Client
	appID      string
	httpClient *http.Client
	profileURL string
	normalize  normalizeFunc
}

// SocialOption configures a social provider during construction.
type SocialOption func(*socialProvider)

// WithOAuthEndpoint overrides the provider's authorization and token URLs.
func WithOAuthEndpoint(ep oauth2.Endpoint) SocialOption {
	return func(p *socialProvider) { p.conf.Endpoint = ep }
}

// WithProfileURL overrides the URL the profile is fetched from.
func WithProfileURL(url string) SocialOption {
	return func(p *socialProvider) { p.profileURL = url }
}

// WithSocialHTTPClient replaces the HTTP client used for the provider's own
// endpoints (not the backend API).
func WithSocialHTTPClient(hc *http.Client) SocialOption {
	return func(p *socialProvider) {
		if hc != nil {
			p.httpClient = hc
		}
	}
}

func newSocialProvider(id, appID string, api *apiclient.Client, cfg OAuthConfig, ep oauth2.Endpoint, profileURL string, normalize normalizeFunc, opts ...SocialOption) *socialProvider {
	p := &socialProvider{
		id: id,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     ep,
		},
		api:        api,
		appID:      appID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		profileURL: profileURL,
		normalize:  normalize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *socialProvider) ID() string {
	return p.id
}

// AuthURL builds the authorization URL the application opens in the
// platform browser, along with the CSRF state baked into it. The caller
// verifies the state echoed back on the redirect before authenticating
// with the received code.
func (p *socialProvider) AuthURL() (url, state string) {
	state = uuid.NewString()
	return p.conf.AuthCodeURL(state), state
}

func (p *socialProvider) Authenticate(ctx context.Context, credentials any, opts *LoginOptions) (*ProviderResult, error) {
	creds, ok := credentials.(SocialCredentials)
	if !ok {
		return nil, ErrInvalidCredentialsType
	}

	tok, err := p.conf.Exchange(context.WithValue(ctx, oauth2.HTTPClient, p.httpClient), creds.Code)
	if err != nil {
		return nil, errors.Join(ErrInvalidCode, err)
	}

	uid, details, err := p.fetchProfile(ctx, tok)
	if err != nil {
		return nil, fmt.Errorf("fetch %s profile: %w", p.id, err)
	}

	body := struct {
		AppID       string `json:"app_id"`
		UID         string `json:"uid"`
		AccessToken string `json:"access_token"`
	}{p.appID, uid, tok.AccessToken}

	var resp sessionResponse
	if err := p.api.Post(ctx, "/auth/login/"+p.id, body, &resp); err != nil {
		return nil, err
	}

	res := resp.result()
	if res.Social == nil {
		res.Social = make(user.Social)
	}
	res.Social[p.id] = user.SocialProvider{UID: uid, Data: details}

	// Backfill details the backend did not populate from the provider
	// profile, so first-time social logins still get a usable record.
	if res.Details.Email == "" {
		res.Details.Email = details.Email
	}
	if res.Details.Username == "" {
		res.Details.Username = details.Username
	}
	if res.Details.Name == "" {
		res.Details.Name = details.FullName
	}
	if res.Details.Image == "" {
		res.Details.Image = details.ProfilePicture
	}

	return res, nil
}

func (p *socialProvider) fetchProfile(ctx context.Context, tok *oauth2.Token) (string, user.SocialDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.profileURL, nil)
	if err != nil {
		return "", user.SocialDetails{}, err
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", user.SocialDetails{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", user.SocialDetails{}, fmt.Errorf("%s api returned status %d", p.id, resp.StatusCode)
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", user.SocialDetails{}, err
	}

	uid, details := p.normalize(raw)
	details.Raw = raw
	return uid, details, nil
}

// str reads a string field from a decoded JSON object, tolerating absent or
// mistyped values.
func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// obj reads a nested JSON object field.
func obj(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	o, _ := m[key].(map[string]any)
	return o
}

var _ Provider = (*socialProvider)(nil)
