package cloudkit_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cloudkit"
	"github.com/dmitrymomot/cloudkit/pkg/auth"
	"github.com/dmitrymomot/cloudkit/pkg/config"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

type staticProvider struct {
	result *auth.ProviderResult
}

func (p *staticProvider) ID() string { return "static" }

func (p *staticProvider) Authenticate(ctx context.Context, credentials any, opts *auth.LoginOptions) (*auth.ProviderResult, error) {
	return p.result, nil
}

func TestClientAccessors(t *testing.T) {
	kit := cloudkit.New(config.Config{AppID: "app1", APIBaseURL: "https://api.example.com"})

	t.Run("accessors return shared instances", func(t *testing.T) {
		assert.Same(t, kit.Emitter(), kit.Emitter())
		assert.Same(t, kit.Tokens(), kit.Tokens())
		assert.Same(t, kit.API(), kit.API())
		assert.Same(t, kit.Users(), kit.Users())
		assert.Same(t, kit.Auth(), kit.Auth())
		assert.Same(t, kit.User(), kit.Users().Current())
	})

	t.Run("config is preserved", func(t *testing.T) {
		assert.Equal(t, "app1", kit.Config().AppID)
		assert.Equal(t, "auth_app1", kit.Config().AuthLabel())
		assert.Equal(t, "user_app1", kit.Config().UserLabel())
	})
}

func TestClientLoginFlow(t *testing.T) {
	ctx := context.Background()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"uid":     "u1",
			"details": map[string]any{"email": "a@b.com"},
		})
	}))
	t.Cleanup(srv.Close)

	kit := cloudkit.New(config.Config{AppID: "app1", APIBaseURL: srv.URL},
		cloudkit.WithAuthProvider(&staticProvider{result: &auth.ProviderResult{
			Token:   "tok-1",
			UserID:  "u1",
			Details: user.Details{Email: "a@b.com"},
		}}),
	)

	ok, err := kit.Auth().IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	u, err := kit.Auth().Login(ctx, "static", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID())
	assert.Same(t, kit.User(), u)

	ok, err = kit.Auth().IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// API calls now carry the session token.
	require.NoError(t, kit.Users().Load(ctx))
	assert.Equal(t, "Bearer tok-1", gotAuth)

	kit.Auth().Logout(ctx)

	ok, err = kit.Auth().IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, kit.User().IsAnonymous())
}

func TestClientProviderRegistration(t *testing.T) {
	kit := cloudkit.New(config.Config{AppID: "app1", APIBaseURL: "https://api.example.com"},
		cloudkit.WithBasicAuth(),
		cloudkit.WithCustomAuth(),
		cloudkit.WithGithubAuth(auth.OAuthConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "https://cb"}),
	)

	for _, id := range []string{auth.ProviderBasic, auth.ProviderCustom, auth.ProviderGithub} {
		p, ok := kit.Auth().Provider(id)
		require.True(t, ok, id)
		assert.Equal(t, id, p.ID())
	}

	_, ok := kit.Auth().Provider(auth.ProviderTwitter)
	assert.False(t, ok)
}
