package auth

import (
	"golang.org/x/oauth2/google"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

const googleProfileURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// NewGoogleProvider returns the Google login provider.
func NewGoogleProvider(appID string, api *apiclient.Client, cfg OAuthConfig, opts ...SocialOption) Provider {
	return newSocialProvider(ProviderGoogle, appID, api, cfg, google.Endpoint, googleProfileURL, normalizeGoogle, opts...)
}

func normalizeGoogle(raw map[string]any) (string, user.SocialDetails) {
	return str(raw, "sub"), user.SocialDetails{
		Email:          str(raw, "email"),
		FullName:       str(raw, "name"),
		ProfilePicture: str(raw, "picture"),
	}
}
