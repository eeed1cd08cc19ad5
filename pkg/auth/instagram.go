package auth

import (
	"golang.org/x/oauth2/endpoints"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

const instagramProfileURL = "https://graph.instagram.com/me?fields=id,username"

// NewInstagramProvider returns the Instagram login provider. Instagram's
// basic display API exposes no email address, so the profile carries only
// the username.
func NewInstagramProvider(appID string, api *apiclient.Client, cfg OAuthConfig, opts ...SocialOption) Provider {
	return newSocialProvider(ProviderInstagram, appID, api, cfg, endpoints.Instagram, instagramProfileURL, normalizeInstagram, opts...)
}

func normalizeInstagram(raw map[string]any) (string, user.SocialDetails) {
	return str(raw, "id"), user.SocialDetails{
		Username: str(raw, "username"),
	}
}
