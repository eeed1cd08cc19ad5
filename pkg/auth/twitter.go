package auth

import (
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

// twitterEndpoint is the OAuth 2.0 flow introduced with the v2 API.
var twitterEndpoint = oauth2.Endpoint{
	AuthURL:  "https://twitter.com/i/oauth2/authorize",
	TokenURL: "https://api.twitter.com/2/oauth2/token",
}

const twitterProfileURL = "https://api.twitter.com/2/users/me?user.fields=profile_image_url"

// NewTwitterProvider returns the Twitter login provider. The v2 API does
// not expose the account email, so the profile carries username and name
// only.
func NewTwitterProvider(appID string, api *apiclient.Client, cfg OAuthConfig, opts ...SocialOption) Provider {
	return newSocialProvider(ProviderTwitter, appID, api, cfg, twitterEndpoint, twitterProfileURL, normalizeTwitter, opts...)
}

func normalizeTwitter(raw map[string]any) (string, user.SocialDetails) {
	data := obj(raw, "data")
	return str(data, "id"), user.SocialDetails{
		Username:       str(data, "username"),
		FullName:       str(data, "name"),
		ProfilePicture: str(data, "profile_image_url"),
	}
}
