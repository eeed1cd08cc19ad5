package auth

import (
	"golang.org/x/oauth2/endpoints"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

const facebookProfileURL = "https://graph.facebook.com/v19.0/me?fields=id,name,email,picture"

// NewFacebookProvider returns the Facebook login provider.
func NewFacebookProvider(appID string, api *apiclient.Client, cfg OAuthConfig, opts ...SocialOption) Provider {
	return newSocialProvider(ProviderFacebook, appID, api, cfg, endpoints.Facebook, facebookProfileURL, normalizeFacebook, opts...)
}

func normalizeFacebook(raw map[string]any) (string, user.SocialDetails) {
	return str(raw, "id"), user.SocialDetails{
		Email:          str(raw, "email"),
		FullName:       str(raw, "name"),
		ProfilePicture: str(obj(obj(raw, "picture"), "data"), "url"),
	}
}
