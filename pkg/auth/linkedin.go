package auth

import (
	"golang.org/x/oauth2/endpoints"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

const linkedInProfileURL = "https://api.linkedin.com/v2/userinfo"

// NewLinkedInProvider returns the LinkedIn login provider, using the
// OpenID Connect userinfo endpoint.
func NewLinkedInProvider(appID string, api *apiclient.Client, cfg OAuthConfig, opts ...SocialOption) Provider {
	return newSocialProvider(ProviderLinkedIn, appID, api, cfg, endpoints.LinkedIn, linkedInProfileURL, normalizeLinkedIn, opts...)
}

func normalizeLinkedIn(raw map[string]any) (string, user.SocialDetails) {
	return str(raw, "sub"), user.SocialDetails{
		Email:          str(raw, "email"),
		FullName:       str(raw, "name"),
		ProfilePicture: str(raw, "picture"),
	}
}
