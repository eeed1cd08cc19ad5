package auth

import (
	"strconv"

	"golang.org/x/oauth2/github"

	"github.com/dmitrymomot/cloudkit/pkg/apiclient"
	"github.com/dmitrymomot/cloudkit/pkg/user"
)

const githubProfileURL = "https://api.github.com/user"

// NewGithubProvider returns the GitHub login provider.
func NewGithubProvider(appID string, api *apiclient.Client, cfg OAuthConfig, opts ...SocialOption) Provider {
	return newSocialProvider(ProviderGithub, appID, api, cfg, github.Endpoint, githubProfileURL, normalizeGithub, opts...)
}

func normalizeGithub(raw map[string]any) (string, user.SocialDetails) {
	// GitHub serves the account id as a JSON number.
	uid := ""
	if id, ok := raw["id"].(float64); ok {
		uid = strconv.FormatInt(int64(id), 10)
	}
	return uid, user.SocialDetails{
		Email:          str(raw, "email"),
		Username:       str(raw, "login"),
		FullName:       str(raw, "name"),
		ProfilePicture: str(raw, "avatar_url"),
	}
}
