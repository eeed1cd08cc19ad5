package auth

import "github.com/dmitrymomot/cloudkit/pkg/user"

// sessionResponse is the backend's answer to every authentication exchange:
// the issued session token and the canonical user it belongs to.
type sessionResponse struct {
	Token string `json:"token"`
	User  struct {
		UID     string       `json:"uid"`
		Details user.Details `json:"details"`
		Social  user.Social  `json:"social"`
	} `json:"user"`
}

func (r sessionResponse) result() *ProviderResult {
	return &ProviderResult{
		Token:   r.Token,
		UserID:  r.User.UID,
		Details: r.User.Details,
		Social:  r.User.Social,
	}
}
