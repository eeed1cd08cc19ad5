package auth

import "errors"

// Controller-level errors
var (
	ErrUnknownProvider      = errors.New("unknown auth provider")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrLoginInProgress      = errors.New("another login is already in progress")
)

// Provider-level errors
var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidCredentialsType = errors.New("credentials type does not match provider")
	ErrInvalidCode            = errors.New("invalid authorization code")
)
