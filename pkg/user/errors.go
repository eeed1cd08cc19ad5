package user

import "errors"

var (
	// ErrNoCurrentUser is returned when a remote operation needs an
	// authenticated identity but the cache is still anonymous.
	ErrNoCurrentUser = errors.New("no current user")

	// ErrNotManaged is returned when a detached record (not owned by a
	// Service) is asked to persist or sync itself.
	ErrNotManaged = errors.New("user record is not managed by a service")
)
