package storage

import "errors"

var (
	// ErrFailure indicates the underlying backend failed a read or write.
	ErrFailure = errors.New("storage operation failed")

	// ErrCorruptValue indicates a stored value could not be decoded.
	ErrCorruptValue = errors.New("stored value is corrupt")
)
