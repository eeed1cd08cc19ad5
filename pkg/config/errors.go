package config

import "errors"

var (
	// ErrParsingConfig is returned when values cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse configuration")

	// ErrReadingFile is returned when a settings file cannot be read.
	ErrReadingFile = errors.New("failed to read settings file")

	// ErrNilPointer is returned when a nil pointer is provided to a loader.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
