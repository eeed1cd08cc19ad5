package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile populates the configuration struct from a YAML settings file.
// Struct fields are mapped through `yaml` tags. Values already present in
// the struct are overwritten only by keys that appear in the file, so a
// file can be layered on top of env-provided defaults:
//
//	var cfg Config
//	_ = config.Load(&cfg)
//	if err := config.LoadFile("cloudkit.yaml", &cfg); err != nil { ... }
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}
