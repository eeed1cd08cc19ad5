// Package config loads SDK configuration from environment variables and
// optional YAML settings files.
//
// The env loader is built on github.com/caarlos0/env and loads the default
// .env file (via github.com/joho/godotenv) once per process. The file loader
// layers a YAML document on top of whatever values the struct already holds,
// mirroring how applications register explicit settings at startup.
//
// # Usage
//
//	var cfg config.Config
//	config.MustLoad(&cfg)
//
//	// Optionally override from a checked-in settings file:
//	_ = config.LoadFile("cloudkit.yaml", &cfg)
//
//	label := cfg.AuthLabel() // "auth_<app_id>"
package config
