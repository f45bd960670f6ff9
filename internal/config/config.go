// Package config provides configuration helpers for woundnative commands.
package config

import (
	"os"
)

// Defaults used when the environment is silent.
const (
	DefaultAddr     = ":8089"
	DefaultLogLevel = "info"
)

// Addr returns the diagnostics server address from PROBE_ADDR.
// Falls back to DefaultAddr if not set.
func Addr() string {
	if addr := os.Getenv("PROBE_ADDR"); addr != "" {
		return addr
	}
	return DefaultAddr
}

// LogLevel returns the log level from LOG_LEVEL or DefaultLogLevel.
func LogLevel() string {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return DefaultLogLevel
}

// Production reports whether GO_ENV is "production".
func Production() bool {
	return os.Getenv("GO_ENV") == "production"
}
