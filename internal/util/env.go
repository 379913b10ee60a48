// Package util provides utility functions for the Sunshine application.
package util

import (
	"log/slog"
	"os"
	"strings"
)

// ParseBoolEnv reads a boolean toggle such as SUNSHINE_DEBUG from the
// environment. It accepts true/1/yes/on and false/0/no/off in any
// case; an unset variable yields defaultValue, and an unrecognized
// value logs a warning and yields it too.
func ParseBoolEnv(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		slog.Warn("ParseBoolEnv: unrecognized boolean value, using default", "key", key, "value", val, "default", defaultValue)
		return defaultValue
	}
}
