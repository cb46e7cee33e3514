package config

import "fmt"

// ConfigError reports a missing or malformed structure/ship definition.
// It is fatal at startup: the engine refuses to run with an incomplete catalog.
type ConfigError struct {
	File   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("config: %s", e.Reason)
	}
	return fmt.Sprintf("config %s: %s", e.File, e.Reason)
}

func configErrf(file, format string, args ...any) *ConfigError {
	return &ConfigError{File: file, Reason: fmt.Sprintf(format, args...)}
}
