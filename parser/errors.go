package parser

import "fmt"

// ConfigError reports a misuse of the Parse entry point itself (as opposed
// to a syntax error in the source, which is always reported through the
// Builder's Error hook and never surfaces as a Go error).
type ConfigError struct {
	reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("parser: %s", e.reason)
}
