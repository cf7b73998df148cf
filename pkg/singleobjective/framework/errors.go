package framework

import "fmt"

// ConfigurationError reports an invalid parameter. It is always surfaced
// before any generation has run.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}
