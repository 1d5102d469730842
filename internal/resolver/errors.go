package resolver

import (
	"errors"
	"fmt"
)

// ConfigurationError reports static misconfiguration detectable without
// contacting any remote system: dangling permission-set references, duplicate
// names, malformed account records. It always aborts the whole resolution;
// there is no partial output.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err is, or wraps, a ConfigurationError.
func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}
