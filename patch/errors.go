package patch

import "fmt"

// ConfigurationError reports an invalid combination of image size, patch size and stride.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

func configurationErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// NewConfigurationError creates a ConfigurationError for callers validating their own geometry.
func NewConfigurationError(format string, args ...interface{}) error {
	return configurationErrorf(format, args...)
}
