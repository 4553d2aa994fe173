package level

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel matches every ConfigurationError via errors.Is.
var ErrInvalidLevel = errors.New("invalid level")

// ConfigurationError reports a level definition that cannot be built.
// Field names the offending part of the definition, e.g. "hazards[2]".
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid level: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidLevel) match any configuration error.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidLevel
}

func configErr(field string, format string, args ...any) error {
	return &ConfigurationError{Field: field, Err: fmt.Errorf(format, args...)}
}
