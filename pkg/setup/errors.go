package setup

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCommand indicates a step configured with no command tokens.
	ErrEmptyCommand = errors.New("command must not be empty")

	// ErrUnknownStepType indicates an unrecognized setup step tag.
	ErrUnknownStepType = errors.New("unknown setup step type")

	// ErrIncomplete indicates not all setup steps are satisfied.
	ErrIncomplete = errors.New("setup incomplete")
)

// DecodeError indicates a required step field is missing or has the
// wrong shape in the manifest dictionary.
type DecodeError struct {
	Field string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("missing or invalid field %q", e.Field)
}

// ConfigError indicates a step is configured with invalid values.
type ConfigError struct {
	Step string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration of step %q: %v", e.Step, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnfulfilledError reports an unmet precondition. Error returns the
// configured advice verbatim for the user to act on.
type UnfulfilledError struct {
	Advice string
}

func (e *UnfulfilledError) Error() string {
	return e.Advice
}
