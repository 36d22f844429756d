package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCondition indicates a platform condition with no platforms.
	ErrEmptyCondition = errors.New("platform condition requires at least one platform")

	// ErrUnknownDependencyType indicates an unrecognized dependency tag.
	ErrUnknownDependencyType = errors.New("unknown dependency type")
)

// DecodeError indicates a required manifest field is missing or has the
// wrong shape.
type DecodeError struct {
	Field string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("missing or invalid field %q", e.Field)
}
