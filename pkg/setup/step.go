// Package setup models named setup requirements gating project generation.
// Each step can probe whether it is already satisfied and, when it is not,
// produce an actionable failure for the user.
package setup

import (
	"context"
	"fmt"
)

// Step is a named setup requirement.
type Step interface {
	// Name returns the identifying label of the step.
	Name() string
	// IsMet reports whether the requirement is already satisfied.
	// All probe failures are absorbed into a negative result.
	IsMet(ctx context.Context, projectDir string) bool
	// Meet attempts to satisfy the requirement.
	Meet(ctx context.Context, projectDir string) error
}

// Values of step type tags in manifest dictionaries.
const (
	StepTypeCustom  = "custom"
	StepTypeCommand = "command"
)

type stepDecoder func(dict map[string]interface{}, sys System) (Step, error)

var stepDecoders = map[string]stepDecoder{
	StepTypeCustom: func(dict map[string]interface{}, sys System) (Step, error) {
		return DecodePrecondition(dict, sys)
	},
	StepTypeCommand: func(dict map[string]interface{}, sys System) (Step, error) {
		return DecodeCommandStep(dict, sys)
	},
}

// DecodeStep constructs a Step from a tagged manifest dictionary.
// A nil sys selects the default ExecSystem.
func DecodeStep(dict map[string]interface{}, sys System) (Step, error) {
	tag, ok := dict["type"].(string)
	if !ok || tag == "" {
		return nil, &DecodeError{Field: "type"}
	}
	decode, ok := stepDecoders[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStepType, tag)
	}
	return decode(dict, sys)
}
