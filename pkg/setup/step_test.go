package setup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStepDispatch(t *testing.T) {
	step, err := DecodeStep(map[string]interface{}{
		"type":   StepTypeCustom,
		"name":   "git",
		"advice": "install git",
		"is_met": []interface{}{"git"},
	}, &fakeSystem{})
	require.NoError(t, err)
	assert.IsType(t, &Precondition{}, step)

	step, err = DecodeStep(map[string]interface{}{
		"type": StepTypeCommand,
		"name": "fetch",
		"meet": []interface{}{"git", "fetch"},
	}, &fakeSystem{})
	require.NoError(t, err)
	assert.IsType(t, &CommandStep{}, step)
}

func TestDecodeStepUnknownType(t *testing.T) {
	_, err := DecodeStep(map[string]interface{}{"type": "homebrew"}, nil)
	assert.ErrorIs(t, err, ErrUnknownStepType)
}

func TestDecodeStepMissingType(t *testing.T) {
	_, err := DecodeStep(map[string]interface{}{"name": "git"}, nil)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "type", decodeErr.Field)
}

// stubStep scripts Step behavior for runner tests.
type stubStep struct {
	name     string
	met      bool
	meetErr  error
	metCalls int
	meets    int
}

func (s *stubStep) Name() string { return s.name }

func (s *stubStep) IsMet(ctx context.Context, projectDir string) bool {
	s.metCalls++
	return s.met
}

func (s *stubStep) Meet(ctx context.Context, projectDir string) error {
	s.meets++
	return s.meetErr
}

func TestRunnerSequencesInOrder(t *testing.T) {
	met := &stubStep{name: "a", met: true}
	unmet := &stubStep{name: "b", meetErr: &UnfulfilledError{Advice: "do b"}}
	fixed := &stubStep{name: "c"}
	runner := Runner{Steps: []Step{met, unmet, fixed}}

	statuses := runner.Run(context.Background(), "/work")
	require.Len(t, statuses, 3)

	assert.True(t, statuses[0].Met)
	assert.True(t, statuses[0].Satisfied())
	assert.Zero(t, met.meets, "met step must not be remediated")

	assert.False(t, statuses[1].Met)
	assert.False(t, statuses[1].Satisfied())
	assert.EqualError(t, statuses[1].Err, "do b")

	assert.False(t, statuses[2].Met)
	assert.True(t, statuses[2].Remediated)
	assert.True(t, statuses[2].Satisfied())

	assert.Equal(t, 1, Unsatisfied(statuses))
}

func TestRunnerCheckOnlySkipsMeet(t *testing.T) {
	unmet := &stubStep{name: "b", meetErr: &UnfulfilledError{Advice: "do b"}}
	runner := Runner{Steps: []Step{unmet}, CheckOnly: true}

	statuses := runner.Run(context.Background(), "/work")
	require.Len(t, statuses, 1)
	assert.Zero(t, unmet.meets)
	assert.NoError(t, statuses[0].Err)
	assert.False(t, statuses[0].Satisfied())
	assert.Equal(t, 1, Unsatisfied(statuses))
}
