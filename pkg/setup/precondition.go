package setup

import (
	"context"
	"errors"
	"os/exec"

	"github.com/easeway/langx.go/mapper"
	"github.com/sirupsen/logrus"
)

// checkState is the internal outcome of a probe. It distinguishes a probe
// that ran and failed from a probe that could not run at all; the public
// boundary collapses both to "not met".
type checkState int

const (
	checkMet checkState = iota
	checkNotMet
	checkFailed
)

type checkOutcome struct {
	state  checkState
	reason error
}

// Precondition is a setup requirement probed by running an external command.
// It never remediates anything itself; Meet only reports the configured
// advice for the user to act on.
type Precondition struct {
	name   string
	advice string
	isMet  []string

	sys System
	log *logrus.Entry
}

// NewPrecondition creates a Precondition. The isMet command must be
// non-empty: the first token is the probe executable, the rest its
// arguments. A nil sys selects the default ExecSystem.
func NewPrecondition(name, advice string, isMet []string, sys System) (*Precondition, error) {
	if len(isMet) == 0 {
		return nil, &ConfigError{Step: name, Err: ErrEmptyCommand}
	}
	if sys == nil {
		sys = ExecSystem{}
	}
	command := make([]string, len(isMet))
	copy(command, isMet)
	return &Precondition{
		name:   name,
		advice: advice,
		isMet:  command,
		sys:    sys,
		log:    logrus.WithField("step", name),
	}, nil
}

// DecodePrecondition constructs a Precondition from a manifest dictionary
// with keys "name", "advice" and "is_met". A missing or malformed key fails
// with a DecodeError naming it.
func DecodePrecondition(dict map[string]interface{}, sys System) (*Precondition, error) {
	var w struct {
		Name   string   `json:"name"`
		Advice string   `json:"advice"`
		IsMet  []string `json:"is_met"`
	}
	m := mapper.Mapper{FieldTags: []string{"json", "map"}}
	if err := m.Map(&w, dict); err != nil {
		// Attribute the failure to the malformed key.
		if _, ok := dict["name"].(string); !ok {
			return nil, &DecodeError{Field: "name"}
		}
		if _, ok := dict["advice"].(string); !ok {
			return nil, &DecodeError{Field: "advice"}
		}
		return nil, &DecodeError{Field: "is_met"}
	}
	if w.Name == "" {
		return nil, &DecodeError{Field: "name"}
	}
	if w.Advice == "" {
		return nil, &DecodeError{Field: "advice"}
	}
	if len(w.IsMet) == 0 {
		return nil, &DecodeError{Field: "is_met"}
	}
	return NewPrecondition(w.Name, w.Advice, w.IsMet, sys)
}

// Name implements Step.
func (p *Precondition) Name() string {
	return p.name
}

// Advice returns the remediation text shown when the precondition is unmet.
func (p *Precondition) Advice() string {
	return p.advice
}

// Command returns a copy of the probe command.
func (p *Precondition) Command() []string {
	command := make([]string, len(p.isMet))
	copy(command, p.isMet)
	return command
}

// IsMet implements Step. It resolves the probe command's launch path,
// invokes it in projectDir and reports whether it exited with status zero.
// Resolution and invocation failures report not met; callers observe only
// the boolean.
func (p *Precondition) IsMet(ctx context.Context, projectDir string) bool {
	outcome := p.check(ctx, projectDir)
	if outcome.state == checkFailed {
		p.log.WithError(outcome.reason).Debug("probe did not run")
	}
	return outcome.state == checkMet
}

// Meet implements Step. It always fails with an UnfulfilledError carrying
// the configured advice; satisfying the precondition is up to the user.
func (p *Precondition) Meet(ctx context.Context, projectDir string) error {
	return &UnfulfilledError{Advice: p.advice}
}

func (p *Precondition) check(ctx context.Context, projectDir string) checkOutcome {
	launchPath, err := resolveLaunchPath(p.sys, projectDir, p.isMet[0])
	if err != nil {
		return checkOutcome{state: checkFailed, reason: err}
	}
	if err := p.sys.Run(ctx, projectDir, launchPath, p.isMet[1:]...); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return checkOutcome{state: checkNotMet}
		}
		return checkOutcome{state: checkFailed, reason: err}
	}
	return checkOutcome{state: checkMet}
}
