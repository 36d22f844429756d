package setup

import (
	"context"
	"fmt"

	"github.com/easeway/langx.go/mapper"
	"github.com/sirupsen/logrus"
)

// CommandStep is a setup step satisfied by running a configured command.
// It carries no probe, so it is never reported as already met; Meet invokes
// the command and propagates its result.
type CommandStep struct {
	name string
	meet []string

	sys System
	log *logrus.Entry
}

// NewCommandStep creates a CommandStep. The meet command must be non-empty.
// A nil sys selects the default ExecSystem.
func NewCommandStep(name string, meet []string, sys System) (*CommandStep, error) {
	if len(meet) == 0 {
		return nil, &ConfigError{Step: name, Err: ErrEmptyCommand}
	}
	if sys == nil {
		sys = ExecSystem{}
	}
	command := make([]string, len(meet))
	copy(command, meet)
	return &CommandStep{
		name: name,
		meet: command,
		sys:  sys,
		log:  logrus.WithField("step", name),
	}, nil
}

// DecodeCommandStep constructs a CommandStep from a manifest dictionary
// with keys "name" and "meet".
func DecodeCommandStep(dict map[string]interface{}, sys System) (*CommandStep, error) {
	var w struct {
		Name string   `json:"name"`
		Meet []string `json:"meet"`
	}
	m := mapper.Mapper{FieldTags: []string{"json", "map"}}
	if err := m.Map(&w, dict); err != nil {
		if _, ok := dict["name"].(string); !ok {
			return nil, &DecodeError{Field: "name"}
		}
		return nil, &DecodeError{Field: "meet"}
	}
	if w.Name == "" {
		return nil, &DecodeError{Field: "name"}
	}
	if len(w.Meet) == 0 {
		return nil, &DecodeError{Field: "meet"}
	}
	return NewCommandStep(w.Name, w.Meet, sys)
}

// Name implements Step.
func (s *CommandStep) Name() string {
	return s.name
}

// IsMet implements Step. A command step has no probe and always runs.
func (s *CommandStep) IsMet(ctx context.Context, projectDir string) bool {
	return false
}

// Meet implements Step by running the configured command in projectDir.
func (s *CommandStep) Meet(ctx context.Context, projectDir string) error {
	launchPath, err := resolveLaunchPath(s.sys, projectDir, s.meet[0])
	if err != nil {
		return fmt.Errorf("resolve %q error: %w", s.meet[0], err)
	}
	s.log.WithField("command", s.meet).Debug("running setup command")
	if err := s.sys.Run(ctx, projectDir, launchPath, s.meet[1:]...); err != nil {
		return fmt.Errorf("run %v error: %w", s.meet, err)
	}
	return nil
}
