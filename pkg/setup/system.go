package setup

import (
	"context"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// System abstracts executable lookup and invocation for setup steps.
type System interface {
	// LookPath resolves a bare program name against the search path.
	LookPath(file string) (string, error)
	// Run invokes path with args in dir, blocking until the process exits.
	// A nil return means the process exited with status zero.
	Run(ctx context.Context, dir, path string, args ...string) error
}

// ExecSystem is the default System backed by os/exec.
type ExecSystem struct{}

// LookPath implements System.
func (ExecSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run implements System.
func (ExecSystem) Run(ctx context.Context, dir, path string, args ...string) error {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

// resolveLaunchPath resolves the first command token to a launch path.
// A path-like token (containing a separator) is resolved against projectDir;
// a bare name is resolved through the system search path.
func resolveLaunchPath(sys System, projectDir, program string) (string, error) {
	if strings.ContainsRune(program, filepath.Separator) || strings.ContainsRune(program, '/') {
		if filepath.IsAbs(program) {
			return program, nil
		}
		return filepath.Join(projectDir, program), nil
	}
	return sys.LookPath(program)
}
