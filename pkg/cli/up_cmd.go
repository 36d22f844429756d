package cli

import (
	"context"
	"flag"
	"fmt"

	"projgen/pkg/setup"
)

// UpCmd checks a project's setup steps and reports what remains to be done.
type UpCmd struct {
	// CheckOnly reports unmet steps without attempting remediation.
	CheckOnly bool
}

// SetFlags binds command flags.
func (c *UpCmd) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.CheckOnly, "check-only", false, "Only check steps, do not attempt remediation.")
}

// Execute executes the command.
func (c *UpCmd) Execute(ctx context.Context, cctx *Context, args ...string) error {
	project, err := cctx.MatchProject(args...)
	if err != nil {
		return err
	}
	steps, err := cctx.Workspace.SetupSteps(project, nil)
	if err != nil {
		return err
	}
	runner := setup.Runner{Steps: steps, CheckOnly: c.CheckOnly}
	statuses := runner.Run(ctx, project.ProjectDir())
	for _, status := range statuses {
		cctx.UI.PrintStepStatus(status)
	}
	if n := setup.Unsatisfied(statuses); n > 0 {
		return fmt.Errorf("%w: %d of %d steps unsatisfied", setup.ErrIncomplete, n, len(statuses))
	}
	return nil
}
