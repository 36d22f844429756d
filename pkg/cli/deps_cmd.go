package cli

import (
	"context"
	"fmt"
)

// DepsCmd prints the dependency edges declared by a target.
type DepsCmd struct {
}

// Execute executes the command.
func (c *DepsCmd) Execute(ctx context.Context, cctx *Context, args ...string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one target expected")
	}
	project, target, err := cctx.Workspace.ResolveTarget(args[0])
	if err != nil {
		return err
	}
	deps, err := target.DecodeDependencies()
	if err != nil {
		return fmt.Errorf("target %q: %w", target.Name, err)
	}
	cctx.UI.PrintDependencyList(project.Name+":"+target.Name, deps)
	return nil
}
