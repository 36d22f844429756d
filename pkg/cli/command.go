package cli

import (
	"context"
	"fmt"
	"os"

	"projgen/pkg/manifest"
	"projgen/pkg/setup"
	"projgen/pkg/workspace"
)

// Command defines an abstract command.
type Command interface {
	Execute(ctx context.Context, cctx *Context, args ...string) error
}

// CommandFunc is the func form of Command.
type CommandFunc func(context.Context, *Context, ...string) error

// Execute implements Command.
func (f CommandFunc) Execute(ctx context.Context, cctx *Context, args ...string) error {
	return f(ctx, cctx, args...)
}

// TargetEntry pairs a target with its defining project for listing.
type TargetEntry struct {
	Project *workspace.Project
	Target  *manifest.Target
}

// GlobalName returns the project-qualified target name.
func (e TargetEntry) GlobalName() string {
	return e.Project.Name + ":" + e.Target.Name
}

// UserInterface defines the abstraction for interacting with the user.
type UserInterface interface {
	PrintProjectList([]*workspace.Project)
	PrintTargetList([]TargetEntry)
	PrintDependencyList(target string, deps []manifest.TargetDependency)
	PrintStepStatus(status setup.StepStatus)
	PrintError(err error)
}

// Context provides information about the environment for commands.
type Context struct {
	Workspace *workspace.Workspace
	UI        UserInterface
}

// ContextBuilder is used to build Context.
type ContextBuilder struct {
	WorkDir string
	TextUI  bool
}

// BuildContext creates a context.
func (b *ContextBuilder) BuildContext() (*Context, error) {
	c := &Context{
		UI: &TextPrinter{},
	}
	if !b.TextUI {
		if term := os.Getenv("TERM"); term != "" && term != "dumb" {
			c.UI = &TermPrinter{}
		}
	}
	ws, err := workspace.Open(b.WorkDir)
	if err != nil {
		c.UI.PrintError(err)
		return nil, err
	}
	if err := ws.LoadProjects(); err != nil {
		c.UI.PrintError(err)
		return nil, err
	}
	c.Workspace = ws
	return c, nil
}

// BuildAndRun builds the context and runs the command.
func (b *ContextBuilder) BuildAndRun(ctx context.Context, cmd Command, args ...string) error {
	cctx, err := b.BuildContext()
	if err != nil {
		return err
	}
	return cctx.RunCmd(ctx, cmd, args...)
}

// RunCmd runs a command.
func (c *Context) RunCmd(ctx context.Context, cmd Command, args ...string) error {
	if err := cmd.Execute(ctx, c, args...); err != nil {
		c.UI.PrintError(err)
		return err
	}
	return nil
}

// MatchProject picks the project named by the first argument, falling back
// to the current project.
func (c *Context) MatchProject(args ...string) (*workspace.Project, error) {
	if len(args) > 0 {
		project := c.Workspace.FindProject(args[0])
		if project == nil {
			return nil, fmt.Errorf("unknown project %q", args[0])
		}
		return project, nil
	}
	project := c.Workspace.CurrentProject()
	if project == nil {
		return nil, workspace.ErrNoCurrentProject
	}
	return project, nil
}
