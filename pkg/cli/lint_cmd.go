package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"projgen/pkg/setup"
)

// ErrManifestProblems indicates lint found invalid manifest declarations.
var ErrManifestProblems = errors.New("manifest problems found")

// LintCmd validates dependency and setup declarations of all projects.
type LintCmd struct {
}

// Execute executes the command.
func (c *LintCmd) Execute(ctx context.Context, cctx *Context, args ...string) error {
	projects := cctx.Workspace.Projects()
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	problems := 0
	for _, project := range projects {
		targets := project.Targets()
		sort.Slice(targets, func(i, j int) bool {
			return targets[i].Name < targets[j].Name
		})
		for _, target := range targets {
			if _, err := target.DecodeDependencies(); err != nil {
				cctx.UI.PrintError(fmt.Errorf("%s: target %q: %w", project.FileName(), target.Name, err))
				problems++
			}
		}
		for n, dict := range project.Meta().Setup {
			if _, err := setup.DecodeStep(dict, nil); err != nil {
				cctx.UI.PrintError(fmt.Errorf("%s: setup[%d]: %w", project.FileName(), n, err))
				problems++
			}
		}
	}
	if problems > 0 {
		return fmt.Errorf("%w: %d", ErrManifestProblems, problems)
	}
	return nil
}
