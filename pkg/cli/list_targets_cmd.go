package cli

import (
	"context"
	"sort"
)

// ListTargetsCmd provides a command to list targets across all projects.
type ListTargetsCmd struct {
}

// Execute executes the command.
func (c *ListTargetsCmd) Execute(ctx context.Context, cctx *Context, args ...string) error {
	var entries []TargetEntry
	for _, project := range cctx.Workspace.Projects() {
		for _, target := range project.Targets() {
			entries = append(entries, TargetEntry{Project: project, Target: target})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].GlobalName() < entries[j].GlobalName()
	})
	cctx.UI.PrintTargetList(entries)
	return nil
}
