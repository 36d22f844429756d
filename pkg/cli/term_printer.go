package cli

import (
	"fmt"
	"os"
	"strings"

	"projgen/pkg/manifest"
	"projgen/pkg/setup"
	"projgen/pkg/workspace"
)

// TermPrinter provides an output-only UserInterface for ANSI terminal.
type TermPrinter struct {
}

// PrintProjectList prints project list.
func (p *TermPrinter) PrintProjectList(projects []*workspace.Project) {
	for _, project := range projects {
		fmt.Printf("\x1b[36;1m%s\x1b[m \x1b[37m[%s]\x1b[m\n", project.Name, project.Dir)
		if desc := project.Meta().Description; desc != "" {
			for _, line := range strings.Split(desc, "\n") {
				fmt.Printf("  \x1b[37;0m%s\x1b[m\n", line)
			}
		}
	}
}

// PrintTargetList prints target list.
func (p *TermPrinter) PrintTargetList(entries []TargetEntry) {
	for _, entry := range entries {
		fmt.Printf("\x1b[36;1m%s\x1b[m\n", entry.GlobalName())
		if desc := entry.Target.Description; desc != "" {
			fmt.Printf("  \x1b[37;0m%s\x1b[m\n", desc)
		}
	}
}

// PrintDependencyList prints the dependency edges of a target.
func (p *TermPrinter) PrintDependencyList(target string, deps []manifest.TargetDependency) {
	fmt.Printf("\x1b[36;1m%s\x1b[m\n", target)
	for _, dep := range deps {
		payload := strings.TrimPrefix(describeDependency(dep), dep.TypeName())
		fmt.Printf("  \x1b[34m%s\x1b[m%s\n", dep.TypeName(), payload)
	}
}

// PrintStepStatus prints the outcome of one setup step.
func (p *TermPrinter) PrintStepStatus(status setup.StepStatus) {
	name := status.Step.Name()
	switch {
	case status.Met:
		fmt.Printf("\x1b[32;1mOK\x1b[m    %s\n", name)
	case status.Remediated:
		fmt.Printf("\x1b[32;1mDONE\x1b[m  %s\n", name)
	case status.Err != nil:
		fmt.Printf("\x1b[31;1mUNMET\x1b[m %s: \x1b[31m%v\x1b[m\n", name, status.Err)
	default:
		fmt.Printf("\x1b[31;1mUNMET\x1b[m %s\n", name)
	}
}

// PrintError implements UserInterface.
func (p *TermPrinter) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "\x1b[31;1mError:\x1b[m \x1b[31m%v.\x1b[m\n", err)
}
