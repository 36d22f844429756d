package cli

import (
	"fmt"
	"os"
	"strings"

	"projgen/pkg/manifest"
	"projgen/pkg/setup"
	"projgen/pkg/workspace"
)

// TextPrinter provides an output-only UserInterface in plain text.
type TextPrinter struct {
}

// PrintProjectList prints project list.
func (p *TextPrinter) PrintProjectList(projects []*workspace.Project) {
	for _, project := range projects {
		fmt.Printf("%s %s\n", project.Name, project.Dir)
	}
}

// PrintTargetList prints target list.
func (p *TextPrinter) PrintTargetList(entries []TargetEntry) {
	for _, entry := range entries {
		fmt.Println(entry.GlobalName())
	}
}

// PrintDependencyList prints the dependency edges of a target.
func (p *TextPrinter) PrintDependencyList(target string, deps []manifest.TargetDependency) {
	fmt.Printf("%s\n", target)
	for _, dep := range deps {
		fmt.Printf("  %s\n", describeDependency(dep))
	}
}

// PrintStepStatus prints the outcome of one setup step.
func (p *TextPrinter) PrintStepStatus(status setup.StepStatus) {
	name := status.Step.Name()
	switch {
	case status.Met:
		fmt.Printf("OK    %s\n", name)
	case status.Remediated:
		fmt.Printf("DONE  %s\n", name)
	case status.Err != nil:
		fmt.Printf("UNMET %s: %v\n", name, status.Err)
	default:
		fmt.Printf("UNMET %s\n", name)
	}
}

// PrintError implements UserInterface.
func (p *TextPrinter) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
}

// describeDependency renders a one-line summary of a dependency edge:
// the variant tag followed by its payload.
func describeDependency(dep manifest.TargetDependency) string {
	parts := []string{dep.TypeName()}
	switch dep.Type() {
	case manifest.DependencyTarget, manifest.DependencyExternal, manifest.DependencyPackagePlugin:
		parts = append(parts, dep.Name())
	case manifest.DependencyProject:
		parts = append(parts, dep.Name(), dep.Path())
	case manifest.DependencyFramework, manifest.DependencyXCFramework:
		parts = append(parts, dep.Path(), string(dep.Status()))
	case manifest.DependencyLibrary:
		parts = append(parts, dep.Path(), "headers="+dep.PublicHeaders())
		if dep.ModuleMap() != "" {
			parts = append(parts, "module-map="+dep.ModuleMap())
		}
	case manifest.DependencyPackage:
		parts = append(parts, dep.Name(), string(dep.PackageType()))
	case manifest.DependencySDK:
		parts = append(parts, dep.Name(), string(dep.SDKType()), string(dep.Status()))
	case manifest.DependencyCocoapod:
		parts = append(parts, string(dep.SDKType()), dep.Content())
	}
	if condition := dep.Condition(); condition != nil {
		platforms := make([]string, len(condition.Platforms))
		for i, platform := range condition.Platforms {
			platforms[i] = string(platform)
		}
		parts = append(parts, "when="+strings.Join(platforms, ","))
	}
	return strings.Join(parts, " ")
}
