package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"projgen/pkg/cli"
)

const (
	projectsSynopsis = `List all projects`
	projectsUsage    = `projects
List all projects.
`
	targetsSynopsis = `List targets`
	targetsUsage    = `targets
List all targets across projects.
`
	depsSynopsis = `Print target dependencies`
	depsUsage    = `deps TARGET
Print the dependency declarations of TARGET.

TARGET can be either
    PROJECT:TARGET-NAME
 or TARGET-NAME

If PROJECT is empty (":name"), the "current project" is used, which is the
project whose folder is the closest ancestor of the current working
directory. A plain TARGET-NAME is matched across all projects and fails if
more than one project defines it.
`
	lintSynopsis = `Validate manifests`
	lintUsage    = `lint
Validate dependency and setup declarations of all projects.
`
	upSynopsis = `Check project setup steps`
	upUsage    = `up [-check-only] [PROJECT]
Check the setup steps declared by PROJECT (or the current project) in
declaration order. Unmet steps are remediated where the step supports it;
preconditions report their remediation advice instead. Exits non-zero if any
step remains unsatisfied.
`
)

var (
	contextBuilder cli.ContextBuilder
	verbose        bool
)

type flagBinder interface {
	SetFlags(*flag.FlagSet)
}

type cmdWrapper struct {
	name     string
	synopsis string
	usage    string
	command  cli.Command
}

func (w *cmdWrapper) Name() string     { return w.name }
func (w *cmdWrapper) Synopsis() string { return w.synopsis }
func (w *cmdWrapper) Usage() string    { return w.usage }
func (w *cmdWrapper) SetFlags(fs *flag.FlagSet) {
	if b, ok := w.command.(flagBinder); ok {
		b.SetFlags(fs)
	}
}
func (w *cmdWrapper) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return runCmd(ctx, w.command, f.Args()...)
}

func wrapCmd(cmd cli.Command, name, synopsis, usage string) *cmdWrapper {
	return &cmdWrapper{name: name, synopsis: synopsis, usage: usage, command: cmd}
}

func runCmd(ctx context.Context, cmd cli.Command, args ...string) subcommands.ExitStatus {
	if err := contextBuilder.BuildAndRun(ctx, cmd, args...); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func registerCmd(cmd subcommands.Command, aliases ...string) {
	subcommands.Register(cmd, "")
	for _, alias := range aliases {
		subcommands.Register(subcommands.Alias(alias, cmd), "")
	}
}

func init() {
	flag.StringVar(&contextBuilder.WorkDir, "C", "", "Working directory.")
	flag.BoolVar(&contextBuilder.TextUI, "no-color", contextBuilder.TextUI, "Disable color terminal support.")
	flag.BoolVar(&verbose, "v", false, "Verbose logging.")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	registerCmd(wrapCmd(&cli.ListProjectsCmd{}, "projects", projectsSynopsis, projectsUsage), "p")
	registerCmd(wrapCmd(&cli.ListTargetsCmd{}, "targets", targetsSynopsis, targetsUsage), "t")
	registerCmd(wrapCmd(&cli.DepsCmd{}, "deps", depsSynopsis, depsUsage), "d")
	registerCmd(wrapCmd(&cli.LintCmd{}, "lint", lintSynopsis, lintUsage))
	registerCmd(wrapCmd(&cli.UpCmd{}, "up", upSynopsis, upUsage), "u")
}

func main() {
	flag.Parse()
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		<-sigCh
		os.Exit(1)
	}()
	os.Exit(int(subcommands.Execute(ctx)))
}
