// Package workspace discovers and loads project manifests under a
// workspace root.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/zabawaba99/go-gitignore"

	"projgen/pkg/manifest"
	"projgen/pkg/setup"
)

// Workspace represents a tree of projects rooted at a RootFile marker.
type Workspace struct {
	// RootDir is the absolute path to the root of the workspace.
	RootDir string
	// WorkDir is the absolute path of current working directory (may be
	// different from PWD).
	WorkDir string

	root           *manifest.Root
	metaFolder     string
	projects       map[string]*Project
	currentProject *Project
}

// Project represents a single loaded project.
type Project struct {
	Workspace *Workspace

	// Name of the project.
	Name string
	// Dir is the relative path from root of the workspace.
	Dir string

	meta *manifest.Project
}

// Open creates a Workspace from the specified directory as working
// directory. If workDir is empty, the current working directory is used.
func Open(workDir string) (*Workspace, error) {
	var err error
	if workDir == "" {
		workDir, err = os.Getwd()
	} else {
		workDir, err = filepath.Abs(workDir)
	}
	if err != nil {
		return nil, err
	}
	w := &Workspace{WorkDir: workDir}
	if err := w.LocateRoot(); err != nil {
		return nil, err
	}
	return w, nil
}

// LocateRoot finds the root of the workspace from the working directory.
func (w *Workspace) LocateRoot() error {
	dir := w.WorkDir
	for {
		root, err := manifest.LoadRootFromDir(dir)
		if err == nil {
			w.RootDir = dir
			w.root = root
			w.metaFolder = root.MetaFolder
			if w.metaFolder == "" {
				w.metaFolder = manifest.DefaultMetaFolder
			}
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("check %s error: %w", filepath.Join(dir, manifest.RootFile), err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return fmt.Errorf("find %s from %q failed: %w", manifest.RootFile, w.WorkDir, os.ErrNotExist)
		}
		dir = parent
	}
}

// LoadProjects scans the workspace to populate all projects.
// It fails if names of projects conflict.
// This must be called after LocateRoot.
func (w *Workspace) LoadProjects() error {
	relWorkDir := strings.Trim(w.WorkDir[len(w.RootDir):], string(filepath.Separator)) + string(filepath.Separator)
	var current *Project

	projects := make(map[string]*Project)
	suffix := string(filepath.Separator) + w.metaFolder
	err := walkDirs(w.RootDir, func(relPath string, isDir bool) error {
		if !isDir {
			return nil
		}
		if !strings.HasSuffix(relPath, suffix) {
			return nil
		}
		var dir string
		if left := len(relPath) - len(suffix); left > 0 {
			dir = relPath[1:left]
		}
		for _, pattern := range w.root.ProjectPathExclude {
			if excludeMatch(pattern, relPath, dir) {
				return filepath.SkipDir
			}
		}
		project, err := w.loadProject(dir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load project from %q error: %w", dir, err)
		}
		if err == nil && project != nil {
			if p, ok := projects[project.Name]; ok {
				return fmt.Errorf("conflict project name %q in %q and %q", project.Name, project.Dir, p.Dir)
			}
			projects[project.Name] = project
			prefix := project.Dir + string(filepath.Separator)
			if strings.HasPrefix(relWorkDir, prefix) && (current == nil || len(project.Dir) > len(current.Dir)) {
				current = project
			}
		}
		return filepath.SkipDir
	})
	if err != nil {
		return err
	}
	w.projects, w.currentProject = projects, current
	return nil
}

// FindProject finds the project by name.
func (w *Workspace) FindProject(name string) *Project {
	return w.projects[name]
}

// Projects returns loaded projects in a copied slice.
func (w *Workspace) Projects() []*Project {
	projects := make([]*Project, 0, len(w.projects))
	for _, project := range w.projects {
		projects = append(projects, project)
	}
	return projects
}

// CurrentProject returns the project whose folder is the closest parent
// folder of the working directory. It can be nil if no such folder exists.
func (w *Workspace) CurrentProject() *Project {
	return w.currentProject
}

// ResolveTarget resolves "PROJECT:TARGET", ":TARGET" (current project) or
// a plain target name matched across all projects.
func (w *Workspace) ResolveTarget(name string) (*Project, *manifest.Target, error) {
	items := strings.SplitN(name, ":", 2)
	if len(items) == 2 {
		var project *Project
		if items[0] == "" {
			if project = w.currentProject; project == nil {
				return nil, nil, ErrNoCurrentProject
			}
		} else if project = w.FindProject(items[0]); project == nil {
			return nil, nil, fmt.Errorf("unknown project %q", items[0])
		}
		target := project.FindTarget(items[1])
		if target == nil {
			return nil, nil, fmt.Errorf("unknown target %q in project %q", items[1], project.Name)
		}
		return project, target, nil
	}

	var foundProject *Project
	var foundTarget *manifest.Target
	for _, project := range w.projects {
		target := project.FindTarget(name)
		if target == nil {
			continue
		}
		if foundTarget != nil {
			return nil, nil, fmt.Errorf("%w: target %q", ErrAmbiguousMatch, name)
		}
		foundProject, foundTarget = project, target
	}
	if foundTarget == nil {
		return nil, nil, fmt.Errorf("unknown target %q", name)
	}
	return foundProject, foundTarget, nil
}

// SetupSteps decodes the project's setup step declarations.
// A nil sys selects the default system for every step.
func (w *Workspace) SetupSteps(project *Project, sys setup.System) ([]setup.Step, error) {
	declarations := project.Meta().Setup
	steps := make([]setup.Step, 0, len(declarations))
	for n, dict := range declarations {
		step, err := setup.DecodeStep(dict, sys)
		if err != nil {
			return nil, fmt.Errorf("project %q: setup[%d]: %w", project.Name, n, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (w *Workspace) loadProject(relPath string) (*Project, error) {
	fn := filepath.Join(w.RootDir, relPath, w.metaFolder, manifest.ProjectFile)
	project, err := manifest.LoadProjectFile(fn)
	if err != nil {
		return nil, err
	}
	p := &Project{
		Workspace: w,
		Dir:       relPath,
		Name:      project.Name,
		meta:      project,
	}
	if p.Name == "" {
		return nil, fmt.Errorf("missing project name: %q", fn)
	}
	return p, nil
}

// FileName returns the project file name with relative path.
func (p *Project) FileName() string {
	return filepath.Join(p.Dir, p.Workspace.metaFolder, manifest.ProjectFile)
}

// Meta returns the metadata of the project.
func (p *Project) Meta() manifest.Project {
	return *p.meta
}

// ProjectDir returns the absolute path of the project directory.
func (p *Project) ProjectDir() string {
	return filepath.Join(p.Workspace.RootDir, p.Dir)
}

// FindTarget finds the target by name.
func (p *Project) FindTarget(name string) *manifest.Target {
	return p.meta.Targets[name]
}

// Targets returns the targets defined by the project.
func (p *Project) Targets() []*manifest.Target {
	targets := make([]*manifest.Target, 0, len(p.meta.Targets))
	for _, target := range p.meta.Targets {
		targets = append(targets, target)
	}
	return targets
}

// excludeMatch reports whether an exclude pattern applies to a project
// directory. Patterns containing a slash follow gitignore semantics
// against the walked path; bare patterns match any single path segment.
func excludeMatch(pattern, relPath, dir string) bool {
	if strings.ContainsRune(pattern, '/') {
		return gitignore.Match(pattern, relPath) || gitignore.Match(pattern, dir)
	}
	for _, segment := range strings.Split(dir, string(filepath.Separator)) {
		if matched, err := filepath.Match(pattern, segment); err == nil && matched {
			return true
		}
	}
	return false
}

func walkDirs(baseDir string, callback func(string, bool) error) error {
	baseDir = filepath.Clean(baseDir)
	return godirwalk.Walk(baseDir, &godirwalk.Options{
		Callback: func(path string, entry *godirwalk.Dirent) error {
			relPath := path[len(baseDir):]
			if relPath == "" {
				relPath = "/"
			}
			return callback(relPath, entry.IsDir())
		},
		Unsorted: true,
	})
}
