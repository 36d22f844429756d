package manifest

import "fmt"

const (
	// RootFile marks the root of a workspace and holds workspace settings.
	RootFile = "PROJGEN.yaml"

	// ProjectFile is the project manifest filename under the meta folder.
	ProjectFile = "project.yaml"

	// DefaultMetaFolder is the default folder name containing manifests.
	DefaultMetaFolder = ".projgen"
)

// Root is the schema of RootFile.
type Root struct {
	// MetaFolder overrides the folder name containing project manifests.
	MetaFolder string `json:"meta-folder,omitempty"`
	// ProjectPathExclude specifies patterns to skip when looking for projects.
	ProjectPathExclude []string `json:"project-path-exclude,omitempty"`
}

// Project is the schema of ProjectFile.
type Project struct {
	// Name of the project.
	Name string `json:"name"`
	// Description is the details of the project.
	Description string `json:"description,omitempty"`
	// Targets specifies all the targets in this project.
	Targets map[string]*Target `json:"targets,omitempty"`
	// Setup lists setup steps to satisfy before generating the project.
	// Each entry is a tagged dictionary decoded by the setup package.
	Setup []map[string]interface{} `json:"setup,omitempty"`
}

// Target defines the schema of a single target.
type Target struct {
	// Name of the target, taken from the key in Project.Targets.
	Name string `json:"-"`
	// Description is the details of the target.
	Description string `json:"description,omitempty"`
	// Product specifies what the target builds (app, library, test bundle).
	Product string `json:"product,omitempty"`
	// Dependencies lists raw dependency declarations.
	// Decode with DecodeDependencies.
	Dependencies []map[string]interface{} `json:"dependencies,omitempty"`
}

// DecodeDependencies decodes the raw dependency declarations into
// TargetDependency values.
func (t *Target) DecodeDependencies() ([]TargetDependency, error) {
	deps := make([]TargetDependency, 0, len(t.Dependencies))
	for n, dict := range t.Dependencies {
		dep, err := DecodeDependency(dict)
		if err != nil {
			return nil, fmt.Errorf("dependencies[%d]: %w", n, err)
		}
		deps = append(deps, dep)
	}
	return deps, nil
}
