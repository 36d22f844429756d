package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProject = `
name: app
description: Sample application
targets:
  App:
    product: app
    dependencies:
      - type: target
        name: Core
      - type: sdk
        name: sqlite3
        sdk_type: library
  Core:
    product: library
setup:
  - type: custom
    name: git
    advice: Install git from your package manager
    is_met:
      - git
      - --version
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestLoadProjectFile(t *testing.T) {
	fn := writeFile(t, t.TempDir(), ProjectFile, sampleProject)
	project, err := LoadProjectFile(fn)
	require.NoError(t, err)

	assert.Equal(t, "app", project.Name)
	require.Contains(t, project.Targets, "App")
	require.Contains(t, project.Targets, "Core")
	assert.Equal(t, "App", project.Targets["App"].Name)
	assert.Equal(t, "Core", project.Targets["Core"].Name)

	deps, err := project.Targets["App"].DecodeDependencies()
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.True(t, deps[0].Equal(TargetDep("Core", nil)))
	assert.True(t, deps[1].Equal(SDKDepRequired("sqlite3", SDKTypeLibrary, nil)))

	require.Len(t, project.Setup, 1)
	assert.Equal(t, "custom", project.Setup[0]["type"])
}

func TestLoadProjectFileNotExist(t *testing.T) {
	_, err := LoadProjectFile(filepath.Join(t.TempDir(), ProjectFile))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadRootFromDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, RootFile, "meta-folder: .meta\nproject-path-exclude: ['vendor']\n")
	root, err := LoadRootFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, ".meta", root.MetaFolder)
	assert.Equal(t, []string{"vendor"}, root.ProjectPathExclude)
}

func TestDecodeDependenciesReportsIndex(t *testing.T) {
	target := &Target{
		Name: "App",
		Dependencies: []map[string]interface{}{
			{"type": "target", "name": "Core"},
			{"type": "library", "path": "lib.a"},
		},
	}
	_, err := target.DecodeDependencies()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependencies[1]")
}
