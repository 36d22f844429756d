package workspace

import "errors"

var (
	// ErrNoCurrentProject indicates current project is not available.
	ErrNoCurrentProject = errors.New("no current project, please start from inside (or a subdirectory) a project folder")
	// ErrAmbiguousMatch indicates more than one names are matched.
	ErrAmbiguousMatch = errors.New("ambiguous match")
)
