// Package model defines the data structures shared by the namespacer codemod.
package model

import (
	"path"
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Slash returns the path with forward slashes, the form used in reports and
// exclude patterns.
func (p Path) Slash() string {
	return filepath.ToSlash(string(p))
}

// File represents a discovered source file.
type File struct {
	FullPath  Path // absolute or working-directory relative path used for I/O
	ShortPath Path // path relative to the project root, used for display
}

// TransitionalFile is a deprecated single-class source file that may still
// exist but must not be imported through the public package path.
type TransitionalFile struct {
	Path Path   // relative to the project root, e.g. src/order/CMoTOrder.ts
	Stem string // basename without extension, e.g. CMoTOrder
}

// TransitionalFileSet is the fixed list of transitional files the guard enforces.
type TransitionalFileSet []TransitionalFile

// Contains reports whether rel (relative to the project root) is one of the
// transitional files.
func (s TransitionalFileSet) Contains(rel Path) bool {
	for _, file := range s {
		if file.Path.Slash() == rel.Slash() {
			return true
		}
	}

	return false
}

// NewTransitionalFileSet builds a TransitionalFileSet from project-relative paths.
func NewTransitionalFileSet(paths []string) TransitionalFileSet {
	set := make(TransitionalFileSet, 0, len(paths))

	for _, p := range paths {
		slash := filepath.ToSlash(p)
		base := path.Base(slash)

		set = append(set, TransitionalFile{
			Path: Path(slash),
			Stem: strings.TrimSuffix(base, path.Ext(base)),
		})
	}

	return set
}
