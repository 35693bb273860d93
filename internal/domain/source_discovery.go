package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"namespacer.dev/pkg/namespacer/internal/adapter"
	m "namespacer.dev/pkg/namespacer/internal/model"
)

// skippedDirs are never descended into.
var skippedDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
}

// SourceArgs selects the source files a command operates on.
type SourceArgs struct {
	Root       m.Path   // project root; reported paths are relative to it
	Source     m.Path   // source directory, relative to Root
	Extensions []string // recognized source extensions, e.g. ".ts"
	Exclude    []string // regexes matched against root-relative slash paths
}

// SourceDiscovery enumerates the source files of a project.
type SourceDiscovery interface {
	Discover(ctx context.Context, args SourceArgs) ([]m.File, error)
}

type sourceDiscovery struct {
	fs adapter.SourceFSAdapter
}

// NewSourceDiscovery constructs a SourceDiscovery walking through fsAdapter.
func NewSourceDiscovery(fsAdapter adapter.SourceFSAdapter) SourceDiscovery {
	return &sourceDiscovery{fs: fsAdapter}
}

// Discover returns the recognized source files under args.Source in lexical
// order. Declaration files (*.d.ts) and excluded paths are left out.
func (d *sourceDiscovery) Discover(ctx context.Context, args SourceArgs) ([]m.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	sourceRoot := d.fs.JoinPath(string(args.Root), string(args.Source))

	info, err := d.fs.FileInfo(sourceRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("source directory %s: %w", sourceRoot, ErrFileNotFound)
		}

		return nil, fmt.Errorf("stat source directory %s: %w", sourceRoot, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("source path %s is not a directory", sourceRoot)
	}

	var files []m.File

	err = d.fs.Walk(sourceRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, skip := skippedDirs[info.Name()]; skip {
				return filepath.SkipDir
			}

			return nil
		}

		if !isSourceFile(info.Name(), args.Extensions) {
			return nil
		}

		rel, err := d.fs.RelPath(args.Root, m.Path(path))
		if err != nil {
			return err
		}

		if matchesAny(excludes, rel.Slash()) {
			slog.Debug("excluding source file", "path", rel)
			return nil
		}

		files = append(files, m.File{FullPath: m.Path(path), ShortPath: rel})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", sourceRoot, err)
	}

	slog.Debug("discovered source files", "root", sourceRoot, "count", len(files))

	return files, nil
}

func isSourceFile(name string, extensions []string) bool {
	for _, ext := range extensions {
		if !strings.HasSuffix(name, ext) {
			continue
		}

		return !strings.HasSuffix(strings.TrimSuffix(name, ext), ".d")
	}

	return false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
