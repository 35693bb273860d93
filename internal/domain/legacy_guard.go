package domain

import (
	"regexp"
	"sort"
	"strings"

	m "namespacer.dev/pkg/namespacer/internal/model"
)

// LegacyGuard finds package-style imports of transitional files. Relative
// imports of the same files are tolerated while the migration is underway.
type LegacyGuard struct {
	files   m.TransitionalFileSet
	pattern *regexp.Regexp
}

// NewLegacyGuard returns a guard for imports of packageName that end in the
// stem of one of files, optionally followed by one of extensions.
func NewLegacyGuard(packageName string, files m.TransitionalFileSet, extensions []string) *LegacyGuard {
	guard := &LegacyGuard{files: files}
	if len(files) == 0 {
		return guard
	}

	stems := make([]string, 0, len(files))
	for _, file := range files {
		stems = append(stems, regexp.QuoteMeta(file.Stem))
	}

	sort.Strings(stems)

	exts := []string{regexp.QuoteMeta(".js")}
	for _, ext := range extensions {
		exts = append(exts, regexp.QuoteMeta(ext))
	}

	guard.pattern = regexp.MustCompile(`(?:\bfrom|\bimport|\brequire\()\s*['"]` +
		regexp.QuoteMeta(packageName) + `/(?:[^'"\n]*/)?(?:` + strings.Join(stems, "|") + `)` +
		`(?:` + strings.Join(exts, "|") + `)?['"]`)

	return guard
}

// Skips reports whether file is itself transitional and must not be scanned.
func (g *LegacyGuard) Skips(file m.Path) bool {
	return g.files.Contains(file)
}

// Scan returns every forbidden import in src, in source order.
func (g *LegacyGuard) Scan(file m.Path, src string) []m.Violation {
	if g.pattern == nil {
		return nil
	}

	var violations []m.Violation

	for _, loc := range g.pattern.FindAllStringIndex(src, -1) {
		violations = append(violations, m.Violation{
			File: file,
			Line: lineAt(src, loc[0]),
			Text: src[loc[0]:loc[1]],
		})
	}

	return violations
}
