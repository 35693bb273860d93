package domain

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	m "namespacer.dev/pkg/namespacer/internal/model"
)

var (
	namedExportPattern    = regexp.MustCompile(`export\s+(type\s+)?\{([^}]*)\}\s*from\s*['"]([^'"]+)['"]`)
	wildcardExportPattern = regexp.MustCompile(`export\s+(type\s+)?\*(?:\s+as\s+([A-Za-z_$][A-Za-z0-9_$]*))?\s+from\s*['"]([^'"]+)['"]`)
	commentPattern        = regexp.MustCompile(`//[^\n]*|/\*[\s\S]*?\*/`)
	aliasPattern          = regexp.MustCompile(`\s+as\s+`)
	typeModifierPattern   = regexp.MustCompile(`^type\s+`)
	identifierPattern     = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// moduleExtensions are stripped from re-export paths so map values name the
// module, not the file.
var moduleExtensions = []string{".d.ts", ".tsx", ".ts", ".jsx", ".js", ".mts", ".cts", ".mjs", ".cjs"}

// reExport is one re-export statement of the barrel that contributes names.
type reExport struct {
	offset int
	names  []string
	module string
}

// BuildSymbolMap derives the symbol map from the re-export statements of a
// barrel file. Named re-exports map their public name (the alias when present)
// to the module path, and `export * as ns` maps ns. Wildcard re-exports,
// type-only ones included, cannot be enumerated and produce a single
// incomplete-map warning. A symbol re-exported again from a different module
// keeps the last module and produces a symbol-collision warning. Commented-out
// statements are ignored.
func BuildSymbolMap(barrel m.Path, text string) (m.SymbolMap, []m.Warning) {
	text = stripComments(text)

	var (
		exports   []reExport
		wildcards []string
		warnings  []m.Warning
	)

	firstWildcard := -1

	for _, loc := range namedExportPattern.FindAllStringSubmatchIndex(text, -1) {
		exports = append(exports, reExport{
			offset: loc[0],
			names:  exportedNames(text[loc[4]:loc[5]]),
			module: text[loc[6]:loc[7]],
		})
	}

	for _, loc := range wildcardExportPattern.FindAllStringSubmatchIndex(text, -1) {
		module := text[loc[6]:loc[7]]

		if loc[4] >= 0 {
			exports = append(exports, reExport{
				offset: loc[0],
				names:  []string{text[loc[4]:loc[5]]},
				module: module,
			})

			continue
		}

		if firstWildcard < 0 {
			firstWildcard = loc[0]
		}

		wildcards = append(wildcards, module)
	}

	sort.Slice(exports, func(i, j int) bool { return exports[i].offset < exports[j].offset })

	symbols := m.SymbolMap{}

	for _, export := range exports {
		module, ok := normalizeModulePath(export.module)
		if !ok {
			slog.Debug("skipping re-export outside the package", "barrel", barrel, "module", export.module)
			continue
		}

		line := lineAt(text, export.offset)

		for _, name := range export.names {
			if previous, ok := symbols[name]; ok && previous != module {
				warnings = append(warnings, m.Warning{
					Kind:    m.WarningSymbolCollision,
					File:    barrel,
					Line:    line,
					Message: fmt.Sprintf("symbol %s re-exported from %s overrides %s", name, module, previous),
				})
			}

			symbols[name] = module
		}
	}

	if len(wildcards) > 0 {
		slog.Warn("wildcard re-exports present", "barrel", barrel, "modules", wildcards)

		warnings = append(warnings, m.Warning{
			Kind: m.WarningIncompleteMap,
			File: barrel,
			Line: lineAt(text, firstWildcard),
			Message: fmt.Sprintf("star exports present (%s); symbol map may be incomplete",
				strings.Join(wildcards, ", ")),
		})
	}

	slog.Debug("built symbol map", "barrel", barrel, "entries", len(symbols), "warnings", len(warnings))

	return symbols, warnings
}

// stripComments blanks out comments, keeping their line breaks so line numbers
// still match the barrel file.
func stripComments(text string) string {
	return commentPattern.ReplaceAllStringFunc(text, func(comment string) string {
		return strings.Repeat("\n", strings.Count(comment, "\n"))
	})
}

// exportedNames returns the public names of a re-export brace list in order.
func exportedNames(list string) []string {
	var names []string

	for _, raw := range strings.Split(list, ",") {
		specifier := typeModifierPattern.ReplaceAllString(strings.TrimSpace(raw), "")
		if specifier == "" {
			continue
		}

		parts := aliasPattern.Split(specifier, 2)
		name := strings.TrimSpace(parts[len(parts)-1])

		if name == "default" || !identifierPattern.MatchString(name) {
			slog.Debug("skipping non-identifier export", "specifier", specifier)
			continue
		}

		names = append(names, name)
	}

	return names
}

// normalizeModulePath turns a re-export path into a submodule path. It reports
// false for paths that do not name a module inside the package ("./", ".",
// "../x").
func normalizeModulePath(path string) (string, bool) {
	path = strings.TrimPrefix(strings.TrimSpace(path), "./")

	for _, ext := range moduleExtensions {
		if strings.HasSuffix(path, ext) {
			path = strings.TrimSuffix(path, ext)
			break
		}
	}

	path = strings.TrimSuffix(path, "/")
	if path == "" || path == "." || path == ".." || strings.HasPrefix(path, "../") {
		return "", false
	}

	return path, true
}

// lineAt returns the 1-based line number of offset in text.
func lineAt(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
