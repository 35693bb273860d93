package domain

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	m "namespacer.dev/pkg/namespacer/internal/model"
)

// ImportRewriter splits single-line root-package imports into one import per
// owning submodule. It never rewrites a block partially: when any symbol of a
// block is missing from the symbol map the block is left byte-for-byte intact.
type ImportRewriter struct {
	packageName string
	symbols     m.SymbolMap
	pattern     *regexp.Regexp
}

// NewImportRewriter returns a rewriter for imports of packageName.
func NewImportRewriter(packageName string, symbols m.SymbolMap) *ImportRewriter {
	// Brace lists spanning several lines are not matched.
	pattern := regexp.MustCompile(`\bimport([ \t]+type)?[ \t]*\{([^{}\n]*)\}[ \t]*from[ \t]*['"]` +
		regexp.QuoteMeta(packageName) + `['"];?`)

	return &ImportRewriter{
		packageName: packageName,
		symbols:     symbols,
		pattern:     pattern,
	}
}

// Qualifies reports whether src references the bare package name in either
// quote style and is therefore worth inspecting.
func (r *ImportRewriter) Qualifies(src string) bool {
	return strings.Contains(src, "'"+r.packageName+"'") || strings.Contains(src, `"`+r.packageName+`"`)
}

// Rewrite returns src with every resolvable root import block replaced, the
// blocks that were rewritten, and a warning per block left untouched because
// of unknown symbols.
func (r *ImportRewriter) Rewrite(file m.Path, src string) (string, []m.RewrittenBlock, []m.Warning) {
	var (
		out      strings.Builder
		blocks   []m.RewrittenBlock
		warnings []m.Warning
		last     int
	)

	for _, loc := range r.pattern.FindAllStringSubmatchIndex(src, -1) {
		start, end := loc[0], loc[1]
		isType := loc[2] >= 0
		list := src[loc[4]:loc[5]]
		line := lineAt(src, start)

		replacement, unresolved := r.rewriteBlock(list, isType, lineEndingAt(src, end)+indentAt(src, start))
		if len(unresolved) > 0 {
			slog.Warn("leaving import block unchanged", "file", file, "line", line, "unresolved", unresolved)

			warnings = append(warnings, m.Warning{
				Kind:    m.WarningUnresolvedSymbol,
				File:    file,
				Line:    line,
				Message: fmt.Sprintf("no symbol map entry for %s; import left unchanged", strings.Join(unresolved, ", ")),
			})

			continue
		}

		if replacement == "" {
			continue
		}

		out.WriteString(src[last:start])
		out.WriteString(replacement)
		last = end

		blocks = append(blocks, m.RewrittenBlock{
			Line:        line,
			Original:    src[start:end],
			Replacement: replacement,
		})
	}

	if len(blocks) == 0 {
		return src, nil, warnings
	}

	out.WriteString(src[last:])

	return out.String(), blocks, warnings
}

// rewriteBlock builds the namespaced imports for one brace list, joined by
// separator. It returns the unresolved specifiers instead when any symbol is
// unknown, and an empty replacement when the list holds no specifiers.
func (r *ImportRewriter) rewriteBlock(list string, isType bool, separator string) (string, []string) {
	bucket := m.NewModuleBucket()

	var unresolved []string

	for _, raw := range strings.Split(list, ",") {
		specifier := strings.TrimSpace(raw)
		if specifier == "" {
			continue
		}

		module, ok := r.symbols.Lookup(importedName(specifier))
		if !ok {
			unresolved = append(unresolved, specifier)
			continue
		}

		bucket.Add(module, specifier)
	}

	if len(unresolved) > 0 {
		return "", unresolved
	}

	keyword := "import"
	if isType {
		keyword = "import type"
	}

	statements := make([]string, 0, bucket.Len())
	for _, module := range bucket.Modules() {
		statements = append(statements, fmt.Sprintf("%s { %s } from '%s/%s';",
			keyword, strings.Join(bucket.Symbols(module), ", "), r.packageName, module))
	}

	return strings.Join(statements, separator), nil
}

// importedName returns the exported name a specifier refers to: "type A as B"
// resolves to A.
func importedName(specifier string) string {
	specifier = typeModifierPattern.ReplaceAllString(specifier, "")
	return strings.TrimSpace(aliasPattern.Split(specifier, 2)[0])
}

// lineEndingAt returns the line break terminating the line that contains
// offset: "\r\n" for CRLF lines, "\n" otherwise.
func lineEndingAt(src string, offset int) string {
	if i := strings.IndexByte(src[offset:], '\n'); i > 0 && src[offset+i-1] == '\r' {
		return "\r\n"
	}

	return "\n"
}

// indentAt returns the leading whitespace of the line containing offset when
// nothing but whitespace precedes offset on that line.
func indentAt(src string, offset int) string {
	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1
	prefix := src[lineStart:offset]

	if strings.TrimLeft(prefix, " \t") != "" {
		return ""
	}

	return prefix
}
