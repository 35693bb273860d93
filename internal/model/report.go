package model

// WarningKind categorizes a non-fatal finding.
type WarningKind string

const (
	// WarningUnresolvedSymbol marks an import block left untouched because a
	// symbol had no symbol map entry.
	WarningUnresolvedSymbol WarningKind = "unresolved-symbol"
	// WarningIncompleteMap marks a symbol map built from a barrel that contains
	// wildcard re-exports.
	WarningIncompleteMap WarningKind = "incomplete-map"
	// WarningSymbolCollision marks a symbol re-exported from more than one module.
	WarningSymbolCollision WarningKind = "symbol-collision"
)

// Warning is a non-fatal finding reported after a run.
type Warning struct {
	Kind    WarningKind
	File    Path
	Line    int
	Message string
}

// Violation is one forbidden package import of a transitional file.
type Violation struct {
	File Path   // relative to the project root
	Line int    // 1-based
	Text string // the matched import text
}

// RewrittenBlock describes one import statement replaced by namespaced imports.
type RewrittenBlock struct {
	Line        int
	Original    string
	Replacement string
}

// FileChange is the outcome of rewriting a single file.
type FileChange struct {
	File   File
	Blocks []RewrittenBlock
	Before string
	After  string
}

// RewriteReport summarizes a rewrite run.
type RewriteReport struct {
	Write    bool
	Scanned  int
	Files    []FileChange
	Warnings []Warning
}

// Modified returns the number of files with at least one rewritten block.
func (r RewriteReport) Modified() int {
	return len(r.Files)
}

// SymbolMapResult summarizes a symbol map generation run.
type SymbolMapResult struct {
	Path     Path
	Entries  int
	Warnings []Warning
}

// ExportProblem is one export map validation failure.
type ExportProblem string
