package controller

import (
	"github.com/pmezard/go-difflib/difflib"

	m "namespacer.dev/pkg/namespacer/internal/model"
)

// unifiedDiff renders the change of a rewritten file as a unified diff with
// one line of context.
func unifiedDiff(change m.FileChange) (string, error) {
	name := change.File.ShortPath.Slash()

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(change.Before),
		B:        difflib.SplitLines(change.After),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  1,
	})
}
