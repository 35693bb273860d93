// Package controller provides output adapters for displaying codemod results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "namespacer.dev/pkg/namespacer/internal/model"
)

// UI defines how workflow results reach the operator.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	DisplaySymbolMap(ctx context.Context, result m.SymbolMapResult) error
	DisplayRewrite(ctx context.Context, report m.RewriteReport) error
	DisplayViolations(ctx context.Context, violations []m.Violation) error
	DisplayExportProblems(ctx context.Context, problems []m.ExportProblem) error
}

// NewUI returns the UI for cmd. Styling is enabled only when tty is true.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
