package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "namespacer.dev/pkg/namespacer/internal/model"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// SimpleUI implements UI by printing to the cobra command's output streams.
// Results go to stdout; warnings and failures go to stderr.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplaySymbolMap prints the generation summary and every warning.
func (s *SimpleUI) DisplaySymbolMap(ctx context.Context, result m.SymbolMapResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printWarnings(result.Warnings)

	return s.outPrintf("%s at %s with %d entries\n",
		s.paint(successStyle, "Generated symbol map"), result.Path, result.Entries)
}

// DisplayRewrite prints the per-file changes, a summary table and the final count.
func (s *SimpleUI) DisplayRewrite(ctx context.Context, report m.RewriteReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, change := range report.Files {
		if report.Write {
			if err := s.outPrintf("Updated %s\n", change.File.ShortPath); err != nil {
				return err
			}

			continue
		}

		if err := s.outPrintf("%s Would modify %s\n", s.paint(mutedStyle, "[DRY]"), change.File.ShortPath); err != nil {
			return err
		}

		diff, err := unifiedDiff(change)
		if err != nil {
			return fmt.Errorf("render diff for %s: %w", change.File.ShortPath, err)
		}

		if err := s.outPrintf("%s", diff); err != nil {
			return err
		}
	}

	if len(report.Files) > 0 {
		if err := s.outPrintf("\n%s", renderRewriteTable(report)); err != nil {
			return err
		}
	}

	s.printWarnings(report.Warnings)

	if report.Write {
		return s.outPrintf("Updated %d files.\n", report.Modified())
	}

	return s.outPrintf("Dry run complete. %d files would change.\n", report.Modified())
}

func renderRewriteTable(report m.RewriteReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Blocks", "Imports"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	totalBlocks := 0
	totalImports := 0

	for _, change := range report.Files {
		imports := 0
		for _, block := range change.Blocks {
			imports += countLines(block.Replacement)
		}

		table.Append([]string{
			change.File.ShortPath.Slash(),
			fmt.Sprintf("%d", len(change.Blocks)),
			fmt.Sprintf("%d", imports),
		})

		totalBlocks += len(change.Blocks)
		totalImports += imports
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d of %d files", report.Modified(), report.Scanned),
		fmt.Sprintf("%d", totalBlocks),
		fmt.Sprintf("%d", totalImports),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayViolations prints one line per violation to stderr followed by a
// summary, or the OK line when there are none.
func (s *SimpleUI) DisplayViolations(ctx context.Context, violations []m.Violation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(violations) == 0 {
		return s.outPrintf("check-legacy-imports: %s (no forbidden package imports of transitional files found)\n",
			s.paint(successStyle, "OK"))
	}

	s.errPrintf("\n%s\n", s.paint(errorStyle, "Forbidden package imports of transitional files detected:"))

	for _, violation := range violations {
		s.errPrintf(" - %s:%d: %s\n", violation.File.Slash(), violation.Line, violation.Text)
	}

	s.errPrintf("\nReplace with namespace imports of the owning submodule.\n")
	s.errPrintf("check-legacy-imports: %s\n", s.paint(errorStyle, fmt.Sprintf("%d violation(s) found", len(violations))))

	return nil
}

// DisplayExportProblems prints the export map validation outcome.
func (s *SimpleUI) DisplayExportProblems(ctx context.Context, problems []m.ExportProblem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(problems) == 0 {
		return s.outPrintf("%s\n", s.paint(successStyle, "Export map validation passed."))
	}

	s.errPrintf("%s\n", s.paint(errorStyle, "Export map validation failed:"))

	for _, problem := range problems {
		s.errPrintf("- %s\n", problem)
	}

	return nil
}

func (s *SimpleUI) printWarnings(warnings []m.Warning) {
	for _, warning := range warnings {
		location := warning.File.Slash()
		if warning.Line > 0 {
			location = fmt.Sprintf("%s:%d", location, warning.Line)
		}

		s.errPrintf("%s %s: %s\n", s.paint(warningStyle, "warning:"), location, warning.Message)
	}
}

func (s *SimpleUI) paint(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

// outPrintf writes formatted output to the underlying cobra command's stdout.
func (s *SimpleUI) outPrintf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}

func (s *SimpleUI) errPrintf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func countLines(text string) int {
	if text == "" {
		return 0
	}

	return strings.Count(text, "\n") + 1
}
