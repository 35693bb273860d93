// Package domain implements the namespace-import codemod: symbol map
// generation, import rewriting, the legacy import guard and the export map check.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"namespacer.dev/pkg/namespacer/internal/adapter"
	"namespacer.dev/pkg/namespacer/internal/controller"
	m "namespacer.dev/pkg/namespacer/internal/model"
)

// GenerateMapArgs contains the arguments for building the symbol map.
type GenerateMapArgs struct {
	Barrel m.Path
	Output m.Path
}

// RewriteArgs contains the arguments for rewriting root-package imports.
type RewriteArgs struct {
	SourceArgs
	Package   string
	SymbolMap m.Path
	Write     bool
}

// CheckLegacyArgs contains the arguments for the legacy import guard.
type CheckLegacyArgs struct {
	SourceArgs
	Package     string
	LegacyFiles []string
}

// CheckExportsArgs contains the arguments for validating the export map.
type CheckExportsArgs struct {
	Manifest m.Path
	Expected []string
}

// Workflow defines the commands of the codemod pipeline.
type Workflow interface {
	GenerateMap(ctx context.Context, args GenerateMapArgs) (m.SymbolMapResult, error)
	Rewrite(ctx context.Context, args RewriteArgs) (m.RewriteReport, error)
	CheckLegacy(ctx context.Context, args CheckLegacyArgs) ([]m.Violation, error)
	CheckExports(ctx context.Context, args CheckExportsArgs) ([]m.ExportProblem, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.SymbolMapStore
	adapter.ManifestAdapter
	controller.UI
	SourceDiscovery
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	symbolMapStore adapter.SymbolMapStore,
	manifestAdapter adapter.ManifestAdapter,
	ui controller.UI,
	discovery SourceDiscovery,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		SymbolMapStore:  symbolMapStore,
		ManifestAdapter: manifestAdapter,
		UI:              ui,
		SourceDiscovery: discovery,
	}
}

// GenerateMap reads the barrel file, builds the symbol map and replaces the
// persisted artifact. Nothing is written when the barrel cannot be read.
func (w *workflow) GenerateMap(ctx context.Context, args GenerateMapArgs) (m.SymbolMapResult, error) {
	if err := ctx.Err(); err != nil {
		return m.SymbolMapResult{}, err
	}

	data, err := w.ReadFile(args.Barrel)
	if err != nil {
		slog.Error("Failed to read barrel file", "path", args.Barrel, "error", err)
		return m.SymbolMapResult{}, fmt.Errorf("read barrel file %s: %w: %w", args.Barrel, ErrFileNotFound, err)
	}

	symbols, warnings := BuildSymbolMap(args.Barrel, string(data))

	if err := w.SaveSymbolMap(args.Output, symbols); err != nil {
		slog.Error("Failed to save symbol map", "path", args.Output, "error", err)
		return m.SymbolMapResult{}, fmt.Errorf("save symbol map: %w", err)
	}

	result := m.SymbolMapResult{
		Path:     args.Output,
		Entries:  len(symbols),
		Warnings: warnings,
	}

	slog.Info("Generated symbol map", "path", args.Output, "entries", result.Entries, "warnings", len(warnings))

	if err := w.DisplaySymbolMap(ctx, result); err != nil {
		return result, fmt.Errorf("display: %w", err)
	}

	return result, nil
}

// Rewrite splits root-package imports into namespaced imports. In dry-run mode
// it reports what would change; with args.Write the files are rewritten. The
// symbol map must exist before any source file is read.
func (w *workflow) Rewrite(ctx context.Context, args RewriteArgs) (m.RewriteReport, error) {
	report := m.RewriteReport{Write: args.Write}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	symbols, err := w.LoadSymbolMap(args.SymbolMap)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Error("Symbol map missing", "path", args.SymbolMap)
			return report, fmt.Errorf("%w: %s not found; run \"namespacer generate-map\" first", ErrPrerequisiteMissing, args.SymbolMap)
		}

		return report, fmt.Errorf("load symbol map: %w", err)
	}

	files, err := w.Discover(ctx, args.SourceArgs)
	if err != nil {
		return report, fmt.Errorf("get sources: %w", err)
	}

	rewriter := NewImportRewriter(args.Package, symbols)

	for _, file := range files {
		data, err := w.ReadFile(file.FullPath)
		if err != nil {
			return report, fmt.Errorf("read %s: %w", file.ShortPath, err)
		}

		report.Scanned++

		src := string(data)
		if !rewriter.Qualifies(src) {
			continue
		}

		rewritten, blocks, warnings := rewriter.Rewrite(file.ShortPath, src)
		report.Warnings = append(report.Warnings, warnings...)

		if len(blocks) == 0 {
			continue
		}

		if args.Write {
			if err := w.WriteFile(file.FullPath, []byte(rewritten)); err != nil {
				return report, fmt.Errorf("write %s: %w", file.ShortPath, err)
			}

			slog.Info("Rewrote imports", "file", file.ShortPath, "blocks", len(blocks))
		}

		report.Files = append(report.Files, m.FileChange{
			File:   file,
			Blocks: blocks,
			Before: src,
			After:  rewritten,
		})
	}

	slog.Info("Rewrite finished", "write", args.Write, "scanned", report.Scanned, "modified", report.Modified())

	if err := w.DisplayRewrite(ctx, report); err != nil {
		return report, fmt.Errorf("display: %w", err)
	}

	return report, nil
}

// CheckLegacy scans every source file except the transitional files themselves
// and reports all forbidden imports at once.
func (w *workflow) CheckLegacy(ctx context.Context, args CheckLegacyArgs) ([]m.Violation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := w.Discover(ctx, args.SourceArgs)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	guard := NewLegacyGuard(args.Package, m.NewTransitionalFileSet(args.LegacyFiles), args.Extensions)

	var violations []m.Violation

	for _, file := range files {
		if guard.Skips(file.ShortPath) {
			slog.Debug("skipping transitional file", "file", file.ShortPath)
			continue
		}

		data, err := w.ReadFile(file.FullPath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file.ShortPath, err)
		}

		violations = append(violations, guard.Scan(file.ShortPath, string(data))...)
	}

	if err := w.DisplayViolations(ctx, violations); err != nil {
		return violations, fmt.Errorf("display: %w", err)
	}

	if len(violations) > 0 {
		slog.Warn("Forbidden imports found", "count", len(violations))
		return violations, fmt.Errorf("%w: %d found", ErrForbiddenImports, len(violations))
	}

	return nil, nil
}

// CheckExports validates the export map of the package manifest.
func (w *workflow) CheckExports(ctx context.Context, args CheckExportsArgs) ([]m.ExportProblem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keys, err := w.ExportKeys(args.Manifest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read manifest %s: %w", args.Manifest, ErrFileNotFound)
		}

		return nil, fmt.Errorf("read manifest: %w", err)
	}

	problems := CheckExportMap(keys, args.Expected)

	if err := w.DisplayExportProblems(ctx, problems); err != nil {
		return problems, fmt.Errorf("display: %w", err)
	}

	if len(problems) > 0 {
		return problems, fmt.Errorf("%w: %d problem(s)", ErrInvalidExportMap, len(problems))
	}

	return nil, nil
}
