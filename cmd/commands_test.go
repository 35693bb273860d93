package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"namespacer.dev/pkg/namespacer/internal/domain"
	domainmocks "namespacer.dev/pkg/namespacer/internal/domain/mocks"
	m "namespacer.dev/pkg/namespacer/internal/model"
)

// newTestRootCmd returns a root command wired to a mock workflow and a log
// file inside the test's temp dir.
func newTestRootCmd(t *testing.T, sub *cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow
}

func logArgs(t *testing.T, args ...string) []string {
	return append(args, "--log-file", filepath.Join(t.TempDir(), "test.log"))
}

func TestGenerateMapCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newGenerateMapCmd())

	mockWorkflow.On("GenerateMap", mock.Anything, mock.MatchedBy(func(args domain.GenerateMapArgs) bool {
		return args.Barrel == m.Path(filepath.Join("web", "src", "index.ts")) &&
			args.Output == m.Path(filepath.Join("web", "scripts", "symbol-map.json"))
	})).Return(m.SymbolMapResult{Entries: 3}, nil)

	cmd.SetArgs(logArgs(t, "generate-map", "--root", "web"))
	require.NoError(t, cmd.Execute())
}

func TestGenerateMapCmd_Error(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newGenerateMapCmd())

	mockWorkflow.On("GenerateMap", mock.Anything, mock.Anything).
		Return(m.SymbolMapResult{}, fmt.Errorf("read barrel file: %w", domain.ErrFileNotFound))

	cmd.SetArgs(logArgs(t, "generate-map", "--root", "."))
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
	assert.Equal(t, 1, exitCode(&bytes.Buffer{}, err))
}

func TestRewriteCmd_DryRunByDefault(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newRewriteCmd())

	mockWorkflow.On("Rewrite", mock.Anything, mock.MatchedBy(func(args domain.RewriteArgs) bool {
		return !args.Write &&
			args.Package == defaultPackageName &&
			args.Source == m.Path(defaultSourceDir) &&
			assert.ObjectsAreEqual(defaultExtensions, args.Extensions)
	})).Return(m.RewriteReport{}, nil)

	cmd.SetArgs(logArgs(t, "rewrite", "--root", "."))
	require.NoError(t, cmd.Execute())
}

func TestRewriteCmd_Write(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newRewriteCmd())

	mockWorkflow.On("Rewrite", mock.Anything, mock.MatchedBy(func(args domain.RewriteArgs) bool {
		return args.Write
	})).Return(m.RewriteReport{Write: true}, nil)

	cmd.SetArgs(logArgs(t, "rewrite", "-w", "--root", "."))
	require.NoError(t, cmd.Execute())
}

func TestRewriteCmd_MissingSymbolMap(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newRewriteCmd())

	mockWorkflow.On("Rewrite", mock.Anything, mock.Anything).
		Return(m.RewriteReport{}, fmt.Errorf("%w: map not found", domain.ErrPrerequisiteMissing))

	cmd.SetArgs(logArgs(t, "rewrite", "--root", "."))
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPrerequisiteMissing)

	var exitErr *ExitError
	assert.NotErrorAs(t, err, &exitErr)
}

func TestRewriteCmd_RejectsArgs(t *testing.T) {
	cmd, _ := newTestRootCmd(t, newRewriteCmd())

	cmd.SetArgs(logArgs(t, "rewrite", "src"))
	require.Error(t, cmd.Execute())
}

func TestCheckLegacyCmd(t *testing.T) {
	t.Run("clean tree", func(t *testing.T) {
		cmd, mockWorkflow := newTestRootCmd(t, newCheckLegacyCmd())

		mockWorkflow.On("CheckLegacy", mock.Anything, mock.MatchedBy(func(args domain.CheckLegacyArgs) bool {
			return assert.ObjectsAreEqual(defaultLegacyFiles, args.LegacyFiles) &&
				args.Package == defaultPackageName
		})).Return(nil, nil)

		cmd.SetArgs(logArgs(t, "check-legacy-imports", "--root", "."))
		require.NoError(t, cmd.Execute())
	})

	t.Run("violations exit 1 silently", func(t *testing.T) {
		cmd, mockWorkflow := newTestRootCmd(t, newCheckLegacyCmd())

		violations := []m.Violation{{File: "src/a.ts", Line: 1, Text: "from 'x'"}}
		mockWorkflow.On("CheckLegacy", mock.Anything, mock.Anything).
			Return(violations, fmt.Errorf("%w: 1 found", domain.ErrForbiddenImports))

		cmd.SetArgs(logArgs(t, "check-legacy-imports", "--root", "."))
		err := cmd.Execute()
		require.Error(t, err)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.Code)

		stderr := &bytes.Buffer{}
		assert.Equal(t, 1, exitCode(stderr, err))
		assert.Empty(t, stderr.String())
	})
}

func TestCheckExportsCmd(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, mockWorkflow := newTestRootCmd(t, newCheckExportsCmd())

		mockWorkflow.On("CheckExports", mock.Anything, mock.MatchedBy(func(args domain.CheckExportsArgs) bool {
			return args.Manifest == m.Path("package.json") &&
				assert.ObjectsAreEqual(defaultExpectedExports, args.Expected)
		})).Return(nil, nil)

		cmd.SetArgs(logArgs(t, "check-exports", "--root", "."))
		require.NoError(t, cmd.Execute())
	})

	t.Run("invalid", func(t *testing.T) {
		cmd, mockWorkflow := newTestRootCmd(t, newCheckExportsCmd())

		mockWorkflow.On("CheckExports", mock.Anything, mock.Anything).
			Return([]m.ExportProblem{"Missing export pattern: ./loads/*"}, fmt.Errorf("%w: 1 problem(s)", domain.ErrInvalidExportMap))

		cmd.SetArgs(logArgs(t, "check-exports", "--root", "."))
		err := cmd.Execute()

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.Code)
	})
}

func TestGenerateMapCmd_OutputFlagListsFormats(t *testing.T) {
	flag := newGenerateMapCmd().Flags().Lookup(outputFlagName)
	require.NotNil(t, flag)

	for _, ext := range []string{".json", ".yaml", ".toml"} {
		assert.Contains(t, flag.Usage, ext)
	}
}
