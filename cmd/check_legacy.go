package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"namespacer.dev/pkg/namespacer/internal/domain"
)

func newCheckLegacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-legacy-imports",
		Short: "Fail on package imports of transitional files",
		Long: `Scan the source tree for imports of the published package that reach a
transitional file (configured under legacy.files) through a deep path. Every
occurrence is reported; the command exits 1 when any is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.CheckLegacy(cmd.Context(), domain.CheckLegacyArgs{
				SourceArgs:  sourceArgs(),
				Package:     viper.GetString(packageNameKey),
				LegacyFiles: viper.GetStringSlice(legacyFilesKey),
			})

			return reportedFailure(err, domain.ErrForbiddenImports)
		},
	}
}

func init() {
	rootCmd.AddCommand(newCheckLegacyCmd())
}
