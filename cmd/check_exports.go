package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"namespacer.dev/pkg/namespacer/internal/domain"
)

var manifestFlag string

func newCheckExportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-exports",
		Short: "Validate the export map of the package manifest",
		Long: `Check that package.json exports a wildcard entry for every expected
submodule folder (exports.expected) and does not expose ./internal paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.CheckExports(cmd.Context(), domain.CheckExportsArgs{
				Manifest: projectPath(exportsManifestKey),
				Expected: viper.GetStringSlice(exportsExpectedKey),
			})

			return reportedFailure(err, domain.ErrInvalidExportMap)
		},
	}

	cmd.Flags().StringVar(&manifestFlag, manifestFlagName, viper.GetString(exportsManifestKey), "package manifest to validate")
	bindFlagToConfig(cmd.Flags().Lookup(manifestFlagName), exportsManifestKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(newCheckExportsCmd())
}
