package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"namespacer.dev/pkg/namespacer/internal/domain"
)

var barrelFlag string
var symbolMapOutputFlag string

func newGenerateMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-map",
		Short: "Build the symbol map from the barrel file",
		Long: `Read the package barrel file, collect every named re-export and write the
symbol -> module map used by "rewrite". Star re-exports cannot be enumerated and
produce a warning; the map is still written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.GenerateMap(cmd.Context(), domain.GenerateMapArgs{
				Barrel: projectPath(barrelKey),
				Output: projectPath(symbolMapKey),
			})

			return err
		},
	}

	cmd.Flags().StringVar(&barrelFlag, barrelFlagName, viper.GetString(barrelKey), "barrel file re-exporting the public API")
	bindFlagToConfig(cmd.Flags().Lookup(barrelFlagName), barrelKey)

	cmd.Flags().StringVarP(&symbolMapOutputFlag, outputFlagName, "o", viper.GetString(symbolMapKey), "symbol map output path (.json, .yaml or .toml)")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), symbolMapKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(newGenerateMapCmd())
}
