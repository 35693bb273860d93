package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"namespacer.dev/pkg/namespacer/internal/domain"
)

const rewriteLongDescription = `Split every single-line root-package import into one import per owning
submodule, using the symbol map written by "generate-map".

Without --write the command only reports what would change, with a diff per
file. Imports that name a symbol missing from the map are left untouched and
reported as warnings.`

func newRewriteCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite root-package imports into namespaced imports",
		Long:  rewriteLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.Rewrite(cmd.Context(), domain.RewriteArgs{
				SourceArgs: sourceArgs(),
				Package:    viper.GetString(packageNameKey),
				SymbolMap:  projectPath(symbolMapKey),
				Write:      write,
			})

			return err
		},
	}

	cmd.Flags().BoolVarP(&write, writeFlagName, "w", false, "write changes to disk instead of a dry run")

	return cmd
}

func init() {
	rootCmd.AddCommand(newRewriteCmd())
}
