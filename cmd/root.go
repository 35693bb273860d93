// Package cmd provides the root command and CLI setup for namespacer.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"namespacer.dev/pkg/namespacer/internal/adapter"
	"namespacer.dev/pkg/namespacer/internal/controller"
	"namespacer.dev/pkg/namespacer/internal/domain"
	m "namespacer.dev/pkg/namespacer/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var symbolMapStore adapter.SymbolMapStore
var manifestAdapter adapter.ManifestAdapter
var discovery domain.SourceDiscovery
var workflow domain.Workflow
var ui controller.UI

// configPathFlag points at an explicit configuration file.
var configPathFlag string

// rootDirFlag is the project root every configured path is relative to.
var rootDirFlag string

// packageNameFlag is the published package whose root imports are migrated.
var packageNameFlag string

// excludePatterns is a root-level flag that filters source files for applicable commands.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	symbolMapStore = adapter.NewFileSymbolMapStore(fsAdapter)
	manifestAdapter = adapter.NewPackageJSONAdapter(fsAdapter)
	discovery = domain.NewSourceDiscovery(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		symbolMapStore,
		manifestAdapter,
		ui,
		discovery,
	)
}

const rootLongDescription = `Namespacer migrates flat root-package imports of a TypeScript SDK into
namespaced submodule imports and guards the migrated tree against regressions.

Typical flow:
  namespacer generate-map           build the symbol map from the barrel file
  namespacer rewrite                preview the import rewrite (dry run)
  namespacer rewrite --write        apply it
  namespacer check-legacy-imports   fail on package imports of transitional files
  namespacer check-exports          validate the package.json export map`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "namespacer",
		Short:         "Namespace-import codemod for TypeScript SDKs",
		Long:          rootLongDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := initConfig(configPathFlag); err != nil {
				return err
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with its persistent flags but no subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configPathFlag, configFlagName, "", "config file (default ./"+configFileName+")")

	cmd.PersistentFlags().StringVar(&rootDirFlag, rootFlagName, viper.GetString(rootConfigKey), "project root directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().StringVar(&packageNameFlag, packageFlagName, viper.GetString(packageNameKey), "published package name whose imports are rewritten")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(packageFlagName), packageNameKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude source files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(exitCode(rootCmd.ErrOrStderr(), err))
	}
}

// projectPath resolves the configured path under key against the project root.
func projectPath(key string) m.Path {
	value := viper.GetString(key)
	if filepath.IsAbs(value) {
		return m.Path(value)
	}

	return m.Path(filepath.Join(viper.GetString(rootConfigKey), value))
}

func sourceArgs() domain.SourceArgs {
	return domain.SourceArgs{
		Root:       m.Path(viper.GetString(rootConfigKey)),
		Source:     m.Path(viper.GetString(sourceDirKey)),
		Extensions: viper.GetStringSlice(extensionsKey),
		Exclude:    viper.GetStringSlice(excludeConfigKey),
	}
}
