package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "namespacer"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	configFlagName   = "config"
	rootFlagName     = "root"
	packageFlagName  = "package"
	excludeFlagName  = "exclude"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"
	writeFlagName    = "write"
	barrelFlagName   = "barrel"
	outputFlagName   = "output"
	manifestFlagName = "manifest"

	rootConfigKey      = "root"
	packageNameKey     = "package.name"
	sourceDirKey       = "paths.source"
	barrelKey          = "paths.barrel"
	symbolMapKey       = "paths.symbol_map"
	extensionsKey      = "paths.extensions"
	excludeConfigKey   = "paths.exclude"
	legacyFilesKey     = "legacy.files"
	exportsManifestKey = "exports.manifest"
	exportsExpectedKey = "exports.expected"

	defaultRoot            = "."
	defaultPackageName     = "@mobidevel/mobione-sdk"
	defaultSourceDir       = "src"
	defaultBarrel          = "src/index.ts"
	defaultSymbolMap       = "scripts/symbol-map.json"
	defaultExportsManifest = "package.json"

	envPrefix = "NAMESPACER"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".namespacer.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultExtensions  = []string{".ts", ".tsx"}
	defaultLegacyFiles = []string{
		"src/order/CMoTOrder.ts",
		"src/load/CMoTLoad.ts",
		"src/visit/CMoTVisit.ts",
		"src/timestamp/CMoTTimeStamp.ts",
		"src/subscription/CMoTSubscription.ts",
	}
	defaultExpectedExports = []string{"loads", "orders"}
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(rootConfigKey, defaultRoot)
	viper.SetDefault(packageNameKey, defaultPackageName)
	viper.SetDefault(sourceDirKey, defaultSourceDir)
	viper.SetDefault(barrelKey, defaultBarrel)
	viper.SetDefault(symbolMapKey, defaultSymbolMap)
	viper.SetDefault(extensionsKey, defaultExtensions)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(legacyFilesKey, defaultLegacyFiles)
	viper.SetDefault(exportsManifestKey, defaultExportsManifest)
	viper.SetDefault(exportsExpectedKey, defaultExpectedExports)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// initConfig reads the configuration file. An explicit path must exist; the
// default namespacer.yaml is optional.
func initConfig(path string) error {
	if strings.TrimSpace(path) != "" {
		viper.SetConfigFile(path)

		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}

		return nil
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
