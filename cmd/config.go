package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"glotscan.dev/pkg/glotscan/internal/domain"
	m "glotscan.dev/pkg/glotscan/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "glotscan"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	envFileName      = ".env"

	cacheFlagName     = "cache"
	noCacheFlagName   = "no-cache"
	excludeFlagName   = "exclude"
	parallelFlagName  = "parallel"
	nameFlagName      = "name"
	groupFlagName     = "group"
	localeFlagName    = "locale"
	contextFlagName   = "context"
	formatFlagName    = "format"
	outputFlagName    = "output"
	dryRunFlagName    = "dry-run"
	verifyFlagName    = "verify"
	warningsFlagName  = "warnings"
	namespaceFlagName = "namespace"
	verboseFlagName   = "verbose"

	cacheConfigKey       = "cache.path"
	excludeConfigKey     = "paths.exclude"
	sourcesConfigKey     = "sources"
	parallelConfigKey    = "scan.parallel"
	functionsConfigKey   = "functions"
	translationsDirKey   = "translations.dir"
	translationsGroupKey = "translations.group"
	baseLocaleKey        = "locale.base"
	metricsFileKey       = "metrics.file"

	defaultCachePath       = ".glotscan/cache"
	defaultNoCache         = false
	defaultScanParallel    = 4
	defaultTranslationsDir = "translations"
	defaultGroup           = "messages"
	defaultBaseLocale      = "en"

	envPrefix = "GLOTSCAN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".glotscan.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	// Values from .env become plain environment variables, so GLOTSCAN_*
	// entries there are picked up by AutomaticEnv below.
	if err := godotenv.Load(envFileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "glotscan: ignoring %s: %v\n", envFileName, err)
	}

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(cacheConfigKey, defaultCachePath)
	viper.SetDefault(noCacheFlagName, defaultNoCache)
	viper.SetDefault(parallelConfigKey, defaultScanParallel)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(translationsDirKey, defaultTranslationsDir)
	viper.SetDefault(translationsGroupKey, defaultGroup)
	viper.SetDefault(baseLocaleKey, defaultBaseLocale)
	viper.SetDefault(metricsFileKey, "")
	viper.SetDefault(functionsConfigKey, defaultFunctionsConfig())

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "glotscan: ignoring %s: %v\n", configFileName, err)
	}
}

// defaultFunctionsConfig renders the built-in translation function names in
// the shape of the functions config section, so init writes them out.
func defaultFunctionsConfig() map[string][]string {
	out := make(map[string][]string, len(domain.DefaultFunctions))
	for lang, names := range domain.DefaultFunctions {
		out[string(lang)] = names
	}

	return out
}

// functionsFromConfig reads the per-language translation function names.
func functionsFromConfig() (map[m.Language][]string, error) {
	var raw map[string][]string
	if err := viper.UnmarshalKey(functionsConfigKey, &raw); err != nil {
		return nil, fmt.Errorf("read %s: %w", functionsConfigKey, err)
	}

	functions := make(map[m.Language][]string, len(raw))
	for lang, names := range raw {
		functions[m.Language(strings.ToLower(lang))] = names
	}

	return functions, nil
}

// sourcesFromConfig reads the source roots registered in the config file.
func sourcesFromConfig() ([]m.SourceRoot, error) {
	var roots []m.SourceRoot
	if err := viper.UnmarshalKey(sourcesConfigKey, &roots); err != nil {
		return nil, fmt.Errorf("read %s: %w", sourcesConfigKey, err)
	}

	return roots, nil
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

	// Numeric slog levels work too, e.g. -4 for debug.
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
