package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "loxcheck"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	interpreterFlagName    = "interpreter"
	interpreterArgFlagName = "interpreter-arg"
	suffixFlagName         = "suffix"
	excludeFlagName        = "exclude"
	timeoutFlagName        = "timeout"
	showPassedFlagName     = "show-passed"
	summaryFlagName        = "summary"
	diffFlagName           = "diff"
	reportFlagName         = "report"
	colorFlagName          = "color"
	logFileFlagName        = "log-file"
	verboseFlagName        = "verbose"

	interpreterCommandKey = "interpreter.command"
	interpreterArgsKey    = "interpreter.args"
	suffixConfigKey       = "paths.suffix"
	excludeConfigKey      = "paths.exclude"
	timeoutConfigKey      = "run.timeout"
	showPassedConfigKey   = "output.show_passed"
	summaryConfigKey      = "output.summary"
	diffConfigKey         = "output.diff"
	reportConfigKey       = "output.report"
	colorConfigKey        = "output.color"

	defaultInterpreter = "jlox"
	defaultSuffix      = ".lox"
	defaultTimeout     = time.Duration(0)
	defaultColor       = "auto"

	envPrefix = "LOXCHECK"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".loxcheck.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr holds a config file that exists but could not be parsed.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(interpreterCommandKey, defaultInterpreter)
	viper.SetDefault(interpreterArgsKey, []string{})
	viper.SetDefault(suffixConfigKey, defaultSuffix)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(timeoutConfigKey, defaultTimeout.String())
	viper.SetDefault(showPassedConfigKey, false)
	viper.SetDefault(summaryConfigKey, false)
	viper.SetDefault(diffConfigKey, false)
	viper.SetDefault(reportConfigKey, "")
	viper.SetDefault(colorConfigKey, defaultColor)

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

		// Reported once the logger is configured.
		configReadErr = err
	}
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

	// Numeric slog levels are accepted as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the default slog logger at a rotating log file.
//
// Diagnostics meant for the user go to stdout; the log file carries the
// runner's own trace. Verbose switches the level to Debug.
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

// parseTimeout accepts Go durations ("10s", "1m30s") or bare seconds. Empty or
// zero disables the per-script timeout.
func parseTimeout(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0, fmt.Errorf("invalid %s %q: must not be negative", timeoutFlagName, value)
		}

		return time.Duration(seconds) * time.Second, nil
	}

	timeout, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", timeoutFlagName, value, err)
	}

	if timeout < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", timeoutFlagName, value)
	}

	return timeout, nil
}
