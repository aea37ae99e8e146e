package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/zoobzio/pluck"
)

const (
	configBaseName = ".pluck"
	configType     = "yaml"
	configFolder   = "."

	envPrefix = "PLUCK"

	delimiterFlagName = "delimiter"
	formatFlagName    = "format"
	configFlagName    = "config"
	defaultFlagName   = "default"
	parentsFlagName   = "parents"
	rawFlagName       = "raw"
	logFileFlagName   = "log-file"
	verboseFlagName   = "verbose"

	defaultFormat = "auto"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogLevel      = "warn"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// setup loads configuration and builds the logger and engine.
func (a *app) setup(cmd *cobra.Command) error {
	v := a.v
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)

	if err := a.readConfig(); err != nil {
		return err
	}

	a.logger = newLogger(cmd.ErrOrStderr(), v)

	engine, err := pluck.New(pluck.WithDelimiter(v.GetString(delimiterFlagName)))
	if err != nil {
		return fmt.Errorf("configuring engine: %w", err)
	}
	a.engine = engine

	a.logger.Debug("configuration loaded",
		"config", v.ConfigFileUsed(),
		"delimiter", v.GetString(delimiterFlagName),
		"format", v.GetString(formatFlagName),
	)
	return nil
}

// readConfig reads an explicit --config file, or .pluck.yaml when present.
func (a *app) readConfig() error {
	v := a.v
	explicit := v.GetString(configFlagName)
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(configBaseName)
		v.SetConfigType(configType)
		v.AddConfigPath(configFolder)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
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

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// newLogger logs to stderr, or to a rotated file when log.filename is set.
func newLogger(stderr io.Writer, v *viper.Viper) *slog.Logger {
	level := parseSlogLevel(v.GetString(logLevelKey), slog.LevelWarn)
	if v.GetBool(logVerboseKey) {
		level = slog.LevelDebug
	}

	var w io.Writer = stderr
	if path := strings.TrimSpace(v.GetString(logFilenameKey)); path != "" {
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    v.GetInt(logMaxSizeKey),
			MaxBackups: v.GetInt(logMaxBackupsKey),
			MaxAge:     v.GetInt(logMaxAgeKey),
			Compress:   v.GetBool(logCompressKey),
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
