package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. EDUCARE_STORAGE_DB_PATH.
const EnvPrefix = "EDUCARE"

// Config represents the complete application configuration
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	History  HistoryConfig  `mapstructure:"history"`
	Model    ModelConfig    `mapstructure:"model"`
	Feedback FeedbackConfig `mapstructure:"feedback"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// HistoryConfig controls whether predictions are persisted.
type HistoryConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	DefaultLimit int  `mapstructure:"default_limit"`
}

// ModelConfig points at the trained-model artifacts. Empty disables them.
type ModelConfig struct {
	ArtifactDir string `mapstructure:"artifact_dir"`
}

// FeedbackConfig holds the probability jitter seed. Zero seeds from the clock.
type FeedbackConfig struct {
	Seed uint64 `mapstructure:"seed"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultDir returns ~/.educare.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".educare"), nil
}

// Load reads configuration from path and environment variables. An empty path
// looks for config.yaml in the default directory; a missing default file is
// not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	setDefaults(v, dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("storage.db_path", filepath.Join(dir, "educare.db"))

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.default_limit", 20)

	v.SetDefault("model.artifact_dir", "")

	v.SetDefault("feedback.seed", 0)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.History.Enabled && c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required when history is enabled")
	}
	if c.History.DefaultLimit < 1 {
		return fmt.Errorf("history.default_limit must be at least 1")
	}

	if _, ok := logLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured level, defaulting to info.
func (c LoggingConfig) SlogLevel() slog.Level {
	if lvl, ok := logLevels[c.Level]; ok {
		return lvl
	}
	return slog.LevelInfo
}
