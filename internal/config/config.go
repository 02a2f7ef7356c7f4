package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/nfriday/rifme-grabber/internal/constants"
	"github.com/nfriday/rifme-grabber/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the timeout for a single outbound HTTP request (e.g., "30s", "1m").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxLogLength is the maximum size of request/response dumps in debug logs (e.g., "1MB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// ShowProgress indicates whether to render a progress bar on stderr during the syllable fan-out.
	ShowProgress bool `mapstructure:"show_progress"`
	// RifmeBaseURL is the base URL for the rifme.net service (set automatically).
	RifmeBaseURL string
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMaxLogLength is the parsed maximum log dump size in bytes.
	ParsedMaxLogLength uint64
}

const (
	// RifmeBaseURL is the base URL for the rifme.net service.
	RifmeBaseURL = "https://rifme.net"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".rifme-grabber.yaml"

	// DefaultLogLevel is the logging level used when the configuration doesn't specify one.
	DefaultLogLevel = "info"

	// DefaultRequestTimeout is the request timeout used when the configuration doesn't specify one.
	DefaultRequestTimeout = "60s"

	// DefaultMaxLogLength is the default maximum size (in bytes) for request/response dumps in debug logs.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
// Unlike tools that cannot run unconfigured, the file is optional:
// when configFilename is empty and the default file doesn't exist,
// the built-in defaults are used. A file explicitly requested by the
// caller must exist.
func LoadConfig(configFilename string) (*Config, error) {
	fileIsRequired := configFilename != ""
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if fileIsRequired || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	cfg.RifmeBaseURL = RifmeBaseURL

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !(isLogLevelCorrect) {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	var err error

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	return nil
}

// WriteDefaultConfig writes a configuration file populated with the default
// values to the given path. It refuses to overwrite an existing file.
func WriteDefaultConfig(configFilename string) error {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	if _, err := os.Stat(configFilename); err == nil {
		return fmt.Errorf("config file already exists: %s", configFilename)
	}

	defaults := map[string]any{
		"log_level":       DefaultLogLevel,
		"request_timeout": DefaultRequestTimeout,
		"max_log_length":  "1MB",
		"show_progress":   false,
	}

	content, err := yaml.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err = os.WriteFile(configFilename, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setDefaults registers the built-in defaults with viper so that a missing
// or partial configuration file still produces a complete Config.
func setDefaults() {
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("request_timeout", DefaultRequestTimeout)
	viper.SetDefault("max_log_length", "1MB")
	viper.SetDefault("show_progress", false)
}
