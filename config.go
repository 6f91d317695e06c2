package gslc

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultConfigFile is looked up in the working directory when --config is not given.
const DefaultConfigFile = "gslc.yaml"

// Config represents the gslc configuration
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Pronounce  PronounceConfig  `yaml:"pronounce"`
	Validation ValidationConfig `yaml:"validation"`
	History    HistoryConfig    `yaml:"history"`
	Batch      BatchConfig      `yaml:"batch"`
	REPL       REPLConfig       `yaml:"repl"`
}

// OutputConfig controls how translations are rendered
type OutputConfig struct {
	Format   string `yaml:"format"`
	Numbered bool   `yaml:"numbered"`
}

// PronounceConfig holds pronunciation defaults
type PronounceConfig struct {
	Steps bool `yaml:"steps"`
}

// ValidationConfig represents validation settings
type ValidationConfig struct {
	Enabled bool `yaml:"enabled"`
	// Strict turns any warning into a failure.
	Strict bool `yaml:"strict"`
}

// HistoryConfig points at the REPL history database
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// BatchConfig controls parallel translation of several inputs
type BatchConfig struct {
	// Parallel is the worker count; 0 means one per CPU.
	Parallel int `yaml:"parallel"`
}

// REPLConfig holds interactive session settings
type REPLConfig struct {
	Prompt       string `yaml:"prompt"`
	HistoryLimit int    `yaml:"history_limit"`
}

var validFormats = map[string]bool{
	"text":     true,
	"markdown": true,
	"html":     true,
	"json":     true,
	"yaml":     true,
	"xml":      true,
	"latex":    true,
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	config := getDefaultConfig()

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		expandConfigEnvVars(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their defaults. Strict mode rejects unknown keys.
	err = yaml.UnmarshalWithOptions(data, config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	applyDefaults(config)
	expandConfigEnvVars(config)

	return config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	if config.Output.Format != "" && !validFormats[config.Output.Format] {
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, markdown, html, json, yaml, xml, latex", ErrConfigValidation, config.Output.Format)
	}

	if config.Batch.Parallel < 0 {
		return fmt.Errorf("%w: batch.parallel must be non-negative, got %d", ErrConfigValidation, config.Batch.Parallel)
	}

	if config.REPL.HistoryLimit < 0 {
		return fmt.Errorf("%w: repl.history_limit must be non-negative, got %d", ErrConfigValidation, config.REPL.HistoryLimit)
	}

	if config.History.Enabled && config.History.Path == "" {
		return fmt.Errorf("%w: history.path is required when history is enabled", ErrConfigValidation)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:   "text",
			Numbered: true,
		},
		Validation: ValidationConfig{
			Enabled: true,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "${HOME}/.gslc_history.db",
		},
		REPL: REPLConfig{
			Prompt:       "gsl> ",
			HistoryLimit: 20,
		},
	}
}

// applyDefaults applies default values to fields left empty in the file
func applyDefaults(config *Config) {
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}

	if config.REPL.Prompt == "" {
		config.REPL.Prompt = "gsl> "
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in path fields
func expandConfigEnvVars(config *Config) {
	config.History.Path = expandEnvVars(config.History.Path)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
