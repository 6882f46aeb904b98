package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "AIRPORT_SEARCH"

// Config holds all configuration for the lookup
type Config struct {
	Dataset DatasetConfig
	Match   MatchConfig
	Output  OutputConfig
	Log     LogConfig
}

// DatasetConfig describes where the airport table lives and how to read it
type DatasetConfig struct {
	Path      string
	Source    string // csv or sqlite
	Delimiter string
	Columns   ColumnsConfig
}

// ColumnsConfig holds the header names of the interpreted columns
type ColumnsConfig struct {
	Code    string
	Country string
	Name    string
}

// MatchConfig holds lookup behaviour settings
type MatchConfig struct {
	Name string // contains or prefix
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// DelimiterRune returns the dataset delimiter as a rune
func (d DatasetConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Delimiter)
	return r
}

// Load loads configuration from defaults, the config file, environment variables
// and, when fs is not nil, the --config, --dataset and --format flags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("dataset.path", "airport-codes_csv.csv")
	v.SetDefault("dataset.source", "csv")
	v.SetDefault("dataset.delimiter", ",")
	v.SetDefault("dataset.columns.code", "iata_code")
	v.SetDefault("dataset.columns.country", "iso_country")
	v.SetDefault("dataset.columns.name", "name")
	v.SetDefault("match.name", "contains")
	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	// Set config file name and type
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Set config file search paths
	v.AddConfigPath("/etc/airport_search")
	v.AddConfigPath(".")

	// Explicit config file: flag first, then environment
	configPath := os.Getenv(EnvPrefix + "_CONFIG_PATH")
	if fs != nil {
		if p, err := fs.GetString("config"); err == nil && p != "" {
			configPath = p
		}
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Read config file (if it exists)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found (or named explicitly) but could not be read
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK - we'll use defaults + env vars
	}

	// Set environment variable prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		bindings := map[string]string{
			"dataset.path":  "dataset",
			"output.format": "format",
		}
		for key, name := range bindings {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	// Build config struct
	cfg := &Config{
		Dataset: DatasetConfig{
			Path:      v.GetString("dataset.path"),
			Source:    strings.ToLower(v.GetString("dataset.source")),
			Delimiter: v.GetString("dataset.delimiter"),
			Columns: ColumnsConfig{
				Code:    v.GetString("dataset.columns.code"),
				Country: v.GetString("dataset.columns.country"),
				Name:    v.GetString("dataset.columns.name"),
			},
		},
		Match: MatchConfig{
			Name: strings.ToLower(v.GetString("match.name")),
		},
		Output: OutputConfig{
			Format: strings.ToLower(v.GetString("output.format")),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}

	validSources := map[string]bool{
		"csv":    true,
		"sqlite": true,
	}
	if !validSources[cfg.Dataset.Source] {
		return fmt.Errorf("invalid dataset source: %s (must be csv or sqlite)", cfg.Dataset.Source)
	}

	if utf8.RuneCountInString(cfg.Dataset.Delimiter) != 1 {
		return fmt.Errorf("dataset.delimiter must be a single character, got %q", cfg.Dataset.Delimiter)
	}
	if d := cfg.Dataset.DelimiterRune(); d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError {
		return fmt.Errorf("invalid dataset delimiter: %q", cfg.Dataset.Delimiter)
	}

	cols := cfg.Dataset.Columns
	if cols.Code == "" || cols.Country == "" || cols.Name == "" {
		return fmt.Errorf("dataset.columns.code, country and name are required")
	}

	validNameMatches := map[string]bool{
		"contains": true,
		"prefix":   true,
	}
	if !validNameMatches[cfg.Match.Name] {
		return fmt.Errorf("invalid name match: %s (must be contains or prefix)", cfg.Match.Name)
	}

	validOutputFormats := map[string]bool{
		"text":  true,
		"csv":   true,
		"json":  true,
		"table": true,
	}
	if !validOutputFormats[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be text, csv, json, or table)", cfg.Output.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.Log.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text":   true,
		"json":   true,
		"pretty": true,
	}
	if !validLogFormats[cfg.Log.Format] {
		return fmt.Errorf("invalid log format: %s (must be text, json, or pretty)", cfg.Log.Format)
	}

	return nil
}
