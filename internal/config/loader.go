package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")         // Current directory
		v.AddConfigPath("./configs") // Project configs directory
		v.AddConfigPath("./config")  // Alternative config directory
		v.AddConfigPath("/etc/wavg") // System-wide config
	}

	// Set defaults
	setDefaults(v)

	// Enable environment variable overrides (WAVG_LOGGING_LEVEL etc.)
	v.SetEnvPrefix("WAVG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; use defaults
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_path", "stderr")
	v.SetDefault("logging.time_format", "RFC3339")

	// Demo defaults
	v.SetDefault("demo.precision", 2)
	v.SetDefault("demo.datasets", defaultDatasetMaps())
}

// parseConfig parses viper config into Config struct
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from file or returns default config
func LoadOrDefault(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		// Return default configuration
		return DefaultConfig()
	}
	return cfg
}

// DefaultDatasets returns the built-in demonstration datasets: two valid
// examples and one that is rejected for having only zero weights.
func DefaultDatasets() []Dataset {
	return []Dataset{
		{
			Name:    "doubles",
			Values:  []interface{}{10.0, 20.0, 30.0},
			Weights: []interface{}{1.0, 2.0, 3.0},
		},
		{
			Name:    "integers",
			Values:  []interface{}{5, 10, 15},
			Weights: []interface{}{1, 3, 1},
		},
		{
			Name:    "zero-weights",
			Values:  []interface{}{10.0, 20.0},
			Weights: []interface{}{0.0, 0.0},
		},
	}
}

// defaultDatasetMaps renders DefaultDatasets in the shape viper decodes from
// a config file.
func defaultDatasetMaps() []map[string]interface{} {
	datasets := DefaultDatasets()
	out := make([]map[string]interface{}, len(datasets))
	for i, ds := range datasets {
		out[i] = map[string]interface{}{
			"name":    ds.Name,
			"values":  ds.Values,
			"weights": ds.Weights,
		}
	}
	return out
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
			TimeFormat: "RFC3339",
		},
		Demo: DemoConfig{
			Precision: 2,
			Datasets:  DefaultDatasets(),
		},
	}
}
