package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// DemoConfig represents the demonstration run
type DemoConfig struct {
	Precision int       `mapstructure:"precision"` // Decimal places printed for each result
	Datasets  []Dataset `mapstructure:"datasets"`
}

// Dataset is one named pair of value and weight sequences.
// Elements stay loosely typed so that nulls and non-numeric entries in a
// config file reach the calculator and are reported there.
type Dataset struct {
	Name    string        `mapstructure:"name"`
	Values  []interface{} `mapstructure:"values"`
	Weights []interface{} `mapstructure:"weights"`
}

// MaxPrecision is the largest accepted demo.precision
const MaxPrecision = 10

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := c.Demo.Validate(); err != nil {
		return fmt.Errorf("demo config: %w", err)
	}

	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}

// Validate validates demo configuration. Dataset contents are left to the
// calculator so invalid examples can be supplied on purpose.
func (c *DemoConfig) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("demo.precision must be between 0 and %d, got %d", MaxPrecision, c.Precision)
	}

	seen := make(map[string]bool, len(c.Datasets))
	for i, ds := range c.Datasets {
		if ds.Name == "" {
			return fmt.Errorf("demo.datasets[%d].name is required", i)
		}
		if seen[ds.Name] {
			return fmt.Errorf("duplicate dataset name: %s", ds.Name)
		}
		seen[ds.Name] = true
	}

	return nil
}

// Find returns the dataset with the given name
func (c *DemoConfig) Find(name string) (Dataset, bool) {
	for _, ds := range c.Datasets {
		if ds.Name == name {
			return ds, true
		}
	}
	return Dataset{}, false
}
