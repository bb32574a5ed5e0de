package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the benchmark profile.
type Config struct {
	Seed       int64            `mapstructure:"seed"`
	Scaling    ScalingConfig    `mapstructure:"scaling"`
	Scenarios  ScenarioConfig   `mapstructure:"scenarios"`
	Comparison ComparisonConfig `mapstructure:"comparison"`
	Report     ReportConfig     `mapstructure:"report"`
}

// ScalingConfig controls the insert and search scaling runs.
type ScalingConfig struct {
	Counts    []int `mapstructure:"counts"`
	MinLength int   `mapstructure:"min_length"`
	MaxLength int   `mapstructure:"max_length"`
}

// ScenarioConfig controls the worst case scenarios.
type ScenarioConfig struct {
	Size         int `mapstructure:"size"`
	SearchSample int `mapstructure:"search_sample"`
}

// ComparisonConfig controls the comparison against built-in structures.
type ComparisonConfig struct {
	Words int `mapstructure:"words"`
}

// ReportConfig controls how results are rendered.
type ReportConfig struct {
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, the optional file at path and
// TST_ prefixed environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("tst")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 1)

	v.SetDefault("scaling.counts", []int{100, 500, 1000, 2000, 5000, 10000})
	v.SetDefault("scaling.min_length", 3)
	v.SetDefault("scaling.max_length", 10)

	v.SetDefault("scenarios.size", 1000)
	v.SetDefault("scenarios.search_sample", 100)

	v.SetDefault("comparison.words", 5000)

	v.SetDefault("report.format", "text")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Scaling.Counts) == 0 {
		return fmt.Errorf("scaling counts cannot be empty")
	}
	for _, count := range c.Scaling.Counts {
		if count <= 0 {
			return fmt.Errorf("invalid scaling count: %d", count)
		}
	}
	if c.Scaling.MinLength <= 0 || c.Scaling.MinLength > c.Scaling.MaxLength {
		return fmt.Errorf("invalid word length range: %d-%d", c.Scaling.MinLength, c.Scaling.MaxLength)
	}
	if c.Scenarios.Size <= 0 {
		return fmt.Errorf("invalid scenario size: %d", c.Scenarios.Size)
	}
	if c.Scenarios.SearchSample <= 0 {
		return fmt.Errorf("invalid scenario search sample: %d", c.Scenarios.SearchSample)
	}
	if c.Comparison.Words <= 0 {
		return fmt.Errorf("invalid comparison word count: %d", c.Comparison.Words)
	}
	switch c.Report.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("unknown report format: %q", c.Report.Format)
	}
	return nil
}
