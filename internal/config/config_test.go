package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, []int{100, 500, 1000, 2000, 5000, 10000}, cfg.Scaling.Counts)
	assert.Equal(t, 3, cfg.Scaling.MinLength)
	assert.Equal(t, 10, cfg.Scaling.MaxLength)
	assert.Equal(t, 1000, cfg.Scenarios.Size)
	assert.Equal(t, 100, cfg.Scenarios.SearchSample)
	assert.Equal(t, 5000, cfg.Comparison.Words)
	assert.Equal(t, "text", cfg.Report.Format)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed: 99
scaling:
  counts: [10, 20]
  max_length: 6
report:
  format: yaml
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, []int{10, 20}, cfg.Scaling.Counts)
	assert.Equal(t, 3, cfg.Scaling.MinLength)
	assert.Equal(t, 6, cfg.Scaling.MaxLength)
	assert.Equal(t, "yaml", cfg.Report.Format)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TST_SEED", "7")
	t.Setenv("TST_COMPARISON_WORDS", "250")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 250, cfg.Comparison.Words)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  format: html\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, `unknown report format: "html"`)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Scaling:    ScalingConfig{Counts: []int{10}, MinLength: 1, MaxLength: 2},
			Scenarios:  ScenarioConfig{Size: 10, SearchSample: 5},
			Comparison: ComparisonConfig{Words: 10},
			Report:     ReportConfig{Format: "text"},
		}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(c *Config){
		"empty counts":   func(c *Config) { c.Scaling.Counts = nil },
		"zero count":     func(c *Config) { c.Scaling.Counts = []int{10, 0} },
		"inverted range": func(c *Config) { c.Scaling.MinLength = 5 },
		"zero length":    func(c *Config) { c.Scaling.MinLength = 0 },
		"no scenarios":   func(c *Config) { c.Scenarios.Size = 0 },
		"no sample":      func(c *Config) { c.Scenarios.SearchSample = -1 },
		"no comparison":  func(c *Config) { c.Comparison.Words = 0 },
		"bad format":     func(c *Config) { c.Report.Format = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
