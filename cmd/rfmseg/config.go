// Command rfmseg - layered configuration.
//
// Precedence (highest wins): RFMSEG_* environment variables > optional
// YAML config file > built-in defaults. The file path comes from
// RFMSEG_CONFIG or defaults to ./rfmseg.yaml.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// configPathEnvVar overrides the config file location.
const configPathEnvVar = "RFMSEG_CONFIG"

// defaultConfigPath is used when configPathEnvVar is unset.
const defaultConfigPath = "rfmseg.yaml"

// envPrefix namespaces the environment overrides (RFMSEG_K, RFMSEG_SEED, ...).
const envPrefix = "RFMSEG_"

// Config is the CLI configuration. Flat keys keep the env mapping
// trivial: RFMSEG_NUM_INIT -> num_init.
type Config struct {
	// Mode selects the run: "segment" (cluster + write output) or
	// "sweep" (print k diagnostics).
	Mode string `koanf:"mode"`

	// Input is the transaction CSV path
	// (header: customer_id,order_date,order_total).
	Input string `koanf:"input"`

	// Output is the assignment CSV path (segment mode).
	Output string `koanf:"output"`

	// Artifacts is the fitted scaler+centroid JSON path (segment mode).
	Artifacts string `koanf:"artifacts"`

	// Snapshot is the RFM reference date, RFC3339 or 2006-01-02.
	// Empty derives max(order_date) + 24h.
	Snapshot string `koanf:"snapshot"`

	// K is the cluster count for segment mode.
	K int `koanf:"k"`

	// Seed fixes the k-means RNG; 0 selects the library default.
	Seed int64 `koanf:"seed"`

	// NumInit is the k-means restart count.
	NumInit int `koanf:"num_init"`

	// SweepMin / SweepMax bound the k range for sweep mode.
	SweepMin int `koanf:"sweep_min"`
	SweepMax int `koanf:"sweep_max"`

	// DropInvalidRows switches ingestion from reject-batch (default)
	// to drop-rows.
	DropInvalidRows bool `koanf:"drop_invalid_rows"`

	// LogLevel is a zerolog level string (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`

	// LogFormat is "console" or "json".
	LogFormat string `koanf:"log_format"`
}

// defaultConfig returns the built-in defaults, applied before file and
// env layers.
func defaultConfig() *Config {
	return &Config{
		Mode:      "segment",
		Input:     "transactions.csv",
		Output:    "segments.csv",
		Artifacts: "artifacts.json",
		K:         4,
		Seed:      0,
		NumInit:   10,
		SweepMin:  2,
		SweepMax:  10,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// loadConfig builds the layered configuration.
func loadConfig() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: struct defaults.
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// Layer 2: optional YAML file.
	path := os.Getenv(configPathEnvVar)
	if path == "" {
		path = defaultConfigPath
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Layer 3: RFMSEG_* environment overrides.
	envProvider := env.Provider(envPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects configurations the pipeline would refuse anyway,
// with friendlier messages.
func (c *Config) validate() error {
	switch c.Mode {
	case "segment", "sweep":
	default:
		return fmt.Errorf("mode must be \"segment\" or \"sweep\", got %q", c.Mode)
	}
	if c.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Mode == "segment" && c.K < 1 {
		return fmt.Errorf("k must be at least 1, got %d", c.K)
	}
	if c.Mode == "sweep" && c.SweepMin < 2 {
		return fmt.Errorf("sweep_min must be at least 2, got %d", c.SweepMin)
	}
	return nil
}
