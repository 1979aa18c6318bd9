// Package config loads and validates targetcheck configuration.
//
// Configuration is optional: every setting has a working default so the tool
// runs without any file present. When a file is used, environment variables
// in the YAML content are expanded before parsing, and .env files are loaded
// first so expansion can see them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name probed in the working directory
// when no explicit --config flag is given.
const DefaultConfigFile = "targetcheck.yaml"

// Config represents the application configuration
type Config struct {
	CMake   CMakeConfig   `yaml:"cmake"`
	Inspect InspectConfig `yaml:"inspect"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

// CMakeConfig selects the build tool invocation.
type CMakeConfig struct {
	Binary string `yaml:"binary,omitempty"`
}

// InspectConfig tunes a single inspection run. The build directory itself is
// not configurable: it is always <project-root>/build by convention.
type InspectConfig struct {
	Timeout string `yaml:"timeout,omitempty"` // duration string (default 30s)
	Strict  bool   `yaml:"strict,omitempty"`  // treat tool failure exit as fatal
}

// LoggingConfig controls diagnostic output on stderr.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// WatchConfig tunes watch mode.
type WatchConfig struct {
	Debounce string        `yaml:"debounce,omitempty"` // duration string (default 500ms)
	Interval string        `yaml:"interval,omitempty"` // periodic re-inspection, empty disables
	Paths    []string      `yaml:"paths,omitempty"`    // extra paths to watch besides CMakeLists.txt
	Metrics  MetricsConfig `yaml:"metrics"`
}

// MetricsConfig controls the optional Prometheus endpoint in watch mode.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Listen  string `yaml:"listen,omitempty"`
}

// Default returns a configuration populated with working defaults.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	// Load .env files first so ${VAR} expansion below can see them.
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadOrDefault resolves configuration for a run. An explicitly requested
// file must exist; the conventional targetcheck.yaml is used when present
// and silently skipped otherwise.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath != "" {
		return Load(configPath)
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return Load(DefaultConfigFile)
	}

	loadEnvFiles()
	return Default(), nil
}

// applyDefaults fills unset fields with working defaults.
func applyDefaults(cfg *Config) {
	if cfg.CMake.Binary == "" {
		cfg.CMake.Binary = "cmake"
	}
	if cfg.Inspect.Timeout == "" {
		cfg.Inspect.Timeout = "30s"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = string(LogLevelInfo)
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = string(LogFormatText)
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = "500ms"
	}
	if cfg.Watch.Metrics.Listen == "" {
		cfg.Watch.Metrics.Listen = ":9090"
	}
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		CMake: CMakeConfig{
			Binary: "cmake",
		},
		Inspect: InspectConfig{
			Timeout: "30s",
			Strict:  false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Watch: WatchConfig{
			Debounce: "500ms",
			Interval: "5m",
			Paths:    []string{"CMakeLists.txt", "cmake"},
			Metrics: MetricsConfig{
				Enabled: false,
				Listen:  ":9090",
			},
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
