package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadParsesAndAppliesDefaults(t *testing.T) {
	raw := `inspect:
  timeout: 10s
  strict: true
`
	path := filepath.Join(t.TempDir(), "targetcheck.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Inspect.Timeout != "10s" {
		t.Errorf("Inspect.Timeout = %q, want 10s", cfg.Inspect.Timeout)
	}
	if !cfg.Inspect.Strict {
		t.Error("expected Inspect.Strict true")
	}
	// Omitted fields get defaults.
	if cfg.CMake.Binary != "cmake" {
		t.Errorf("CMake.Binary = %q, want cmake", cfg.CMake.Binary)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Watch.Debounce != "500ms" {
		t.Errorf("Watch.Debounce = %q, want 500ms", cfg.Watch.Debounce)
	}
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TC_TEST_BINARY", "/opt/cmake/bin/cmake")

	raw := `cmake:
  binary: ${TC_TEST_BINARY}
`
	path := filepath.Join(t.TempDir(), "targetcheck.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CMake.Binary != "/opt/cmake/bin/cmake" {
		t.Errorf("CMake.Binary = %q, want expanded env value", cfg.CMake.Binary)
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	raw := `inspect:
  timeout: soon
`
	path := filepath.Join(t.TempDir(), "targetcheck.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unparseable inspect.timeout")
	}
}

func TestLoadOrDefaultWithoutAnyFile(t *testing.T) {
	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	defer func() { _ = os.Chdir(oldCwd) }()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Inspect.Timeout != "30s" {
		t.Errorf("Inspect.Timeout = %q, want default 30s", cfg.Inspect.Timeout)
	}
	if cfg.Inspect.Strict {
		t.Error("strict mode must default to off")
	}
}

func TestLoadOrDefaultExplicitMissingFileErrors(t *testing.T) {
	_, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("explicitly requested config file must exist")
	}
}

func TestValidateRelationships(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"zero timeout", func(c *Config) { c.Inspect.Timeout = "0s" }, true},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = "-1s" }, true},
		{"bad interval", func(c *Config) { c.Watch.Interval = "often" }, true},
		{"valid interval", func(c *Config) { c.Watch.Interval = "5m" }, false},
		{"empty binary", func(c *Config) { c.CMake.Binary = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := Default()
	if got := cfg.InspectTimeout(); got != 30*time.Second {
		t.Errorf("InspectTimeout() = %v, want 30s", got)
	}
	if got := cfg.WatchDebounce(); got != 500*time.Millisecond {
		t.Errorf("WatchDebounce() = %v, want 500ms", got)
	}
	if got := cfg.WatchInterval(); got != 0 {
		t.Errorf("WatchInterval() = %v, want 0 when unset", got)
	}

	cfg.Watch.Interval = "2m"
	if got := cfg.WatchInterval(); got != 2*time.Minute {
		t.Errorf("WatchInterval() = %v, want 2m", got)
	}
}

func TestInitWritesParseableExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targetcheck.yaml")

	if err := Init(path, false); err != nil {
		t.Fatalf("Init: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read example: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("example config must parse: %v", err)
	}
	if cfg.Inspect.Timeout != "30s" {
		t.Errorf("example inspect.timeout = %q, want 30s", cfg.Inspect.Timeout)
	}

	// Second init without force must refuse to overwrite.
	if err := Init(path, false); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if err := Init(path, true); err != nil {
		t.Fatalf("Init with force: %v", err)
	}
}

func TestNormalizeLogSettings(t *testing.T) {
	if got := NormalizeLogLevel("  DEBUG "); got != LogLevelDebug {
		t.Errorf("NormalizeLogLevel = %v, want debug", got)
	}
	if got := NormalizeLogLevel("chatty"); got != LogLevelInfo {
		t.Errorf("NormalizeLogLevel fallback = %v, want info", got)
	}
	if got := NormalizeLogFormat("JSON"); got != LogFormatJSON {
		t.Errorf("NormalizeLogFormat = %v, want json", got)
	}
	if got := NormalizeLogFormat(""); got != LogFormatText {
		t.Errorf("NormalizeLogFormat fallback = %v, want text", got)
	}
}
