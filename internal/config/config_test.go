package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sort != "p" {
		t.Errorf("Sort = %q, want %q", cfg.Sort, "p")
	}
	if cfg.Output != "table" {
		t.Errorf("Output = %q, want %q", cfg.Output, "table")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir = %q, want empty", cfg.LogDir)
	}
	if cfg.Shell != "/bin/sh" {
		t.Errorf("Shell = %q, want /bin/sh", cfg.Shell)
	}
	if cfg.GroupDirs {
		t.Error("GroupDirs = true, want false")
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `sort: -mn
output: tab
group_dirs: true
log_level: debug
log_dir: /tmp/findfiles-logs
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Sort != "-mn" {
		t.Errorf("Sort = %q, want %q", cfg.Sort, "-mn")
	}
	if cfg.Output != "tab" {
		t.Errorf("Output = %q, want %q", cfg.Output, "tab")
	}
	if !cfg.GroupDirs {
		t.Error("GroupDirs = false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogDir != "/tmp/findfiles-logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/tmp/findfiles-logs")
	}
	// Unset fields keep their defaults.
	if cfg.Shell != "/bin/sh" {
		t.Errorf("Shell = %q, want default /bin/sh", cfg.Shell)
	}
}

// TestLoadConfigMissingFile verifies that a missing file yields defaults
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Output != "table" {
		t.Errorf("Output = %q, want default table", cfg.Output)
	}
}

// TestLoadConfigMalformedFile verifies that invalid YAML is an error
func TestLoadConfigMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("sort: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() should fail on malformed YAML")
	}
}

// TestMergeWithFlags verifies that only set flags override config values
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	sort := "-s"
	group := true

	cfg.MergeWithFlags(&sort, nil, nil, nil, &group)

	if cfg.Sort != "-s" {
		t.Errorf("Sort = %q, want %q", cfg.Sort, "-s")
	}
	if !cfg.GroupDirs {
		t.Error("GroupDirs = false, want true")
	}
	if cfg.Output != "table" {
		t.Errorf("Output = %q, want untouched default table", cfg.Output)
	}
}

// TestValidate verifies configuration validation rules
func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Output = "csv"
	if err := cfg.Validate(); err == nil {
		t.Error("invalid output mode should fail validation")
	}

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("invalid log level should fail validation")
	}

	cfg = DefaultConfig()
	cfg.Shell = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty shell should fail validation")
	}
}
