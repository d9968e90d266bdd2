package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
addr: ":9090"
shutdown_timeout: 30s
bank_config: /etc/report-center/banks.ini
chart_top_n: 5
locale: en
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.BankConfigPath != "/etc/report-center/banks.ini" {
		t.Errorf("BankConfigPath = %q", cfg.BankConfigPath)
	}
	if cfg.ChartTopN != 5 {
		t.Errorf("ChartTopN = %d, want 5", cfg.ChartTopN)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "en")
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
bank_config: banks.ini
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("default Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("default ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.ChartTopN != 10 {
		t.Errorf("default ChartTopN = %d, want 10", cfg.ChartTopN)
	}
	if cfg.Locale != "es" {
		t.Errorf("default Locale = %q, want %q", cfg.Locale, "es")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
