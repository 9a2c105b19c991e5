package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9091" || cfg.Addr() != ":9091" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.ReceiptMessage != "Have a great day!" || !cfg.SeedMenu {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("SEED_MENU", "false")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8088" || cfg.SeedMenu {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DEFAULT_CASHIER=Doug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets the variable process-wide; restore it after the test
	t.Setenv("DEFAULT_CASHIER", "")
	os.Unsetenv("DEFAULT_CASHIER")

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultCashier != "Doug" {
		t.Fatalf("expected cashier from .env, got %q", cfg.DefaultCashier)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bad duration")
	}
}
