package config_test

import (
	"strings"
	"testing"

	"communify/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_USE_SSL", "DATABASE", "PORT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UsePostgres() {
		t.Error("Expected the SQLite fallback when DB_HOST is unset")
	}
	if cfg.SQLitePath != "./communify.db" {
		t.Errorf("Expected the default SQLite path, got %q", cfg.SQLitePath)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Expected the default listen address :8080, got %q", cfg.Addr())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected the default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE", "/tmp/other.db")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SQLitePath != "/tmp/other.db" {
		t.Errorf("Expected DATABASE to override the SQLite path, got %q", cfg.SQLitePath)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Expected PORT to override the listen address, got %q", cfg.Addr())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LOG_LEVEL to be picked up, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsPartialPostgresConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")

	if _, err := config.Load(); err == nil {
		t.Fatal("Expected an error when DB_HOST is set without the rest of the connection settings")
	}

	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "communify")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "communify")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed with a full PostgreSQL configuration: %v", err)
	}
	if !cfg.UsePostgres() {
		t.Error("Expected the PostgreSQL engine to be selected")
	}
	if !strings.Contains(cfg.DSN(), "sslmode=disable") {
		t.Errorf("Expected sslmode=disable without DB_USE_SSL, got %q", cfg.DSN())
	}
}

func TestLoadRequiresRootCertForSSL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "communify")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "communify")
	t.Setenv("DB_USE_SSL", "true")

	if _, err := config.Load(); err == nil {
		t.Fatal("Expected an error when the root certificate file is missing")
	}
}

func TestDSNWithSSL(t *testing.T) {
	cfg := &config.Config{DBHost: "h", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "d", UseSSL: true}

	dsn := cfg.DSN()
	if !strings.Contains(dsn, "sslmode=verify-ca") {
		t.Errorf("Expected sslmode=verify-ca when SSL is enabled, got %q", dsn)
	}
	if !strings.Contains(dsn, "sslrootcert="+config.RootCertPath) {
		t.Errorf("Expected the root certificate path in the DSN, got %q", dsn)
	}
}
