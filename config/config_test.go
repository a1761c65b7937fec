package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "omniweb.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 9000\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host default = %q", cfg.Server.Host)
	}
	if cfg.Database.DSN != "omniweb.db" {
		t.Errorf("dsn default = %q", cfg.Database.DSN)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics path default = %q", cfg.Metrics.Path)
	}
	// metrics are opt-in
	if cfg.Metrics.Enabled {
		t.Error("metrics enabled by default")
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  host: 127.0.0.1
  port: 8081
modules:
  dir: /srv/modules
  ignore: quotes.share,sound.*
  dev_mode: true
database:
  dsn: /var/lib/omniweb.db
logging:
  level: debug
  format: console
metrics:
  enabled: true
`))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Modules.Dir != "/srv/modules" || !cfg.Modules.DevMode {
		t.Errorf("modules = %+v", cfg.Modules)
	}
	if cfg.Modules.Ignore != "quotes.share,sound.*" {
		t.Errorf("ignore = %q", cfg.Modules.Ignore)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics not enabled")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OMNIWEB_SERVER_PORT", "9999")
	t.Setenv("OMNIWEB_DEV_MODE", "sure")
	t.Setenv("OMNIWEB_LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "server:\n  port: 8080\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, env override lost", cfg.Server.Port)
	}
	if !cfg.Modules.DevMode {
		t.Error("dev mode env override lost")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "server:\n  port: 70000\n"},
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("want validation error")
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OMNIWEB_DATABASE_DSN", "test.db")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv error: %v", err)
	}
	if cfg.Database.DSN != "test.db" {
		t.Errorf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port default = %d", cfg.Server.Port)
	}
}
