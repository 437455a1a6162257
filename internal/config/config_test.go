package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

func isolated(t *testing.T) Option {
	t.Helper()
	return WithSearchPaths(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(isolated(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := &Config{
		Server: ServerConfig{Addr: ":8080", Grace: 5 * time.Second},
		Log:    LogConfig{Level: "info", Format: "console", Output: "stderr"},
		UI:     UIConfig{BasePath: "/"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReadsConfigFileFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	body := []byte(`
server:
  addr: 127.0.0.1:9000
  grace: 2s
log:
  level: debug
  format: json
seed:
  path: /tmp/seed.yaml
theme:
  name: contacts
  variant: dark
ui:
  templates_dir: ./tpl
  form_preset: ./preset.yaml
`)
	if err := os.WriteFile(filepath.Join(dir, "contacts.yaml"), body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(WithSearchPaths(dir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{
		Server: ServerConfig{Addr: "127.0.0.1:9000", Grace: 2 * time.Second},
		Log:    LogConfig{Level: "debug", Format: "json", Output: "stderr"},
		Seed:   SeedConfig{Path: "/tmp/seed.yaml"},
		Theme:  ThemeConfig{Name: "contacts", Variant: "dark"},
		UI:     UIConfig{TemplatesDir: "./tpl", FormPreset: "./preset.yaml", BasePath: "/"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: :7000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONTACTS_SERVER_ADDR", ":7100")
	t.Setenv("CONTACTS_LOG_LEVEL", "warn")

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":7100" || cfg.Log.Level != "warn" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestBoundViperValuesWin(t *testing.T) {
	t.Setenv("CONTACTS_SEED_PATH", "from-env.yaml")
	v := viper.New()
	v.Set("seed.path", "from-flag.yaml")

	cfg, err := Load(WithViper(v), isolated(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed.Path != "from-flag.yaml" {
		t.Fatalf("seed path = %q", cfg.Seed.Path)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Fatalf("expected error for explicit missing file")
	}

	tests := map[string]string{
		"CONTACTS_SERVER_GRACE":  "-1s",
		"CONTACTS_LOG_LEVEL":     "loud",
		"CONTACTS_LOG_FORMAT":    "xml",
		"CONTACTS_THEME_VARIANT": "dark",
		"CONTACTS_UI_BASE_PATH":  "app",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(isolated(t)); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoggerConfig(t *testing.T) {
	cfg, err := Load(isolated(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	lc := cfg.Logger()
	if lc.Level != "info" || lc.Format != "console" || lc.Output != "stderr" || lc.TimeFormat == "" {
		t.Fatalf("unexpected logger config %+v", lc)
	}
}
