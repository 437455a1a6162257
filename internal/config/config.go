// Package config loads contacts settings from a config file, CONTACTS_*
// environment variables and bound command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/goliatone/go-contacts/internal/logger"
)

// EnvPrefix namespaces environment overrides, e.g. CONTACTS_SERVER_ADDR.
const EnvPrefix = "CONTACTS"

// Config is the resolved application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Seed   SeedConfig
	Theme  ThemeConfig
	UI     UIConfig
}

type ServerConfig struct {
	Addr  string
	Grace time.Duration // shutdown grace period
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

type SeedConfig struct {
	Path string // empty uses the embedded seed
}

type ThemeConfig struct {
	Name    string
	Variant string
}

type UIConfig struct {
	TemplatesDir string
	FormPreset   string // YAML or JSON form preset file
	BasePath     string
}

// Option customises Load.
type Option func(*loadOptions)

type loadOptions struct {
	v           *viper.Viper
	file        string
	searchPaths []string
}

// WithViper loads from v, typically one with command flags already bound.
func WithViper(v *viper.Viper) Option {
	return func(o *loadOptions) {
		o.v = v
	}
}

// WithConfigFile reads the given file. It must exist.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) {
		o.file = path
	}
}

// WithSearchPaths replaces the directories searched for contacts.yaml.
func WithSearchPaths(paths ...string) Option {
	return func(o *loadOptions) {
		o.searchPaths = append([]string(nil), paths...)
	}
}

// Load resolves configuration. Precedence: flags, env, file, defaults.
func Load(opts ...Option) (*Config, error) {
	o := loadOptions{searchPaths: []string{".", "$HOME/.config/contacts"}}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	v := o.v
	if v == nil {
		v = viper.New()
	}

	if o.file != "" {
		v.SetConfigFile(o.file)
	} else {
		v.SetConfigName("contacts")
		v.SetConfigType("yaml")
		for _, path := range o.searchPaths {
			v.AddConfigPath(path)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Addr:  v.GetString("server.addr"),
			Grace: v.GetDuration("server.grace"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Seed: SeedConfig{
			Path: v.GetString("seed.path"),
		},
		Theme: ThemeConfig{
			Name:    v.GetString("theme.name"),
			Variant: v.GetString("theme.variant"),
		},
		UI: UIConfig{
			TemplatesDir: v.GetString("ui.templates_dir"),
			FormPreset:   v.GetString("ui.form_preset"),
			BasePath:     v.GetString("ui.base_path"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.Grace == 0 {
		cfg.Server.Grace = 5 * time.Second
	}
	defaults := logger.DefaultConfig()
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Format
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = defaults.Output
	}
	if cfg.UI.BasePath == "" {
		cfg.UI.BasePath = "/"
	}
}

func (c *Config) validate() error {
	if c.Server.Grace < 0 {
		return fmt.Errorf("config: server.grace cannot be negative, got %s", c.Server.Grace)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Theme.Variant != "" && c.Theme.Name == "" {
		return fmt.Errorf("config: theme.variant %q needs theme.name", c.Theme.Variant)
	}
	if !strings.HasPrefix(c.UI.BasePath, "/") {
		return fmt.Errorf("config: ui.base_path must start with /, got %q", c.UI.BasePath)
	}
	return nil
}

// Logger returns the logger settings in the form internal/logger expects.
func (c *Config) Logger() *logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format
	cfg.Output = c.Log.Output
	return cfg
}
