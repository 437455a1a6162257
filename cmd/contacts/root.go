package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-contacts/internal/config"
	"github.com/goliatone/go-contacts/internal/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "contacts",
		Short: "Keep a list of contacts behind one reusable form",
		Long: `contacts keeps an in-memory list of contacts. The same form adds new
entries and updates existing ones; every change re-renders the list.

Run "contacts serve" for the browser page or "contacts shell" for the
terminal prompts. Settings come from flags, CONTACTS_* environment variables
and an optional contacts.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./contacts.yaml if present)")
	flags.String("seed", "", "YAML or JSON seed document (default: bundled seed)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: console or json")
	flags.String("log-output", "", "log output: stderr, stdout or a file path")
	flags.String("form-preset", "", "YAML or JSON preset that relabels form fields")
	a.bind(flags.Lookup("seed"), "seed.path")
	a.bind(flags.Lookup("log-level"), "log.level")
	a.bind(flags.Lookup("log-format"), "log.format")
	a.bind(flags.Lookup("log-output"), "log.output")
	a.bind(flags.Lookup("form-preset"), "ui.form_preset")

	root.AddCommand(
		newServeCmd(a),
		newShellCmd(a),
		newListCmd(a),
		newOpenAPICmd(),
		newTemplatesCmd(),
	)
	return root
}

func (a *app) init() error {
	opts := []config.Option{config.WithViper(a.v)}
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Logger())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = log
	a.logger.Debug("configuration loaded",
		zap.String("config", a.v.ConfigFileUsed()),
		zap.String("seed", cfg.Seed.Path),
	)
	return nil
}

// bind ties a flag to a config key so an explicit flag beats env and file.
func (a *app) bind(flag *pflag.Flag, key string) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}
