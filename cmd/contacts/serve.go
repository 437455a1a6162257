package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	contacts "github.com/goliatone/go-contacts"
	"github.com/goliatone/go-contacts/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the contact page over HTTP",
		Long: `Serves the contact page, the list fragment used after deletes, the
stylesheet and runtime script under /assets/, and the form endpoint
description at /openapi.json. SIGINT or SIGTERM shuts down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	flags := cmd.Flags()
	flags.String("addr", "", "listen address (default :8080)")
	flags.Duration("grace", 0, "shutdown grace period (default 5s)")
	flags.String("base-path", "", "mount every route under this prefix")
	flags.String("templates-dir", "", "directory of template overrides")
	flags.String("theme", "", "theme name from the bundled manifest")
	flags.String("variant", "", "theme variant, e.g. dark")
	a.bind(flags.Lookup("addr"), "server.addr")
	a.bind(flags.Lookup("grace"), "server.grace")
	a.bind(flags.Lookup("base-path"), "ui.base_path")
	a.bind(flags.Lookup("templates-dir"), "ui.templates_dir")
	a.bind(flags.Lookup("theme"), "theme.name")
	a.bind(flags.Lookup("variant"), "theme.variant")
	return cmd
}

func (a *app) newServer(ctx context.Context) (*server.Server, error) {
	html, err := a.htmlRenderer()
	if err != nil {
		return nil, err
	}
	orch, err := a.newOrchestrator(html)
	if err != nil {
		return nil, err
	}
	ctrl, err := a.newController(ctx, orch)
	if err != nil {
		return nil, err
	}
	document, err := contacts.OpenAPIJSON(ctx, orch)
	if err != nil {
		return nil, err
	}
	return server.New(ctrl,
		server.WithLogger(a.logger.Named("http")),
		server.WithRenderer(html),
		server.WithBasePath(a.cfg.UI.BasePath),
		server.WithAssets(contacts.RuntimeAssetsFS()),
		server.WithOpenAPI(document),
		server.WithGracePeriod(a.cfg.Server.Grace),
	)
}

func (a *app) serve(ctx context.Context) error {
	srv, err := a.newServer(ctx)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx, a.cfg.Server.Addr)
}
