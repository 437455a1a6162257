package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-contacts/pkg/renderers/tui"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Manage contacts with terminal prompts",
		Long: `Starts a menu loop on the terminal: add, edit, delete and list contacts
through the same form the HTML page uses. Ctrl+C leaves the loop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.shell(cmd, nil)
		},
	}
}

// shell runs a session; driver is nil outside tests.
func (a *app) shell(cmd *cobra.Command, driver tui.PromptDriver) error {
	html, err := a.htmlRenderer()
	if err != nil {
		return err
	}
	orch, err := a.newOrchestrator(html)
	if err != nil {
		return err
	}
	ctrl, err := a.newController(cmd.Context(), orch)
	if err != nil {
		return err
	}
	session, err := tui.NewSession(ctrl,
		tui.WithOutput(cmd.OutOrStdout()),
		tui.WithPromptDriver(driver),
		tui.WithLogger(a.logger.Named("tui")),
	)
	if err != nil {
		return err
	}
	return session.Run(cmd.Context())
}
