package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contacts/pkg/render"
)

func newListCmd(a *app) *cobra.Command {
	var rendererName string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the seeded contact list",
		Long: `Prints the list the way a renderer draws it: "text" for terminal lines,
"vanilla" for the HTML fragment, or "json" for the records themselves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.list(cmd, rendererName)
		},
	}
	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "text", "renderer: text, vanilla or json")
	return cmd
}

func (a *app) list(cmd *cobra.Command, rendererName string) error {
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

	if rendererName == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(ctrl.Records())
	}

	out, err := orch.RenderList(cmd.Context(), rendererName, render.NewListView(ctrl.Records()), render.RenderOptions{})
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(out.Body))
	return err
}
