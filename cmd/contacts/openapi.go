package main

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	contacts "github.com/goliatone/go-contacts"
)

func newOpenAPICmd() *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the validated form endpoint description as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			document, err := contacts.OpenAPIJSON(cmd.Context(), contacts.NewOrchestrator())
			if err != nil {
				return err
			}
			if !compact {
				var buf bytes.Buffer
				if err := json.Indent(&buf, document, "", "  "); err != nil {
					return err
				}
				document = buf.Bytes()
			}
			out := cmd.OutOrStdout()
			if _, err := out.Write(document); err != nil {
				return err
			}
			_, err = out.Write([]byte("\n"))
			return err
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "skip indentation")
	return cmd
}
