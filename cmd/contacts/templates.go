package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	contacts "github.com/goliatone/go-contacts"
)

func newTemplatesCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "templates DIR",
		Short: "Copy the built-in page templates into DIR",
		Long: `Writes page.tmpl, form.tmpl, control.tmpl and list.tmpl into DIR as a
starting point for --templates-dir. Files left out of DIR keep using the
built-in copy. Existing files are kept unless --force is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := exportTemplates(contacts.EmbeddedTemplates(), args[0], force)
			for _, name := range written {
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(args[0], name))
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}

func exportTemplates(src fs.FS, dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	entries, err := fs.ReadDir(src, ".")
	if err != nil {
		return nil, fmt.Errorf("templates: list bundle: %w", err)
	}

	var written []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		target := filepath.Join(dir, entry.Name())
		if !force {
			if _, err := os.Stat(target); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return written, fmt.Errorf("templates: %w", err)
			}
		}
		data, err := fs.ReadFile(src, entry.Name())
		if err != nil {
			return written, fmt.Errorf("templates: read %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return written, fmt.Errorf("templates: %w", err)
		}
		written = append(written, entry.Name())
	}
	return written, nil
}
