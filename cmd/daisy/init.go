package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/daisy/internal/config"
	"github.com/vango-dev/daisy/internal/errors"
)

func newInitCmd() *cobra.Command {
	var (
		title string
		theme string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a daisy.yaml with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, config.ConfigFileName)

			if config.Exists(dir) && !force {
				return errors.Newf(errors.CategoryCLI, "%s already exists", path).
					WithSuggestion("Use --force to overwrite it.")
			}

			cfg := config.New()
			if title != "" {
				cfg.Site.Title = title
			}
			if theme != "" {
				cfg.Site.Theme = theme
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.New("E104").Wrap(err)
			}
			if err := cfg.SaveTo(path); err != nil {
				return err
			}

			newPrinter(cmd.OutOrStdout()).Success("Created %s", path)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "  Next: daisy serve")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Site title")
	cmd.Flags().StringVar(&theme, "theme", "", "Default theme")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing daisy.yaml")

	return cmd
}
