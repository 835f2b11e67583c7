package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/daisy/pkg/daisy"
)

func newThemesCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in DaisyUI themes",
		Long:  `List the built-in DaisyUI themes. The theme configured in daisy.yaml is marked with *.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(daisy.ThemeNames()))
			for _, t := range daisy.ThemeNames() {
				names = append(names, t.String())
			}

			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(names)
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			for _, name := range names {
				if name == cfg.Site.Theme {
					fmt.Fprintf(p.w, "%s %s\n", p.success.Render("*"), p.accent.Render(name))
					continue
				}
				fmt.Fprintf(p.w, "  %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
