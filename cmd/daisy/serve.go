package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/daisy/internal/preview"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var (
		addr     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview server",
		Long: `Serve the gallery straight from the catalog.

Pages are rendered on every request. Unless --no-reload is given the
server watches the paths listed under preview.watch in daisy.yaml and
reloads connected browsers when they change.

Examples:
  daisy serve
  daisy serve --addr 0.0.0.0:8080
  daisy serve --no-reload`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, log, err := flags.project(cmd)
			if err != nil {
				return err
			}

			srv := preview.New(cfg, cat, log, preview.Options{
				Addr:   addr,
				Reload: cfg.Preview.Reload && !noReload,
			})

			p := newPrinter(cmd.OutOrStdout())
			p.Title("daisy serve")
			p.Info("Local: http://%s", srv.Addr())
			p.Info("Press Ctrl+C to stop")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from daisy.yaml)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable the file watcher and live reload")

	return cmd
}
