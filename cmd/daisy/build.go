package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/daisy/internal/site"
)

type buildOptions struct {
	out     string
	workers int
	theme   string
	pretty  bool
	clean   bool
}

func newBuildCmd(flags *rootFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the static gallery",
		Long: `Render the component gallery to static HTML.

This command writes:
  • index.html with every component grouped by category
  • components/<name>.html with each demo and its markup
  • manifest.json listing every file with its SHA-256

Examples:
  daisy build
  daisy build --out public --workers 8
  daisy build --theme dark --clean`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			_, err := runBuild(ctx, cmd, flags, opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output directory (default from daisy.yaml)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Number of render workers (default from daisy.yaml)")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "Theme for every page (default from daisy.yaml)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the generated HTML")
	cmd.Flags().BoolVar(&opts.clean, "clean", false, "Remove the output directory first")

	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, flags *rootFlags, opts *buildOptions) (*site.Result, error) {
	cfg, cat, log, err := flags.project(cmd)
	if err != nil {
		return nil, err
	}

	p := newPrinter(cmd.OutOrStdout())
	builder := site.New(cfg, cat, log, site.Options{
		OutDir:  opts.out,
		Workers: opts.workers,
		Theme:   opts.theme,
		Pretty:  opts.pretty,
		Clean:   opts.clean,
		OnProgress: func(step string) {
			p.Info(step)
		},
	})

	result, err := builder.Build(ctx)
	if err != nil {
		return nil, err
	}

	var size int64
	for _, f := range result.Manifest.Files {
		size += f.Size
	}
	p.Success("Built %d pages (%s) in %s", len(result.Manifest.Files), formatBytes(size), result.Duration.Round(time.Millisecond))
	p.Info("Output: %s", result.OutDir)
	return result, nil
}
