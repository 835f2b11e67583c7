package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vango-dev/daisy/internal/catalog"
	"github.com/vango-dev/daisy/internal/config"
	"github.com/vango-dev/daisy/internal/logging"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "daisy",
		Short: "Server-rendered DaisyUI components for Go",
		Long: `Daisy renders DaisyUI components to HTML from Go.

Browse the component catalog, render demos, build a static gallery,
preview it with live reload, and publish it to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to daisy.yaml (default: search upwards from the working directory)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newInitCmd(),
		newListCmd(),
		newShowCmd(flags),
		newThemesCmd(flags),
		newBuildCmd(flags),
		newServeCmd(flags),
		newPublishCmd(flags),
		newVersionCmd(),
	)

	return cmd
}

// loadConfig reads --config or discovers daisy.yaml from the working
// directory. Without a project file the defaults apply.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	if f.configPath != "" {
		return config.LoadFile(f.configPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Discover(wd)
}

// logger builds the command logger. Flags take precedence over the log
// section of daisy.yaml.
func (f *rootFlags) logger(cfg *config.Config, w io.Writer) (zerolog.Logger, error) {
	level := cfg.Log.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	if f.verbose {
		level = "debug"
	}
	return logging.New(logging.Options{
		Level:  level,
		Format: cfg.Log.Format,
		Writer: w,
	})
}

// project loads everything a command that touches the gallery needs.
func (f *rootFlags) project(cmd *cobra.Command) (*config.Config, *catalog.Catalog, zerolog.Logger, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}
	log, err := f.logger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}
	return cfg, cat, log, nil
}
