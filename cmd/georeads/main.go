// Package main provides the georeads command line tool, which maps the
// authors of a Goodreads export onto the countries they come from.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/georeads/georeads/internal/config"
	"github.com/georeads/georeads/internal/logger"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	logLevel string
	env      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "georeads",
		Short:         "Map the authors of a Goodreads export by nationality",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.env, "env", "", "environment used to pick the default API base (development, staging, production)")

	cmd.AddCommand(newAuthorsCmd(opts))
	cmd.AddCommand(newMapCmd(opts))
	return cmd
}

// newLogger builds a stderr logger for a command run.
func (o *rootOptions) newLogger(cmd *cobra.Command) *logger.Logger {
	return logger.New(logger.Config{
		Writer: cmd.ErrOrStderr(),
		Format: logger.FormatPretty,
		Level:  logger.ParseLevel(o.logLevel),
	})
}

// apiBase resolves the lookup API root: flag, then API_BASE, then the
// environment default.
func (o *rootOptions) apiBase(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	var args []string
	if o.env != "" {
		args = append(args, "--env", o.env)
	}
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return cfg.Client.ResolveAPIBase(cfg.App.Environment)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
