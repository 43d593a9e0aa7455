package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/chatstamp/internal/config"
	"github.com/dmitrymomot/chatstamp/internal/server"
	"github.com/dmitrymomot/chatstamp/pkg/logger"
	"github.com/dmitrymomot/chatstamp/pkg/timefmt"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Start the HTTP API. It shuts down gracefully on SIGINT or SIGTERM.

Examples:
  chatstamp serve                      # listen on the configured address
  chatstamp serve --address :9090      # override the address
  chatstamp serve --tz Europe/Berlin   # override the default zone`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			extra := map[string]any{}
			if cmd.Flags().Changed("address") {
				extra[config.KeyServerAddress] = address
			}
			cfg, err := opts.load(cmd, extra)
			if err != nil {
				return err
			}

			log, flush := logger.NewWithSentry(
				logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cmd.ErrOrStderr()},
				cfg.Sentry,
				server.LogExtractors()...,
			)
			defer flush()
			if cfg.File != "" {
				log.Info("config loaded", "file", cfg.File)
			}

			localizer, err := timefmt.DefaultLocalizer()
			if err != nil {
				return fmt.Errorf("load vocabulary: %w", err)
			}
			f, err := timefmt.New(append(cfg.FormatterOptions(), timefmt.WithLocalizer(localizer))...)
			if err != nil {
				return fmt.Errorf("build formatter: %w", err)
			}

			srv := server.New(cfg, f,
				server.WithLogger(log),
				server.WithLanguages(localizer.Languages()...),
			)
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address (default from config)")
	return cmd
}
