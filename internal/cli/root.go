package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/chatstamp/internal/config"
)

// Version information (set at build time via ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configFile string
	logLevel   string
	logFormat  string
	timezone   string
}

// NewRootCommand builds the chatstamp command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "chatstamp",
		Short: "Chat timestamp formatting service",
		Long: `chatstamp renders message timestamps the way a chat client shows them:
"just now", "5 minutes ago", "Yesterday 15:30", a weekday or a date,
localized and computed in an explicit time zone.

Use "chatstamp serve" to run the HTTP API and "chatstamp format" to render
timestamps from the command line.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"config file (default: ./"+config.DefaultFileName+" when present)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: json or text")
	root.PersistentFlags().StringVar(&opts.timezone, "tz", "", "IANA time zone (default from config)")

	root.SetVersionTemplate(fmt.Sprintf("chatstamp %s (%s, %s)\n", Version, shortCommit(), shortDate()))

	root.AddCommand(
		newServeCommand(opts),
		newFormatCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// load reads the configuration with changed flags layered on top.
func (o *rootOptions) load(cmd *cobra.Command, extra map[string]any) (*config.Config, error) {
	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		overrides[config.KeyLogLevel] = o.logLevel
	}
	if flags.Changed("log-format") {
		overrides[config.KeyLogFormat] = o.logFormat
	}
	if flags.Changed("tz") {
		overrides[config.KeyTimezone] = o.timezone
	}
	for k, v := range extra {
		overrides[k] = v
	}

	loadOpts := []config.Option{config.WithOverrides(overrides)}
	if o.configFile != "" {
		loadOpts = append(loadOpts, config.WithFile(o.configFile))
	}
	return config.Load(loadOpts...)
}

// shortCommit returns the first 7 characters of the git commit hash
func shortCommit() string {
	if len(GitCommit) >= 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

// shortDate returns just the date portion of BuildDate (YYYY-MM-DD)
func shortDate() string {
	if len(BuildDate) >= 10 {
		return BuildDate[:10]
	}
	return BuildDate
}
