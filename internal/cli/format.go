package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/chatstamp/pkg/timefmt"
)

type formatOptions struct {
	now     string
	lang    string
	policy  string
	suffix  bool
	jsonOut bool
}

func newFormatCommand(opts *rootOptions) *cobra.Command {
	fo := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format <ts>...",
		Short: "Render Unix timestamps",
		Long: `Render one line per timestamp. Timestamps are Unix seconds; values of
1e10 or more (11 digits and up) are read as milliseconds. A zero timestamp
prints an empty line.

Examples:
  chatstamp format 1718367300
  chatstamp format --policy relative_short --lang en 1718429400 1718367300
  chatstamp format --now 1718436600 --tz UTC --json 1718367300`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, nil)
			if err != nil {
				return err
			}
			f, err := timefmt.New(cfg.FormatterOptions()...)
			if err != nil {
				return fmt.Errorf("build formatter: %w", err)
			}

			req := timefmt.Request{
				Timezone:   cfg.Timezone,
				Locale:     cfg.FallbackLocale,
				Policy:     timefmt.MessageListStamp,
				WithSuffix: fo.suffix,
			}
			if fo.lang != "" {
				req.Locale = fo.lang
			}
			if fo.policy != "" {
				if req.Policy, err = timefmt.ParsePolicy(fo.policy); err != nil {
					return err
				}
			}
			if fo.now != "" {
				if req.Now, err = timefmt.ParseTimestamp(fo.now); err != nil {
					return fmt.Errorf("--now: %w", err)
				}
			}

			timestamps := make([]timefmt.Timestamp, 0, len(args))
			for _, arg := range args {
				ts, err := timefmt.ParseTimestamp(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				timestamps = append(timestamps, ts)
			}

			stamps, err := f.Stamps(req, timestamps)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if fo.jsonOut {
				enc := json.NewEncoder(out)
				for _, s := range stamps {
					if err := enc.Encode(s); err != nil {
						return err
					}
				}
				return nil
			}
			for _, s := range stamps {
				if _, err := fmt.Fprintln(out, s.Text); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&fo.now, "now", "", "reference time as Unix seconds (default: current time)")
	flags.StringVar(&fo.lang, "lang", "", "locale (default: configured fallback)")
	flags.StringVar(&fo.policy, "policy", "", "message_list, message_bubble, relative_short, relative, date, datetime or day_separator")
	flags.BoolVar(&fo.suffix, "suffix", true, `append "ago" to relative policies`)
	flags.BoolVar(&fo.jsonOut, "json", false, "print one JSON stamp per line")
	return cmd
}
