package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docdash/internal/filter"
	"docdash/internal/model"
	"docdash/internal/service"
)

func newSyslogCmd(e *env) *cobra.Command {
	var level, query string

	cmd := &cobra.Command{
		Use:   "syslog",
		Short: "Show the system log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if level != filter.All && !model.LogLevel(level).Valid() {
				return fmt.Errorf("unknown level %q", level)
			}

			res, err := service.NewMonitoringService(e.repos.SystemLogs).
				SystemLogs(cmd.Context(), filter.SystemLogCriteria{Level: level, Query: query})
			if err != nil {
				return err
			}

			return e.render(cmd.OutOrStdout(), res, func(tw *tabwriter.Writer) {
				if res.Empty {
					fmt.Fprintln(tw, "No system logs found")
					return
				}
				fmt.Fprintln(tw, "TIME\tLEVEL\tMESSAGE")
				for _, l := range res.Items {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", model.FormatDateTime(l.Timestamp.In(e.loc)), l.Level, l.Message)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", filter.All, "info, warning, error or all")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Match message text")
	return cmd
}

func newMonitoringCmd(e *env) *cobra.Command {
	var rng string

	cmd := &cobra.Command{
		Use:   "monitoring",
		Short: "Show the monitoring overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := service.ParseTimeRange(rng)
			if err != nil {
				return err
			}

			o, err := service.NewMonitoringService(e.repos.SystemLogs).Overview(cmd.Context(), r)
			if err != nil {
				return err
			}

			return e.render(cmd.OutOrStdout(), o, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Range: %s\n\n", o.Range)
				fmt.Fprintln(tw, "STAT\tVALUE\tCHANGE\tNOTE")
				for _, s := range o.Stats {
					fmt.Fprintf(tw, "%s\t%s\t%+d%%\t%s\n", s.Title, s.Value, s.Change, s.Note)
				}
				fmt.Fprintln(tw)
				fmt.Fprintln(tw, "DISTRIBUTION")
				for _, d := range o.Distribution {
					fmt.Fprintln(tw, d.Label)
				}
				fmt.Fprintln(tw)
				fmt.Fprintln(tw, "RECENT\tUSER\tWHEN")
				for _, a := range o.Recent {
					fmt.Fprintf(tw, "%s %s\t%s\t%s\n", a.Action.PastTense(), a.DocumentName, a.User, a.Ago)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&rng, "range", "r", string(service.Range7d), "24h, 7d, 30d or 90d")
	return cmd
}
