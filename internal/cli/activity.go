package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"docdash/internal/filter"
	"docdash/internal/model"
	"docdash/internal/service"
)

func newActivityCmd(e *env) *cobra.Command {
	var (
		query  string
		action string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log",
		Example: `  docdash activity --action download
  docdash activity --date 2023-05-14 --query jane`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			crit := filter.ActivityCriteria{Query: query, Action: action}
			if action != filter.All && !model.ActivityAction(action).Valid() {
				return fmt.Errorf("unknown action %q", action)
			}
			if date != "" {
				d, err := time.ParseInLocation("2006-01-02", date, e.loc)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
				}
				crit.Date = &d
			}

			res, err := service.NewActivityService(e.repos.Activity, e.loc).List(cmd.Context(), crit)
			if err != nil {
				return err
			}

			return e.render(cmd.OutOrStdout(), res, func(tw *tabwriter.Writer) {
				if res.Empty {
					fmt.Fprintln(tw, "No activity logs found")
					return
				}
				fmt.Fprintln(tw, "TIME\tUSER\tACTION\tDOCUMENT")
				for _, a := range res.Items {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
						model.FormatDateTime(a.Timestamp.In(e.loc)), a.User.Name, a.Action.PastTense(), a.DocumentName)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Match document or user name")
	cmd.Flags().StringVarP(&action, "action", "a", filter.All, "upload, download, delete, view, comment or all")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Calendar day, YYYY-MM-DD")
	return cmd
}
