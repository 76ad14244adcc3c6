package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docdash/internal/filter"
	"docdash/internal/model"
	"docdash/internal/service"
)

func newDocumentsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "documents [query]",
		Short: "List documents whose name or tags contain the query",
		Example: `  docdash documents
  docdash documents report
  docdash documents -o json "q2"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var crit filter.DocumentCriteria
			if len(args) == 1 {
				crit.Query = args[0]
			}

			res, err := service.NewDocumentService(e.repos.Documents, e.log).List(cmd.Context(), crit)
			if err != nil {
				return err
			}

			return e.render(cmd.OutOrStdout(), res, func(tw *tabwriter.Writer) {
				if res.Empty {
					fmt.Fprintln(tw, "No documents found")
					return
				}
				fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSIZE\tUPLOADED BY\tUPLOADED\tTAGS")
				for _, d := range res.Items {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						d.ID, d.Name, d.Type, d.Size, d.UploadedBy,
						model.FormatDate(d.UploadedAt.In(e.loc)), strings.Join(d.Tags, ","))
				}
			})
		},
	}
}
