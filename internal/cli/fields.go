package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List registered fields and the value kinds they accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := a.list.Items()

			return render(cmd.OutOrStdout(), a.output, items, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "FIELD\tEXPECTING")
				for _, field := range a.list.Fields() {
					fmt.Fprintf(tw, "%s\t%s\n", field, items[field])
				}
				return tw.Flush()
			})
		},
	}
}
