package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrexodia/pangram-webui/internal/analyses"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analyses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd.Context())
		if err != nil {
			return err
		}
		defer closer()

		items, err := svc.List(cmd.Context(), listLimit, 0)
		if err != nil {
			return err
		}
		printTable(cmd.OutOrStdout(), items)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "maximum number of analyses to show")
}

// printTable renders analyses as a fixed-width table shared by list and
// search.
func printTable(w io.Writer, items []analyses.Analysis) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No analyses found.")
		return
	}
	fmt.Fprintf(w, "%-5s %-20s %-12s %7s %-s\n", "ID", "Date", "Verdict", "Words", "Preview")
	for _, a := range items {
		fmt.Fprintf(w, "%-5d %-20s %-12s %7d %-s\n",
			a.ID,
			a.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			a.PredictionShort,
			a.WordCount,
			a.Preview(60),
		)
	}
}
