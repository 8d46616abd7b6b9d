package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics for the analysis history",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd.Context())
		if err != nil {
			return err
		}
		defer closer()

		stats, err := svc.Stats(cmd.Context())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Usage Statistics")
		fmt.Fprintln(w, "----------------")
		fmt.Fprintf(w, "Total analyses: %d\n", stats.TotalAnalyses)
		fmt.Fprintf(w, "Total words:    %d\n", stats.TotalWords)
		fmt.Fprintf(w, "Total credits:  %d\n", stats.TotalCredits)
		fmt.Fprintf(w, "Total cost:     $%.2f\n", stats.TotalCost)
		if stats.FirstAnalysis != nil {
			fmt.Fprintf(w, "First analysis: %s\n", stats.FirstAnalysis.Local().Format("2006-01-02 15:04:05"))
		}
		if stats.LastAnalysis != nil {
			fmt.Fprintf(w, "Last analysis:  %s\n", stats.LastAnalysis.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}
