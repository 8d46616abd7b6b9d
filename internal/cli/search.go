package cli

import (
	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search stored analyses by text content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := openService(cmd.Context())
		if err != nil {
			return err
		}
		defer closer()

		items, err := svc.Search(cmd.Context(), args[0], searchLimit)
		if err != nil {
			return err
		}
		printTable(cmd.OutOrStdout(), items)
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of matches to show")
}
