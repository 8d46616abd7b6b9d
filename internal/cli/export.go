package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrexodia/pangram-webui/internal/export"
)

var (
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full history to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(exportFormat)
		if format != "json" && format != "xlsx" {
			return fmt.Errorf("unsupported format %q (want json or xlsx)", exportFormat)
		}

		svc, closer, err := openService(cmd.Context())
		if err != nil {
			return err
		}
		defer closer()

		items, err := svc.Export(cmd.Context())
		if err != nil {
			return err
		}

		out := exportOutput
		if out == "" {
			out = "pangram_export." + format
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		switch format {
		case "xlsx":
			err = export.WriteXLSX(f, items)
		default:
			err = export.WriteJSON(f, items)
		}
		if err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d analyses to %s\n", len(items), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default pangram_export.<format>)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format: json or xlsx")
}
