package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrexodia/pangram-webui/internal/analyses"
	"github.com/mrexodia/pangram-webui/internal/highlight"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one stored analysis in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		svc, closer, err := openService(cmd.Context())
		if err != nil {
			return err
		}
		defer closer()

		view, err := svc.Get(cmd.Context(), id)
		if errors.Is(err, analyses.ErrNotFound) {
			return fmt.Errorf("no analysis with id %d", id)
		}
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if showJSON {
			var buf bytes.Buffer
			if err := json.Indent(&buf, view.Analysis.ResponseJSON, "", "  "); err != nil {
				return fmt.Errorf("stored response is not valid JSON: %w", err)
			}
			fmt.Fprintln(w, buf.String())
			return nil
		}

		a := view.Analysis
		fmt.Fprintf(w, "Analysis #%d\n", a.ID)
		fmt.Fprintf(w, "Date:        %s\n", a.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Verdict:     %s\n", a.PredictionShort)
		if a.Headline != "" {
			fmt.Fprintf(w, "Headline:    %s\n", a.Headline)
		}
		fmt.Fprintf(w, "AI:          %.1f%%\n", a.FractionAI*100)
		fmt.Fprintf(w, "AI-assisted: %.1f%%\n", a.FractionAIAssisted*100)
		fmt.Fprintf(w, "Human:       %.1f%%\n", a.FractionHuman*100)
		fmt.Fprintf(w, "Words:       %d\n", a.WordCount)
		fmt.Fprintf(w, "Credits:     %d ($%.2f)\n", view.Estimate.Credits, view.Estimate.Cost)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Text:")
		for _, seg := range view.Segments {
			switch seg.Label {
			case highlight.LabelUnlabeled:
				fmt.Fprintf(w, "%s", seg.Text)
			default:
				fmt.Fprintf(w, "[%s]%s[/%s]", seg.Label, seg.Text, seg.Label)
			}
		}
		fmt.Fprintln(w)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the raw stored API response as JSON")
}
