package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/mrexodia/pangram-webui/internal/analyses"
	"github.com/mrexodia/pangram-webui/internal/config"
	"github.com/mrexodia/pangram-webui/internal/storage/db"
)

// seedHistory creates a temp database with two analyses and points the CLI
// at it for the duration of the test.
func seedHistory(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	database, err := db.Open(ctx, path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer database.Close()
	if err := db.RunMigrations(ctx, database); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := analyses.NewSQLiteRepo(database)
	records := []analyses.Analysis{
		{
			CreatedAt:       time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
			Text:            "The quick brown fox jumps over the lazy dog.",
			WordCount:       9,
			Credits:         1,
			PredictionShort: "Human",
			FractionHuman:   1,
			ResponseJSON:    []byte(`{"prediction":"Human","prediction_short":"Human","fraction_human":1,"segments":[]}`),
		},
		{
			CreatedAt:       time.Date(2026, 1, 3, 11, 0, 0, 0, time.UTC),
			Text:            "Generated paragraph about synergy and innovation.",
			WordCount:       6,
			Credits:         1,
			PredictionShort: "AI",
			FractionAI:      1,
			ResponseJSON:    []byte(`{"prediction":"AI","prediction_short":"AI","fraction_ai":1,"segments":[]}`),
		},
	}
	for _, rec := range records {
		if _, err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}

	viper.Set("db", path)
	t.Cleanup(func() { viper.Set("db", config.DefaultDatabasePath) })
}

// runCLI executes the root command with args and returns combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestStatsCommand(t *testing.T) {
	seedHistory(t)

	out, err := runCLI(t, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "Total analyses: 2") {
		t.Errorf("missing analysis count in output:\n%s", out)
	}
	if !strings.Contains(out, "Total words:    15") {
		t.Errorf("missing word total in output:\n%s", out)
	}
	if !strings.Contains(out, "Total cost:     $0.10") {
		t.Errorf("missing cost in output:\n%s", out)
	}
}

func TestListCommandNewestFirst(t *testing.T) {
	seedHistory(t)

	out, err := runCLI(t, "list", "-n", "10")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	aiPos := strings.Index(out, "Generated paragraph")
	humanPos := strings.Index(out, "The quick brown fox")
	if aiPos < 0 || humanPos < 0 {
		t.Fatalf("expected both previews in output:\n%s", out)
	}
	if aiPos > humanPos {
		t.Errorf("expected newest analysis first:\n%s", out)
	}
}

func TestShowCommand(t *testing.T) {
	seedHistory(t)

	out, err := runCLI(t, "show", "1")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Analysis #1") {
		t.Errorf("missing header in output:\n%s", out)
	}
	if !strings.Contains(out, "Verdict:     Human") {
		t.Errorf("missing verdict in output:\n%s", out)
	}
	if !strings.Contains(out, "The quick brown fox jumps over the lazy dog.") {
		t.Errorf("missing text in output:\n%s", out)
	}
}

func TestShowCommandJSON(t *testing.T) {
	seedHistory(t)

	out, err := runCLI(t, "show", "2", "--json")
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}
	if !strings.Contains(out, `"prediction_short": "AI"`) {
		t.Errorf("expected indented raw response:\n%s", out)
	}
	showJSON = false
}

func TestShowCommandNotFound(t *testing.T) {
	seedHistory(t)

	_, err := runCLI(t, "show", "999")
	if err == nil || !strings.Contains(err.Error(), "no analysis with id 999") {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestSearchCommand(t *testing.T) {
	seedHistory(t)

	out, err := runCLI(t, "search", "synergy")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Generated paragraph") {
		t.Errorf("expected matching preview:\n%s", out)
	}
	if strings.Contains(out, "quick brown fox") {
		t.Errorf("unexpected non-matching row:\n%s", out)
	}

	out, err = runCLI(t, "search", "nonexistent-term")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "No analyses found.") {
		t.Errorf("expected empty result message:\n%s", out)
	}
}

func TestExportCommandJSON(t *testing.T) {
	seedHistory(t)

	target := filepath.Join(t.TempDir(), "out.json")
	out, err := runCLI(t, "export", "-o", target)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Exported 2 analyses") {
		t.Errorf("missing confirmation:\n%s", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read export file: %v", err)
	}
	if !strings.Contains(string(data), `"prediction_short"`) {
		t.Errorf("export file missing expected field:\n%s", data)
	}
	exportOutput = ""
}

func TestExportCommandBadFormat(t *testing.T) {
	seedHistory(t)

	_, err := runCLI(t, "export", "--format", "csv")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("expected format error, got %v", err)
	}
	exportFormat = "json"
}

func TestDeleteCommandForced(t *testing.T) {
	seedHistory(t)

	out, err := runCLI(t, "delete", "-f", "1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, "Deleted analysis 1.") {
		t.Errorf("missing confirmation:\n%s", out)
	}

	_, err = runCLI(t, "show", "1")
	if err == nil {
		t.Errorf("expected deleted analysis to be gone")
	}
	deleteForce = false
}

func TestDeleteCommandAborted(t *testing.T) {
	seedHistory(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader("n\n"))
	rootCmd.SetArgs([]string{"delete", "2"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(buf.String(), "Aborted.") {
		t.Errorf("expected abort message:\n%s", buf.String())
	}

	out, err := runCLI(t, "show", "2")
	if err != nil {
		t.Fatalf("show after aborted delete: %v", err)
	}
	if !strings.Contains(out, "Analysis #2") {
		t.Errorf("analysis should survive aborted delete:\n%s", out)
	}
}
