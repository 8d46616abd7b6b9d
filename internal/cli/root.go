// Package cli implements the pangram-cli command tree over the history
// database. It reads the same SQLite file the web server writes and never
// calls the detection API.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrexodia/pangram-webui/internal/analyses"
	"github.com/mrexodia/pangram-webui/internal/config"
	"github.com/mrexodia/pangram-webui/internal/credits"
	"github.com/mrexodia/pangram-webui/internal/storage/db"
)

var dbPath string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pangram-cli",
	Short: "Query the Pangram analysis history database",
	Long: `pangram-cli inspects the local history of text analyses: usage
statistics, past results, full-text search, export, and deletion.

It operates purely on the local database and never contacts the
detection API.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path (default: "+config.DefaultDatabasePath+")")
	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))

	viper.SetDefault("db", config.DefaultDatabasePath)
	viper.SetDefault("unit_price", credits.DefaultUnitPrice)

	// Environment variables matching PANGRAM_* override defaults.
	viper.SetEnvPrefix("PANGRAM")
	viper.AutomaticEnv()

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(deleteCmd)
}

// openService opens the history database and wraps it in a service.
// The returned closer must be called when done.
func openService(ctx context.Context) (*analyses.Service, func(), error) {
	path := viper.GetString("db")
	database, err := db.Open(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open history database %s: %w", path, err)
	}
	if err := db.RunMigrations(ctx, database); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("migrate history database %s: %w", path, err)
	}
	svc := &analyses.Service{
		Repo:      analyses.NewSQLiteRepo(database),
		UnitPrice: viper.GetFloat64("unit_price"),
	}
	return svc, func() { database.Close() }, nil
}
