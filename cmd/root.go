package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crickstats/crickstats/internal/config"
)

var (
	dbPath     string
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "crickstats",
	Short: "Ball-by-ball cricket analytics tool",
	Long: "Load ball-by-ball cricket datasets, reconstruct per-delivery runs from " +
		"cumulative scorecards, and query matchup and leaderboard statistics.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".crickstats", "stats.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to thresholds config (YAML)")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(matchupCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
