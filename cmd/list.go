package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crickstats/crickstats/internal/report"
	"github.com/crickstats/crickstats/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all loaded datasets",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	datasets, err := db.ListDatasets()
	if err != nil {
		return fmt.Errorf("list datasets: %w", err)
	}
	if len(datasets) == 0 {
		fmt.Fprintln(os.Stdout, "No datasets loaded yet. Run 'crickstats load <file.csv>' to add one.")
		return nil
	}

	report.PrintDatasetList(os.Stdout, datasets)
	return nil
}
