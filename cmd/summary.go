package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crickstats/crickstats/internal/model"
	"github.com/crickstats/crickstats/internal/report"
	"github.com/crickstats/crickstats/internal/storage"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [hash-prefix]",
	Short: "Show details for one dataset (default: most recent)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	var summary *model.DatasetSummary
	if len(args) == 1 {
		summary, err = db.GetDatasetByPrefix(args[0])
	} else {
		summary, err = db.LatestDataset()
	}
	if err != nil {
		return err
	}
	if summary == nil {
		fmt.Fprintln(os.Stdout, "No matching dataset.")
		return nil
	}

	report.PrintDatasetSummary(os.Stdout, *summary)
	fmt.Fprintf(os.Stdout, "Batsmen: %d  |  Bowlers: %d\n", summary.Batsmen, summary.Bowlers)
	return nil
}
