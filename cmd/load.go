package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/crickstats/crickstats/internal/dataset"
	"github.com/crickstats/crickstats/internal/model"
	"github.com/crickstats/crickstats/internal/normalize"
	"github.com/crickstats/crickstats/internal/reconstruct"
	"github.com/crickstats/crickstats/internal/report"
	"github.com/crickstats/crickstats/internal/storage"
)

var loadCmd = &cobra.Command{
	Use:   "load <deliveries.csv>",
	Short: "Load a ball-by-ball CSV and reconstruct per-delivery runs",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	csvPath := args[0]

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	fmt.Fprintf(os.Stdout, "Loading %s...\n", csvPath)
	records, hash, err := dataset.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	exists, err := db.DatasetExists(hash)
	if err != nil {
		return fmt.Errorf("check dataset: %w", err)
	}
	if exists {
		fmt.Fprintf(os.Stdout, "Dataset %s already loaded.\n", hash[:12])
		summary, err := db.GetDatasetByPrefix(hash)
		if err != nil {
			return err
		}
		report.PrintDatasetSummary(os.Stdout, *summary)
		return nil
	}

	norm := normalize.Records(records, slog.Default())
	diag := reconstruct.Runs(norm.Deliveries)

	summary := summarize(norm.Deliveries)
	summary.Hash = hash
	summary.SourceName = filepath.Base(csvPath)
	summary.LoadedAt = time.Now().UTC().Format(time.RFC3339)
	summary.Clamped = diag.Clamped
	summary.Dropped = norm.Dropped

	if err := db.InsertDataset(summary); err != nil {
		return fmt.Errorf("insert dataset: %w", err)
	}
	if err := db.InsertDeliveries(hash, norm.Deliveries); err != nil {
		return fmt.Errorf("insert deliveries: %w", err)
	}

	report.PrintDatasetSummary(os.Stdout, summary)
	if diag.MissingCumulative > 0 {
		slog.Warn("deliveries had no cumulative value on either side",
			"count", diag.MissingCumulative)
	}
	return nil
}

func summarize(deliveries []model.Delivery) model.DatasetSummary {
	matches := make(map[string]bool)
	batsmen := make(map[string]bool)
	bowlers := make(map[string]bool)
	for i := range deliveries {
		d := &deliveries[i]
		matches[d.MatchID] = true
		batsmen[d.Batsman] = true
		bowlers[d.Bowler] = true
	}
	return model.DatasetSummary{
		Deliveries: len(deliveries),
		Matches:    len(matches),
		Batsmen:    len(batsmen),
		Bowlers:    len(bowlers),
	}
}
