package cmd

import (
	"fmt"

	"github.com/crickstats/crickstats/internal/facts"
	"github.com/crickstats/crickstats/internal/model"
	"github.com/crickstats/crickstats/internal/storage"
)

// Query-side filter flags, shared by the matchup and leaderboard commands.
var (
	flagDataset string
	flagSeasons []int
	flagGround  string
	flagTeam    string
	flagVenue   string
	flagInnings int
)

// loadTable opens the cache, resolves the dataset (explicit prefix or the
// most recently loaded one), and returns its deliveries with the filter
// flags applied.
func loadTable() (*facts.Table, func() error, error) {
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	var summary *model.DatasetSummary
	if flagDataset != "" {
		summary, err = db.GetDatasetByPrefix(flagDataset)
	} else {
		summary, err = db.LatestDataset()
	}
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if summary == nil {
		db.Close()
		return nil, nil, fmt.Errorf("no dataset loaded; run 'crickstats load <file.csv>' first")
	}

	deliveries, err := db.LoadDeliveries(summary.Hash)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load deliveries: %w", err)
	}

	venue := model.VenueAny
	switch flagVenue {
	case "", "any":
	case "home":
		venue = model.VenueHome
	case "away":
		venue = model.VenueAway
	default:
		db.Close()
		return nil, nil, fmt.Errorf("unknown venue %q (want home, away or any)", flagVenue)
	}

	tbl := facts.New(deliveries).Apply(facts.Filter{
		Seasons: flagSeasons,
		Ground:  flagGround,
		Team:    flagTeam,
		Venue:   venue,
		Innings: flagInnings,
	})
	return tbl, db.Close, nil
}
