package storage

import (
	"testing"

	"github.com/crickstats/crickstats/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatasetInsertAndExists(t *testing.T) {
	db := openMemDB(t)

	summary := model.DatasetSummary{
		Hash:       "abc123",
		SourceName: "ipl_2024.csv",
		LoadedAt:   "2026-08-01T10:00:00Z",
		Deliveries: 240,
		Matches:    1,
		Batsmen:    12,
		Bowlers:    10,
	}

	if err := db.InsertDataset(summary); err != nil {
		t.Fatalf("InsertDataset: %v", err)
	}

	exists, err := db.DatasetExists("abc123")
	if err != nil {
		t.Fatalf("DatasetExists: %v", err)
	}
	if !exists {
		t.Error("expected dataset to exist after insert")
	}

	exists2, _ := db.DatasetExists("nonexistent")
	if exists2 {
		t.Error("expected non-existent dataset to not exist")
	}
}

func TestDeliveriesRoundTrip(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertDataset(model.DatasetSummary{Hash: "h1", SourceName: "x.csv", LoadedAt: "2026-08-01T10:00:00Z"}); err != nil {
		t.Fatalf("InsertDataset: %v", err)
	}

	in := []model.Delivery{
		{
			MatchID: "m1", Innings: 1, OverNumber: 3, BallInOver: 2,
			Phase: model.PhasePowerplay, Batsman: "Kohli", Bowler: "Bumrah",
			BattingTeam: "RCB", BowlingTeam: "MI",
			BattingHand: model.HandRight, Style: model.StyleRAF,
			Ground: "Wankhede Stadium", HomeAway: model.VenueAway,
			Season: 2024, Date: "2024-04-12",
			CumBatsmanRuns: 7, HasCumRuns: true, CumBatsmanBalls: 5,
			CumBowlerRuns: 12, CumBowlerOvers: 2.2, CumWickets: 1,
			WicketKind: model.NoWicket, RunsThisBall: 4, IsFour: true,
		},
		{
			MatchID: "m1", Innings: 1, OverNumber: 3, BallInOver: 3,
			Phase: model.PhasePowerplay, Batsman: "Kohli", Bowler: "Bumrah",
			BattingTeam: "RCB", BowlingTeam: "MI",
			BattingHand: model.HandRight, Style: model.StyleRAF,
			Ground: "Wankhede Stadium", HomeAway: model.VenueAway,
			Season: 2024, Date: "2024-04-12",
			CumBatsmanRuns: 7, HasCumRuns: true, CumBatsmanBalls: 6,
			CumBowlerRuns: 12, CumBowlerOvers: 2.3, CumWickets: 1,
			WicketKind: "caught", RunsThisBall: 0, IsDot: true,
		},
	}
	if err := db.InsertDeliveries("h1", in); err != nil {
		t.Fatalf("InsertDeliveries: %v", err)
	}

	out, err := db.LoadDeliveries("h1")
	if err != nil {
		t.Fatalf("LoadDeliveries: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d deliveries, want 2", len(out))
	}
	if out[0] != in[0] {
		t.Errorf("first delivery round-trip mismatch:\n got %+v\nwant %+v", out[0], in[0])
	}
	if !out[1].IsWicket() || out[1].WicketKind != "caught" {
		t.Errorf("wicket kind lost: %+v", out[1])
	}
}

func TestDeliveriesKeepDuplicateOrdinals(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertDataset(model.DatasetSummary{Hash: "h1", SourceName: "x.csv", LoadedAt: "2026-08-01T10:00:00Z"}); err != nil {
		t.Fatalf("InsertDataset: %v", err)
	}

	// A wide and its re-delivery share (match, innings, over.ball, batsman).
	in := []model.Delivery{
		{
			MatchID: "m1", Innings: 1, OverNumber: 3, BallInOver: 2,
			Phase: model.PhasePowerplay, Batsman: "A", Bowler: "X",
			BattingHand: model.HandRight, WicketKind: model.NoWicket,
			RunsThisBall: 1,
		},
		{
			MatchID: "m1", Innings: 1, OverNumber: 3, BallInOver: 2,
			Phase: model.PhasePowerplay, Batsman: "A", Bowler: "X",
			BattingHand: model.HandRight, WicketKind: model.NoWicket,
			RunsThisBall: 4, IsFour: true,
		},
	}
	if err := db.InsertDeliveries("h1", in); err != nil {
		t.Fatalf("InsertDeliveries: %v", err)
	}

	out, err := db.LoadDeliveries("h1")
	if err != nil {
		t.Fatalf("LoadDeliveries: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d deliveries, want 2 (duplicate ordinal merged)", len(out))
	}
	if out[0].RunsThisBall != 1 || out[1].RunsThisBall != 4 {
		t.Errorf("source order lost: %d then %d, want 1 then 4",
			out[0].RunsThisBall, out[1].RunsThisBall)
	}
}

func TestInsertDeliveriesIdempotent(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertDataset(model.DatasetSummary{Hash: "h1", SourceName: "x.csv", LoadedAt: "2026-08-01T10:00:00Z"}); err != nil {
		t.Fatalf("InsertDataset: %v", err)
	}
	in := []model.Delivery{{
		MatchID: "m1", Innings: 1, OverNumber: 1, BallInOver: 1,
		Phase: model.PhasePowerplay, Batsman: "A", Bowler: "X",
		BattingHand: model.HandRight, WicketKind: model.NoWicket,
	}}
	if err := db.InsertDeliveries("h1", in); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := db.InsertDeliveries("h1", in); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	out, err := db.LoadDeliveries("h1")
	if err != nil {
		t.Fatalf("LoadDeliveries: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("got %d deliveries after double insert, want 1", len(out))
	}
}

func TestGetDatasetByPrefix(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertDataset(model.DatasetSummary{Hash: "deadbeef1234", SourceName: "a.csv", LoadedAt: "2026-08-01T10:00:00Z"}); err != nil {
		t.Fatalf("InsertDataset: %v", err)
	}

	got, err := db.GetDatasetByPrefix("deadbeef")
	if err != nil {
		t.Fatalf("GetDatasetByPrefix: %v", err)
	}
	if got == nil || got.Hash != "deadbeef1234" {
		t.Errorf("got %+v, want hash deadbeef1234", got)
	}

	missing, err := db.GetDatasetByPrefix("cafe")
	if err != nil {
		t.Fatalf("GetDatasetByPrefix miss: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown prefix, got %+v", missing)
	}
}

func TestListDatasetsNewestFirst(t *testing.T) {
	db := openMemDB(t)

	for _, s := range []model.DatasetSummary{
		{Hash: "h1", SourceName: "a.csv", LoadedAt: "2026-08-01T10:00:00Z"},
		{Hash: "h2", SourceName: "b.csv", LoadedAt: "2026-08-02T10:00:00Z"},
	} {
		if err := db.InsertDataset(s); err != nil {
			t.Fatalf("InsertDataset: %v", err)
		}
	}

	list, err := db.ListDatasets()
	if err != nil {
		t.Fatalf("ListDatasets: %v", err)
	}
	if len(list) != 2 || list[0].Hash != "h2" {
		t.Errorf("list = %+v, want h2 first", list)
	}
}
