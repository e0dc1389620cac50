package leaderboard

import (
	"testing"

	"github.com/crickstats/crickstats/internal/facts"
	"github.com/crickstats/crickstats/internal/model"
)

// bowlerMatch fabricates an over-by-over spell where the bowler's cumulative
// wicket counter climbs to peak. Each ball carries the cumulative snapshot,
// the way the source data does.
func bowlerMatch(match, bowler string, ballsBowled, peakWickets, cumRuns int, overs float64) []model.Delivery {
	out := make([]model.Delivery, ballsBowled)
	for i := range out {
		w := peakWickets * (i + 1) / ballsBowled
		out[i] = model.Delivery{
			MatchID:       match,
			Innings:       1,
			OverNumber:    1 + i/6,
			BallInOver:    1 + i%6,
			Batsman:       "someone",
			Bowler:        bowler,
			BowlingTeam:   "CSK",
			WicketKind:    model.NoWicket,
			CumWickets:    w,
			CumBowlerRuns: cumRuns * (i + 1) / ballsBowled,
			CumBowlerOvers: overs * float64(i+1) / float64(ballsBowled),
		}
	}
	return out
}

func batsmanMatch(match, batsman string, ballsFaced, totalRuns int) []model.Delivery {
	out := make([]model.Delivery, ballsFaced)
	for i := range out {
		out[i] = model.Delivery{
			MatchID:         match,
			Innings:         1,
			OverNumber:      1 + i/6,
			BallInOver:      1 + i%6,
			Batsman:         batsman,
			Bowler:          "someone",
			BattingTeam:     "MI",
			WicketKind:      model.NoWicket,
			CumBatsmanRuns:  float64(totalRuns * (i + 1) / ballsFaced),
			HasCumRuns:      true,
			CumBatsmanBalls: i + 1,
		}
	}
	return out
}

func TestMostWicketsSumsPerMatchMaxima(t *testing.T) {
	// Peaks at 3 wickets in the first match and 2 in the second. Summing the
	// cumulative snapshots row by row would report far more than 5.
	ds := bowlerMatch("m1", "Bumrah", 24, 3, 30, 4)
	ds = append(ds, bowlerMatch("m2", "Bumrah", 24, 2, 28, 4)...)
	tbl := facts.New(ds)

	rows := MostWickets(tbl, 10)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Wickets != 5 {
		t.Fatalf("wickets = %d, want 5 (3 in m1 + 2 in m2)", rows[0].Wickets)
	}
	if rows[0].Runs != 58 {
		t.Errorf("runs conceded = %d, want 58", rows[0].Runs)
	}
	if rows[0].OversBowled != 8 {
		t.Errorf("overs = %.1f, want 8", rows[0].OversBowled)
	}
}

func TestTopRunScorersSumsPerMatchMaxima(t *testing.T) {
	ds := batsmanMatch("m1", "Kohli", 30, 45)
	ds = append(ds, batsmanMatch("m2", "Kohli", 20, 35)...)
	ds = append(ds, batsmanMatch("m1", "Rohit", 24, 50)...)
	tbl := facts.New(ds)

	rows := TopRunScorers(tbl, 10)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Batsman != "Kohli" || rows[0].Runs != 80 {
		t.Errorf("top = %s with %d, want Kohli with 80", rows[0].Batsman, rows[0].Runs)
	}
	if rows[0].Balls != 50 {
		t.Errorf("balls = %d, want 50", rows[0].Balls)
	}
	if rows[1].Batsman != "Rohit" || rows[1].Runs != 50 {
		t.Errorf("second = %s with %d, want Rohit with 50", rows[1].Batsman, rows[1].Runs)
	}
}

func TestBestStrikeRatesGating(t *testing.T) {
	ds := batsmanMatch("m1", "Kohli", 30, 45)
	ds = append(ds, batsmanMatch("m1", "Cameo", 4, 16)...)
	tbl := facts.New(ds)

	rows := BestStrikeRates(tbl, 20, 10)
	if len(rows) != 1 || rows[0].Batsman != "Kohli" {
		t.Fatalf("rows = %+v, want only Kohli (cameo below minimum)", rows)
	}
}

func TestMostEconomicalAscending(t *testing.T) {
	ds := bowlerMatch("m1", "Miser", 24, 1, 20, 4)
	ds = append(ds, bowlerMatch("m1", "Spender", 24, 2, 44, 4)...)
	tbl := facts.New(ds)

	rows := MostEconomical(tbl, 3, 10)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Bowler != "Miser" {
		t.Errorf("first = %s, want Miser (econ %.2f vs %.2f)",
			rows[0].Bowler, rows[0].LeaderEconomy(), rows[1].LeaderEconomy())
	}
	if e := rows[0].LeaderEconomy(); e != 5 {
		t.Errorf("economy = %.2f, want 5.00 (20 runs over 4 overs)", e)
	}
}

func TestBestVsSpinCountsOnlySpin(t *testing.T) {
	ds := []model.Delivery{}
	for i := 0; i < 25; i++ {
		ds = append(ds, model.Delivery{
			MatchID: "m1", Innings: 1, OverNumber: 1 + i/6, BallInOver: 1 + i%6,
			Batsman: "Kohli", Bowler: "Chahal", BattingTeam: "RCB",
			Style: model.StyleLegSpin, WicketKind: model.NoWicket,
			RunsThisBall: 2,
		})
	}
	for i := 0; i < 25; i++ {
		ds = append(ds, model.Delivery{
			MatchID: "m1", Innings: 1, OverNumber: 10 + i/6, BallInOver: 1 + i%6,
			Batsman: "Kohli", Bowler: "Bumrah", BattingTeam: "RCB",
			Style: model.StyleRAF, WicketKind: model.NoWicket,
			RunsThisBall: 0, IsDot: true,
		})
	}
	tbl := facts.New(ds)

	rows := BestVsSpin(tbl, 20, 10)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Balls != 25 || rows[0].Runs != 50 {
		t.Errorf("vs spin = %d balls %d runs, want 25 and 50 (pace balls leaked in)",
			rows[0].Balls, rows[0].Runs)
	}
	if sr := rows[0].StrikeRate(); sr != 200 {
		t.Errorf("strike rate = %.1f, want 200", sr)
	}
}

func TestGroundLeadersThreshold(t *testing.T) {
	ds := batsmanMatch("m1", "Kohli", 35, 50)
	for i := range ds {
		ds[i].Ground = "M Chinnaswamy Stadium"
	}
	short := batsmanMatch("m2", "Rohit", 10, 30)
	for i := range short {
		short[i].Ground = "Wankhede Stadium"
	}
	tbl := facts.New(append(ds, short...))

	rows := GroundLeaders(tbl, 30, 3)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (Wankhede sample below 30 balls)", len(rows))
	}
	if rows[0].Ground != "M Chinnaswamy Stadium" || rows[0].Batsman != "Kohli" {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestPhaseLeaders(t *testing.T) {
	var ds []model.Delivery
	for i := 0; i < 24; i++ {
		ds = append(ds, model.Delivery{
			MatchID: "m1", Innings: 1, OverNumber: 1 + i/6, BallInOver: 1 + i%6,
			Phase:   model.PhasePowerplay,
			Batsman: "Opener", Bowler: "NewBall", BattingTeam: "MI", BowlingTeam: "CSK",
			WicketKind:   model.NoWicket,
			RunsThisBall: 1,
		})
	}
	for i := 0; i < 24; i++ {
		ds = append(ds, model.Delivery{
			MatchID: "m1", Innings: 1, OverNumber: 17 + i/6, BallInOver: 1 + i%6,
			Phase:   model.PhaseDeath,
			Batsman: "Finisher", Bowler: "DeathSpec", BattingTeam: "MI", BowlingTeam: "CSK",
			WicketKind:   model.NoWicket,
			RunsThisBall: 2,
		})
	}
	tbl := facts.New(ds)

	pp := PhaseLeaders(tbl, model.PhasePowerplay, 20, 3, 5)
	if len(pp.Batting) != 1 || pp.Batting[0].Batsman != "Opener" {
		t.Fatalf("powerplay batting = %+v, want only Opener", pp.Batting)
	}
	if len(pp.Bowling) != 1 || pp.Bowling[0].Bowler != "NewBall" {
		t.Fatalf("powerplay bowling = %+v, want only NewBall", pp.Bowling)
	}
	if e := pp.Bowling[0].Economy(); e != 6 {
		t.Errorf("powerplay economy = %.2f, want 6.00", e)
	}

	death := PhaseLeaders(tbl, model.PhaseDeath, 20, 3, 5)
	if len(death.Batting) != 1 || death.Batting[0].Batsman != "Finisher" {
		t.Fatalf("death batting = %+v, want only Finisher", death.Batting)
	}
}
