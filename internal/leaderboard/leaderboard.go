// Package leaderboard ranks players across the dataset: run scorers, strike
// rates, wicket takers, economy, style and hand splits, plus per-ground and
// per-phase boards. Every board gates on a minimum workload so a two-ball
// cameo never tops a table.
//
// The source cumulative counters (runs, balls, wickets, overs) run per
// match, so cross-match totals take the maximum value observed within each
// match and sum those maxima. Summing raw snapshots would multiply the
// totals by the number of balls. Boards restricted to a subset of deliveries
// (a bowling style, a phase) instead sum the reconstructed per-ball values,
// since the cumulative counters cannot isolate a subset.
package leaderboard

import (
	"sort"

	"github.com/crickstats/crickstats/internal/facts"
	"github.com/crickstats/crickstats/internal/model"
)

type matchKey struct {
	match  string
	player string
}

// battingTotals aggregates batting lines per batsman using per-match maxima
// of the cumulative counters. The counters run per innings, but a batsman
// bats at most one innings per 20-over match, so keying the maxima by
// (match, batsman) reads the same values. The per-ball indicators
// (dismissals, fours, sixes, dots) have no cumulative column and are counted
// directly.
func battingTotals(t *facts.Table) map[string]*model.BattingLeader {
	maxRuns := make(map[matchKey]float64)
	maxBalls := make(map[matchKey]int)
	leaders := make(map[string]*model.BattingLeader)

	for i := range t.Deliveries() {
		d := &t.Deliveries()[i]
		l := leaders[d.Batsman]
		if l == nil {
			l = &model.BattingLeader{Batsman: d.Batsman}
			leaders[d.Batsman] = l
		}
		if d.BattingTeam != "" {
			l.Team = d.BattingTeam
		}
		if d.IsWicket() {
			l.Dismissals++
		}
		if d.IsFour {
			l.Fours++
		}
		if d.IsSix {
			l.Sixes++
		}
		if d.IsDot {
			l.Dots++
		}

		k := matchKey{d.MatchID, d.Batsman}
		if d.HasCumRuns && d.CumBatsmanRuns > maxRuns[k] {
			maxRuns[k] = d.CumBatsmanRuns
		}
		if d.CumBatsmanBalls > maxBalls[k] {
			maxBalls[k] = d.CumBatsmanBalls
		}
	}

	for k, v := range maxRuns {
		leaders[k.player].Runs += int(v)
	}
	for k, v := range maxBalls {
		leaders[k.player].Balls += v
	}
	return leaders
}

// battingOver counts batting lines ball by ball over the deliveries accepted
// by keep, for boards the cumulative counters cannot serve.
func battingOver(t *facts.Table, keep func(*model.Delivery) bool) map[string]*model.BattingLeader {
	leaders := make(map[string]*model.BattingLeader)
	for i := range t.Deliveries() {
		d := &t.Deliveries()[i]
		if !keep(d) {
			continue
		}
		l := leaders[d.Batsman]
		if l == nil {
			l = &model.BattingLeader{Batsman: d.Batsman}
			leaders[d.Batsman] = l
		}
		if d.BattingTeam != "" {
			l.Team = d.BattingTeam
		}
		l.Balls++
		l.Runs += d.RunsThisBall
		if d.IsWicket() {
			l.Dismissals++
		}
		if d.IsFour {
			l.Fours++
		}
		if d.IsSix {
			l.Sixes++
		}
		if d.IsDot {
			l.Dots++
		}
	}
	return leaders
}

// bowlingTotals aggregates bowling lines per bowler from per-match maxima of
// the cumulative wicket, run, and over counters.
func bowlingTotals(t *facts.Table) map[string]*model.BowlingLeader {
	maxWkts := make(map[matchKey]int)
	maxRuns := make(map[matchKey]int)
	maxOvers := make(map[matchKey]float64)
	leaders := make(map[string]*model.BowlingLeader)

	for i := range t.Deliveries() {
		d := &t.Deliveries()[i]
		l := leaders[d.Bowler]
		if l == nil {
			l = &model.BowlingLeader{Bowler: d.Bowler}
			leaders[d.Bowler] = l
		}
		if d.BowlingTeam != "" {
			l.Team = d.BowlingTeam
		}
		l.Balls++
		if d.IsDot {
			l.Dots++
		}

		k := matchKey{d.MatchID, d.Bowler}
		if d.CumWickets > maxWkts[k] {
			maxWkts[k] = d.CumWickets
		}
		if d.CumBowlerRuns > maxRuns[k] {
			maxRuns[k] = d.CumBowlerRuns
		}
		if d.CumBowlerOvers > maxOvers[k] {
			maxOvers[k] = d.CumBowlerOvers
		}
	}

	for k, v := range maxWkts {
		leaders[k.player].Wickets += v
	}
	for k, v := range maxRuns {
		leaders[k.player].Runs += v
	}
	for k, v := range maxOvers {
		leaders[k.player].OversBowled += v
	}
	return leaders
}

// bowlingOver counts bowling lines ball by ball over deliveries accepted by
// keep.
func bowlingOver(t *facts.Table, keep func(*model.Delivery) bool) map[string]*model.BowlingLeader {
	leaders := make(map[string]*model.BowlingLeader)
	for i := range t.Deliveries() {
		d := &t.Deliveries()[i]
		if !keep(d) {
			continue
		}
		l := leaders[d.Bowler]
		if l == nil {
			l = &model.BowlingLeader{Bowler: d.Bowler}
			leaders[d.Bowler] = l
		}
		if d.BowlingTeam != "" {
			l.Team = d.BowlingTeam
		}
		l.Balls++
		l.Runs += d.RunsThisBall
		if d.IsWicket() {
			l.Wickets++
		}
		if d.IsDot {
			l.Dots++
		}
	}
	return leaders
}

func battingBoard(leaders map[string]*model.BattingLeader, minBalls int,
	metric func(model.BattingLeader) float64, topN int) []model.BattingLeader {

	rows := make([]model.BattingLeader, 0, len(leaders))
	for _, l := range leaders {
		if l.Balls >= minBalls {
			rows = append(rows, *l)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		mi, mj := metric(rows[i]), metric(rows[j])
		if mi != mj {
			return mi > mj
		}
		return rows[i].Batsman < rows[j].Batsman
	})
	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

func bowlingBoard(leaders map[string]*model.BowlingLeader, keep func(model.BowlingLeader) bool,
	metric func(model.BowlingLeader) float64, ascending bool, topN int) []model.BowlingLeader {

	rows := make([]model.BowlingLeader, 0, len(leaders))
	for _, l := range leaders {
		if keep(*l) {
			rows = append(rows, *l)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		mi, mj := metric(rows[i]), metric(rows[j])
		if mi != mj {
			if ascending {
				return mi < mj
			}
			return mi > mj
		}
		return rows[i].Bowler < rows[j].Bowler
	})
	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// TopRunScorers ranks batsmen by total runs across the dataset.
func TopRunScorers(t *facts.Table, topN int) []model.BattingLeader {
	return battingBoard(battingTotals(t), 1,
		func(l model.BattingLeader) float64 { return float64(l.Runs) }, topN)
}

// BestStrikeRates ranks batsmen by strike rate among those with at least
// minBalls faced.
func BestStrikeRates(t *facts.Table, minBalls, topN int) []model.BattingLeader {
	return battingBoard(battingTotals(t), minBalls,
		func(l model.BattingLeader) float64 { return l.StrikeRate() }, topN)
}

// MostWickets ranks bowlers by total wickets.
func MostWickets(t *facts.Table, topN int) []model.BowlingLeader {
	return bowlingBoard(bowlingTotals(t),
		func(l model.BowlingLeader) bool { return l.Wickets > 0 },
		func(l model.BowlingLeader) float64 { return float64(l.Wickets) },
		false, topN)
}

// MostEconomical ranks bowlers by economy, lowest first, among those with at
// least minOvers bowled.
func MostEconomical(t *facts.Table, minOvers float64, topN int) []model.BowlingLeader {
	return bowlingBoard(bowlingTotals(t),
		func(l model.BowlingLeader) bool { return l.OversBowled >= minOvers },
		func(l model.BowlingLeader) float64 { return l.LeaderEconomy() },
		true, topN)
}

// BestVsPace ranks batsmen by strike rate against pace bowling.
func BestVsPace(t *facts.Table, minBalls, topN int) []model.BattingLeader {
	leaders := battingOver(t, func(d *model.Delivery) bool { return d.Style.IsPace() })
	return battingBoard(leaders, minBalls,
		func(l model.BattingLeader) float64 { return l.StrikeRate() }, topN)
}

// BestVsSpin ranks batsmen by strike rate against spin bowling.
func BestVsSpin(t *facts.Table, minBalls, topN int) []model.BattingLeader {
	leaders := battingOver(t, func(d *model.Delivery) bool { return d.Style.IsSpin() })
	return battingBoard(leaders, minBalls,
		func(l model.BattingLeader) float64 { return l.StrikeRate() }, topN)
}

// BestBowlersVsHand ranks bowlers by economy against one batting hand,
// lowest first, among those with at least minBalls bowled to that hand.
func BestBowlersVsHand(t *facts.Table, hand model.Hand, minBalls, topN int) []model.BowlingLeader {
	leaders := bowlingOver(t, func(d *model.Delivery) bool { return d.BattingHand == hand })
	return bowlingBoard(leaders,
		func(l model.BowlingLeader) bool { return l.Balls >= minBalls },
		func(l model.BowlingLeader) float64 { return l.Economy() },
		true, topN)
}

// GroundLeaders reports the top run scorers at each ground, requiring at
// least minBalls faced there. The result is sorted by ground name, then
// runs.
func GroundLeaders(t *facts.Table, minBalls, topN int) []model.GroundLeader {
	grounds := make(map[string]bool)
	for i := range t.Deliveries() {
		grounds[t.Deliveries()[i].Ground] = true
	}
	names := make([]string, 0, len(grounds))
	for g := range grounds {
		if g != "" {
			names = append(names, g)
		}
	}
	sort.Strings(names)

	var out []model.GroundLeader
	for _, ground := range names {
		var here []model.Delivery
		for i := range t.Deliveries() {
			if t.Deliveries()[i].Ground == ground {
				here = append(here, t.Deliveries()[i])
			}
		}
		sub := facts.New(here)
		rows := battingBoard(battingTotals(sub), minBalls,
			func(l model.BattingLeader) float64 { return float64(l.Runs) }, topN)
		for _, r := range rows {
			out = append(out, model.GroundLeader{
				Ground:      ground,
				Batsman:     r.Batsman,
				Team:        r.Team,
				BattingLine: r.BattingLine,
			})
		}
	}
	return out
}

// PhaseLeaders builds the batting and bowling boards for one phase.
// Batting requires minBalls faced in the phase; bowling requires minOvers
// bowled in it.
func PhaseLeaders(t *facts.Table, phase model.Phase, minBalls int, minOvers float64, topN int) model.PhaseLeaderboards {
	inPhase := func(d *model.Delivery) bool { return d.Phase == phase }

	batting := battingBoard(battingOver(t, inPhase), minBalls,
		func(l model.BattingLeader) float64 { return l.StrikeRate() }, topN)
	bowling := bowlingBoard(bowlingOver(t, inPhase),
		func(l model.BowlingLeader) bool { return l.Overs() >= minOvers },
		func(l model.BowlingLeader) float64 { return l.Economy() },
		true, topN)

	return model.PhaseLeaderboards{Phase: phase, Batting: batting, Bowling: bowling}
}
