// Package report renders aggregation results as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/crickstats/crickstats/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// notAvailable marks undefined rate metrics (bowling average with no
// wickets, for instance).
const notAvailable = "N/A"

func bowlingAvg(b model.BowlingLine) string {
	if !b.HasAverage() {
		return notAvailable
	}
	return fmt.Sprintf("%.2f", b.Average())
}

func bowlingSR(b model.BowlingLine) string {
	if !b.HasAverage() {
		return notAvailable
	}
	return fmt.Sprintf("%.1f", b.StrikeRate())
}

// PrintBatsmanVsStyle writes a batsman-vs-style result.
func PrintBatsmanVsStyle(w io.Writer, s *model.BatsmanVsStyleStats) {
	fmt.Fprintf(w, "\n%s vs %s\n\n", s.Batsman, s.Style)

	table := newTable(w)
	table.Header("BALLS", "RUNS", "SR", "AVG", "4s", "6s", "DOT%", "BDRY%", "OUT", "ASSESSMENT")
	table.Append(
		strconv.Itoa(s.Balls),
		strconv.Itoa(s.Runs),
		fmt.Sprintf("%.2f", s.StrikeRate()),
		fmt.Sprintf("%.2f", s.Average()),
		strconv.Itoa(s.Fours),
		strconv.Itoa(s.Sixes),
		fmt.Sprintf("%.1f%%", s.DotPercent()),
		fmt.Sprintf("%.1f%%", s.BoundaryPercent()),
		strconv.Itoa(s.Dismissals),
		s.Assessment,
	)
	table.Render()
}

// PrintHeadToHead writes a batsman-vs-bowler result.
func PrintHeadToHead(w io.Writer, s *model.HeadToHeadStats) {
	fmt.Fprintf(w, "\n%s vs %s\n\n", s.Batsman, s.Bowler)

	table := newTable(w)
	table.Header("BALLS", "RUNS", "SR", "4s", "6s", "DOT%", "OUT", "EDGE")
	table.Append(
		strconv.Itoa(s.Balls),
		strconv.Itoa(s.Runs),
		fmt.Sprintf("%.2f", s.StrikeRate()),
		strconv.Itoa(s.Fours),
		strconv.Itoa(s.Sixes),
		fmt.Sprintf("%.1f%%", s.DotPercent()),
		strconv.Itoa(s.Dismissals),
		s.Dominance,
	)
	table.Render()
}

// PrintBowlerVsHand writes a bowler-vs-batting-hand result.
func PrintBowlerVsHand(w io.Writer, s *model.BowlerVsHandStats) {
	fmt.Fprintf(w, "\n%s vs %s batsmen\n\n", s.Bowler, s.Hand.Name())

	table := newTable(w)
	table.Header("BALLS", "RUNS", "WKTS", "ECON", "AVG", "SR", "DOT%", "RATING")
	table.Append(
		strconv.Itoa(s.Balls),
		strconv.Itoa(s.Runs),
		strconv.Itoa(s.Wickets),
		fmt.Sprintf("%.2f", s.Economy()),
		bowlingAvg(s.BowlingLine),
		bowlingSR(s.BowlingLine),
		fmt.Sprintf("%.1f%%", s.DotPercent()),
		s.Effectiveness,
	)
	table.Render()
}

// PrintPhaseEconomy writes a bowler's phase split with the comparison line.
func PrintPhaseEconomy(w io.Writer, s *model.PhaseEconomyStats) {
	fmt.Fprintf(w, "\n%s by phase\n\n", s.Bowler)

	table := newTable(w)
	table.Header("PHASE", "OVERS", "RUNS", "WKTS", "ECON", "DOT%")
	for _, p := range []model.PhaseBowlingStats{s.Powerplay, s.PostPowerplay} {
		table.Append(
			p.Label,
			fmt.Sprintf("%.1f", p.Overs()),
			strconv.Itoa(p.Runs),
			strconv.Itoa(p.Wickets),
			fmt.Sprintf("%.2f", p.Economy()),
			fmt.Sprintf("%.1f%%", p.DotPercent()),
		)
	}
	table.Render()
	fmt.Fprintf(w, "\n%s\n", s.Analysis)
}

// PrintTeamMatchup writes both batting directions of a team matchup.
func PrintTeamMatchup(w io.Writer, s *model.TeamMatchupStats) {
	fmt.Fprintf(w, "\n%s vs %s\n\n",
		model.TeamFullName(s.Team1Batting.Team), model.TeamFullName(s.Team2Batting.Team))

	table := newTable(w)
	table.Header("BATTING", "BALLS", "RUNS", "RR", "4s", "6s", "DOT%", "WKTS LOST")
	for _, side := range []model.TeamInningsStats{s.Team1Batting, s.Team2Batting} {
		table.Append(
			side.Team,
			strconv.Itoa(side.Balls),
			strconv.Itoa(side.Runs),
			fmt.Sprintf("%.2f", side.RunRate()),
			strconv.Itoa(side.Fours),
			strconv.Itoa(side.Sixes),
			fmt.Sprintf("%.1f%%", side.DotPercent()),
			strconv.Itoa(side.Dismissals),
		)
	}
	table.Render()
	fmt.Fprintf(w, "\n%s\n", s.Advantage)
}

// PrintScoutingReport writes the phase-split scouting brief.
func PrintScoutingReport(w io.Writer, r *model.ScoutingReport) {
	fmt.Fprintf(w, "\nScouting: %s vs %s  |  %d balls, %d runs, SR %.2f\n\n",
		r.Batsman, r.Style, r.Overall.Balls, r.Overall.Runs, r.Overall.StrikeRate())

	table := newTable(w)
	table.Header("PHASE", "BALLS", "RUNS", "SR", "DOT%", "BDRY%", "OUT", "DISMISSALS")
	for _, p := range r.Phases {
		table.Append(
			p.Label,
			strconv.Itoa(p.Balls),
			strconv.Itoa(p.Runs),
			fmt.Sprintf("%.2f", p.StrikeRate()),
			fmt.Sprintf("%.1f%%", p.DotPercent()),
			fmt.Sprintf("%.1f%%", p.BoundaryPercent()),
			strconv.Itoa(p.Dismissals),
			wicketKindList(p.WicketKinds),
		)
	}
	table.Render()
}

func wicketKindList(kinds map[string]int) string {
	if len(kinds) == 0 {
		return "—"
	}
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	out := ""
	for i, k := range names {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s x%d", k, kinds[k])
	}
	return out
}

// PrintBattingLeaders writes a batting leaderboard.
func PrintBattingLeaders(w io.Writer, title string, rows []model.BattingLeader) {
	fmt.Fprintf(w, "\n%s\n\n", title)

	table := newTable(w)
	table.Header("#", "BATSMAN", "TEAM", "BALLS", "RUNS", "SR", "AVG", "4s", "6s", "DOT%")
	for i, r := range rows {
		table.Append(
			strconv.Itoa(i+1),
			r.Batsman,
			r.Team,
			strconv.Itoa(r.Balls),
			strconv.Itoa(r.Runs),
			fmt.Sprintf("%.2f", r.StrikeRate()),
			fmt.Sprintf("%.2f", r.Average()),
			strconv.Itoa(r.Fours),
			strconv.Itoa(r.Sixes),
			fmt.Sprintf("%.1f%%", r.DotPercent()),
		)
	}
	table.Render()
}

// PrintBowlingLeaders writes a bowling leaderboard.
func PrintBowlingLeaders(w io.Writer, title string, rows []model.BowlingLeader) {
	fmt.Fprintf(w, "\n%s\n\n", title)

	table := newTable(w)
	table.Header("#", "BOWLER", "TEAM", "OVERS", "RUNS", "WKTS", "ECON", "AVG", "DOT%")
	for i, r := range rows {
		overs := r.OversBowled
		if overs == 0 {
			overs = r.Overs()
		}
		table.Append(
			strconv.Itoa(i+1),
			r.Bowler,
			r.Team,
			fmt.Sprintf("%.1f", overs),
			strconv.Itoa(r.Runs),
			strconv.Itoa(r.Wickets),
			fmt.Sprintf("%.2f", r.LeaderEconomy()),
			bowlingAvg(r.BowlingLine),
			fmt.Sprintf("%.1f%%", r.DotPercent()),
		)
	}
	table.Render()
}

// PrintGroundLeaders writes the per-ground batting board.
func PrintGroundLeaders(w io.Writer, rows []model.GroundLeader) {
	fmt.Fprintf(w, "\nGround leaders\n\n")

	table := newTable(w)
	table.Header("GROUND", "BATSMAN", "TEAM", "BALLS", "RUNS", "SR")
	for _, r := range rows {
		table.Append(
			r.Ground,
			r.Batsman,
			r.Team,
			strconv.Itoa(r.Balls),
			strconv.Itoa(r.Runs),
			fmt.Sprintf("%.2f", r.StrikeRate()),
		)
	}
	table.Render()
}

// PrintPhaseLeaders writes the batting and bowling boards for one phase.
func PrintPhaseLeaders(w io.Writer, boards model.PhaseLeaderboards) {
	PrintBattingLeaders(w, fmt.Sprintf("%s batting (by strike rate)", boards.Phase), boards.Batting)
	PrintBowlingLeaders(w, fmt.Sprintf("%s bowling (by economy)", boards.Phase), boards.Bowling)
}

// PrintDatasetList writes the stored dataset summaries.
func PrintDatasetList(w io.Writer, datasets []model.DatasetSummary) {
	table := newTable(w)
	table.Header("HASH", "SOURCE", "LOADED", "BALLS", "MATCHES", "BATSMEN", "BOWLERS")
	for _, s := range datasets {
		hash := s.Hash
		if len(hash) > 12 {
			hash = hash[:12]
		}
		table.Append(
			hash,
			s.SourceName,
			s.LoadedAt,
			strconv.Itoa(s.Deliveries),
			strconv.Itoa(s.Matches),
			strconv.Itoa(s.Batsmen),
			strconv.Itoa(s.Bowlers),
		)
	}
	table.Render()
}

// PrintDatasetSummary writes a one-line dataset header.
func PrintDatasetSummary(w io.Writer, s model.DatasetSummary) {
	hash := s.Hash
	if len(hash) > 12 {
		hash = hash[:12]
	}
	fmt.Fprintf(w, "\nSource: %s  |  Loaded: %s  |  Balls: %d  |  Matches: %d  |  Hash: %s\n",
		s.SourceName, s.LoadedAt, s.Deliveries, s.Matches, hash)
	if s.Clamped > 0 || s.Dropped > 0 {
		fmt.Fprintf(w, "Anomalies: %d clamped, %d dropped rows\n", s.Clamped, s.Dropped)
	}
}
