// Package matchup computes head-to-head and situational statistics from a
// delivery table: batsman against a bowling style, batsman against a
// specific bowler, bowler against a batting hand, bowler economy split by
// phase, and team-against-team scoring.
//
// Every query returns model.ErrNoData when nothing in the table matches and
// *model.InsufficientSampleError when the sample is below the caller's
// minimum, so small samples never masquerade as verdicts.
package matchup

import (
	"fmt"
	"strings"

	"github.com/crickstats/crickstats/internal/facts"
	"github.com/crickstats/crickstats/internal/model"
)

// battingLine accumulates batting metrics over deliveries accepted by keep.
func battingLine(t *facts.Table, keep func(*model.Delivery) bool) model.BattingLine {
	var line model.BattingLine
	for i := range t.Deliveries() {
		d := &t.Deliveries()[i]
		if !keep(d) {
			continue
		}
		line.Balls++
		line.Runs += d.RunsThisBall
		if d.IsWicket() {
			line.Dismissals++
		}
		if d.IsFour {
			line.Fours++
		}
		if d.IsSix {
			line.Sixes++
		}
		if d.IsDot {
			line.Dots++
		}
	}
	return line
}

// bowlingLine accumulates bowling metrics over deliveries accepted by keep.
func bowlingLine(t *facts.Table, keep func(*model.Delivery) bool) model.BowlingLine {
	var line model.BowlingLine
	for i := range t.Deliveries() {
		d := &t.Deliveries()[i]
		if !keep(d) {
			continue
		}
		line.Balls++
		line.Runs += d.RunsThisBall
		if d.IsWicket() {
			line.Wickets++
		}
		if d.IsDot {
			line.Dots++
		}
	}
	return line
}

func gate(balls, minBalls int) error {
	if balls == 0 {
		return model.ErrNoData
	}
	if balls < minBalls {
		return &model.InsufficientSampleError{Balls: balls, MinBalls: minBalls}
	}
	return nil
}

// BatsmanVsStyle summarizes how a batsman fares against one bowling style.
func BatsmanVsStyle(t *facts.Table, batsman string, style model.BowlingStyle, minBalls int) (*model.BatsmanVsStyleStats, error) {
	line := battingLine(t, func(d *model.Delivery) bool {
		return strings.EqualFold(d.Batsman, batsman) && d.Style == style
	})
	if err := gate(line.Balls, minBalls); err != nil {
		return nil, err
	}
	return &model.BatsmanVsStyleStats{
		Batsman:     batsman,
		Style:       style,
		BattingLine: line,
		Assessment:  Assessment(line),
	}, nil
}

// HeadToHead summarizes every ball a specific bowler has bowled to a
// specific batsman.
func HeadToHead(t *facts.Table, batsman, bowler string, minBalls int) (*model.HeadToHeadStats, error) {
	line := battingLine(t, func(d *model.Delivery) bool {
		return strings.EqualFold(d.Batsman, batsman) && strings.EqualFold(d.Bowler, bowler)
	})
	if err := gate(line.Balls, minBalls); err != nil {
		return nil, err
	}
	return &model.HeadToHeadStats{
		Batsman:     batsman,
		Bowler:      bowler,
		BattingLine: line,
		Dominance:   Dominance(line),
	}, nil
}

// BowlerVsHand summarizes a bowler's record against one batting hand.
func BowlerVsHand(t *facts.Table, bowler string, hand model.Hand, minBalls int) (*model.BowlerVsHandStats, error) {
	line := bowlingLine(t, func(d *model.Delivery) bool {
		return strings.EqualFold(d.Bowler, bowler) && d.BattingHand == hand
	})
	if err := gate(line.Balls, minBalls); err != nil {
		return nil, err
	}
	return &model.BowlerVsHandStats{
		Bowler:        bowler,
		Hand:          hand,
		BowlingLine:   line,
		Effectiveness: Effectiveness(line),
	}, nil
}

// BowlerEconomyByPhase splits a bowler's economy into powerplay (overs 1-6)
// and post-powerplay buckets. minOvers gates each bucket independently; a
// bucket below the minimum is reported with zero balls and excluded from the
// comparison text.
func BowlerEconomyByPhase(t *facts.Table, bowler string, minOvers float64) (*model.PhaseEconomyStats, error) {
	isBowler := func(d *model.Delivery) bool { return strings.EqualFold(d.Bowler, bowler) }
	pp := bowlingLine(t, func(d *model.Delivery) bool {
		return isBowler(d) && d.OverNumber <= 6
	})
	post := bowlingLine(t, func(d *model.Delivery) bool {
		return isBowler(d) && d.OverNumber > 6
	})
	if pp.Balls == 0 && post.Balls == 0 {
		return nil, model.ErrNoData
	}

	stats := &model.PhaseEconomyStats{
		Bowler:        bowler,
		Powerplay:     model.PhaseBowlingStats{Label: "Powerplay", BowlingLine: pp},
		PostPowerplay: model.PhaseBowlingStats{Label: "Post-Powerplay", BowlingLine: post},
	}
	stats.Analysis = phaseAnalysis(pp, post, minOvers)
	return stats, nil
}

func phaseAnalysis(pp, post model.BowlingLine, minOvers float64) string {
	ppOK := pp.Overs() >= minOvers
	postOK := post.Overs() >= minOvers
	switch {
	case ppOK && postOK:
		switch {
		case pp.Economy() < post.Economy():
			return fmt.Sprintf("More effective in the powerplay (Econ: %.2f vs %.2f)",
				pp.Economy(), post.Economy())
		case post.Economy() < pp.Economy():
			return fmt.Sprintf("More effective after the powerplay (Econ: %.2f vs %.2f)",
				post.Economy(), pp.Economy())
		default:
			return "Equally effective across phases"
		}
	case ppOK:
		return "Bowls mainly in the powerplay"
	case postOK:
		return "Bowls mainly after the powerplay"
	default:
		return "Not enough overs in either phase"
	}
}

// TeamMatchup summarizes both batting directions between two teams. Team
// names may be abbreviations or full names.
func TeamMatchup(t *facts.Table, team1, team2 string) (*model.TeamMatchupStats, error) {
	line1 := battingLine(t, func(d *model.Delivery) bool {
		return teamIs(d.BattingTeam, team1) && teamIs(d.BowlingTeam, team2)
	})
	line2 := battingLine(t, func(d *model.Delivery) bool {
		return teamIs(d.BattingTeam, team2) && teamIs(d.BowlingTeam, team1)
	})
	if line1.Balls == 0 && line2.Balls == 0 {
		return nil, model.ErrNoData
	}

	stats := &model.TeamMatchupStats{
		Team1Batting: model.TeamInningsStats{Team: team1, Opponent: team2, BattingLine: line1},
		Team2Batting: model.TeamInningsStats{Team: team2, Opponent: team1, BattingLine: line2},
	}
	switch {
	case line1.RunRate() > line2.RunRate():
		stats.Advantage = fmt.Sprintf("%s score faster (RR: %.2f vs %.2f)",
			team1, line1.RunRate(), line2.RunRate())
	case line2.RunRate() > line1.RunRate():
		stats.Advantage = fmt.Sprintf("%s score faster (RR: %.2f vs %.2f)",
			team2, line2.RunRate(), line1.RunRate())
	default:
		stats.Advantage = "Even contest"
	}
	return stats, nil
}

func teamIs(side, name string) bool {
	return strings.EqualFold(side, model.TeamAbbrev(name)) ||
		strings.EqualFold(side, model.TeamFullName(name))
}

// Scouting builds a phase-split brief for a batsman against one style,
// gated on the overall sample size.
func Scouting(t *facts.Table, batsman string, style model.BowlingStyle, minBalls int) (*model.ScoutingReport, error) {
	match := func(d *model.Delivery) bool {
		return strings.EqualFold(d.Batsman, batsman) && d.Style == style
	}
	overall := battingLine(t, match)
	if err := gate(overall.Balls, minBalls); err != nil {
		return nil, err
	}

	report := &model.ScoutingReport{Batsman: batsman, Style: style, Overall: overall}
	for _, phase := range []model.Phase{model.PhasePowerplay, model.PhaseMiddle, model.PhaseDeath} {
		phase := phase
		line := battingLine(t, func(d *model.Delivery) bool {
			return match(d) && d.Phase == phase
		})
		if line.Balls == 0 {
			continue
		}
		kinds := make(map[string]int)
		for i := range t.Deliveries() {
			d := &t.Deliveries()[i]
			if match(d) && d.Phase == phase && d.IsWicket() {
				kinds[d.WicketKind]++
			}
		}
		report.Phases = append(report.Phases, model.PhaseBrief{
			Label:       phase.String(),
			BattingLine: line,
			WicketKinds: kinds,
		})
	}
	return report, nil
}
