package matchup

import "github.com/crickstats/crickstats/internal/model"

// The rating ladders below are ordered rule lists: the first rule whose
// predicate holds supplies the label. Order matters and is part of the
// contract, so they live as explicit slices rather than nested ifs.

type battingRule struct {
	applies func(model.BattingLine) bool
	label   string
}

var dominanceLadder = []battingRule{
	{func(b model.BattingLine) bool { return b.Dismissals > 0 && b.StrikeRate() < 100 }, "Bowler"},
	{func(b model.BattingLine) bool { return b.StrikeRate() >= 150 }, "Batsman"},
	{func(b model.BattingLine) bool { return b.StrikeRate() >= 120 }, "Batsman (Slight)"},
	{func(b model.BattingLine) bool { return b.Dismissals > 0 }, "Bowler (Slight)"},
}

// Dominance labels who holds the upper hand in a batsman-bowler duel.
func Dominance(b model.BattingLine) string {
	for _, r := range dominanceLadder {
		if r.applies(b) {
			return r.label
		}
	}
	return "Neutral"
}

var assessmentLadder = []battingRule{
	{func(b model.BattingLine) bool { return b.StrikeRate() >= 150 && b.DotPercent() < 35 }, "Dominant"},
	{func(b model.BattingLine) bool { return b.StrikeRate() >= 120 && b.DotPercent() < 40 }, "Solid"},
	{func(b model.BattingLine) bool { return b.StrikeRate() >= 100 }, "Cautious"},
}

// Assessment labels how well a batsman handles a bowling style.
func Assessment(b model.BattingLine) string {
	for _, r := range assessmentLadder {
		if r.applies(b) {
			return r.label
		}
	}
	return "Struggles"
}

type bowlingRule struct {
	applies func(model.BowlingLine) bool
	label   string
}

var effectivenessLadder = []bowlingRule{
	{func(b model.BowlingLine) bool { return b.Economy() < 6.0 && b.DotPercent() > 40 }, "Excellent"},
	{func(b model.BowlingLine) bool { return b.Economy() < 7.5 && b.DotPercent() > 35 }, "Good"},
	{func(b model.BowlingLine) bool { return b.Economy() < 9.0 }, "Average"},
}

// Effectiveness labels a bowler's record against a batting hand.
func Effectiveness(b model.BowlingLine) string {
	for _, r := range effectivenessLadder {
		if r.applies(b) {
			return r.label
		}
	}
	return "Expensive"
}
