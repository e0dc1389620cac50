package model

import "testing"

func TestBattingAverageFallsBackToRuns(t *testing.T) {
	notOut := BattingLine{Balls: 20, Runs: 37}
	if avg := notOut.Average(); avg != 37 {
		t.Errorf("average with no dismissals = %.2f, want raw runs 37", avg)
	}
	out := BattingLine{Balls: 20, Runs: 37, Dismissals: 2}
	if avg := out.Average(); avg != 18.5 {
		t.Errorf("average = %.2f, want 18.5", avg)
	}
}

func TestBowlingAverageUndefinedWithoutWickets(t *testing.T) {
	wicketless := BowlingLine{Balls: 24, Runs: 30}
	if wicketless.HasAverage() {
		t.Error("HasAverage = true with zero wickets")
	}
	took := BowlingLine{Balls: 24, Runs: 30, Wickets: 2}
	if !took.HasAverage() {
		t.Error("HasAverage = false with wickets")
	}
	if avg := took.Average(); avg != 15 {
		t.Errorf("average = %.2f, want 15", avg)
	}
	if sr := took.StrikeRate(); sr != 12 {
		t.Errorf("strike rate = %.2f, want 12", sr)
	}
}

func TestRateFormulas(t *testing.T) {
	b := BattingLine{Balls: 30, Runs: 45, Dots: 12, Fours: 4, Sixes: 2}
	if sr := b.StrikeRate(); sr != 150 {
		t.Errorf("strike rate = %.2f, want 150", sr)
	}
	if rr := b.RunRate(); rr != 9 {
		t.Errorf("run rate = %.2f, want 9", rr)
	}
	if dp := b.DotPercent(); dp != 40 {
		t.Errorf("dot%% = %.2f, want 40", dp)
	}
	if bp := b.BoundaryPercent(); bp != 20 {
		t.Errorf("boundary%% = %.2f, want 20", bp)
	}

	bl := BowlingLine{Balls: 18, Runs: 24}
	if e := bl.Economy(); e != 8 {
		t.Errorf("economy = %.2f, want 8", e)
	}
	if o := bl.Overs(); o != 3 {
		t.Errorf("overs = %.2f, want 3", o)
	}
}

func TestZeroBallLinesAreSafe(t *testing.T) {
	var b BattingLine
	if b.StrikeRate() != 0 || b.DotPercent() != 0 || b.RunRate() != 0 {
		t.Error("zero-ball batting line produced nonzero rates")
	}
	var bl BowlingLine
	if bl.Economy() != 0 || bl.DotPercent() != 0 {
		t.Error("zero-ball bowling line produced nonzero rates")
	}
}

func TestWicketSentinel(t *testing.T) {
	d := Delivery{WicketKind: NoWicket}
	if d.IsWicket() {
		t.Error("sentinel counted as wicket")
	}
	d.WicketKind = "lbw"
	if !d.IsWicket() {
		t.Error("lbw not counted as wicket")
	}
	d.WicketKind = ""
	if d.IsWicket() {
		t.Error("empty wicket kind counted as wicket")
	}
}

func TestTeamNameForms(t *testing.T) {
	if got := TeamFullName("MI"); got != "Mumbai Indians" {
		t.Errorf("TeamFullName(MI) = %q", got)
	}
	if got := TeamAbbrev("Chennai Super Kings"); got != "CSK" {
		t.Errorf("TeamAbbrev(Chennai Super Kings) = %q", got)
	}
	if got := TeamFullName("Unknown XI"); got != "Unknown XI" {
		t.Errorf("unknown names must pass through, got %q", got)
	}
}

func TestStyleFamilies(t *testing.T) {
	for _, s := range []BowlingStyle{StyleRAF, StyleLAF} {
		if !s.IsPace() || s.IsSpin() {
			t.Errorf("%v misclassified", s)
		}
	}
	for _, s := range []BowlingStyle{StyleLAO, StyleOffBreak, StyleLegSpin} {
		if !s.IsSpin() || s.IsPace() {
			t.Errorf("%v misclassified", s)
		}
	}
	if StyleOther.IsPace() || StyleOther.IsSpin() {
		t.Error("StyleOther belongs to neither family")
	}
}
