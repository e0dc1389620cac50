package model

// NoWicket is the sentinel the source data uses on balls without a dismissal.
const NoWicket = "-"

// BowlingStyle is the canonical bowling-technique category.
type BowlingStyle int

const (
	StyleOther BowlingStyle = iota
	StyleRAF                // right-arm fast / right pace
	StyleLAF                // left-arm fast / left pace
	StyleLAO                // left-arm orthodox spin
	StyleOffBreak
	StyleLegSpin
)

func (s BowlingStyle) String() string {
	switch s {
	case StyleRAF:
		return "RAF"
	case StyleLAF:
		return "LAF"
	case StyleLAO:
		return "LAO"
	case StyleOffBreak:
		return "Off Break"
	case StyleLegSpin:
		return "Leg Spin"
	default:
		return "Other"
	}
}

// IsPace reports whether the style is a pace (fast) family.
func (s BowlingStyle) IsPace() bool {
	return s == StyleRAF || s == StyleLAF
}

// IsSpin reports whether the style is a spin family.
func (s BowlingStyle) IsSpin() bool {
	return s == StyleLAO || s == StyleOffBreak || s == StyleLegSpin
}

// Phase is the three-way split of a 20-over innings by over number.
type Phase int

const (
	PhaseUnknown Phase = iota
	PhasePowerplay
	PhaseMiddle
	PhaseDeath
)

func (p Phase) String() string {
	switch p {
	case PhasePowerplay:
		return "Powerplay"
	case PhaseMiddle:
		return "Middle"
	case PhaseDeath:
		return "Death"
	default:
		return "?"
	}
}

// Hand is a batsman's batting hand.
type Hand string

const (
	HandRight Hand = "R"
	HandLeft  Hand = "L"
)

// Name returns the long-form label used in reports.
func (h Hand) Name() string {
	if h == HandLeft {
		return "Left-handed"
	}
	return "Right-handed"
}

// VenueType classifies the batting team's relationship to the ground.
type VenueType string

const (
	VenueAny  VenueType = ""
	VenueHome VenueType = "H"
	VenueAway VenueType = "A"
)

// Delivery is one bowled ball. It is immutable once reconstruction has filled
// the derived fields; aggregators only ever read it.
type Delivery struct {
	MatchID string
	Innings int

	OverNumber int
	BallInOver int
	Phase      Phase

	Batsman     string
	Bowler      string
	BattingTeam string
	BowlingTeam string
	BattingHand Hand
	Style       BowlingStyle

	Ground   string
	HomeAway VenueType
	Season   int    // year, 0 when the source date was unparseable
	Date     string // "YYYY-MM-DD"

	// Cumulative counters as recorded in the source. The batsman counters
	// run per (match, innings, batsman); the bowler counters per
	// (match, bowler).
	CumBatsmanRuns  float64
	HasCumRuns      bool // false when the source cell was empty
	CumBatsmanBalls int
	CumBowlerRuns   int
	CumBowlerOvers  float64
	CumWickets      int

	// WicketKind holds the dismissal type string, or NoWicket.
	WicketKind string

	// Derived by the reconstructor.
	RunsThisBall int
	IsDot        bool
	IsFour       bool
	IsSix        bool
}

// IsWicket reports whether this ball produced a dismissal.
func (d *Delivery) IsWicket() bool {
	return d.WicketKind != NoWicket && d.WicketKind != ""
}

// ---- Matchup results ----

// BattingLine holds the batting-side metric set computed from a set of
// matching deliveries.
type BattingLine struct {
	Balls      int
	Runs       int
	Dismissals int
	Fours      int
	Sixes      int
	Dots       int
}

// StrikeRate is runs per 100 balls.
func (b BattingLine) StrikeRate() float64 {
	if b.Balls == 0 {
		return 0
	}
	return float64(b.Runs) / float64(b.Balls) * 100
}

// Average is runs per dismissal; by convention it falls back to raw runs
// when the batsman was never dismissed in the sample.
func (b BattingLine) Average() float64 {
	if b.Dismissals == 0 {
		return float64(b.Runs)
	}
	return float64(b.Runs) / float64(b.Dismissals)
}

// DotPercent is the share of dot balls.
func (b BattingLine) DotPercent() float64 {
	if b.Balls == 0 {
		return 0
	}
	return float64(b.Dots) / float64(b.Balls) * 100
}

// BoundaryPercent is the share of balls hit for four or six.
func (b BattingLine) BoundaryPercent() float64 {
	if b.Balls == 0 {
		return 0
	}
	return float64(b.Fours+b.Sixes) / float64(b.Balls) * 100
}

// Boundaries is fours plus sixes.
func (b BattingLine) Boundaries() int { return b.Fours + b.Sixes }

// RunRate is runs per six-ball over (team batting view).
func (b BattingLine) RunRate() float64 {
	if b.Balls == 0 {
		return 0
	}
	return float64(b.Runs) / float64(b.Balls) * 6
}

// BowlingLine holds the bowling-side metric set.
type BowlingLine struct {
	Balls   int
	Runs    int
	Wickets int
	Dots    int
}

// Economy is runs conceded per six-ball over.
func (b BowlingLine) Economy() float64 {
	if b.Balls == 0 {
		return 0
	}
	return float64(b.Runs) / (float64(b.Balls) / 6)
}

// Average is runs per wicket; callers must check HasAverage first.
func (b BowlingLine) Average() float64 {
	if b.Wickets == 0 {
		return 0
	}
	return float64(b.Runs) / float64(b.Wickets)
}

// StrikeRate is balls per wicket; callers must check HasAverage first.
func (b BowlingLine) StrikeRate() float64 {
	if b.Wickets == 0 {
		return 0
	}
	return float64(b.Balls) / float64(b.Wickets)
}

// HasAverage reports whether average and strike rate are defined.
func (b BowlingLine) HasAverage() bool { return b.Wickets > 0 }

// DotPercent is the share of dot balls.
func (b BowlingLine) DotPercent() float64 {
	if b.Balls == 0 {
		return 0
	}
	return float64(b.Dots) / float64(b.Balls) * 100
}

// Overs is balls expressed as six-ball overs.
func (b BowlingLine) Overs() float64 { return float64(b.Balls) / 6 }

// BatsmanVsStyleStats is the result of a batsman-vs-bowling-style query.
type BatsmanVsStyleStats struct {
	Batsman string
	Style   BowlingStyle
	BattingLine
	Assessment string
}

// HeadToHeadStats is the result of a batsman-vs-bowler query.
type HeadToHeadStats struct {
	Batsman string
	Bowler  string
	BattingLine
	Dominance string
}

// BowlerVsHandStats is the result of a bowler-vs-batting-hand query.
type BowlerVsHandStats struct {
	Bowler string
	Hand   Hand
	BowlingLine
	Effectiveness string
}

// PhaseBowlingStats holds one phase bucket of a bowler's economy split.
type PhaseBowlingStats struct {
	Label string
	BowlingLine
}

// PhaseEconomyStats is the result of a bowler economy-by-phase query.
type PhaseEconomyStats struct {
	Bowler        string
	Powerplay     PhaseBowlingStats
	PostPowerplay PhaseBowlingStats
	Analysis      string
}

// TeamInningsStats is one direction of a team matchup.
type TeamInningsStats struct {
	Team     string
	Opponent string
	BattingLine
}

// TeamMatchupStats is the result of a team-vs-team query, both directions.
type TeamMatchupStats struct {
	Team1Batting TeamInningsStats
	Team2Batting TeamInningsStats
	Advantage    string
}

// PhaseBrief is one phase slice of a scouting report.
type PhaseBrief struct {
	Label string
	BattingLine
	WicketKinds map[string]int
}

// ScoutingReport is a batsman-vs-style summary split by phase.
type ScoutingReport struct {
	Batsman string
	Style   BowlingStyle
	Overall BattingLine
	Phases  []PhaseBrief
}

// ---- Leaderboard rows ----

// BattingLeader is one row of a batting leaderboard.
type BattingLeader struct {
	Batsman string
	Team    string
	BattingLine
}

// BowlingLeader is one row of a bowling leaderboard.
type BowlingLeader struct {
	Bowler string
	Team   string
	BowlingLine
	OversBowled float64 // summed per-match cumulative overs where available, else balls/6
}

// LeaderEconomy is runs conceded per over bowled, preferring the cumulative
// overs counter over the ball count when the source recorded it.
func (l BowlingLeader) LeaderEconomy() float64 {
	if l.OversBowled > 0 {
		return float64(l.Runs) / l.OversBowled
	}
	return l.Economy()
}

// GroundLeader is one row of a per-ground batting leaderboard.
type GroundLeader struct {
	Ground  string
	Batsman string
	Team    string
	BattingLine
}

// PhaseLeaderboards pairs the batting and bowling boards for one phase.
type PhaseLeaderboards struct {
	Phase   Phase
	Batting []BattingLeader
	Bowling []BowlingLeader
}

// DatasetSummary is a lightweight record for list/show commands.
type DatasetSummary struct {
	Hash       string
	SourceName string
	LoadedAt   string
	Deliveries int
	Matches    int
	Batsmen    int
	Bowlers    int
	Clamped    int
	Dropped    int
}
