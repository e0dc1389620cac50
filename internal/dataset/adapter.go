// Package dataset reads raw ball-by-ball CSV exports and maps their quirky
// headers onto a stable internal schema, isolating the rest of the system
// from header churn.
package dataset

import (
	"fmt"
	"strings"
)

// RawRecord is one source row with the stable internal field names. All
// values are untyped strings; the normalizer owns parsing.
type RawRecord struct {
	MatchID     string
	Innings     string
	Overs       string // "14.3" over.ball encoding
	Batsman     string
	Bowler      string
	BowlingTeam string
	BattingTeam string
	BattingHand string
	Technique   string
	Ground      string
	HomeAway    string
	Date        string

	CumBatsmanRuns  string
	CumBatsmanBalls string
	CumBowlerRuns   string
	CumBowlerOvers  string
	CumWickets      string
	Wicket          string
}

// column describes one internal field: the header names it may appear under
// in the source (tried in order) and whether the load must fail without it.
type column struct {
	field    string
	headers  []string
	required bool
}

// The source export uses decorative glyphs in some headers (an up-arrow
// marks sortable columns) and pandas-style ".1" suffixes for duplicated
// names. Lookup is case-insensitive.
var columns = []column{
	{"match", []string{"Match⬆", "Match"}, true},
	{"innings", []string{"I#", "Innings"}, true},
	{"overs", []string{"Overs"}, true},
	{"batsman", []string{"Batsman"}, true},
	{"bowler", []string{"Player", "Bowler"}, true},
	{"bowling_team", []string{"Team"}, true},
	{"batting_team", []string{"Opposition", "Team.1"}, true},
	{"batsman_runs", []string{"R.1"}, true},
	{"wicket", []string{"Wkt"}, true},
	{"hand", []string{"RL", "B/H"}, false},
	{"technique", []string{"Technique", "Kind"}, false},
	{"ground", []string{"Ground Name", "Ground"}, false},
	{"home_away", []string{"H/A"}, false},
	{"date", []string{"Date⬆", "Date"}, false},
	{"batsman_balls", []string{"B"}, false},
	{"bowler_runs", []string{"R"}, false},
	{"bowler_overs", []string{"O"}, false},
	{"wickets", []string{"W"}, false},
}

// Adapter maps raw CSV rows onto RawRecords using the column positions
// discovered in the header.
type Adapter struct {
	index map[string]int // internal field → column position, -1 when absent
}

// NewAdapter inspects a header row and resolves every internal field to a
// column position. A missing required column is a hard failure: the engine
// cannot safely run without it, and failing at load time beats silent wrong
// answers downstream.
func NewAdapter(header []string) (*Adapter, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}

	index := make(map[string]int, len(columns))
	for _, col := range columns {
		pos := -1
		for _, h := range col.headers {
			if i, ok := byName[strings.ToLower(h)]; ok {
				pos = i
				break
			}
		}
		if pos < 0 && col.required {
			return nil, fmt.Errorf("required column %q not found in header (tried %s)",
				col.field, strings.Join(col.headers, ", "))
		}
		index[col.field] = pos
	}
	return &Adapter{index: index}, nil
}

// Record maps one CSV row onto a RawRecord. Rows shorter than the header are
// padded with empty values rather than rejected.
func (a *Adapter) Record(row []string) RawRecord {
	get := func(field string) string {
		pos := a.index[field]
		if pos < 0 || pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}
	return RawRecord{
		MatchID:         get("match"),
		Innings:         get("innings"),
		Overs:           get("overs"),
		Batsman:         get("batsman"),
		Bowler:          get("bowler"),
		BowlingTeam:     get("bowling_team"),
		BattingTeam:     get("batting_team"),
		BattingHand:     get("hand"),
		Technique:       get("technique"),
		Ground:          get("ground"),
		HomeAway:        get("home_away"),
		Date:            get("date"),
		CumBatsmanRuns:  get("batsman_runs"),
		CumBatsmanBalls: get("batsman_balls"),
		CumBowlerRuns:   get("bowler_runs"),
		CumBowlerOvers:  get("bowler_overs"),
		CumWickets:      get("wickets"),
		Wicket:          get("wicket"),
	}
}
