// Package normalize turns raw string records into typed deliveries: it
// parses over.ball positions, assigns phases, canonicalizes bowling-technique
// vocabulary, and derives the season year. Rows with an unparseable over.ball
// are dropped with a warning, never a failure.
package normalize

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/crickstats/crickstats/internal/dataset"
	"github.com/crickstats/crickstats/internal/model"
)

// styleByTechnique is the fixed lookup from raw technique strings to the
// canonical style set. Keys are lower-case; unrecognized or missing values
// map to StyleOther rather than failing.
var styleByTechnique = map[string]model.BowlingStyle{
	"right pace":     model.StyleRAF,
	"left pace":      model.StyleLAF,
	"left orthodox":  model.StyleLAO,
	"off break":      model.StyleOffBreak,
	"right orthodox": model.StyleOffBreak,
	"leg break":      model.StyleLegSpin,
}

// Style maps a raw bowling-technique string onto the canonical category set,
// case-insensitively.
func Style(technique string) model.BowlingStyle {
	if s, ok := styleByTechnique[strings.ToLower(strings.TrimSpace(technique))]; ok {
		return s
	}
	return model.StyleOther
}

// PhaseForOver assigns the three-way phase from the over number:
// overs 1-6 powerplay, 7-16 middle, 17+ death.
func PhaseForOver(over int) model.Phase {
	switch {
	case over <= 6:
		return model.PhasePowerplay
	case over <= 16:
		return model.PhaseMiddle
	default:
		return model.PhaseDeath
	}
}

// ParseOverBall splits the "14.3" over.ball encoding into its over number
// and ball-within-over ordinal. Ball values outside 1-6 (wide/no-ball
// annotations) pass through unmodified; only a malformed over part is an
// error.
func ParseOverBall(s string) (over, ball int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	overPart, ballPart, found := strings.Cut(s, ".")
	ov, err := strconv.Atoi(overPart)
	if err != nil || ov < 0 {
		// Some exports carry a float-formatted over ("14.0").
		f, ferr := strconv.ParseFloat(overPart, 64)
		if ferr != nil {
			return 0, 0, false
		}
		ov = int(f)
	}
	b := 0
	if found {
		bv, err := strconv.Atoi(ballPart)
		if err != nil {
			return 0, 0, false
		}
		b = bv
	}
	return ov, b, true
}

// seasonOf extracts the year from a source date. The exports use either
// ISO dates or "02-01-2006"; anything else yields season 0, which matches no
// season filter.
func seasonOf(date string) int {
	date = strings.TrimSpace(date)
	for _, layout := range []string{"2006-01-02", "02-01-2006", "01/02/2006", "2006/01/02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Year()
		}
	}
	if len(date) >= 4 {
		if y, err := strconv.Atoi(date[:4]); err == nil && y > 1800 {
			return y
		}
	}
	return 0
}

// Result carries the normalized deliveries plus the count of rows dropped
// for unparseable over.ball values.
type Result struct {
	Deliveries []model.Delivery
	Dropped    int
}

// Records normalizes raw records into typed deliveries. Derived
// reconstruction fields (RunsThisBall, indicators) are left zero; the
// reconstructor fills them.
func Records(records []dataset.RawRecord, log *slog.Logger) Result {
	if log == nil {
		log = slog.Default()
	}

	var res Result
	res.Deliveries = make([]model.Delivery, 0, len(records))
	for _, r := range records {
		over, ball, ok := ParseOverBall(r.Overs)
		if !ok {
			res.Dropped++
			log.Warn("dropping row with unparseable over.ball",
				"match", r.MatchID, "overs", r.Overs, "batsman", r.Batsman)
			continue
		}

		d := model.Delivery{
			MatchID:     r.MatchID,
			Innings:     atoiOr(r.Innings, 0),
			OverNumber:  over,
			BallInOver:  ball,
			Phase:       PhaseForOver(over),
			Batsman:     r.Batsman,
			Bowler:      r.Bowler,
			BattingTeam: r.BattingTeam,
			BowlingTeam: r.BowlingTeam,
			BattingHand: hand(r.BattingHand),
			Style:       Style(r.Technique),
			Ground:      r.Ground,
			HomeAway:    venue(r.HomeAway),
			Season:      seasonOf(r.Date),
			Date:        r.Date,
			WicketKind:  wicketKind(r.Wicket),

			CumBatsmanBalls: atoiOr(r.CumBatsmanBalls, 0),
			CumBowlerRuns:   atoiOr(r.CumBowlerRuns, 0),
			CumBowlerOvers:  atofOr(r.CumBowlerOvers, 0),
			CumWickets:      atoiOr(r.CumWickets, 0),
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(r.CumBatsmanRuns), 64); err == nil {
			d.CumBatsmanRuns = v
			d.HasCumRuns = true
		}
		res.Deliveries = append(res.Deliveries, d)
	}
	return res
}

func hand(s string) model.Hand {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L", "LEFT":
		return model.HandLeft
	default:
		return model.HandRight
	}
}

func venue(s string) model.VenueType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H":
		return model.VenueHome
	case "A":
		return model.VenueAway
	default:
		return model.VenueAny
	}
}

func wicketKind(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.NoWicket
	}
	return s
}

func atoiOr(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// Cumulative counters occasionally arrive float-formatted.
		if f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64); ferr == nil {
			return int(f)
		}
		return def
	}
	return v
}

func atofOr(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}
