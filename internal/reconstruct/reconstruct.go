// Package reconstruct recovers the per-delivery run value from the
// running-total column the source exports carry. The input gives each
// batsman's cumulative score as of every ball; differencing within a
// (match, innings, batsman) partition yields what each ball actually scored.
package reconstruct

import (
	"sort"

	"github.com/crickstats/crickstats/internal/model"
)

// Diagnostics counts the data-quality anomalies observed while
// differencing. None of them abort a load; callers surface them as log
// warnings and summary counters.
type Diagnostics struct {
	// Clamped counts deliveries whose cumulative total decreased from the
	// previous ball, which would imply negative runs. The value is floored
	// at zero and the anomaly recorded here.
	Clamped int

	// MissingCumulative counts deliveries whose own cumulative value is
	// absent. Such balls are scored as zero runs rather than guessed.
	MissingCumulative int

	// Groups is the number of (match, innings, batsman) partitions seen.
	Groups int
}

type groupKey struct {
	match   string
	innings int
	batsman string
}

// Runs fills in RunsThisBall and the dot/boundary indicators for every
// delivery, in place, and returns diagnostics. The transform is
// deterministic and idempotent: rerunning it over its own output yields the
// same values.
func Runs(deliveries []model.Delivery) Diagnostics {
	var diag Diagnostics

	groups := make(map[groupKey][]int)
	for i, d := range deliveries {
		k := groupKey{d.MatchID, d.Innings, d.Batsman}
		groups[k] = append(groups[k], i)
	}
	diag.Groups = len(groups)

	for _, idxs := range groups {
		// Wides and no-balls can repeat an over.ball ordinal; a stable
		// sort keeps tied balls in source order so rerunning stays
		// deterministic.
		sort.SliceStable(idxs, func(a, b int) bool {
			da, db := deliveries[idxs[a]], deliveries[idxs[b]]
			if da.OverNumber != db.OverNumber {
				return da.OverNumber < db.OverNumber
			}
			return da.BallInOver < db.BallInOver
		})

		for pos, i := range idxs {
			d := &deliveries[i]
			runs := 0.0
			switch {
			case pos == 0:
				// A partition's first ball carries the whole total so far.
				if d.HasCumRuns {
					runs = d.CumBatsmanRuns
				} else {
					diag.MissingCumulative++
				}
			default:
				prev := &deliveries[idxs[pos-1]]
				switch {
				case d.HasCumRuns && prev.HasCumRuns:
					runs = d.CumBatsmanRuns - prev.CumBatsmanRuns
				case d.HasCumRuns:
					// No baseline to diff against; the cumulative
					// stands in for the ball.
					runs = d.CumBatsmanRuns
				default:
					// A ball with no cumulative of its own
					// scores zero, never a neighbour's total.
					diag.MissingCumulative++
				}
			}
			if runs < 0 {
				runs = 0
				diag.Clamped++
			}
			d.RunsThisBall = int(runs)
			d.IsDot = d.RunsThisBall == 0
			d.IsFour = d.RunsThisBall == 4
			d.IsSix = d.RunsThisBall == 6
		}
	}
	return diag
}
