// Package facts holds the loaded delivery set and the query-side filtering
// that every aggregator runs against.
package facts

import (
	"strings"

	"github.com/crickstats/crickstats/internal/model"
)

// Table is a read-only view over reconstructed deliveries. Aggregators never
// mutate it; Filter produces a new Table sharing no slice header with the
// original beyond the delivery values themselves.
type Table struct {
	deliveries []model.Delivery
}

// New wraps reconstructed deliveries in a queryable table.
func New(deliveries []model.Delivery) *Table {
	return &Table{deliveries: deliveries}
}

// Len reports the number of deliveries in the table.
func (t *Table) Len() int { return len(t.deliveries) }

// Deliveries exposes the underlying rows for aggregation. Callers must not
// modify the returned slice.
func (t *Table) Deliveries() []model.Delivery { return t.deliveries }

// Filter narrows a query to a slice of the dataset. Zero-valued fields match
// everything; set fields combine as a conjunction.
type Filter struct {
	// Seasons keeps deliveries whose season is in the set. Empty keeps all.
	Seasons []int

	// Ground keeps deliveries whose ground name contains the value,
	// case-insensitively.
	Ground string

	// Team keeps deliveries where the named team bats or bowls. Both the
	// abbreviation and the full name are accepted.
	Team string

	// Venue restricts to home or away fixtures for the filtered team.
	Venue model.VenueType

	// Innings restricts to the first or second innings; zero keeps both.
	Innings int
}

// Apply returns a new table holding only the deliveries the filter accepts.
func (t *Table) Apply(f Filter) *Table {
	if f.isZero() {
		return t
	}

	seasons := make(map[int]bool, len(f.Seasons))
	for _, s := range f.Seasons {
		seasons[s] = true
	}
	ground := strings.ToLower(f.Ground)
	teamAbbr := model.TeamAbbrev(f.Team)
	teamFull := model.TeamFullName(f.Team)

	out := make([]model.Delivery, 0, len(t.deliveries))
	for _, d := range t.deliveries {
		if len(seasons) > 0 && !seasons[d.Season] {
			continue
		}
		if ground != "" && !strings.Contains(strings.ToLower(d.Ground), ground) {
			continue
		}
		if f.Team != "" && !matchesTeam(d, teamAbbr, teamFull) {
			continue
		}
		if f.Venue != model.VenueAny && d.HomeAway != f.Venue {
			continue
		}
		if f.Innings != 0 && d.Innings != f.Innings {
			continue
		}
		out = append(out, d)
	}
	return &Table{deliveries: out}
}

func (f Filter) isZero() bool {
	return len(f.Seasons) == 0 && f.Ground == "" && f.Team == "" &&
		f.Venue == model.VenueAny && f.Innings == 0
}

func matchesTeam(d model.Delivery, abbr, full string) bool {
	for _, side := range []string{d.BattingTeam, d.BowlingTeam} {
		if strings.EqualFold(side, abbr) || strings.EqualFold(side, full) {
			return true
		}
	}
	return false
}
