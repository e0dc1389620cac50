package facts

import (
	"testing"

	"github.com/crickstats/crickstats/internal/model"
)

func sample() []model.Delivery {
	return []model.Delivery{
		{MatchID: "m1", Innings: 1, Season: 2023, Ground: "Wankhede Stadium", BattingTeam: "MI", BowlingTeam: "CSK", HomeAway: model.VenueHome},
		{MatchID: "m1", Innings: 2, Season: 2023, Ground: "Wankhede Stadium", BattingTeam: "CSK", BowlingTeam: "MI", HomeAway: model.VenueAway},
		{MatchID: "m2", Innings: 1, Season: 2024, Ground: "Eden Gardens", BattingTeam: "KKR", BowlingTeam: "RCB", HomeAway: model.VenueHome},
		{MatchID: "m3", Innings: 1, Season: 2024, Ground: "M Chinnaswamy Stadium", BattingTeam: "RCB", BowlingTeam: "MI", HomeAway: model.VenueHome},
	}
}

func TestApplyZeroFilterKeepsAll(t *testing.T) {
	tbl := New(sample())
	got := tbl.Apply(Filter{})
	if got.Len() != tbl.Len() {
		t.Fatalf("zero filter kept %d of %d rows", got.Len(), tbl.Len())
	}
}

func TestApplySeason(t *testing.T) {
	tbl := New(sample())
	got := tbl.Apply(Filter{Seasons: []int{2024}})
	if got.Len() != 2 {
		t.Fatalf("season filter kept %d rows, want 2", got.Len())
	}
	for _, d := range got.Deliveries() {
		if d.Season != 2024 {
			t.Errorf("kept season %d", d.Season)
		}
	}
}

func TestApplyGroundSubstring(t *testing.T) {
	tbl := New(sample())
	got := tbl.Apply(Filter{Ground: "wankhede"})
	if got.Len() != 2 {
		t.Fatalf("ground filter kept %d rows, want 2", got.Len())
	}
}

func TestApplyTeamMatchesEitherSideAndBothForms(t *testing.T) {
	tbl := New(sample())
	if got := tbl.Apply(Filter{Team: "MI"}); got.Len() != 3 {
		t.Errorf("abbrev team filter kept %d rows, want 3", got.Len())
	}
	if got := tbl.Apply(Filter{Team: "Mumbai Indians"}); got.Len() != 3 {
		t.Errorf("full-name team filter kept %d rows, want 3", got.Len())
	}
}

func TestApplyConjunction(t *testing.T) {
	tbl := New(sample())
	got := tbl.Apply(Filter{
		Seasons: []int{2023},
		Team:    "CSK",
		Innings: 2,
	})
	if got.Len() != 1 {
		t.Fatalf("conjunction kept %d rows, want 1", got.Len())
	}
	d := got.Deliveries()[0]
	if d.BattingTeam != "CSK" || d.Innings != 2 {
		t.Errorf("wrong row kept: %+v", d)
	}
}

func TestApplyVenue(t *testing.T) {
	tbl := New(sample())
	got := tbl.Apply(Filter{Venue: model.VenueAway})
	if got.Len() != 1 {
		t.Fatalf("venue filter kept %d rows, want 1", got.Len())
	}
}
