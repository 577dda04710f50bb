package filters

import (
	"testing"

	"nba-shotviz-service/internal/domain"
)

func sampleShots() []domain.ShotRecord {
	return []domain.ShotRecord{
		{Made: true, Venue: domain.VenueHome, Opponent: "BOS", Period: 1, DistanceFt: 2, Season: "2023-24"},
		{Made: false, Venue: domain.VenueHome, Opponent: "BOS", Period: 2, DistanceFt: 16, Season: "2023-24"},
		{Made: true, Venue: domain.VenueAway, Opponent: "MIA", Period: 4, DistanceFt: 25, Season: "2024-25"},
		{Made: false, Venue: domain.VenueAway, Opponent: "MIA", Period: 4, DistanceFt: 27, Season: "2024-25"},
	}
}

func TestParseResult(t *testing.T) {
	cases := []struct {
		raw  string
		want Result
	}{
		{"", ResultAll},
		{"all", ResultAll},
		{"makes", ResultMakes},
		{"Make", ResultMakes},
		{"MISSES", ResultMisses},
		{"miss", ResultMisses},
		{"garbage", ResultAll},
	}
	for _, tc := range cases {
		if got := ParseResult(tc.raw); got != tc.want {
			t.Errorf("ParseResult(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestApplyZeroFilterKeepsEverything(t *testing.T) {
	shots := sampleShots()
	got := Apply(shots, Filter{})
	if len(got) != len(shots) {
		t.Fatalf("kept %d of %d shots", len(got), len(shots))
	}
}

func TestApplyPredicates(t *testing.T) {
	shots := sampleShots()

	cases := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"makes", Filter{Result: ResultMakes}, 2},
		{"misses", Filter{Result: ResultMisses}, 2},
		{"home", Filter{Venue: domain.VenueHome}, 2},
		{"opponent case-insensitive", Filter{Opponent: "mia"}, 2},
		{"fourth quarter", Filter{Periods: []int{4}}, 2},
		{"multiple periods", Filter{Periods: []int{1, 2}}, 2},
		{"min distance", Filter{MinDistanceFt: 20}, 2},
		{"max distance", Filter{MaxDistanceFt: 20}, 2},
		{"distance band", Filter{MinDistanceFt: 10, MaxDistanceFt: 26}, 2},
		{"season", Filter{Seasons: []string{"2024-25"}}, 2},
		{"combined", Filter{Result: ResultMakes, Venue: domain.VenueAway}, 1},
		{"nothing matches", Filter{Opponent: "LAL"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(shots, tc.filter); len(got) != tc.want {
				t.Fatalf("kept %d shots, want %d", len(got), tc.want)
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	shots := sampleShots()
	Apply(shots, Filter{Result: ResultMakes})
	if len(shots) != 4 {
		t.Fatalf("input length changed to %d", len(shots))
	}
}
