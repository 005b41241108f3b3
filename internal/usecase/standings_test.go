package usecase

import (
	"testing"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/ownership"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

func TestBuildStandings_EqualWinsHigherPointsFirst(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 2, Name: "Two", Wins: 8, PointsFor: 1150},
		{ID: 1, Name: "One", Wins: 8, PointsFor: 1200},
	}

	got := BuildStandings(division.Green, teams, ownership.NewRegistry(nil))
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].TeamID != 1 || got[1].TeamID != 2 {
		t.Fatalf("unexpected order: %d, %d", got[0].TeamID, got[1].TeamID)
	}
	for _, row := range got {
		if row.Owner != "" {
			t.Fatalf("expected empty owner for team %d, got %q", row.TeamID, row.Owner)
		}
		if row.Championships == nil || len(row.Championships) != 0 {
			t.Fatalf("expected empty championships for team %d, got %#v", row.TeamID, row.Championships)
		}
	}
}

func TestBuildStandings_SortedByWinsThenPoints(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 1, Wins: 3, PointsFor: 900},
		{ID: 2, Wins: 7, PointsFor: 1010.5},
		{ID: 3, Wins: 7, PointsFor: 1100},
		{ID: 4, Wins: 0, PointsFor: 700},
		{ID: 5, Wins: 3, PointsFor: 950},
		{ID: 6, Wins: 10, PointsFor: 800},
	}

	got := BuildStandings(division.White, teams, nil)
	if len(got) != len(teams) {
		t.Fatalf("ownership join must be total: got %d rows for %d teams", len(got), len(teams))
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.Wins > cur.Wins {
			continue
		}
		if prev.Wins == cur.Wins && prev.Points >= cur.Points {
			continue
		}
		t.Fatalf("rows %d and %d out of order: %+v then %+v", i-1, i, prev, cur)
	}
}

func TestBuildStandings_FullTieKeepsProviderOrder(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 9, Wins: 5, PointsFor: 1000},
		{ID: 4, Wins: 5, PointsFor: 1000},
		{ID: 7, Wins: 5, PointsFor: 1000},
	}

	got := BuildStandings(division.Green, teams, nil)
	for i, want := range []int{9, 4, 7} {
		if got[i].TeamID != want {
			t.Fatalf("position %d: got team %d want %d", i, got[i].TeamID, want)
		}
	}
}

func TestBuildStandings_JoinsOwnershipAndFiltersPlaceholders(t *testing.T) {
	t.Parallel()

	registry := ownership.NewRegistry(map[division.Division]map[string]ownership.Record{
		division.Green: {
			"3": {Owner: "Tom", Championships: []string{"2016", "", "2022"}},
		},
	})
	teams := []team.Team{{ID: 3, Name: "Three", Wins: 1, Losses: 2, Ties: 1, PointsFor: 300, PointsAgainst: 320.25}}

	got := BuildStandings(division.Green, teams, registry)
	row := got[0]
	if row.Owner != "Tom" {
		t.Fatalf("unexpected owner %q", row.Owner)
	}
	if len(row.Championships) != 2 || row.Championships[0] != "2016" || row.Championships[1] != "2022" {
		t.Fatalf("unexpected championships %#v", row.Championships)
	}
	if row.Losses != 2 || row.Ties != 1 || row.PointsAgainst != 320.25 || row.Name != "Three" {
		t.Fatalf("team fields not carried over: %+v", row)
	}
}
