package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/ownership"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

func sampleWeek() ([]lineup.Boxscore, []team.Team) {
	home := []lineup.PlayerSlot{
		{FullName: "Bench WR", DefaultPosition: "WR", ProTeam: "DAL", RosteredSlot: "Bench", TotalPoints: 3.1},
		{FullName: "Kicker", DefaultPosition: "K", ProTeam: "BAL", RosteredSlot: "K", TotalPoints: 9},
		{FullName: "Flex RB", DefaultPosition: "RB", ProTeam: "SF", RosteredSlot: "RB/WR/TE", TotalPoints: 12.4,
			ProjectedBreakdown: map[string]float64{"rushingYards": 6.5, "receivingYards": 3.5}},
		{FullName: "Hurt TE", DefaultPosition: "TE", ProTeam: "KC", RosteredSlot: "IR"},
		{FullName: "Starting QB", DefaultPosition: "QB", ProTeam: "BUF", RosteredSlot: "QB", TotalPoints: 24.6,
			ProjectedBreakdown: map[string]float64{"a": 1.5, "b": 2.5}},
		{FullName: "Bench RB", DefaultPosition: "RB", ProTeam: "DET", RosteredSlot: "Bench", TotalPoints: 7},
		{FullName: "WR One", DefaultPosition: "WR", ProTeam: "MIA", RosteredSlot: "WR", TotalPoints: 15},
		{FullName: "Superflex", DefaultPosition: "QB", ProTeam: "CIN", RosteredSlot: "OP", TotalPoints: 18},
		{FullName: "WR Two", DefaultPosition: "WR", ProTeam: "MIN", RosteredSlot: "WR", TotalPoints: 11},
	}
	away := []lineup.PlayerSlot{
		{FullName: "Defense", DefaultPosition: "D/ST", ProTeam: "PIT", RosteredSlot: "D/ST", TotalPoints: 6},
		{FullName: "Away QB", DefaultPosition: "QB", ProTeam: "PHI", RosteredSlot: "QB", TotalPoints: 20},
		{FullName: "Away Bench", DefaultPosition: "TE", ProTeam: "LV", RosteredSlot: "Bench"},
	}
	boxscores := []lineup.Boxscore{
		{HomeTeamID: 5, AwayTeamID: 6, HomeScore: 77, AwayScore: 81},
		{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 110.4, AwayScore: 26, HomeRoster: home, AwayRoster: away},
	}
	teams := []team.Team{
		{ID: 1, Name: "Home Team"},
		{ID: 5, Name: "Five"},
		{ID: 6, Name: "Six"},
	}
	return boxscores, teams
}

func TestFormatRoster_PartitionAndSlotOrder(t *testing.T) {
	t.Parallel()

	boxscores, teams := sampleWeek()
	registry := ownership.NewRegistry(map[division.Division]map[string]ownership.Record{
		division.White: {"1": {Owner: "Nina", Championships: []string{"", "2016"}}},
	})

	got, err := FormatRoster(division.White, 1, boxscores, teams, registry)
	if err != nil {
		t.Fatalf("format roster: %v", err)
	}
	if got.TeamName != "Home Team" || got.Owner != "Nina" {
		t.Fatalf("unexpected header: %+v", got)
	}
	if len(got.Championships) != 1 || got.Championships[0] != "2016" {
		t.Fatalf("unexpected championships %#v", got.Championships)
	}

	wantNames := []string{"Starting QB", "WR One", "WR Two", "Flex RB", "Kicker", "Superflex", "Bench WR", "Bench RB", "Hurt TE"}
	if len(got.Players) != len(wantNames) {
		t.Fatalf("expected %d players, got %d", len(wantNames), len(got.Players))
	}
	for i, name := range wantNames {
		if got.Players[i].Name != name {
			t.Fatalf("position %d: got %q want %q", i, got.Players[i].Name, name)
		}
	}

	seenBench := false
	for i, p := range got.Players {
		if !p.Starter {
			seenBench = true
		} else if seenBench {
			t.Fatalf("starter %q after bench/IR at %d", p.Name, i)
		}
		if i > 0 && got.Players[i-1].Starter == p.Starter && lineup.SlotOrder(got.Players[i-1].Slot) > lineup.SlotOrder(p.Slot) {
			t.Fatalf("slot priority decreased at %d", i)
		}
	}

	qb := got.Players[0]
	if qb.Position != "QB" || qb.ProTeam != "BUF" || qb.Slot != "QB" || qb.Points != 24.6 || !qb.Starter {
		t.Fatalf("unexpected qb row %+v", qb)
	}
}

func TestFormatRoster_AwaySideUnknownName(t *testing.T) {
	t.Parallel()

	boxscores, teams := sampleWeek()
	got, err := FormatRoster(division.Green, 2, boxscores, teams, nil)
	if err != nil {
		t.Fatalf("format roster: %v", err)
	}
	if got.TeamName != team.UnknownName || got.Owner != "" || len(got.Championships) != 0 {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if got.Players[0].Name != "Away QB" || got.Players[1].Name != "Defense" || got.Players[2].Name != "Away Bench" {
		t.Fatalf("unexpected order: %+v", got.Players)
	}
}

func TestFormatRoster_TeamNotInAnyBoxscore(t *testing.T) {
	t.Parallel()

	boxscores, teams := sampleWeek()
	_, err := FormatRoster(division.Green, 9, boxscores, teams, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
