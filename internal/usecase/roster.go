package usecase

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/ownership"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

type RosterPlayer struct {
	Name     string
	Position string
	ProTeam  string
	Slot     string
	Points   float64
	Starter  bool
}

type Roster struct {
	TeamID        int
	TeamName      string
	Owner         string
	Championships []string
	Players       []RosterPlayer
}

// FormatRoster returns the full weekly lineup for teamID: starters first, then
// bench and IR, each part ordered by slot.
func FormatRoster(div division.Division, teamID int, boxscores []lineup.Boxscore, teams []team.Team, registry *ownership.Registry) (Roster, error) {
	var (
		slots []lineup.PlayerSlot
		found bool
	)
	for _, box := range boxscores {
		if slots, found = box.RosterFor(teamID); found {
			break
		}
	}
	if !found {
		return Roster{}, fmt.Errorf("%w: no matchup for team=%d in division=%s", ErrNotFound, teamID, div)
	}

	players := make([]RosterPlayer, 0, len(slots))
	for _, slot := range slots {
		players = append(players, RosterPlayer{
			Name:     slot.FullName,
			Position: slot.DefaultPosition,
			ProTeam:  slot.ProTeam,
			Slot:     slot.RosteredSlot,
			Points:   slot.TotalPoints,
			Starter:  slot.IsStarter(),
		})
	}

	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Starter != players[j].Starter {
			return players[i].Starter
		}
		return lineup.SlotOrder(players[i].Slot) < lineup.SlotOrder(players[j].Slot)
	})

	rec := registry.Lookup(div, teamID)
	return Roster{
		TeamID:        teamID,
		TeamName:      team.IndexNames(teams).Name(teamID),
		Owner:         rec.Owner,
		Championships: rec.Championships,
		Players:       players,
	}, nil
}
