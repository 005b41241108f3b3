package usecase

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/ownership"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

type MatchupPlayer struct {
	Name      string
	Position  string
	Points    float64
	Projected float64
}

type MatchupSide struct {
	TeamID         int
	TeamName       string
	Owner          string
	Championships  []string
	Score          float64
	ProjectedTotal float64
	Players        []MatchupPlayer
}

// MatchupDetail keeps the provider's home/away orientation regardless of the
// order the pair was requested in.
type MatchupDetail struct {
	Home      MatchupSide
	Away      MatchupSide
	HomeScore float64
	AwayScore float64
}

func FormatMatchupDetail(div division.Division, teamA, teamB int, boxscores []lineup.Boxscore, teams []team.Team, registry *ownership.Registry) (MatchupDetail, error) {
	var (
		box   lineup.Boxscore
		found bool
	)
	for _, candidate := range boxscores {
		if candidate.Pairs(teamA, teamB) {
			box, found = candidate, true
			break
		}
	}
	if !found {
		return MatchupDetail{}, fmt.Errorf("%w: no matchup between team=%d and team=%d in division=%s", ErrNotFound, teamA, teamB, div)
	}

	names := team.IndexNames(teams)
	return MatchupDetail{
		Home:      buildMatchupSide(div, box.HomeTeamID, box.HomeScore, box.HomeRoster, names, registry),
		Away:      buildMatchupSide(div, box.AwayTeamID, box.AwayScore, box.AwayRoster, names, registry),
		HomeScore: box.HomeScore,
		AwayScore: box.AwayScore,
	}, nil
}

func buildMatchupSide(div division.Division, teamID int, score float64, slots []lineup.PlayerSlot, names team.NameIndex, registry *ownership.Registry) MatchupSide {
	type ranked struct {
		player MatchupPlayer
		order  int
	}

	starters := make([]ranked, 0, len(slots))
	projectedTotal := 0.0
	for _, slot := range slots {
		if !slot.IsStarter() {
			continue
		}
		projected := slot.ProjectedTotal()
		projectedTotal += projected
		starters = append(starters, ranked{
			player: MatchupPlayer{
				Name:      slot.FullName,
				Position:  slot.RosteredSlot,
				Points:    slot.TotalPoints,
				Projected: projected,
			},
			order: lineup.SlotOrder(slot.RosteredSlot),
		})
	}
	sort.SliceStable(starters, func(i, j int) bool { return starters[i].order < starters[j].order })

	players := make([]MatchupPlayer, 0, len(starters))
	for _, item := range starters {
		players = append(players, item.player)
	}

	rec := registry.Lookup(div, teamID)
	return MatchupSide{
		TeamID:         teamID,
		TeamName:       names.Name(teamID),
		Owner:          rec.Owner,
		Championships:  rec.Championships,
		Score:          score,
		ProjectedTotal: projectedTotal,
		Players:        players,
	}
}
