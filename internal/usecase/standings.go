package usecase

import (
	"sort"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/ownership"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

// Standing is one ranked row; rank is the row's position in the slice.
type Standing struct {
	TeamID        int
	Name          string
	Owner         string
	Championships []string
	Wins          int
	Losses        int
	Ties          int
	Points        float64
	PointsAgainst float64
}

// BuildStandings joins every team with its ownership record and ranks by wins,
// then points scored. Rows tied on both keep provider order.
func BuildStandings(div division.Division, teams []team.Team, registry *ownership.Registry) []Standing {
	out := make([]Standing, 0, len(teams))
	for _, t := range teams {
		rec := registry.Lookup(div, t.ID)
		out = append(out, Standing{
			TeamID:        t.ID,
			Name:          t.Name,
			Owner:         rec.Owner,
			Championships: rec.Championships,
			Wins:          t.Wins,
			Losses:        t.Losses,
			Ties:          t.Ties,
			Points:        t.PointsFor,
			PointsAgainst: t.PointsAgainst,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Points > out[j].Points
	})

	return out
}
