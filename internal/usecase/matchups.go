package usecase

import (
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

type MatchupSummary struct {
	HomeTeam   string
	HomeTeamID int
	HomeScore  float64
	AwayTeam   string
	AwayTeamID int
	AwayScore  float64
}

// SummarizeMatchups reduces boxscores to score pairs in provider order.
func SummarizeMatchups(boxscores []lineup.Boxscore, teams []team.Team) []MatchupSummary {
	names := team.IndexNames(teams)

	out := make([]MatchupSummary, 0, len(boxscores))
	for _, box := range boxscores {
		out = append(out, MatchupSummary{
			HomeTeam:   names.Name(box.HomeTeamID),
			HomeTeamID: box.HomeTeamID,
			HomeScore:  box.HomeScore,
			AwayTeam:   names.Name(box.AwayTeamID),
			AwayTeamID: box.AwayTeamID,
			AwayScore:  box.AwayScore,
		})
	}
	return out
}
