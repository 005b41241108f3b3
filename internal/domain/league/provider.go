package league

import (
	"context"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

// Provider fetches raw league state for a single configured league.
type Provider interface {
	FetchLeagueInfo(ctx context.Context, seasonID int) (Info, error)
	FetchTeams(ctx context.Context, seasonID, scoringPeriodID int) ([]team.Team, error)
	FetchBoxscores(ctx context.Context, seasonID, matchupPeriodID, scoringPeriodID int) ([]lineup.Boxscore, error)
}
