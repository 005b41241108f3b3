package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/league"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/ownership"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// DivisionSource binds one division to its configured league and provider.
type DivisionSource struct {
	LeagueID int
	SeasonID int
	Provider league.Provider
}

type LeagueSnapshot struct {
	Division        division.Division
	Name            string
	SeasonID        int
	MatchupPeriodID int
	ScoringPeriodID int
	Standings       []Standing
	Matchups        []MatchupSummary
}

type Summary struct {
	Divisions []LeagueSnapshot
}

type LeagueService struct {
	sources  map[division.Division]DivisionSource
	registry *ownership.Registry
	logger   *logging.Logger
}

func NewLeagueService(sources map[division.Division]DivisionSource, registry *ownership.Registry, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	copied := make(map[division.Division]DivisionSource, len(sources))
	for div, src := range sources {
		copied[div] = src
	}

	return &LeagueService{
		sources:  copied,
		registry: registry,
		logger:   logger,
	}
}

// weekState is everything fetched for one division's current week.
type weekState struct {
	info      league.Info
	teams     []team.Team
	boxscores []lineup.Boxscore
}

// GetSummary builds both divisions concurrently. Any division failing fails the whole summary.
func (s *LeagueService) GetSummary(ctx context.Context) (Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetSummary")
	defer span.End()

	divisions := division.All()
	snapshots := make([]LeagueSnapshot, len(divisions))

	p := pool.New().WithErrors()
	for i, div := range divisions {
		p.Go(func() error {
			snapshot, err := s.GetLeague(ctx, div)
			if err != nil {
				return err
			}
			snapshots[i] = snapshot
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Summary{}, err
	}

	return Summary{Divisions: snapshots}, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, div division.Division) (LeagueSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	state, err := s.fetchWeek(ctx, div)
	if err != nil {
		return LeagueSnapshot{}, err
	}

	return LeagueSnapshot{
		Division:        div,
		Name:            state.info.Name,
		SeasonID:        state.info.SeasonID,
		MatchupPeriodID: state.info.CurrentMatchupPeriodID,
		ScoringPeriodID: state.info.CurrentScoringPeriodID,
		Standings:       BuildStandings(div, state.teams, s.registry),
		Matchups:        SummarizeMatchups(state.boxscores, state.teams),
	}, nil
}

func (s *LeagueService) GetRoster(ctx context.Context, div division.Division, teamID int) (Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetRoster")
	defer span.End()

	if teamID <= 0 {
		return Roster{}, fmt.Errorf("%w: team id must be a positive integer", ErrInvalidInput)
	}

	state, err := s.fetchWeek(ctx, div)
	if err != nil {
		return Roster{}, err
	}

	return FormatRoster(div, teamID, state.boxscores, state.teams, s.registry)
}

func (s *LeagueService) GetMatchupDetail(ctx context.Context, div division.Division, homeTeamID, awayTeamID int) (MatchupDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetMatchupDetail")
	defer span.End()

	if homeTeamID <= 0 || awayTeamID <= 0 {
		return MatchupDetail{}, fmt.Errorf("%w: team ids must be positive integers", ErrInvalidInput)
	}
	if homeTeamID == awayTeamID {
		return MatchupDetail{}, fmt.Errorf("%w: a matchup needs two different teams", ErrInvalidInput)
	}

	state, err := s.fetchWeek(ctx, div)
	if err != nil {
		return MatchupDetail{}, err
	}

	return FormatMatchupDetail(div, homeTeamID, awayTeamID, state.boxscores, state.teams, s.registry)
}

// fetchWeek resolves the current week from league info, then loads teams and
// boxscores concurrently. Upstream calls are detached from request
// cancellation so they always run to completion or failure.
func (s *LeagueService) fetchWeek(ctx context.Context, div division.Division) (weekState, error) {
	if !div.Valid() {
		return weekState{}, fmt.Errorf("%w: division must be %q or %q", ErrInvalidInput, division.Green, division.White)
	}
	src, ok := s.sources[div]
	if !ok || src.Provider == nil {
		return weekState{}, fmt.Errorf("%w: division=%s has no league configured", ErrDependencyUnavailable, div)
	}

	ctx = context.WithoutCancel(ctx)

	info, err := src.Provider.FetchLeagueInfo(ctx, src.SeasonID)
	if err != nil {
		return weekState{}, s.upstreamError(ctx, div, src, "fetch league info", err)
	}
	if info.SeasonID == 0 {
		info.SeasonID = src.SeasonID
	}

	var (
		teams     []team.Team
		boxscores []lineup.Boxscore
	)

	p := pool.New().WithErrors()
	p.Go(func() error {
		out, err := src.Provider.FetchTeams(ctx, src.SeasonID, info.CurrentScoringPeriodID)
		if err != nil {
			return s.upstreamError(ctx, div, src, "fetch teams", err)
		}
		teams = out
		return nil
	})
	p.Go(func() error {
		out, err := src.Provider.FetchBoxscores(ctx, src.SeasonID, info.CurrentMatchupPeriodID, info.CurrentScoringPeriodID)
		if err != nil {
			return s.upstreamError(ctx, div, src, "fetch boxscores", err)
		}
		boxscores = out
		return nil
	})
	if err := p.Wait(); err != nil {
		return weekState{}, err
	}

	return weekState{info: info, teams: teams, boxscores: boxscores}, nil
}

func (s *LeagueService) upstreamError(ctx context.Context, div division.Division, src DivisionSource, op string, err error) error {
	s.logger.ErrorContext(ctx, "upstream fetch failed",
		"op", op,
		"division", div.String(),
		"league_id", src.LeagueID,
		"season_id", src.SeasonID,
		"error", err,
	)
	return fmt.Errorf("%w: %s division=%s: %w", ErrUpstreamFetch, op, div, err)
}
