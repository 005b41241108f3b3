package httpapi

import "github.com/riskibarqy/fantasy-dashboard/internal/usecase"

type summaryDTO struct {
	Divisions []leagueSnapshotDTO `json:"divisions"`
}

type leagueSnapshotDTO struct {
	Division        string              `json:"division"`
	Name            string              `json:"name"`
	SeasonID        int                 `json:"seasonId"`
	MatchupPeriodID int                 `json:"matchupPeriodId"`
	ScoringPeriodID int                 `json:"scoringPeriodId"`
	Standings       []standingDTO       `json:"standings"`
	Matchups        []matchupSummaryDTO `json:"matchups"`
}

type standingDTO struct {
	TeamID        int      `json:"teamId"`
	Name          string   `json:"name"`
	Owner         string   `json:"owner"`
	Championships []string `json:"championships"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Ties          int      `json:"ties"`
	Points        float64  `json:"points"`
	PointsAgainst float64  `json:"pointsAgainst"`
}

type matchupSummaryDTO struct {
	HomeTeam   string  `json:"homeTeam"`
	HomeTeamID int     `json:"homeTeamId"`
	HomeScore  float64 `json:"homeScore"`
	AwayTeam   string  `json:"awayTeam"`
	AwayTeamID int     `json:"awayTeamId"`
	AwayScore  float64 `json:"awayScore"`
}

type rosterDTO struct {
	TeamID        int               `json:"teamId"`
	TeamName      string            `json:"teamName"`
	Owner         string            `json:"owner"`
	Championships []string          `json:"championships"`
	Players       []rosterPlayerDTO `json:"players"`
}

type rosterPlayerDTO struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	ProTeam  string  `json:"proTeam"`
	Slot     string  `json:"slot"`
	Points   float64 `json:"points"`
	Starter  bool    `json:"starter"`
}

type matchupDetailDTO struct {
	Home      matchupSideDTO `json:"home"`
	Away      matchupSideDTO `json:"away"`
	HomeScore float64        `json:"homeScore"`
	AwayScore float64        `json:"awayScore"`
}

type matchupSideDTO struct {
	TeamID         int                `json:"teamId"`
	TeamName       string             `json:"teamName"`
	Owner          string             `json:"owner"`
	Championships  []string           `json:"championships"`
	Score          float64            `json:"score"`
	ProjectedTotal float64            `json:"projectedTotal"`
	Players        []matchupPlayerDTO `json:"players"`
}

type matchupPlayerDTO struct {
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Points    float64 `json:"points"`
	Projected float64 `json:"projected"`
}

func summaryToDTO(in usecase.Summary) summaryDTO {
	out := summaryDTO{Divisions: make([]leagueSnapshotDTO, 0, len(in.Divisions))}
	for _, snapshot := range in.Divisions {
		out.Divisions = append(out.Divisions, snapshotToDTO(snapshot))
	}
	return out
}

func snapshotToDTO(in usecase.LeagueSnapshot) leagueSnapshotDTO {
	out := leagueSnapshotDTO{
		Division:        in.Division.String(),
		Name:            in.Name,
		SeasonID:        in.SeasonID,
		MatchupPeriodID: in.MatchupPeriodID,
		ScoringPeriodID: in.ScoringPeriodID,
		Standings:       make([]standingDTO, 0, len(in.Standings)),
		Matchups:        make([]matchupSummaryDTO, 0, len(in.Matchups)),
	}
	for _, s := range in.Standings {
		out.Standings = append(out.Standings, standingDTO{
			TeamID:        s.TeamID,
			Name:          s.Name,
			Owner:         s.Owner,
			Championships: nonNil(s.Championships),
			Wins:          s.Wins,
			Losses:        s.Losses,
			Ties:          s.Ties,
			Points:        s.Points,
			PointsAgainst: s.PointsAgainst,
		})
	}
	for _, m := range in.Matchups {
		out.Matchups = append(out.Matchups, matchupSummaryDTO(m))
	}
	return out
}

func rosterToDTO(in usecase.Roster) rosterDTO {
	out := rosterDTO{
		TeamID:        in.TeamID,
		TeamName:      in.TeamName,
		Owner:         in.Owner,
		Championships: nonNil(in.Championships),
		Players:       make([]rosterPlayerDTO, 0, len(in.Players)),
	}
	for _, p := range in.Players {
		out.Players = append(out.Players, rosterPlayerDTO(p))
	}
	return out
}

func matchupDetailToDTO(in usecase.MatchupDetail) matchupDetailDTO {
	return matchupDetailDTO{
		Home:      matchupSideToDTO(in.Home),
		Away:      matchupSideToDTO(in.Away),
		HomeScore: in.HomeScore,
		AwayScore: in.AwayScore,
	}
}

func matchupSideToDTO(in usecase.MatchupSide) matchupSideDTO {
	out := matchupSideDTO{
		TeamID:         in.TeamID,
		TeamName:       in.TeamName,
		Owner:          in.Owner,
		Championships:  nonNil(in.Championships),
		Score:          in.Score,
		ProjectedTotal: in.ProjectedTotal,
		Players:        make([]matchupPlayerDTO, 0, len(in.Players)),
	}
	for _, p := range in.Players {
		out.Players = append(out.Players, matchupPlayerDTO(p))
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
