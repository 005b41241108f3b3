package espn

type leagueEnvelope struct {
	ID              int            `json:"id"`
	SeasonID        int            `json:"seasonId"`
	ScoringPeriodID int            `json:"scoringPeriodId"`
	Settings        leagueSettings `json:"settings"`
	Status          leagueStatus   `json:"status"`
}

type leagueSettings struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type leagueStatus struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

type teamsEnvelope struct {
	Teams []teamItem `json:"teams"`
}

type teamItem struct {
	ID       int        `json:"id"`
	Abbrev   string     `json:"abbrev"`
	Name     string     `json:"name"`
	Location string     `json:"location"`
	Nickname string     `json:"nickname"`
	Record   teamRecord `json:"record"`
}

type teamRecord struct {
	Overall recordLine `json:"overall"`
}

type recordLine struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

type scheduleEnvelope struct {
	Schedule []scheduleItem `json:"schedule"`
}

type scheduleItem struct {
	ID              int        `json:"id"`
	MatchupPeriodID int        `json:"matchupPeriodId"`
	Home            *teamScore `json:"home"`
	Away            *teamScore `json:"away"`
}

type teamScore struct {
	TeamID                        int          `json:"teamId"`
	TotalPoints                   float64      `json:"totalPoints"`
	RosterForCurrentScoringPeriod *rosterBlock `json:"rosterForCurrentScoringPeriod"`
}

type rosterBlock struct {
	Entries []rosterEntry `json:"entries"`
}

type rosterEntry struct {
	LineupSlotID    int             `json:"lineupSlotId"`
	PlayerPoolEntry playerPoolEntry `json:"playerPoolEntry"`
}

type playerPoolEntry struct {
	ID               int        `json:"id"`
	AppliedStatTotal float64    `json:"appliedStatTotal"`
	Player           playerItem `json:"player"`
}

type playerItem struct {
	ID                int        `json:"id"`
	FullName          string     `json:"fullName"`
	DefaultPositionID int        `json:"defaultPositionId"`
	ProTeamID         int        `json:"proTeamId"`
	Stats             []statLine `json:"stats"`
}

type statLine struct {
	StatSourceID    int                `json:"statSourceId"`
	ScoringPeriodID int                `json:"scoringPeriodId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	AppliedStats    map[string]float64 `json:"appliedStats"`
}

// fantasyFilter is sent in the X-Fantasy-Filter header.
type fantasyFilter struct {
	Schedule scheduleFilter `json:"schedule"`
}

type scheduleFilter struct {
	FilterMatchupPeriodIDs filterValues `json:"filterMatchupPeriodIds"`
}

type filterValues struct {
	Value []int `json:"value"`
}
