package league

// Info is the league metadata needed to locate the current week.
type Info struct {
	Name                   string
	SeasonID               int
	CurrentMatchupPeriodID int
	CurrentScoringPeriodID int
}
