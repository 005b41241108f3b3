package lineup

// PlayerSlot is one player's entry in a team's weekly lineup.
type PlayerSlot struct {
	FullName        string
	DefaultPosition string
	ProTeam         string
	RosteredSlot    string
	TotalPoints     float64
	// ProjectedBreakdown maps scoring category to projected points. Nil when
	// the provider sent no projection for the week.
	ProjectedBreakdown map[string]float64
}

// ProjectedTotal sums the projected breakdown, 0 when there is none.
func (p PlayerSlot) ProjectedTotal() float64 {
	total := 0.0
	for _, v := range p.ProjectedBreakdown {
		total += v
	}
	return total
}

func (p PlayerSlot) IsStarter() bool {
	return IsStarterSlot(p.RosteredSlot)
}

// Boxscore is one head-to-head matchup for a week, including both lineups.
type Boxscore struct {
	MatchupPeriodID int
	HomeTeamID      int
	AwayTeamID      int
	HomeScore       float64
	AwayScore       float64
	HomeRoster      []PlayerSlot
	AwayRoster      []PlayerSlot
}

// RosterFor returns the lineup for teamID when it plays in this boxscore.
func (b Boxscore) RosterFor(teamID int) ([]PlayerSlot, bool) {
	switch teamID {
	case b.HomeTeamID:
		return b.HomeRoster, true
	case b.AwayTeamID:
		return b.AwayRoster, true
	default:
		return nil, false
	}
}

// Pairs reports whether the boxscore is between a and b, in either order.
func (b Boxscore) Pairs(a, c int) bool {
	return (b.HomeTeamID == a && b.AwayTeamID == c) || (b.HomeTeamID == c && b.AwayTeamID == a)
}
