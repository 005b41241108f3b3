package team

// Team is one fantasy franchise as reported by the league provider for a given week.
type Team struct {
	ID            int
	Name          string
	Abbrev        string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
}

// NameIndex maps team id to display name.
type NameIndex map[int]string

const UnknownName = "Unknown"

func IndexNames(teams []Team) NameIndex {
	out := make(NameIndex, len(teams))
	for _, t := range teams {
		out[t.ID] = t.Name
	}
	return out
}

// Name never fails; ids missing from the index resolve to UnknownName.
func (idx NameIndex) Name(id int) string {
	if name, ok := idx[id]; ok {
		return name
	}
	return UnknownName
}
