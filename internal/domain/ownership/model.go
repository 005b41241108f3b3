package ownership

// Record is the curated ownership data for one team.
type Record struct {
	Owner         string
	Championships []string
}

// Clean returns a copy with placeholder championship entries removed.
func (r Record) Clean() Record {
	years := make([]string, 0, len(r.Championships))
	for _, year := range r.Championships {
		if year == "" {
			continue
		}
		years = append(years, year)
	}
	return Record{Owner: r.Owner, Championships: years}
}
