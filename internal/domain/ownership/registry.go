package ownership

import (
	"strconv"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
)

// Registry is the read-only ownership lookup, keyed by division then team id string.
// It is built once and never mutated, so concurrent readers need no locking.
type Registry struct {
	entries map[division.Division]map[string]Record
}

// NewRegistry deep-copies source so later changes to it do not leak in.
func NewRegistry(source map[division.Division]map[string]Record) *Registry {
	entries := make(map[division.Division]map[string]Record, len(source))
	for div, teams := range source {
		copied := make(map[string]Record, len(teams))
		for id, rec := range teams {
			copied[id] = Record{
				Owner:         rec.Owner,
				Championships: append([]string(nil), rec.Championships...),
			}
		}
		entries[div] = copied
	}
	return &Registry{entries: entries}
}

// Lookup always returns a record. Unknown teams get an empty owner and no
// championships; placeholder years are filtered out.
func (r *Registry) Lookup(div division.Division, teamID int) Record {
	if r == nil {
		return Record{Championships: []string{}}
	}
	rec, ok := r.entries[div][strconv.Itoa(teamID)]
	if !ok {
		return Record{Championships: []string{}}
	}
	return rec.Clean()
}

func (r *Registry) Len(div division.Division) int {
	if r == nil {
		return 0
	}
	return len(r.entries[div])
}
