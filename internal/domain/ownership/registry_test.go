package ownership

import (
	"testing"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_LookupDefaultsForMissingTeam(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(map[division.Division]map[string]Record{
		division.Green: {"1": {Owner: "Dana", Championships: []string{"2019"}}},
	})

	got := reg.Lookup(division.Green, 2)
	assert.Equal(t, "", got.Owner)
	assert.NotNil(t, got.Championships)
	assert.Empty(t, got.Championships)

	got = reg.Lookup(division.White, 1)
	assert.Equal(t, "", got.Owner)
	assert.Empty(t, got.Championships)
}

func TestRegistry_LookupFiltersPlaceholderYears(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(map[division.Division]map[string]Record{
		division.White: {"4": {Owner: "Robin", Championships: []string{"", "2016", "", "2021"}}},
	})

	got := reg.Lookup(division.White, 4)
	assert.Equal(t, "Robin", got.Owner)
	assert.Equal(t, []string{"2016", "2021"}, got.Championships)
}

func TestRegistry_IsolatedFromSource(t *testing.T) {
	t.Parallel()

	source := map[division.Division]map[string]Record{
		division.Green: {"7": {Owner: "Alex", Championships: []string{"2020"}}},
	}
	reg := NewRegistry(source)
	source[division.Green]["7"].Championships[0] = "1999"
	source[division.Green]["8"] = Record{Owner: "Late"}

	assert.Equal(t, []string{"2020"}, reg.Lookup(division.Green, 7).Championships)
	assert.Equal(t, "", reg.Lookup(division.Green, 8).Owner)
	assert.Equal(t, 1, reg.Len(division.Green))
}

func TestRegistry_NilIsEmpty(t *testing.T) {
	t.Parallel()

	var reg *Registry
	got := reg.Lookup(division.Green, 1)
	assert.Equal(t, "", got.Owner)
	assert.Empty(t, got.Championships)
}
