package ownership

import (
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/division"
	domain "github.com/riskibarqy/fantasy-dashboard/internal/domain/ownership"
)

// SeedRecords is the curated ownership table, keyed by ESPN team id.
// Empty championship entries are placeholders kept for column alignment with
// the league's trophy sheet.
func SeedRecords() map[division.Division]map[string]domain.Record {
	return map[division.Division]map[string]domain.Record{
		division.Green: {
			"1":  {Owner: "Marcus Hale", Championships: []string{"2014", "2019"}},
			"2":  {Owner: "Priya Natarajan", Championships: []string{""}},
			"3":  {Owner: "Tom Okafor", Championships: []string{"2016", "", "2022"}},
			"4":  {Owner: "Jess Lindqvist", Championships: []string{}},
			"5":  {Owner: "Andre Castillo", Championships: []string{"2018"}},
			"6":  {Owner: "Kenji Mori", Championships: []string{"", ""}},
			"7":  {Owner: "Sam Whitaker", Championships: []string{"2015", "2020"}},
			"8":  {Owner: "Leah Brennan", Championships: []string{}},
			"9":  {Owner: "Omar Haddad", Championships: []string{"2017"}},
			"10": {Owner: "Chris Delgado", Championships: []string{"2021", "", "2023"}},
		},
		division.White: {
			"1":  {Owner: "Nina Petrova", Championships: []string{"2016"}},
			"2":  {Owner: "Drew Callahan", Championships: []string{}},
			"3":  {Owner: "Ray Sandoval", Championships: []string{"", "2019"}},
			"4":  {Owner: "Mia Fontaine", Championships: []string{"2022"}},
			"5":  {Owner: "Jordan Park", Championships: []string{""}},
			"6":  {Owner: "Eli Brooks", Championships: []string{"2015", "2018"}},
			"7":  {Owner: "Hannah Greer", Championships: []string{}},
			"8":  {Owner: "Victor Lam", Championships: []string{"2020"}},
			"9":  {Owner: "Tess Romero", Championships: []string{"2017", ""}},
			"10": {Owner: "Ben Adler", Championships: []string{"2021", "2023"}},
		},
	}
}
