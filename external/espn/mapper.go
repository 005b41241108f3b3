package espn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/league"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

const (
	statSourceActual    = 0
	statSourceProjected = 1
)

var lineupSlotNames = map[int]string{
	0:  lineup.SlotQB,
	1:  "TQB",
	2:  lineup.SlotRB,
	3:  "RB/WR",
	4:  lineup.SlotWR,
	5:  "WR/TE",
	6:  lineup.SlotTE,
	7:  "OP",
	8:  "DT",
	9:  "DE",
	10: "LB",
	11: "DL",
	12: "CB",
	13: "S",
	14: "DB",
	15: "DP",
	16: lineup.SlotDST,
	17: lineup.SlotK,
	18: "P",
	19: "HC",
	20: lineup.SlotBench,
	21: lineup.SlotIR,
	23: lineup.SlotRBWRTE,
	24: "ER",
}

var positionNames = map[int]string{
	1:  "QB",
	2:  "RB",
	3:  "WR",
	4:  "TE",
	5:  "K",
	16: "D/ST",
}

var proTeamAbbrevs = map[int]string{
	0:  "FA",
	1:  "ATL",
	2:  "BUF",
	3:  "CHI",
	4:  "CIN",
	5:  "CLE",
	6:  "DAL",
	7:  "DEN",
	8:  "DET",
	9:  "GB",
	10: "TEN",
	11: "IND",
	12: "KC",
	13: "LV",
	14: "LAR",
	15: "MIA",
	16: "MIN",
	17: "NE",
	18: "NO",
	19: "NYG",
	20: "NYJ",
	21: "PHI",
	22: "ARI",
	23: "PIT",
	24: "LAC",
	25: "SF",
	26: "SEA",
	27: "TB",
	28: "WSH",
	29: "CAR",
	30: "JAX",
	33: "BAL",
	34: "HOU",
}

// statNames covers the scoring categories a standard league projects.
var statNames = map[string]string{
	"3":   "passingYards",
	"4":   "passingTouchdowns",
	"19":  "passing2PtConversions",
	"20":  "passingInterceptions",
	"24":  "rushingYards",
	"25":  "rushingTouchdowns",
	"26":  "rushing2PtConversions",
	"42":  "receivingYards",
	"43":  "receivingTouchdowns",
	"44":  "receiving2PtConversions",
	"53":  "receivingReceptions",
	"72":  "lostFumbles",
	"74":  "madeFieldGoalsFrom50Plus",
	"77":  "madeFieldGoalsFrom40To49",
	"80":  "madeFieldGoalsFromUnder40",
	"85":  "missedFieldGoals",
	"86":  "madeExtraPoints",
	"88":  "missedExtraPoints",
	"89":  "defensive0PointsAllowed",
	"90":  "defensive1To6PointsAllowed",
	"91":  "defensive7To13PointsAllowed",
	"92":  "defensive14To17PointsAllowed",
	"95":  "defensiveInterceptions",
	"96":  "defensiveFumbles",
	"97":  "defensiveBlockedKicks",
	"98":  "defensiveSafeties",
	"99":  "defensiveSacks",
	"101": "kickoffReturnTouchdowns",
	"102": "puntReturnTouchdowns",
	"103": "interceptionReturnTouchdowns",
	"104": "fumbleReturnTouchdowns",
	"123": "defensive28To34PointsAllowed",
	"124": "defensive35To45PointsAllowed",
}

func slotName(id int) string {
	if name, ok := lineupSlotNames[id]; ok {
		return name
	}
	return "slot_" + strconv.Itoa(id)
}

func positionName(id int) string {
	if name, ok := positionNames[id]; ok {
		return name
	}
	return "pos_" + strconv.Itoa(id)
}

func proTeamAbbrev(id int) string {
	if abbrev, ok := proTeamAbbrevs[id]; ok {
		return abbrev
	}
	return proTeamAbbrevs[0]
}

func statName(id string) string {
	if name, ok := statNames[id]; ok {
		return name
	}
	return "stat_" + id
}

func mapLeagueInfo(in leagueEnvelope) league.Info {
	return league.Info{
		Name:                   strings.TrimSpace(in.Settings.Name),
		SeasonID:               in.SeasonID,
		CurrentMatchupPeriodID: in.Status.CurrentMatchupPeriod,
		CurrentScoringPeriodID: in.ScoringPeriodID,
	}
}

func mapTeam(in teamItem) team.Team {
	return team.Team{
		ID:            in.ID,
		Name:          teamDisplayName(in),
		Abbrev:        strings.TrimSpace(in.Abbrev),
		Wins:          in.Record.Overall.Wins,
		Losses:        in.Record.Overall.Losses,
		Ties:          in.Record.Overall.Ties,
		PointsFor:     in.Record.Overall.PointsFor,
		PointsAgainst: in.Record.Overall.PointsAgainst,
	}
}

// teamDisplayName prefers the combined name; older seasons only carry location and nickname.
func teamDisplayName(in teamItem) string {
	if name := strings.TrimSpace(in.Name); name != "" {
		return name
	}
	if name := strings.TrimSpace(strings.TrimSpace(in.Location) + " " + strings.TrimSpace(in.Nickname)); name != "" {
		return name
	}
	if abbrev := strings.TrimSpace(in.Abbrev); abbrev != "" {
		return abbrev
	}
	return fmt.Sprintf("Team %d", in.ID)
}

// mapBoxscores keeps provider order and drops bye weeks and entries outside matchupPeriodID.
func mapBoxscores(items []scheduleItem, matchupPeriodID, scoringPeriodID int) []lineup.Boxscore {
	out := make([]lineup.Boxscore, 0, len(items))
	for _, item := range items {
		if matchupPeriodID > 0 && item.MatchupPeriodID != matchupPeriodID {
			continue
		}
		if item.Home == nil || item.Away == nil {
			continue
		}
		out = append(out, lineup.Boxscore{
			MatchupPeriodID: item.MatchupPeriodID,
			HomeTeamID:      item.Home.TeamID,
			AwayTeamID:      item.Away.TeamID,
			HomeScore:       item.Home.TotalPoints,
			AwayScore:       item.Away.TotalPoints,
			HomeRoster:      mapRoster(item.Home.RosterForCurrentScoringPeriod, scoringPeriodID),
			AwayRoster:      mapRoster(item.Away.RosterForCurrentScoringPeriod, scoringPeriodID),
		})
	}
	return out
}

func mapRoster(block *rosterBlock, scoringPeriodID int) []lineup.PlayerSlot {
	if block == nil {
		return []lineup.PlayerSlot{}
	}
	out := make([]lineup.PlayerSlot, 0, len(block.Entries))
	for _, entry := range block.Entries {
		out = append(out, mapPlayerSlot(entry, scoringPeriodID))
	}
	return out
}

func mapPlayerSlot(entry rosterEntry, scoringPeriodID int) lineup.PlayerSlot {
	player := entry.PlayerPoolEntry.Player
	slot := lineup.PlayerSlot{
		FullName:        strings.TrimSpace(player.FullName),
		DefaultPosition: positionName(player.DefaultPositionID),
		ProTeam:         proTeamAbbrev(player.ProTeamID),
		RosteredSlot:    slotName(entry.LineupSlotID),
	}

	if actual, ok := findStatLine(player.Stats, statSourceActual, scoringPeriodID); ok {
		slot.TotalPoints = actual.AppliedTotal
	}
	if projected, ok := findStatLine(player.Stats, statSourceProjected, scoringPeriodID); ok {
		slot.ProjectedBreakdown = namedBreakdown(projected.AppliedStats)
	}
	return slot
}

func findStatLine(stats []statLine, source, scoringPeriodID int) (statLine, bool) {
	for _, line := range stats {
		if line.StatSourceID != source {
			continue
		}
		if scoringPeriodID > 0 && line.ScoringPeriodID != scoringPeriodID {
			continue
		}
		return line, true
	}
	return statLine{}, false
}

func namedBreakdown(applied map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(applied))
	for id, points := range applied {
		out[statName(id)] += points
	}
	return out
}
