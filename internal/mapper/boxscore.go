package mapper

import (
	"sort"
	"strings"

	"github.com/gridirondash/gridiron/internal/model"
)

// topPlayerLines is how many player stat lines survive per category.
const topPlayerLines = 3

// statValues flattens a team's statistics array into a name/label ->
// entry map so individual stats resolve independently. The full entry
// is kept: numeric fields prefer value, composite and display fields
// prefer displayValue.
func statValues(statistics []any) map[string]Raw {
	out := map[string]Raw{}
	for _, item := range statistics {
		stat, ok := item.(Raw)
		if !ok {
			continue
		}
		if name := extractString(stat, "name"); name != "" {
			out[name] = stat
		}
		if label := extractString(stat, "label"); label != "" {
			out[label] = stat
		}
	}
	return out
}

func statNumeric(stat Raw) any {
	if value, present := stat["value"]; present {
		return value
	}
	return stat["displayValue"]
}

func statDisplay(stat Raw) string {
	if s := stringify(stat["displayValue"]); s != "" {
		return s
	}
	return stringify(stat["value"])
}

// mapTeamStats turns one team's stat array into typed aggregates. Each
// field parses independently; a stat that fails to cast is skipped while
// its siblings still populate. Composite made-attempted values fail as a
// pair.
func mapTeamStats(statistics []any) model.TeamGameStats {
	values := statValues(statistics)
	stats := model.TeamGameStats{}

	intField := func(name string, dst **int) {
		if stat, ok := values[name]; ok {
			if n, ok := asInt(statNumeric(stat)); ok {
				*dst = &n
			}
		}
	}

	intField("totalYards", &stats.TotalYards)
	intField("totalPlays", &stats.Plays)
	intField("passingYards", &stats.PassingYards)
	intField("rushingYards", &stats.RushingYards)
	intField("turnovers", &stats.Turnovers)

	if stat, ok := values["yardsPerPlay"]; ok {
		if f, ok := asFloat(statNumeric(stat)); ok {
			stats.YardsPerPlay = &f
		}
	}

	// Composites read displayValue first: a stat like thirdDownEff can
	// carry a numeric value (a percentage) next to the "made-attempted"
	// display string.
	compositeField := func(name string, made, att **int) {
		stat, ok := values[name]
		if !ok {
			return
		}
		if m, a, ok := splitDash(statDisplay(stat)); ok {
			*made = &m
			*att = &a
		}
	}

	compositeField("totalPenaltiesYards", &stats.Penalties, &stats.PenaltyYards)
	compositeField("thirdDownEff", &stats.ThirdDownMade, &stats.ThirdDownAttempts)
	compositeField("redZoneEff", &stats.RedZoneTDs, &stats.RedZoneTrips)

	if stat, ok := values["timeOfPossession"]; ok {
		if s := statDisplay(stat); s != "" {
			stats.TimeOfPossession = &s
		}
	}

	return stats
}

// requireInts extracts every named field from an athlete's stat map,
// failing the whole line when any one is missing or uncastable. Partial
// player lines are never emitted.
func requireInts(stats Raw, names ...string) ([]int, bool) {
	out := make([]int, 0, len(names))
	for _, name := range names {
		v, present := stats[name]
		if !present {
			return nil, false
		}
		n, ok := asInt(v)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func athleteName(entry Raw) string {
	athlete := extractMap(entry, "athlete")
	return fallbackString(
		extractString(athlete, "displayName"),
		extractString(athlete, "shortName"),
	)
}

// MapBoxscore converts the provider's boxscore section into typed team
// and player statistics, keeping the top lines per category ranked by
// yards. An absent boxscore yields empty shells, not an error.
func MapBoxscore(root Raw, homeID, awayID string) model.Boxscore {
	boxscore := extractMap(root, "boxscore")

	out := model.Boxscore{
		PlayerStats: model.PlayerStats{
			Passing:   []model.PassingStat{},
			Rushing:   []model.RushingStat{},
			Receiving: []model.ReceivingStat{},
		},
	}

	for _, item := range extractArray(boxscore, "teams") {
		entry, ok := item.(Raw)
		if !ok {
			continue
		}
		stats := mapTeamStats(extractArray(entry, "statistics"))
		switch stringify(extractMap(entry, "team")["id"]) {
		case homeID:
			out.TeamStats.Home = stats
		case awayID:
			out.TeamStats.Away = stats
		}
	}

	for _, item := range extractArray(boxscore, "players") {
		side, ok := item.(Raw)
		if !ok {
			continue
		}
		var teamSide model.TeamSide
		switch stringify(extractMap(side, "team")["id"]) {
		case homeID:
			teamSide = model.SideHome
		case awayID:
			teamSide = model.SideAway
		default:
			continue
		}

		for _, catItem := range extractArray(side, "statistics") {
			category, ok := catItem.(Raw)
			if !ok {
				continue
			}
			athletes := extractArray(category, "athletes")

			switch strings.ToLower(extractString(category, "name")) {
			case "passing":
				out.PlayerStats.Passing = append(out.PlayerStats.Passing,
					collect(athletes, func(entry Raw) (model.PassingStat, bool) {
						return mapPassing(entry, teamSide)
					})...)
			case "rushing":
				out.PlayerStats.Rushing = append(out.PlayerStats.Rushing,
					collect(athletes, func(entry Raw) (model.RushingStat, bool) {
						return mapRushing(entry, teamSide)
					})...)
			case "receiving":
				out.PlayerStats.Receiving = append(out.PlayerStats.Receiving,
					collect(athletes, func(entry Raw) (model.ReceivingStat, bool) {
						return mapReceiving(entry, teamSide)
					})...)
			}
		}
	}

	out.PlayerStats.Passing = topPassing(out.PlayerStats.Passing)
	out.PlayerStats.Rushing = topRushing(out.PlayerStats.Rushing)
	out.PlayerStats.Receiving = topReceiving(out.PlayerStats.Receiving)

	return out
}

func mapPassing(entry Raw, side model.TeamSide) (model.PassingStat, bool) {
	name := athleteName(entry)
	if name == "" {
		return model.PassingStat{}, false
	}
	vals, ok := requireInts(extractMap(entry, "stats"),
		"completions", "attempts", "yards", "touchdowns", "interceptions")
	if !ok {
		return model.PassingStat{}, false
	}
	return model.PassingStat{
		Player:        name,
		Team:          side,
		Completions:   vals[0],
		Attempts:      vals[1],
		Yards:         vals[2],
		Touchdowns:    vals[3],
		Interceptions: vals[4],
	}, true
}

func mapRushing(entry Raw, side model.TeamSide) (model.RushingStat, bool) {
	name := athleteName(entry)
	if name == "" {
		return model.RushingStat{}, false
	}
	vals, ok := requireInts(extractMap(entry, "stats"), "carries", "yards", "touchdowns")
	if !ok {
		return model.RushingStat{}, false
	}
	return model.RushingStat{
		Player:     name,
		Team:       side,
		Carries:    vals[0],
		Yards:      vals[1],
		Touchdowns: vals[2],
	}, true
}

func mapReceiving(entry Raw, side model.TeamSide) (model.ReceivingStat, bool) {
	name := athleteName(entry)
	if name == "" {
		return model.ReceivingStat{}, false
	}
	vals, ok := requireInts(extractMap(entry, "stats"), "receptions", "yards", "touchdowns")
	if !ok {
		return model.ReceivingStat{}, false
	}
	return model.ReceivingStat{
		Player:     name,
		Team:       side,
		Receptions: vals[0],
		Yards:      vals[1],
		Touchdowns: vals[2],
	}, true
}

func topPassing(lines []model.PassingStat) []model.PassingStat {
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Yards > lines[j].Yards })
	if len(lines) > topPlayerLines {
		lines = lines[:topPlayerLines]
	}
	return lines
}

func topRushing(lines []model.RushingStat) []model.RushingStat {
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Yards > lines[j].Yards })
	if len(lines) > topPlayerLines {
		lines = lines[:topPlayerLines]
	}
	return lines
}

func topReceiving(lines []model.ReceivingStat) []model.ReceivingStat {
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Yards > lines[j].Yards })
	if len(lines) > topPlayerLines {
		lines = lines[:topPlayerLines]
	}
	return lines
}
