package mapper

import (
	"strings"

	"github.com/gridirondash/gridiron/internal/model"
)

// titleCase uppercases the first letter of each space-separated word,
// matching how the provider labels its own stat tables.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func teamDisplayName(team Raw) string {
	return fallbackString(
		extractString(team, "displayName"),
		extractString(team, "name"),
		extractString(team, "shortDisplayName"),
	)
}

// MapGameSummary builds the scoreboard-style summary row at the top of a
// game details response.
func MapGameSummary(env Envelope, sport model.Sport, eventID string, logo LogoLookup) model.GameSummary {
	competitors := collect(extractArray(env.Competition, "competitors"), func(entry Raw) (model.Competitor, bool) {
		return MapCompetitor(entry, logo), true
	})

	status := extractString(
		extractMap(extractMap(env.Competition, "status"), "type"), "description")

	return model.GameSummary{
		ID: fallbackString(
			stringify(env.Header["id"]),
			eventID,
		),
		Sport: sport,
		StartTime: fallbackString(
			extractString(env.Competition, "date"),
			extractString(env.Header, "date"),
		),
		Status:      status,
		Venue:       extractStringPtr(extractMap(env.Competition, "venue"), "fullName"),
		Competitors: competitors,
	}
}

// MapSituation lifts the live down-and-distance block out of the
// competition. Games without one return nil so the field serializes as
// null instead of a zeroed shell.
func MapSituation(env Envelope) *model.GameSituation {
	if len(env.Situation) == 0 {
		return nil
	}

	situation := &model.GameSituation{
		Down:                  extractIntPtr(env.Situation, "down"),
		Distance:              extractIntPtr(env.Situation, "distance"),
		YardLine:              extractIntPtr(env.Situation, "yardLine"),
		ShortDownDistanceText: extractStringPtr(env.Situation, "shortDownDistanceText"),
		DownDistanceText:      extractStringPtr(env.Situation, "downDistanceText"),
		PossessionText:        extractStringPtr(env.Situation, "possessionText"),
		IsRedZone:             extractBoolPtr(env.Situation, "isRedZone"),
	}

	switch clock := env.Situation["clock"].(type) {
	case string:
		situation.Clock = &clock
	case Raw:
		situation.Clock = extractStringPtr(clock, "displayValue")
	}

	status := extractMap(env.Competition, "status")
	if len(status) == 0 {
		status = extractMap(env.Header, "status")
	}
	situation.Period = extractIntPtr(status, "period")

	if id := resolvePossessionID(env.Situation); id != "" {
		situation.PossessionTeamID = &id
	}

	return situation
}

// playerStatTables flattens boxscore player categories into display
// tables, one per team and category. The raw stat cells are the
// provider's display strings and pass through untyped.
func playerStatTables(boxscore Raw) []model.BoxScoreCategory {
	tables := []model.BoxScoreCategory{}
	for _, item := range extractArray(boxscore, "players") {
		side, ok := item.(Raw)
		if !ok {
			continue
		}
		teamName := teamDisplayName(extractMap(side, "team"))

		for _, catItem := range extractArray(side, "statistics") {
			category, ok := catItem.(Raw)
			if !ok {
				continue
			}
			title := fallbackString(
				extractString(category, "name"),
				extractString(category, "displayName"),
				extractString(category, "shortDisplayName"),
			)

			headers := []string{}
			for _, label := range extractArray(category, "labels") {
				headers = append(headers, stringify(label))
			}

			rows := [][]string{}
			for _, athleteItem := range extractArray(category, "athletes") {
				entry, ok := athleteItem.(Raw)
				if !ok {
					continue
				}
				row := []string{athleteName(entry)}
				for _, cell := range extractArray(entry, "stats") {
					row = append(row, stringify(cell))
				}
				rows = append(rows, row)
			}

			if len(rows) > 0 {
				tables = append(tables, model.BoxScoreCategory{
					Title:   strings.TrimSpace(teamName + " " + titleCase(title)),
					Headers: headers,
					Rows:    rows,
				})
			}
		}
	}
	return tables
}

func teamStatTables(boxscore Raw) []model.BoxScoreCategory {
	tables := []model.BoxScoreCategory{}
	for _, item := range extractArray(boxscore, "teams") {
		entry, ok := item.(Raw)
		if !ok {
			continue
		}
		name := teamDisplayName(extractMap(entry, "team"))
		if name == "" {
			name = "Team"
		}

		rows := [][]string{}
		for _, statItem := range extractArray(entry, "statistics") {
			stat, ok := statItem.(Raw)
			if !ok {
				continue
			}
			rows = append(rows, []string{
				extractString(stat, "label"),
				extractString(stat, "displayValue"),
			})
		}

		if len(rows) > 0 {
			tables = append(tables, model.BoxScoreCategory{
				Title: name + " Team Stats",
				Rows:  rows,
			})
		}
	}
	return tables
}

// MapGameDetails normalizes a detail payload into the tabular response
// served by /api/game. Plays and win probability pass through untouched
// for the client to chart.
func MapGameDetails(root Raw, sport model.Sport, eventID string, logo LogoLookup) model.GameDetails {
	env := DetectShape(root)
	boxscore := extractMap(root, "boxscore")

	plays := extractArray(extractMap(extractMap(root, "drives"), "current"), "plays")
	winProbability := extractArray(root, "winprobability")

	return model.GameDetails{
		Summary:        MapGameSummary(env, sport, eventID, logo),
		Boxscore:       playerStatTables(boxscore),
		TeamStats:      teamStatTables(boxscore),
		Plays:          plays,
		WinProbability: winProbability,
		Situation:      MapSituation(env),
	}
}
