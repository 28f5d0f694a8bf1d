package mapper

import (
	"github.com/gridirondash/gridiron/internal/model"
)

// LogoLookup resolves a team name to a logo URL from the bundled
// reference table. Used for the college provider, which carries no logos
// of its own.
type LogoLookup func(name string) (string, bool)

// CoerceScore extracts a usable score from the several representations
// the providers use: an object with value/displayValue, a bare number, or
// a digit string. Anything else coerces to 0; scoreboard rows render a
// score either way.
func CoerceScore(v any) int {
	switch val := v.(type) {
	case Raw:
		if n, ok := asInt(val["value"]); ok {
			return n
		}
		if n, ok := asInt(val["displayValue"]); ok {
			return n
		}
		return 0
	default:
		if n, ok := asInt(v); ok {
			return n
		}
		return 0
	}
}

// teamLogo resolves a logo URL from the inline field, then the logos
// array, then (when a lookup table is supplied) the static name table.
func teamLogo(team Raw, name string, lookup LogoLookup) *string {
	if logo := extractString(team, "logo"); logo != "" {
		return &logo
	}
	if logos := extractArray(team, "logos"); len(logos) > 0 {
		if first, ok := logos[0].(Raw); ok {
			if href := extractString(first, "href"); href != "" {
				return &href
			}
		}
	}
	if lookup != nil {
		if url, ok := lookup(name); ok {
			return &url
		}
	}
	return nil
}

func recordSummary(raw Raw) *string {
	for _, key := range []string{"records", "record"} {
		if records := extractArray(raw, key); len(records) > 0 {
			if first, ok := records[0].(Raw); ok {
				if summary := extractString(first, "summary"); summary != "" {
					return &summary
				}
			}
		}
	}
	return nil
}

// MapCompetitor converts one raw competitor object into a scoreboard
// Competitor.
func MapCompetitor(raw Raw, lookup LogoLookup) model.Competitor {
	team := extractMap(raw, "team")
	name := fallbackString(
		extractString(team, "displayName"),
		extractString(team, "name"),
	)

	side := model.TeamSide(extractString(raw, "homeAway"))
	if side != model.SideHome && side != model.SideAway {
		side = model.SideAway
	}

	var score *int
	if v, ok := raw["score"]; ok && v != nil {
		n := CoerceScore(v)
		score = &n
	}

	var rank *int
	if r := extractIntPtr(raw, "rank"); r != nil && *r > 0 {
		rank = r
	}

	return model.Competitor{
		Team: model.Team{
			ID:           stringify(team["id"]),
			Name:         name,
			Nickname:     extractStringPtr(team, "shortDisplayName"),
			Abbreviation: extractStringPtr(team, "abbreviation"),
			Color:        extractStringPtr(team, "color"),
			Logo:         teamLogo(team, name, lookup),
			Record:       recordSummary(raw),
			Rank:         rank,
		},
		HomeAway: side,
		Score:    score,
	}
}

// MapTeamHeader converts a raw competitor object into the header-level
// team block. Missing scores default to zero here: the header always
// renders a number.
func MapTeamHeader(raw Raw) model.TeamHeader {
	team := extractMap(raw, "team")

	return model.TeamHeader{
		ID: stringify(team["id"]),
		Name: fallbackString(
			extractString(team, "displayName"),
			extractString(team, "nickname"),
			extractString(team, "name"),
		),
		FullName: fallbackString(
			extractString(team, "name"),
			extractString(team, "displayName"),
		),
		Abbreviation: extractString(team, "abbreviation"),
		Record:       recordSummary(raw),
		Score:        CoerceScore(raw["score"]),
	}
}
