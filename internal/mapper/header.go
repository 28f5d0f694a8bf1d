package mapper

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/gridirondash/gridiron/internal/model"
)

// ErrMalformedPayload marks payloads missing the structure needed to
// establish a minimal game identity (fewer than two competitors, no
// competitions list). Only the header mapper raises it; every other
// mapper degrades instead.
var ErrMalformedPayload = errors.New("malformed provider payload")

// Offensive yard lines count up toward the opposing end zone, so 80+
// means inside the opponent's 20.
const redZoneYardLine = 80

// resolveQuarter: competition-level status period first, header-level
// second.
func resolveQuarter(env Envelope) *int {
	if status := extractMap(env.Competition, "status"); len(status) > 0 {
		if p := extractIntPtr(status, "period"); p != nil {
			return p
		}
	}
	if status := extractMap(env.Header, "status"); len(status) > 0 {
		if p := extractIntPtr(status, "period"); p != nil {
			return p
		}
	}
	return nil
}

// resolveClock: competition status displayClock first, status-type short
// text second.
func resolveClock(status, statusType Raw) *string {
	if clock := extractString(status, "displayClock"); clock != "" {
		return &clock
	}
	if short := extractString(statusType, "shortDetail"); short != "" {
		return &short
	}
	return nil
}

// resolveKickoff: competition date, then header date, then "now".
func resolveKickoff(env Envelope, now time.Time) string {
	if date := extractString(env.Competition, "date"); date != "" {
		return date
	}
	if date := extractString(env.Header, "date"); date != "" {
		return date
	}
	return now.UTC().Truncate(time.Second).Format(time.RFC3339)
}

// resolvePossession normalizes the raw possession value (a bare id, an
// object with an id, or an object nesting a team id), then matches it
// against both team ids. No match means no possession claim.
func resolvePossession(situation Raw, homeID, awayID string) *model.TeamSide {
	id := resolvePossessionID(situation)
	if id == "" {
		return nil
	}

	switch id {
	case homeID:
		side := model.SideHome
		return &side
	case awayID:
		side := model.SideAway
		return &side
	}
	return nil
}

// resolvePossessionID extracts the possessing team id whether the
// provider sends a bare id, an object with an id, or an object nesting a
// team reference.
func resolvePossessionID(situation Raw) string {
	raw, ok := situation["possession"]
	if !ok || raw == nil {
		return ""
	}
	switch v := raw.(type) {
	case Raw:
		if id := stringify(v["id"]); id != "" {
			return id
		}
		return stringify(extractMap(v, "team")["id"])
	default:
		return stringify(raw)
	}
}

// resolveRedZone ORs the provider's explicit flag with the yard-line
// signal when a yard line is known.
func resolveRedZone(situation Raw, yardLine *int) bool {
	red := extractBool(situation, "isRedZone")
	if yardLine != nil && *yardLine >= redZoneYardLine {
		red = true
	}
	return red
}

// MapHeader assembles the game header from a shape-detected envelope.
// now supplies the wall clock for the last-updated stamp and the kickoff
// fallback; everything else is a pure function of the payload.
func MapHeader(env Envelope, league string, now time.Time) (model.Header, error) {
	competitors := extractArray(env.Competition, "competitors")
	if len(competitors) < 2 {
		return model.Header{}, errors.Wrapf(ErrMalformedPayload, "need 2 competitors, got %d", len(competitors))
	}

	homeRaw, awayRaw := splitHomeAway(competitors)
	if homeRaw == nil || awayRaw == nil {
		return model.Header{}, errors.Wrap(ErrMalformedPayload, "cannot identify home and away competitors")
	}

	home := MapTeamHeader(homeRaw)
	away := MapTeamHeader(awayRaw)

	status := extractMap(env.Competition, "status")
	statusType := extractMap(status, "type")

	rawState := fallbackString(
		extractString(statusType, "state"),
		extractString(statusType, "name"),
	)
	state := NormalizeStatus(rawState, extractBoolPtr(statusType, "completed"))

	season := extractInt(extractMap(env.Header, "season"), "year")
	if season == 0 {
		season = extractInt(extractMap(env.Root, "season"), "year")
	}
	week := extractIntPtr(extractMap(env.Header, "week"), "number")
	if week == nil {
		week = extractIntPtr(extractMap(env.Root, "week"), "number")
	}

	gameID := fallbackString(
		stringify(env.Header["id"]),
		stringify(env.Root["id"]),
	)

	yardLine := extractIntPtr(env.Situation, "yardLine")

	var lastPlay *string
	if lp := extractMap(env.Situation, "lastPlay"); len(lp) > 0 {
		lastPlay = extractStringPtr(lp, "text")
	}

	if league != "NFL" {
		league = "CFB"
	}

	return model.Header{
		GameID:         gameID,
		League:         league,
		Season:         season,
		Week:           week,
		Status:         state,
		KickoffTimeUTC: resolveKickoff(env, now),
		HomeTeam:       home,
		AwayTeam:       away,
		Quarter:        resolveQuarter(env),
		Clock:          resolveClock(status, statusType),
		Possession:     resolvePossession(env.Situation, home.ID, away.ID),
		Down:           extractIntPtr(env.Situation, "down"),
		Distance:       extractIntPtr(env.Situation, "distance"),
		YardLine:       yardLine,
		RedZone:        resolveRedZone(env.Situation, yardLine),
		HomeTimeouts:   extractIntPtr(env.Situation, "homeTimeouts"),
		AwayTimeouts:   extractIntPtr(env.Situation, "awayTimeouts"),
		LastPlayShort:  lastPlay,
		LastUpdatedUTC: now.UTC().Truncate(time.Second).Format(time.RFC3339),
	}, nil
}
