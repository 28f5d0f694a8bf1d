package mapper

import (
	"time"

	"github.com/gridirondash/gridiron/internal/model"
)

// BuildGameLive assembles the full live-game view from a detail payload.
// Detail sections are populated when present and come back as empty
// shells for header-only payloads, so the fallback path still serves
// the complete shape. Scoring runs unconditionally: a summary that
// carries line scores but no drives or scoring plays still yields
// quarter totals.
func BuildGameLive(root Raw, league string, now time.Time) (model.GameLive, error) {
	env := DetectShape(root)

	header, err := MapHeader(env, league, now)
	if err != nil {
		return model.GameLive{}, err
	}
	homeID, awayID := header.HomeTeam.ID, header.AwayTeam.ID

	live := model.GameLive{
		Header:    header,
		Drives:    model.Drives{Summary: []model.DriveSummary{}},
		Scoring:   MapScoring(env, homeID, awayID),
		Boxscore:  MapBoxscore(root, homeID, awayID),
		Meta:      MapMeta(env),
		Analytics: MapAnalytics(root, header, now),
	}

	if env.SiteDetail {
		live.Drives = MapDrives(root, homeID, awayID)
	}

	return live, nil
}

// MapTodayGame shapes one scoreboard event into the compact row served
// by /games/today. seasonYear is the scoreboard-level season used when
// the event does not carry its own.
func MapTodayGame(event Raw, seasonYear *int) (model.TodayGame, bool) {
	env := DetectShape(event)
	home, away := splitHomeAway(extractArray(env.Competition, "competitors"))
	if len(home) == 0 || len(away) == 0 {
		return model.TodayGame{}, false
	}

	status := extractMap(env.Competition, "status")
	statusType := extractMap(status, "type")
	state := NormalizeStatus(
		fallbackString(extractString(statusType, "state"), extractString(statusType, "name")),
		extractBoolPtr(statusType, "completed"),
	)

	season := seasonYear
	if year := extractIntPtr(extractMap(event, "season"), "year"); year != nil {
		season = year
	}

	return model.TodayGame{
		GameID:         stringify(event["id"]),
		League:         "NFL",
		Season:         season,
		Week:           extractIntPtr(extractMap(event, "week"), "number"),
		Status:         state,
		Quarter:        extractIntPtr(status, "period"),
		Clock:          extractStringPtr(status, "displayClock"),
		KickoffTimeUTC: extractStringPtr(env.Competition, "date"),
		RedZone:        extractBool(env.Situation, "isRedZone"),
		HomeTeam:       MapTeamHeader(home),
		AwayTeam:       MapTeamHeader(away),
	}, true
}
