package mapper

import (
	"strings"
	"time"

	"github.com/gridirondash/gridiron/internal/model"
)

// weekLabels canonicalizes postseason entry labels the provider spells
// inconsistently across seasons ("Wild Card Weekend", "Conference
// Championships"). Matched by substring in order, first hit wins.
var weekLabels = []struct {
	token     string
	canonical string
}{
	{"wild card", "Wild Card"},
	{"wildcard", "Wild Card"},
	{"divisional", "Divisional Round"},
	{"conference championship", "Conference Championship"},
	{"conf championship", "Conference Championship"},
	{"super bowl", "Super Bowl"},
	{"pro bowl", "Pro Bowl"},
}

func normalizeWeekLabel(label string) string {
	lowered := strings.ToLower(strings.TrimSpace(label))
	for _, entry := range weekLabels {
		if strings.Contains(lowered, entry.token) {
			return entry.canonical
		}
	}
	return label
}

// MapCalendarWeeks flattens the scoreboard calendar into a single week
// list. Season type is derived from the calendar section's position, not
// from any field inside it: the provider orders sections preseason,
// regular season, postseason.
func MapCalendarWeeks(root Raw) []model.Week {
	leagues := extractArray(root, "leagues")
	if len(leagues) == 0 {
		return []model.Week{}
	}
	league, ok := leagues[0].(Raw)
	if !ok {
		return []model.Week{}
	}

	weeks := []model.Week{}
	for idx, sectionItem := range extractArray(league, "calendar") {
		section, ok := sectionItem.(Raw)
		if !ok {
			continue
		}
		seasonType := idx + 1
		for _, entryItem := range extractArray(section, "entries") {
			entry, ok := entryItem.(Raw)
			if !ok {
				continue
			}
			number, ok := asInt(entry["value"])
			if !ok {
				continue
			}
			weeks = append(weeks, model.Week{
				Number:     number,
				Label:      normalizeWeekLabel(extractString(entry, "label")),
				StartDate:  EasternDate(extractString(entry, "startDate")),
				EndDate:    EasternDate(extractString(entry, "endDate")),
				SeasonType: seasonType,
			})
		}
	}
	return weeks
}

// CurrentWeek picks the week whose date range contains today in Eastern
// time. When today falls outside every range, the last week wins, so the
// offseason resolves to the final postseason entry.
func CurrentWeek(weeks []model.Week, now time.Time) (model.Week, bool) {
	if len(weeks) == 0 {
		return model.Week{}, false
	}
	today := now.In(eastern).Format("2006-01-02")
	for _, week := range weeks {
		if week.StartDate <= today && today <= week.EndDate {
			return week, true
		}
	}
	return weeks[len(weeks)-1], true
}
