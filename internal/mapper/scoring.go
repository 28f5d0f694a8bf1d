package mapper

import (
	"sort"
	"strings"

	"github.com/gridirondash/gridiron/internal/model"
)

// classifyScoring matches the scoring type's display name (or, failing
// that, the play description) against keyword sets.
func classifyScoring(scoringType, description string) model.ScoringType {
	text := strings.ToLower(fallbackString(scoringType, description))
	switch {
	case strings.Contains(text, "touchdown") || text == "td":
		return model.ScoreTD
	case strings.Contains(text, "field goal") || text == "fg":
		return model.ScoreFG
	case strings.Contains(text, "safety"):
		return model.ScoreSafety
	case strings.Contains(text, "extra point") || strings.Contains(text, "pat"):
		return model.ScoreXP
	case strings.Contains(text, "two-point") || strings.Contains(text, "two point") || strings.Contains(text, "2pt"):
		return model.Score2PT
	default:
		return model.ScoreOther
	}
}

// primaryPlayer pulls the first involved athlete's display name.
func primaryPlayer(event Raw) *string {
	athletes := extractArray(event, "athletesInvolved")
	if len(athletes) == 0 {
		return nil
	}
	first, ok := athletes[0].(Raw)
	if !ok {
		return nil
	}
	athlete := extractMap(first, "athlete")
	name := fallbackString(
		extractString(athlete, "displayName"),
		extractString(athlete, "shortName"),
	)
	if name == "" {
		return nil
	}
	return &name
}

func mapScoringEvent(event Raw, homeID, awayID string) (model.ScoringEvent, bool) {
	teamID := stringify(extractMap(event, "team")["id"])
	var side model.TeamSide
	switch teamID {
	case homeID:
		side = model.SideHome
	case awayID:
		side = model.SideAway
	default:
		// Not attributable to either side; drop the event.
		return model.ScoringEvent{}, false
	}

	text := extractString(event, "text")
	scoringType := fallbackString(
		extractString(extractMap(event, "scoringType"), "displayName"),
		extractString(extractMap(event, "scoringType"), "shortDisplayName"),
	)

	return model.ScoringEvent{
		ID:            stringify(event["id"]),
		Quarter:       extractInt(extractMap(event, "period"), "number"),
		Clock:         extractString(extractMap(event, "clock"), "displayValue"),
		Team:          side,
		Type:          classifyScoring(scoringType, text),
		Description:   text,
		Yards:         firstIntToken(text),
		PlayerPrimary: primaryPlayer(event),
	}, true
}

// quarterTotalsFromLines builds quarter totals from the competitors'
// official line-score entries.
func quarterTotalsFromLines(homeRaw, awayRaw Raw) []model.QuarterScore {
	homeLines := lineScoreMap(homeRaw)
	awayLines := lineScoreMap(awayRaw)
	if len(homeLines) == 0 && len(awayLines) == 0 {
		return nil
	}

	periods := map[int]struct{}{}
	for q := range homeLines {
		periods[q] = struct{}{}
	}
	for q := range awayLines {
		periods[q] = struct{}{}
	}

	return sortedQuarters(periods, homeLines, awayLines)
}

func lineScoreMap(competitor Raw) map[int]int {
	lines := map[int]int{}
	for _, item := range extractArray(competitor, "linescores") {
		entry, ok := item.(Raw)
		if !ok {
			continue
		}
		period := extractInt(entry, "period")
		if period == 0 {
			continue
		}
		lines[period] = extractInt(entry, "value")
	}
	return lines
}

// quarterTotalsFromEvents reconstructs approximate quarter totals by
// replaying scoring-event point values. Used only when the provider
// reports no line scores at all; may diverge from official totals.
func quarterTotalsFromEvents(events []any, homeID, awayID string) []model.QuarterScore {
	homeLines := map[int]int{}
	awayLines := map[int]int{}
	periods := map[int]struct{}{}

	for _, item := range events {
		event, ok := item.(Raw)
		if !ok {
			continue
		}
		quarter := extractInt(extractMap(event, "period"), "number")
		if quarter == 0 {
			continue
		}
		points := extractInt(event, "scoreValue")
		switch stringify(extractMap(event, "team")["id"]) {
		case homeID:
			homeLines[quarter] += points
		case awayID:
			awayLines[quarter] += points
		default:
			continue
		}
		periods[quarter] = struct{}{}
	}

	return sortedQuarters(periods, homeLines, awayLines)
}

func sortedQuarters(periods map[int]struct{}, home, away map[int]int) []model.QuarterScore {
	quarters := make([]int, 0, len(periods))
	for q := range periods {
		quarters = append(quarters, q)
	}
	sort.Ints(quarters)

	out := make([]model.QuarterScore, 0, len(quarters))
	for _, q := range quarters {
		out = append(out, model.QuarterScore{
			Quarter:    q,
			HomePoints: home[q],
			AwayPoints: away[q],
		})
	}
	return out
}

// MapScoring derives quarter totals, the classified scoring-play list,
// and the touchdown-scorer tally. A malformed individual event is
// skipped, never fatal.
func MapScoring(env Envelope, homeID, awayID string) model.Scoring {
	competitors := extractArray(env.Competition, "competitors")
	homeRaw, awayRaw := splitHomeAway(competitors)

	events := extractArray(env.Root, "scoringPlays")

	summary := quarterTotalsFromLines(homeRaw, awayRaw)
	if summary == nil {
		summary = quarterTotalsFromEvents(events, homeID, awayID)
	}

	plays := collect(events, func(event Raw) (model.ScoringEvent, bool) {
		return mapScoringEvent(event, homeID, awayID)
	})

	return model.Scoring{
		SummaryByQuarter: summary,
		Plays:            plays,
		TouchdownScorers: tallyTouchdowns(plays),
	}
}

type scorerKey struct {
	player string
	team   model.TeamSide
}

// tallyTouchdowns groups TD plays with a known primary player by
// (player, team), preserving first-seen order.
func tallyTouchdowns(plays []model.ScoringEvent) []model.TouchdownScorer {
	counts := map[scorerKey]int{}
	order := []scorerKey{}

	for _, p := range plays {
		if p.Type != model.ScoreTD || p.PlayerPrimary == nil {
			continue
		}
		key := scorerKey{player: *p.PlayerPrimary, team: p.Team}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]model.TouchdownScorer, 0, len(order))
	for _, key := range order {
		out = append(out, model.TouchdownScorer{
			Player: key.player,
			Team:   key.team,
			Count:  counts[key],
		})
	}
	return out
}
