package mapper

import (
	"strings"

	"github.com/gridirondash/gridiron/internal/model"
)

// Synonym sets for each target state, across both providers'
// vocabularies. Matched in a fixed priority order so an ambiguous raw
// value resolves the same way every time.
var (
	halftimeTerms = []string{"halftime", "half", "end of 2nd quarter", "status_halftime"}
	delayedTerms  = []string{"delayed", "postponed", "canceled", "cancelled", "suspended", "status_delayed", "status_postponed"}
	finalTerms    = []string{"final", "completed", "end of game", "status_final", "full time"}
	postTerms     = []string{"postgame", "post"}
	preTerms      = []string{"pre", "pregame", "pre-game", "scheduled", "upcoming", "status_scheduled"}
	inTerms       = []string{"in", "in progress", "in_progress", "live", "status_in_progress"}
)

// NormalizeStatus maps a provider's raw status string plus an optional
// completion flag into the closed GameStatus vocabulary. It is total:
// unrecognized input falls back to the completion flag, and absent both,
// to pre.
func NormalizeStatus(raw string, completed *bool) model.GameStatus {
	s := strings.ToLower(strings.TrimSpace(raw))

	if s != "" {
		switch {
		case matchesAny(s, halftimeTerms):
			return model.StatusHalftime
		case matchesAny(s, delayedTerms):
			return model.StatusDelayed
		case matchesAny(s, finalTerms):
			return model.StatusFinal
		case matchesAny(s, postTerms):
			return model.StatusPost
		case matchesAny(s, preTerms):
			return model.StatusPre
		case matchesAny(s, inTerms):
			return model.StatusIn
		}
	}

	if completed != nil && *completed {
		return model.StatusFinal
	}
	return model.StatusPre
}

func matchesAny(s string, terms []string) bool {
	for _, t := range terms {
		if s == t {
			return true
		}
	}
	return false
}

// StatusLabel renders a normalized status as the human label the
// scoreboard rows carry.
func StatusLabel(s model.GameStatus) string {
	switch s {
	case model.StatusPre:
		return "Scheduled"
	case model.StatusIn:
		return "In Progress"
	case model.StatusHalftime:
		return "Halftime"
	case model.StatusPost:
		return "Postgame"
	case model.StatusFinal:
		return "Final"
	case model.StatusDelayed:
		return "Delayed"
	default:
		return "Scheduled"
	}
}
