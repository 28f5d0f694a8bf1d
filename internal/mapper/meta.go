package mapper

import (
	"time"

	"github.com/gridirondash/gridiron/internal/model"
)

// MapMeta pulls venue and broadcast details from the competition block.
// Weather stays empty; neither provider carries it in the payloads we
// consume.
func MapMeta(env Envelope) model.Meta {
	venueRaw := extractMap(env.Competition, "venue")
	address := extractMap(venueRaw, "address")

	venue := model.Venue{
		Name:   extractStringPtr(venueRaw, "fullName"),
		City:   extractStringPtr(address, "city"),
		State:  extractStringPtr(address, "state"),
		Indoor: extractBoolPtr(venueRaw, "indoor"),
	}
	if venue.Name == nil {
		venue.Name = extractStringPtr(venueRaw, "name")
	}

	broadcast := model.Broadcast{}
	if broadcasts := extractArray(env.Competition, "broadcasts"); len(broadcasts) > 0 {
		if first, ok := broadcasts[0].(Raw); ok {
			if names := extractArray(first, "names"); len(names) > 0 {
				if name, ok := names[0].(string); ok {
					broadcast.Network = &name
				}
			} else {
				broadcast.Network = extractStringPtr(first, "shortName")
			}
		}
	}

	return model.Meta{Venue: venue, Broadcast: broadcast}
}

const (
	baseSuccessRate      = 0.45
	successRateBumpLimit = 0.1
	defaultExplosiveRate = 0.1
)

// MapAnalytics builds win probability from the provider's winprobability
// series, falling back to an even split when the series is absent. The
// success rates are a score-differential heuristic until a real
// efficiency feed lands.
func MapAnalytics(root Raw, header model.Header, now time.Time) model.Analytics {
	homeWP, awayWP := 0.5, 0.5
	if series := extractArray(root, "winprobability"); len(series) > 0 {
		if last, ok := series[len(series)-1].(Raw); ok {
			if wp, ok := asFloat(last["homeWinPercentage"]); ok {
				homeWP = wp
				awayWP = 1.0 - wp
			}
		}
	}
	updated := now.UTC().Format(time.RFC3339)

	diff := float64(header.HomeTeam.Score - header.AwayTeam.Score)
	bump := diff / 50.0
	if bump > successRateBumpLimit {
		bump = successRateBumpLimit
	}
	if bump < -successRateBumpLimit {
		bump = -successRateBumpLimit
	}
	fptr := func(f float64) *float64 { return &f }

	return model.Analytics{
		WinProbability: model.WinProbability{
			Home:           &homeWP,
			Away:           &awayWP,
			LastUpdatedUTC: &updated,
		},
		TeamSuccessRates: model.TeamSuccessRatesPair{
			Home: model.TeamSuccessRates{
				SuccessRate:       fptr(baseSuccessRate + bump),
				ExplosivePlayRate: fptr(defaultExplosiveRate),
				EPAPerPlay:        fptr(0),
			},
			Away: model.TeamSuccessRates{
				SuccessRate:       fptr(baseSuccessRate - bump),
				ExplosivePlayRate: fptr(defaultExplosiveRate),
				EPAPerPlay:        fptr(0),
			},
		},
	}
}
