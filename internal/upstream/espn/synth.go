package espn

import (
	"context"
)

// refFetcher fetches a reference-pointer URL. Abstracted so the
// synthesizer tests can stub resolution without a server.
type refFetcher func(ctx context.Context, url string) (map[string]any, error)

// resolve returns v as an object, following its "$ref" pointer when the
// provider chose not to inline it. Any resolution failure degrades to an
// empty object: one missing sub-resource must never sink the whole
// synthesis.
func resolve(ctx context.Context, v any, fetch refFetcher) map[string]any {
	obj, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	ref, ok := obj["$ref"].(string)
	if !ok || ref == "" {
		return obj
	}
	resolved, err := fetch(ctx, ref)
	if err != nil || resolved == nil {
		return map[string]any{}
	}
	return resolved
}

// SynthesizeSummary rebuilds a summary-shaped payload from the archival
// core event resource. The core API inlines some sub-objects and points
// at others, so competition, teams, situation, venue, and broadcasts are
// each resolved independently. Scoring and boxscore sections do not
// exist on this API; the output simply omits them and the mappers treat
// that as empty.
func (c *Client) SynthesizeSummary(ctx context.Context, gameID string) (map[string]any, error) {
	event, err := c.CoreEvent(ctx, gameID)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, url string) (map[string]any, error) {
		return c.fetcher.GetJSON(ctx, "core_ref", url)
	}
	return synthesize(ctx, event, fetch), nil
}

func synthesize(ctx context.Context, event map[string]any, fetch refFetcher) map[string]any {
	var competition map[string]any
	if comps, ok := event["competitions"].([]any); ok && len(comps) > 0 {
		competition = resolve(ctx, comps[0], fetch)
	} else {
		competition = map[string]any{}
	}

	competitors := []any{}
	if raw, ok := competition["competitors"].([]any); ok {
		for _, item := range raw {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			rebuilt := map[string]any{}
			for k, v := range entry {
				rebuilt[k] = v
			}
			rebuilt["team"] = resolve(ctx, entry["team"], fetch)
			competitors = append(competitors, rebuilt)
		}
	}

	rebuilt := map[string]any{
		"id":          competition["id"],
		"date":        firstNonNil(competition["date"], event["date"]),
		"status":      resolve(ctx, competition["status"], fetch),
		"competitors": competitors,
		"venue":       resolve(ctx, competition["venue"], fetch),
		"situation":   resolve(ctx, competition["situation"], fetch),
	}

	broadcasts := []any{}
	if raw, ok := competition["broadcasts"].([]any); ok {
		for _, item := range raw {
			broadcasts = append(broadcasts, resolve(ctx, item, fetch))
		}
	}
	rebuilt["broadcasts"] = broadcasts

	return map[string]any{
		"header": map[string]any{
			"id":           event["id"],
			"season":       event["season"],
			"week":         event["week"],
			"competitions": []any{rebuilt},
		},
	}
}

func firstNonNil(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
