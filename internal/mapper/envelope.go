package mapper

// Envelope is the shape-neutral view of a single-game payload. Provider A
// returns two incompatible structures for the same resource: the site
// summary nests everything under a "header" key, while the core fallback
// carries the same fields at the top level. Shape is detected exactly
// once, here; every mapper downstream consumes the Envelope and never
// re-sniffs.
type Envelope struct {
	// Root is the full decoded payload.
	Root Raw
	// Header is the header-level wrapper (shape A) or the root itself
	// (shape B).
	Header Raw
	// Competition is the first entry of the competitions list from
	// whichever wrapper carried it.
	Competition Raw
	// Situation is the live-situation block, competition-level first,
	// header-level as fallback.
	Situation Raw
	// SiteDetail reports whether the payload carries the site summary's
	// detail sections (drives, scoring plays, boxscore). Synthesized
	// fallback payloads do not, and downstream mappers emit empty shells.
	SiteDetail bool
}

// DetectShape classifies a raw single-game payload into an Envelope.
func DetectShape(raw Raw) Envelope {
	header := raw
	if h, ok := raw["header"].(Raw); ok {
		header = h
	}

	comp := Raw{}
	if comps := extractArray(header, "competitions"); len(comps) > 0 {
		if c, ok := comps[0].(Raw); ok {
			comp = c
		}
	}

	situation := extractMap(comp, "situation")
	if len(situation) == 0 {
		situation = extractMap(header, "situation")
	}

	_, hasHeader := raw["header"]
	_, hasDrives := raw["drives"]
	_, hasScoring := raw["scoringPlays"]
	_, hasBox := raw["boxscore"]

	return Envelope{
		Root:        raw,
		Header:      header,
		Competition: comp,
		Situation:   situation,
		SiteDetail:  hasHeader && (hasDrives || hasScoring || hasBox),
	}
}

// splitHomeAway resolves the home and away competitor objects, preferring
// the explicit homeAway flags and falling back to positional order when
// the flags are absent.
func splitHomeAway(competitors []any) (Raw, Raw) {
	var home, away Raw
	for _, c := range competitors {
		entry, ok := c.(Raw)
		if !ok {
			continue
		}
		switch extractString(entry, "homeAway") {
		case "home":
			home = entry
		case "away":
			away = entry
		}
	}
	if home == nil && len(competitors) > 0 {
		home, _ = competitors[0].(Raw)
	}
	if away == nil && len(competitors) > 1 {
		away, _ = competitors[1].(Raw)
	}
	return home, away
}
