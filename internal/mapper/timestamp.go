package mapper

import "time"

// The providers report UTC; the dashboard lives in US Eastern time.
var eastern *time.Location

func init() {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		// tzdata missing on the host; fall back to a fixed offset so
		// conversion still lands in the right calendar day most of the year.
		loc = time.FixedZone("EST", -5*60*60)
	}
	eastern = loc
}

// Provider timestamps are RFC 3339 most of the time, but the calendar
// and core endpoints omit seconds ("2025-11-15T01:00Z").
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z",
	"2006-01-02T15:04:05.000Z",
}

func parseProviderTime(ts string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToEastern converts a provider UTC timestamp into an offset-aware
// Eastern-local ISO string. On any parse failure the input is returned
// unchanged; callers must tolerate the passthrough.
func ToEastern(ts string) string {
	t, ok := parseProviderTime(ts)
	if !ok {
		return ts
	}
	return t.In(eastern).Format(time.RFC3339)
}

// EasternDate derives the Eastern-local calendar date (YYYY-MM-DD) a
// timestamp falls on, used to bucket games that kick off past midnight
// UTC. Parse failures pass the input through unchanged.
func EasternDate(ts string) string {
	t, ok := parseProviderTime(ts)
	if !ok {
		return ts
	}
	return t.In(eastern).Format("2006-01-02")
}
