package mapper

import (
	"fmt"
	"strconv"
	"strings"
)

// Raw is a decoded provider payload. Every helper below tolerates missing
// or mistyped keys and degrades to a zero value, matching how loosely the
// providers treat their own schemas.
type Raw = map[string]any

func extractString(m Raw, key string) string {
	if v, ok := m[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

func extractMap(m Raw, key string) Raw {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(Raw); ok {
			return mapVal
		}
	}
	return Raw{}
}

func extractArray(m Raw, key string) []any {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]any); ok {
			return arrVal
		}
	}
	return []any{}
}

func extractInt(m Raw, key string) int {
	if v, ok := m[key]; ok {
		return parseInt(v)
	}
	return 0
}

// extractIntPtr returns nil when the key is absent or not a number,
// so callers can tell "missing" apart from a real zero.
func extractIntPtr(m Raw, key string) *int {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch val := v.(type) {
	case float64:
		n := int(val)
		return &n
	case int:
		n := val
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return &n
		}
	}
	return nil
}

func extractBool(m Raw, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func extractBoolPtr(m Raw, key string) *bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return &b
		}
	}
	return nil
}

func extractStringPtr(m Raw, key string) *string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return &s
		}
	}
	return nil
}

func parseInt(v any) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(val))
		return i
	case int:
		return val
	default:
		return 0
	}
}

// asInt reports whether v carries a usable integer. Booleans are
// deliberately rejected so true/false never read as 1/0.
func asInt(v any) (int, bool) {
	switch val := v.(type) {
	case bool:
		return 0, false
	case float64:
		return int(val), true
	case int:
		return val, true
	case string:
		s := strings.TrimSpace(val)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case bool:
		return 0, false
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func fallbackString(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// stringify renders an id-like value the way the providers interchange
// them: numbers without a decimal point, everything else via fmt.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// splitDash parses a composite "made-attempted" value. Malformed
// composites fail as a whole; no half-parsed pair is ever returned.
func splitDash(s string) (int, int, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	made, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	att, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return made, att, true
}

// firstIntToken returns the first integer token in a free-text play
// description, used for best-effort yardage extraction.
func firstIntToken(text string) *int {
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, ".,;:!()")
		if n, err := strconv.Atoi(tok); err == nil {
			return &n
		}
	}
	return nil
}

// collect maps heterogeneous list entries, skipping anything that is not
// an object or that the mapping function rejects. This is the single
// skip-on-malformed-item path shared by every list-shaped mapper.
func collect[T any](items []any, fn func(Raw) (T, bool)) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		entry, ok := item.(Raw)
		if !ok {
			continue
		}
		mapped, ok := fn(entry)
		if !ok {
			continue
		}
		out = append(out, mapped)
	}
	return out
}
