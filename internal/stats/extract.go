package stats

import (
	"strconv"
	"strings"
)

// Kind reports how a value was ultimately typed after coercion.
type Kind int

const (
	// Text means the value holds only its raw text, either because the
	// field is text-typed or because numeric coercion failed.
	Text Kind = iota
	// Float means Value.Float is valid.
	Float
	// Int means Value.Int is valid.
	Int
)

// Value is one extracted statistic. Raw always holds the source text.
type Value struct {
	Raw   string  `json:"raw"`
	Kind  Kind    `json:"kind"`
	Float float64 `json:"float,omitempty"`
	Int   int     `json:"int,omitempty"`
}

// Number returns the value as a float64. Int values are widened, and text
// values are parsed as a last resort (innings-pitched sometimes survives as
// text like "51.2" and is still usable).
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case Float:
		return v.Float, true
	case Int:
		return float64(v.Int), true
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Raw), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
}

// TextValue wraps raw text without coercion.
func TextValue(raw string) Value { return Value{Raw: raw, Kind: Text} }

// FloatValue wraps a parsed rate stat.
func FloatValue(raw string, f float64) Value { return Value{Raw: raw, Kind: Float, Float: f} }

// IntValue wraps a parsed counting stat.
func IntValue(raw string, n int) Value { return Value{Raw: raw, Kind: Int, Int: n} }

// Map holds a record's extracted statistics keyed by schema key.
type Map map[string]Value

// Float returns the float value for key, false if absent or not float-typed.
func (m Map) Float(key string) (float64, bool) {
	v, ok := m[key]
	if !ok || v.Kind != Float {
		return 0, false
	}
	return v.Float, true
}

// Int returns the int value for key, false if absent or not int-typed.
func (m Map) Int(key string) (int, bool) {
	v, ok := m[key]
	if !ok || v.Kind != Int {
		return 0, false
	}
	return v.Int, true
}

// IntOrZero returns the int value for key, 0 when absent or untyped.
func (m Map) IntOrZero(key string) int {
	n, _ := m.Int(key)
	return n
}

// Extract coerces raw label→text cells into typed values using the schema
// section the row belongs to. Labels absent from the cells map are simply
// omitted from the result, never zeroed.
func Extract(section Section, cells map[string]string) Map {
	out := make(Map)
	for _, f := range SchemaFor(section) {
		raw, ok := cells[f.Label]
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		switch f.Kind {
		case RateField:
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				out[f.Key] = FloatValue(raw, v)
			} else {
				out[f.Key] = TextValue(raw)
			}
		case CountField:
			if n, err := strconv.Atoi(raw); err == nil {
				out[f.Key] = IntValue(raw, n)
			} else {
				out[f.Key] = TextValue(raw)
			}
		case StolenBaseField:
			extractStolenBases(out, f.Key, raw)
		default:
			out[f.Key] = TextValue(raw)
		}
	}
	return out
}

// extractStolenBases handles the composite "successful-attempted" format,
// e.g. "5-6". The raw text is always retained under the SB key; the split
// integer fields are added only when both halves parse.
func extractStolenBases(out Map, key, raw string) {
	out[key] = TextValue(raw)
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return
	}
	succ, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	att, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return
	}
	out[KeySBSuccess] = IntValue(parts[0], succ)
	out[KeySBAttempted] = IntValue(parts[1], att)
}
