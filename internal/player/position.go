package player

import "strings"

// Canonical position codes.
const (
	PosCatcher     = "C"
	PosFirstBase   = "1B"
	PosSecondBase  = "2B"
	PosThirdBase   = "3B"
	PosShortstop   = "SS"
	PosLeftField   = "LF"
	PosCenterField = "CF"
	PosRightField  = "RF"
	PosOutfield    = "OF"
	PosInfield     = "IF"
	PosDH          = "DH"
	PosPitcher     = "P"
	PosStarter     = "SP"
	PosReliever    = "RP"
	PosUtility     = "UTIL"
	PosUnknown     = "Unknown"
)

// NormalizePosition maps a free-text position string to a canonical code.
//
// The rules are an ordered, first-match-wins list over the upper-cased,
// trimmed input. Order matters: the substring checks overlap (SS/SP, OF
// inside OUTFIELDER, UT inside UTIL), so reordering changes how ambiguous
// multi-letter strings classify. Multi-position strings like "3B/OF" use
// only the part before the first slash.
func NormalizePosition(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return PosUnknown
	}
	if i := strings.Index(s, "/"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}

	switch {
	case s == "C", strings.Contains(s, "CATCHER"):
		return PosCatcher
	case strings.Contains(s, "1B"):
		return PosFirstBase
	case strings.Contains(s, "2B"):
		return PosSecondBase
	case strings.Contains(s, "3B"):
		return PosThirdBase
	case strings.Contains(s, "SS"):
		return PosShortstop
	case strings.Contains(s, "LF"):
		return PosLeftField
	case strings.Contains(s, "CF"):
		return PosCenterField
	case strings.Contains(s, "RF"):
		return PosRightField
	// OUFIELD is a recurring roster-page typo for OUTFIELD.
	case strings.Contains(s, "OF"), strings.Contains(s, "OUTFIELDER"), strings.Contains(s, "OUFIELD"):
		return PosOutfield
	case strings.Contains(s, "INF"):
		return PosInfield
	case strings.Contains(s, "DH"):
		return PosDH
	case s == "P", strings.Contains(s, "PITCHER"), strings.Contains(s, "RHP"), strings.Contains(s, "LHP"):
		return PosPitcher
	case strings.Contains(s, "SP"):
		return PosStarter
	case strings.Contains(s, "RP"):
		return PosReliever
	case strings.Contains(s, "UTIL"), strings.Contains(s, "UT"):
		return PosUtility
	default:
		return PosUnknown
	}
}

// IsPitcher reports whether a canonical code belongs to the pitcher family.
func IsPitcher(position string) bool {
	return position == PosPitcher || position == PosStarter || position == PosReliever
}
