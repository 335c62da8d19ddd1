package player

import "strings"

// californiaSpellings are the in-state spellings seen on bio pages,
// abbreviations and typos included. Matching is case-sensitive.
var californiaSpellings = map[string]bool{
	"CA":         true,
	"California": true,
	"Calif.":     true,
	"Calif":      true,
	"Calf.":      true,
	"Calf":       true,
}

// IsInState reports whether a trimmed state string is a California spelling.
func IsInState(state string) bool {
	return californiaSpellings[strings.TrimSpace(state)]
}
