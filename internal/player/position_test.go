package player

import "testing"

func TestNormalizePosition(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"", "Unknown"},
		{"   ", "Unknown"},
		{"C", "C"},
		{"c", "C"},
		{"Catcher", "C"},
		{"1B", "1B"},
		{"2B", "2B"},
		{"3B", "3B"},
		{"SS", "SS"},
		{"LF", "LF"},
		{"CF", "CF"},
		{"RF", "RF"},
		{"OF", "OF"},
		{"Outfielder", "OF"},
		{"Oufield", "OF"}, // roster-page typo
		{"INF", "IF"},
		{"Infielder", "IF"},
		{"DH", "DH"},
		{"P", "P"},
		{"Pitcher", "P"},
		{"RHP", "P"},
		{"rhp", "P"},
		{"LHP", "P"},
		{"SP", "SP"},
		{"RP", "RP"},
		{"UTIL", "UTIL"},
		{"UT", "UTIL"},
		{"Utility", "UTIL"},
		{"Shortstop", "Unknown"}, // no SS substring in the spelled-out form
		{"Third Base", "Unknown"},
		{"QB", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizePosition(tt.raw); got != tt.expected {
				t.Errorf("NormalizePosition(%q) = %q, expected %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizePositionMultiPosition(t *testing.T) {
	// Multi-position strings classify on the part before the first slash.
	tests := []struct {
		raw      string
		expected string
	}{
		{"3B/OF", "3B"},
		{"OF/1B", "OF"},
		{"C/DH", "C"},
		{"RHP/OF", "P"},
		{"UTIL/SS", "UTIL"},
		{" SS / 2B ", "SS"},
		{"/2B", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizePosition(tt.raw); got != tt.expected {
				t.Errorf("NormalizePosition(%q) = %q, expected %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizePositionPrecedence(t *testing.T) {
	// Overlapping substrings resolve by rule order, not by best match.
	tests := []struct {
		raw      string
		expected string
	}{
		{"SS/RP", "SS"},      // SS checked before the pitcher family
		{"CF OUTFIELD", "CF"}, // CF before generic OF
		{"INFIELD", "IF"},     // INF before a bare IF check would ever run
		{"UTIL SP", "SP"},     // SP checked before UTIL
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizePosition(tt.raw); got != tt.expected {
				t.Errorf("NormalizePosition(%q) = %q, expected %q", tt.raw, got, tt.expected)
			}
		})
	}
}
