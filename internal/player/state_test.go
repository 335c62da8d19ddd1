package player

import "testing"

func TestIsInState(t *testing.T) {
	tests := []struct {
		state    string
		expected bool
	}{
		{"CA", true},
		{"California", true},
		{"Calif.", true},
		{"Calif", true},
		{"Calf.", true},
		{"Calf", true},
		{"  Calif.  ", true},
		{"Texas", false},
		{"TX", false},
		{"", false},
		// Matching is case-sensitive: these spellings never appear
		// lower-cased on bio pages.
		{"california", false},
		{"ca", false},
		{"CALIF.", false},
		{"Baja California", false},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			if got := IsInState(tt.state); got != tt.expected {
				t.Errorf("IsInState(%q) = %v, expected %v", tt.state, got, tt.expected)
			}
		})
	}
}
