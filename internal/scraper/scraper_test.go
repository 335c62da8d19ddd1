package scraper

import (
	"os"
	"strings"
	"testing"

	"github.com/sbfarley/gauchowar/internal/stats"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestParseRoster(t *testing.T) {
	rows, err := ParseRoster(strings.NewReader(loadFixture(t, "roster_2021.html")), "https://ucsbgauchos.com")
	if err != nil {
		t.Fatalf("ParseRoster failed: %v", err)
	}

	// Two batting rows and one pitching row; the totals row has no
	// stat-min class and is skipped.
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Name != "Marcos Castanon" {
		t.Errorf("name = %q, expected %q", first.Name, "Marcos Castanon")
	}
	if first.ID != "101" {
		t.Errorf("id = %q, expected %q", first.ID, "101")
	}
	if first.Jersey != "7" {
		t.Errorf("jersey = %q, expected %q", first.Jersey, "7")
	}
	if first.BioURL != "https://ucsbgauchos.com/sports/baseball/roster/marcos-castanon/101" {
		t.Errorf("bio URL = %q", first.BioURL)
	}
	if first.Section != stats.Batting {
		t.Errorf("section = %v, expected batting", first.Section)
	}
	if first.Cells["AVG"] != ".315" {
		t.Errorf("AVG cell = %q, expected .315", first.Cells["AVG"])
	}
	if first.Cells["SB"] != "5-6" {
		t.Errorf("SB cell = %q, expected 5-6", first.Cells["SB"])
	}

	pitcher := rows[2]
	if pitcher.Name != "Michael McGreevy" {
		t.Errorf("name = %q, expected %q", pitcher.Name, "Michael McGreevy")
	}
	if pitcher.Section != stats.Pitching {
		t.Errorf("section = %v, expected pitching", pitcher.Section)
	}
	if pitcher.Cells["ERA"] != "3.00" {
		t.Errorf("ERA cell = %q, expected 3.00", pitcher.Cells["ERA"])
	}
	if pitcher.Cells["IP"] != "101" {
		t.Errorf("IP cell = %q, expected 101", pitcher.Cells["IP"])
	}
}

func TestParseRosterExtractsTypedStats(t *testing.T) {
	rows, err := ParseRoster(strings.NewReader(loadFixture(t, "roster_2021.html")), "https://ucsbgauchos.com")
	if err != nil {
		t.Fatalf("ParseRoster failed: %v", err)
	}

	m := stats.Extract(rows[0].Section, rows[0].Cells)
	if v, ok := m.Float(stats.KeyBattingOBP); !ok || v != 0.400 {
		t.Errorf("batting_OBP = %v (ok=%v), expected 0.400", v, ok)
	}
	if v, ok := m.Int(stats.KeySBSuccess); !ok || v != 5 {
		t.Errorf("SB successful = %v (ok=%v), expected 5", v, ok)
	}
}

func TestParseRosterEmptyPage(t *testing.T) {
	rows, err := ParseRoster(strings.NewReader("<html><body></body></html>"), "https://ucsbgauchos.com")
	if err != nil {
		t.Fatalf("ParseRoster failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestParseBio(t *testing.T) {
	bio, err := ParseBio(strings.NewReader(loadFixture(t, "bio_in_state.html")))
	if err != nil {
		t.Fatalf("ParseBio failed: %v", err)
	}

	if bio.RawPosition != "SS/2B" {
		t.Errorf("position = %q, expected %q", bio.RawPosition, "SS/2B")
	}
	if bio.Hometown != "San Diego" {
		t.Errorf("hometown = %q, expected %q", bio.Hometown, "San Diego")
	}
	if bio.State != "Calif." {
		t.Errorf("state = %q, expected %q", bio.State, "Calif.")
	}
}

func TestParseBioPositionFallback(t *testing.T) {
	bio, err := ParseBio(strings.NewReader(loadFixture(t, "bio_fallback.html")))
	if err != nil {
		t.Fatalf("ParseBio failed: %v", err)
	}

	if bio.RawPosition != "RHP" {
		t.Errorf("position = %q, expected %q from fallback selector", bio.RawPosition, "RHP")
	}
	if bio.Hometown != "" || bio.State != "" {
		t.Errorf("hometown/state = %q/%q, expected empty without a Hometown field", bio.Hometown, bio.State)
	}
}

func TestSplitHometown(t *testing.T) {
	tests := []struct {
		location string
		hometown string
		state    string
	}{
		{"San Diego, Calif.", "San Diego", "Calif."},
		{"Scottsdale, Ariz.", "Scottsdale", "Ariz."},
		{"Honolulu, Hawaii", "Honolulu", "Hawaii"},
		{"Lake Oswego, Ore., USA", "Lake Oswego", "Ore., USA"},
		{"Santa Barbara", "", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			hometown, state := splitHometown(tt.location)
			if hometown != tt.hometown || state != tt.state {
				t.Errorf("splitHometown(%q) = %q, %q; expected %q, %q",
					tt.location, hometown, state, tt.hometown, tt.state)
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		href     string
		expected string
	}{
		{"/sports/baseball/roster/foo/1", "https://ucsbgauchos.com/sports/baseball/roster/foo/1"},
		{"https://other.example.com/roster/foo", "https://other.example.com/roster/foo"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := resolveURL("https://ucsbgauchos.com", tt.href); got != tt.expected {
			t.Errorf("resolveURL(%q) = %q, expected %q", tt.href, got, tt.expected)
		}
	}
}
