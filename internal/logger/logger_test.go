package logger

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerLevels(t *testing.T) {
	var sb strings.Builder
	log := New(LevelWarn, &sb)

	log.Debug("dropped", nil)
	log.Info("dropped", nil)
	log.Warn("kept", Fields{"year": 2021})
	log.Error("kept", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d: %q", len(lines), sb.String())
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("entry is not valid JSON: %v", err)
	}
	if first["level"] != "WARN" || first["message"] != "kept" {
		t.Errorf("first entry = %v", first)
	}

	var second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("entry is not valid JSON: %v", err)
	}
	if second["error"] != "boom" {
		t.Errorf("error field = %v, expected boom", second["error"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"loud", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("players.processed")
	m.IncrCounter("players.processed")
	m.IncrCounter("fetch.bio.failures")
	m.RecordTiming("fetch.roster", 100*time.Millisecond)
	m.RecordTiming("fetch.roster", 300*time.Millisecond)

	snap := m.Snapshot()

	counters := snap["counters"].(map[string]int64)
	if counters["players.processed"] != 2 {
		t.Errorf("players.processed = %d, expected 2", counters["players.processed"])
	}
	if counters["fetch.bio.failures"] != 1 {
		t.Errorf("fetch.bio.failures = %d, expected 1", counters["fetch.bio.failures"])
	}

	timings := snap["timings"].(map[string]Fields)
	roster := timings["fetch.roster"]
	if roster["count"] != 2 {
		t.Errorf("timing count = %v, expected 2", roster["count"])
	}
	if roster["average"] != "200ms" {
		t.Errorf("timing average = %v, expected 200ms", roster["average"])
	}
}
