package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sbfarley/gauchowar/internal/player"
)

const snapshotFile = "players.json"

// Snapshot is one persisted scrape run.
type Snapshot struct {
	CreatedAt string           `json:"created_at"`
	StartYear int              `json:"start_year"`
	EndYear   int              `json:"end_year"`
	Players   []*player.Record `json:"players"`
}

// Storage handles persistence of scrape snapshots.
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, creating it if needed. A leading
// ~/ expands to the user's home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// Dir returns the resolved data directory.
func (s *Storage) Dir() string { return s.dataDir }

func (s *Storage) snapshotPath() string {
	return filepath.Join(s.dataDir, snapshotFile)
}

// SaveSnapshot persists the records from one run.
func (s *Storage) SaveSnapshot(records []*player.Record, startYear, endYear int) error {
	snap := Snapshot{
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		StartYear: startYear,
		EndYear:   endYear,
		Players:   records,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the latest persisted run. A missing snapshot is an
// error here: analyze has nothing to work from without a prior run.
func (s *Storage) LoadSnapshot() (*Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no snapshot at %s: run a full scrape first", s.snapshotPath())
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}
