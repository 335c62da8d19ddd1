package player

import (
	"github.com/sbfarley/gauchowar/internal/stats"
)

// DefaultState is assumed when a player's hometown state is unknown.
const DefaultState = "California"

// UnknownHometown marks a bio page that carried no hometown field.
const UnknownHometown = "Unknown"

// Record is one player-season observation.
type Record struct {
	Year        int       `json:"year"`
	Name        string    `json:"name"`
	ID          string    `json:"id,omitempty"`
	Jersey      string    `json:"jersey,omitempty"`
	BioURL      string    `json:"bio_url,omitempty"`
	Position    string    `json:"position"`
	RawPosition string    `json:"raw_position,omitempty"`
	Hometown    string    `json:"hometown,omitempty"`
	State       string    `json:"state"`
	InState     bool      `json:"is_in_state"`
	Stats       stats.Map `json:"stats,omitempty"`
	WAR         float64   `json:"war"`
	HasWAR      bool      `json:"has_war"`
}

// New creates a record for one roster row with position and origin still
// unknown. Position defaults to the Unknown code so the field is always a
// canonical code, never raw text.
func New(year int, name string) *Record {
	return &Record{
		Year:     year,
		Name:     name,
		Position: PosUnknown,
		Stats:    make(stats.Map),
	}
}

// SetPosition records the raw position string and its canonical code.
func (r *Record) SetPosition(raw string) {
	r.RawPosition = raw
	r.Position = NormalizePosition(raw)
}

// ApplyHometown sets hometown, state, and the in-state flag. An unknown state
// defaults the player to an in-state Californian; that is the sampling policy
// for this data set, not a data-quality judgment.
func (r *Record) ApplyHometown(hometown, state string) {
	if hometown == "" {
		hometown = UnknownHometown
	}
	if state == "" {
		state = DefaultState
	}
	r.Hometown = hometown
	r.State = state
	r.InState = IsInState(state)
}

// SetWAR finalizes the record with its computed WAR value.
func (r *Record) SetWAR(war float64) {
	r.WAR = war
	r.HasWAR = true
}
