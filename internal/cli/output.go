package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sbfarley/gauchowar/internal/aggregate"
	"github.com/sbfarley/gauchowar/internal/report"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Result contains data to be output.
type Result struct {
	GeneratedAt time.Time           `json:"generated_at"`
	StartYear   int                 `json:"start_year"`
	EndYear     int                 `json:"end_year"`
	PlayerCount int                 `json:"player_count"`
	Summaries   []aggregate.Summary `json:"summaries"`
}

// WriteOutput writes the result in the specified format.
func WriteOutput(w io.Writer, result *Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText outputs the comparison as a human-readable table.
func writeText(w io.Writer, result *Result) error {
	if result.PlayerCount == 0 {
		fmt.Fprintln(w, "No player records found.")
		return nil
	}

	fmt.Fprintf(w, "In-state vs out-of-state WAR by position, %d-%d (%d player-seasons)\n\n",
		result.StartYear, result.EndYear, result.PlayerCount)

	if len(result.Summaries) == 0 {
		fmt.Fprintln(w, "No positions to compare.")
		return nil
	}

	fmt.Fprint(w, report.FormatSummaryTable(result.Summaries))
	fmt.Fprintln(w, "\nn/a marks a group with no samples or an undefined percent difference.")
	return nil
}
