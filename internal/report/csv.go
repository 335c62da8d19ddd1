package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sbfarley/gauchowar/internal/aggregate"
	"github.com/sbfarley/gauchowar/internal/player"
	"github.com/sbfarley/gauchowar/internal/stats"
)

// playerBaseColumns precede the stat columns in the player metrics table.
var playerBaseColumns = []string{
	"year", "name", "jersey", "position", "raw_position",
	"hometown", "state", "is_in_state",
}

// statColumns returns every stat key in schema order, with the split
// stolen-base fields right after the composite SB column.
func statColumns() []string {
	cols := make([]string, 0, len(stats.BattingSchema)+len(stats.PitchingSchema)+2)
	for _, f := range stats.BattingSchema {
		cols = append(cols, f.Key)
		if f.Key == stats.KeyBattingSB {
			cols = append(cols, stats.KeySBSuccess, stats.KeySBAttempted)
		}
	}
	for _, f := range stats.PitchingSchema {
		cols = append(cols, f.Key)
	}
	return cols
}

// WritePlayersCSV writes the per-player-season metrics table. Stat cells
// hold the source text as extracted; absent stats stay empty.
func WritePlayersCSV(w io.Writer, records []*player.Record) error {
	cw := csv.NewWriter(w)
	statCols := statColumns()

	header := append(append([]string{}, playerBaseColumns...), statCols...)
	header = append(header, "war")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Year),
			rec.Name,
			rec.Jersey,
			rec.Position,
			rec.RawPosition,
			rec.Hometown,
			rec.State,
			strconv.FormatBool(rec.InState),
		}
		for _, key := range statCols {
			if v, ok := rec.Stats[key]; ok {
				row = append(row, v.Raw)
			} else {
				row = append(row, "")
			}
		}
		if rec.HasWAR {
			row = append(row, formatWAR(rec.WAR))
		} else {
			row = append(row, "")
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", rec.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// summaryHeader matches the published analysis output.
var summaryHeader = []string{
	"Position",
	"In-State WAR", "In-State Count",
	"Out-of-State WAR", "Out-of-State Count",
	"WAR Difference", "%Difference",
}

// WriteSummaryCSV writes the position comparison table. Undefined means and
// percent differences are left as empty cells, never written as zero.
func WriteSummaryCSV(w io.Writer, summaries []aggregate.Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			s.Position,
			formatMean(s.InStateMean, s.InStateValid),
			strconv.Itoa(s.InStateCount),
			formatMean(s.OutMean, s.OutValid),
			strconv.Itoa(s.OutCount),
			formatWAR(s.Diff),
			formatMean(s.PctDiff, s.PctDiffValid),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", s.Position, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatWAR(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatMean(v float64, valid bool) string {
	if !valid {
		return ""
	}
	return formatWAR(v)
}
