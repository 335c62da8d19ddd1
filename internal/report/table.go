package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/sbfarley/gauchowar/internal/aggregate"
)

const undefinedCell = "n/a"

// FormatSummaryTable renders the position comparison as an aligned text
// table. Undefined means and percent differences render as "n/a".
func FormatSummaryTable(summaries []aggregate.Summary) string {
	rows := make([][]string, 0, len(summaries)+1)
	rows = append(rows, summaryHeader)

	for _, s := range summaries {
		rows = append(rows, []string{
			s.Position,
			cellOrNA(s.InStateMean, s.InStateValid),
			strconv.Itoa(s.InStateCount),
			cellOrNA(s.OutMean, s.OutValid),
			strconv.Itoa(s.OutCount),
			formatWAR(s.Diff),
			cellOrNA(s.PctDiff, s.PctDiffValid),
		})
	}

	// Column widths use display width so the table survives any non-ASCII
	// position labels or future fields.
	widths := make([]int, len(summaryHeader))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for r, row := range rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(cell)
			if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 && i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
		sb.WriteString("\n")
		if r == 0 {
			for i, w := range widths {
				if i > 0 {
					sb.WriteString("  ")
				}
				sb.WriteString(strings.Repeat("-", w))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func cellOrNA(v float64, valid bool) string {
	if !valid {
		return undefinedCell
	}
	return formatWAR(v)
}
