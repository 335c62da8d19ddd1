package aggregate

import (
	"sort"

	"github.com/sbfarley/gauchowar/internal/player"
)

// Summary is one row of the position comparison table. A group with no
// samples has count 0 and its mean flagged invalid; the percent difference
// is likewise flagged rather than forced to zero when its denominator (the
// out-of-state mean) is zero or absent.
type Summary struct {
	Position     string  `json:"position"`
	InStateMean  float64 `json:"in_state_war"`
	InStateValid bool    `json:"in_state_war_valid"`
	InStateCount int     `json:"in_state_count"`
	OutMean      float64 `json:"out_of_state_war"`
	OutValid     bool    `json:"out_of_state_war_valid"`
	OutCount     int     `json:"out_of_state_count"`
	Diff         float64 `json:"war_difference"`
	PctDiff      float64 `json:"pct_difference"`
	PctDiffValid bool    `json:"pct_difference_valid"`
}

type group struct {
	count int
	total float64
}

func (g group) mean() float64 {
	if g.count == 0 {
		return 0
	}
	return g.total / float64(g.count)
}

// Aggregate groups finalized records by (position, in-state) and assembles
// one comparison row per distinct position. Records without a computed WAR
// or without a position are discarded. Rows sort by WAR difference
// descending; ties keep first-appearance input order.
func Aggregate(records []*player.Record) []Summary {
	groups := make(map[string]map[bool]group)
	order := make([]string, 0)

	for _, rec := range records {
		if !rec.HasWAR || rec.Position == "" {
			continue
		}
		byOrigin, ok := groups[rec.Position]
		if !ok {
			byOrigin = make(map[bool]group)
			groups[rec.Position] = byOrigin
			order = append(order, rec.Position)
		}
		g := byOrigin[rec.InState]
		g.count++
		g.total += rec.WAR
		byOrigin[rec.InState] = g
	}

	summaries := make([]Summary, 0, len(order))
	for _, pos := range order {
		in := groups[pos][true]
		out := groups[pos][false]

		row := Summary{
			Position:     pos,
			InStateMean:  in.mean(),
			InStateValid: in.count > 0,
			InStateCount: in.count,
			OutMean:      out.mean(),
			OutValid:     out.count > 0,
			OutCount:     out.count,
		}

		// Difference substitutes zero for a missing mean; the percent
		// column is where the missing denominator is surfaced.
		row.Diff = in.mean() - out.mean()
		if out.count > 0 && out.mean() != 0 {
			row.PctDiff = 100 * row.Diff / out.mean()
			row.PctDiffValid = true
		}
		summaries = append(summaries, row)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Diff > summaries[j].Diff
	})
	return summaries
}
