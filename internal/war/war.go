package war

import (
	"github.com/sbfarley/gauchowar/internal/player"
	"github.com/sbfarley/gauchowar/internal/stats"
)

const (
	runsPerWin    = 10.0
	leagueAvgERA  = 4.0 // approximate NCAA average
	leagueAvgWOBA = 0.320
	wobaScale     = 1.2

	// Relievers with recorded saves pitch higher-leverage innings.
	relieverLeverage = 1.5

	// Flat bonuses: catchers for framing and game management, middle
	// infielders for defensive demand.
	catcherBonus       = 0.5
	middleInfieldBonus = 0.3
)

// positionAdjustments holds run adjustments per 600 plate appearances for
// each canonical position code. Pitcher, utility, and generic-infield codes
// carry no adjustment.
var positionAdjustments = map[string]float64{
	player.PosCatcher:     12.5,
	player.PosFirstBase:   -12.5,
	player.PosSecondBase:  2.5,
	player.PosThirdBase:   2.5,
	player.PosShortstop:   7.5,
	player.PosLeftField:   -7.5,
	player.PosCenterField: 2.5,
	player.PosRightField:  -7.5,
	player.PosDH:          -17.5,
	player.PosOutfield:    -2.5,
	player.PosPitcher:     0,
	player.PosStarter:     0,
	player.PosReliever:    0,
	player.PosInfield:     0,
	player.PosUtility:     0,
	player.PosUnknown:     0,
}

// Compute returns the WAR value for a record. Missing required inputs yield
// 0.0, never an error.
func Compute(rec *player.Record) float64 {
	if player.IsPitcher(rec.Position) {
		return pitcherWAR(rec)
	}
	return batterWAR(rec)
}

// Attach computes WAR and finalizes the record with it.
func Attach(rec *player.Record) {
	rec.SetWAR(Compute(rec))
}

// pitcherWAR values a pitcher by ERA against the league average across the
// innings pitched. Requires a parsed ERA and innings > 0.
func pitcherWAR(rec *player.Record) float64 {
	era, ok := rec.Stats.Float(stats.KeyPitchingERA)
	if !ok {
		return 0.0
	}
	ip, ok := rec.Stats[stats.KeyPitchingIP].Number()
	if !ok || ip <= 0 {
		return 0.0
	}

	w := (leagueAvgERA - era) * (ip / 9) / runsPerWin

	if rec.Position == player.PosReliever && rec.Stats.IntOrZero(stats.KeyPitchingSV) > 0 {
		w *= relieverLeverage
	}
	return w
}

// batterWAR values a position player from an approximate wOBA over plate
// appearances, plus the positional run adjustment and flat bonuses.
// Requires OBP, SLG, and AB; walks and hit-by-pitch default to zero.
func batterWAR(rec *player.Record) float64 {
	obp, okOBP := rec.Stats.Float(stats.KeyBattingOBP)
	slg, okSLG := rec.Stats.Float(stats.KeyBattingSLG)
	ab, okAB := rec.Stats.Int(stats.KeyBattingAB)
	if !okOBP || !okSLG || !okAB {
		return 0.0
	}

	woba := obp*1.75 + slg*0.7
	pa := float64(ab + rec.Stats.IntOrZero(stats.KeyBattingBB) + rec.Stats.IntOrZero(stats.KeyBattingHBP))

	offensiveRuns := (woba - leagueAvgWOBA) * wobaScale * pa / 100
	positionRuns := positionAdjustments[rec.Position] * pa / 600

	w := (offensiveRuns + positionRuns) / runsPerWin

	switch rec.Position {
	case player.PosCatcher:
		w += catcherBonus
	case player.PosShortstop, player.PosSecondBase:
		w += middleInfieldBonus
	}
	return w
}
