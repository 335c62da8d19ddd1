// Package war computes a simplified Wins Above Replacement value for one
// player-season record.
//
// Pitchers are valued from ERA against a league average over their innings;
// position players from an OBP/SLG-approximated wOBA over plate appearances,
// with per-position run adjustments and flat bonuses for premium defensive
// spots. Records missing the required inputs score 0.0 rather than erroring;
// degraded data is expected on older rosters.
package war
