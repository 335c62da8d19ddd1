// Package report renders pipeline results: the per-player-season metrics
// table and the per-position WAR comparison table, as CSV files and as an
// aligned plain-text table for the terminal.
package report
