// Package cli implements the command-line interface for gauchowar.
//
// The root command runs the full pipeline: scrape every configured season,
// persist the player snapshot and metrics CSV, and print the per-position
// in-state vs out-of-state WAR comparison. The analyze subcommand
// recomputes the comparison from the last snapshot without refetching.
package cli
