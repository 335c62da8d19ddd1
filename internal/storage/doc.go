// Package storage provides JSON-based persistence for scraped player-season
// records.
//
// Each full pipeline run writes a snapshot (players.json) into the data
// directory. The analyze command re-aggregates from the latest snapshot
// without touching the network. The default location is
// ~/.local/share/gauchowar/.
package storage
