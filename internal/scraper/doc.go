// Package scraper parses sidearm-style college roster pages.
//
// The season stats page yields one row per player with jersey, name, player
// ID, a bio link, and stat cells addressed by their data-label attribute.
// The per-player bio page yields position and hometown from its labeled
// field spans. The scraper only locates and trims text; interpreting it is
// the stats and player packages' job.
package scraper
