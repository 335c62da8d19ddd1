// Package config provides configuration for the scrape-and-aggregate run:
// site location, year range, fetch pacing and retries, output paths, and log
// level. Values come from defaults, an optional YAML file, and GAUCHOWAR_*
// environment variable overrides, in that order.
package config
