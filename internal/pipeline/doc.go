// Package pipeline runs the full extraction flow: per-season roster pages
// are scraped into raw rows, a bounded worker pool enriches each player from
// their bio page, WAR is attached, and the finalized records are returned in
// roster order for aggregation. One bad player never fails the run.
package pipeline
