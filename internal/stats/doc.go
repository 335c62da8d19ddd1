// Package stats defines the statistic schema for sidearm roster stats pages
// and converts raw cell text into typed values.
//
// The schema is a fixed, ordered table of fields split into a batting section
// and a pitching section. Several labels (H, R, BB, SO, 2B, 3B, HR) appear in
// both sections and map to different record keys depending on which section a
// row is read with. Coercion failures are non-fatal: the value keeps its raw
// text and the record continues through the pipeline.
package stats
