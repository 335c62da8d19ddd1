// Package aggregate builds the per-position in-state vs out-of-state WAR
// comparison table from a collection of finalized player records.
package aggregate
