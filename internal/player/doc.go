// Package player defines the player-season record and the normalization
// rules applied while enriching it.
//
// A record is built up field by field: identity from the roster stats row,
// position and hometown from the bio page, typed statistics from the stats
// package, and finally a computed WAR value. Position strings normalize to a
// closed set of canonical codes, and hometown states classify as in-state
// against the accepted California spellings. Players whose state cannot be
// determined default to in-state Californians.
package player
