// Package cost holds the edit-cost model shared by the incremental
// alignment history and the full Needleman–Wunsch aligner.
//
// Costs are counted in keystrokes:
//
//	match     0   nothing to correct
//	mismatch  2   delete the wrong unit, type the right one
//	insertion 1   a typed unit with no reference counterpart
//	deletion  1   a reference unit that was never typed
//
// All arithmetic saturates at Infinite, so a cell whose every
// predecessor is unreachable stays unreachable instead of wrapping.
package cost

import "math"

const (
	// Match is the cost of a typed unit equal to its reference unit.
	Match uint32 = 0
	// Mismatch is the cost of replacing a reference unit with a different typed unit.
	Mismatch uint32 = 2
	// Insertion is the cost of a typed unit the reference does not advance for.
	Insertion uint32 = 1
	// Deletion is the cost of a reference unit the typed stream skipped.
	Deletion uint32 = 1

	// Infinite marks an untracked or unreachable cell.
	Infinite uint32 = math.MaxUint32
)

// Add returns a+b, saturating at Infinite.
func Add(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}

	return Infinite
}

// Replace returns the cost of aligning typed against reference.
// Units are compared as opaque strings.
func Replace(typed, reference string) uint32 {
	if typed == reference {
		return Match
	}

	return Mismatch
}

// Min3 returns the minimum of three costs.
func Min3(a, b, c uint32) uint32 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
