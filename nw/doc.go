// Package nw computes Needleman–Wunsch edit distances between two
// sequences of text units from scratch, with optional alignment path and
// memory optimizations.
//
// 🚀 What is it for?
//
//	package history maintains the same table incrementally, one unit at a
//	time. nw rebuilds it in one pass. It is used to:
//	  • recover which reference unit every typed unit was aligned with
//	    (the history keeps costs only, not predecessors)
//	  • cross-check the incremental table in tests
//
// ✨ Key features:
//   - full-matrix mode: supports path recovery; stores only the band when
//     a window is set
//   - two-row mode: O(M) memory, distance only
//   - optional band (|i−j| ≤ Window) matching history's max misalignment
//   - the keystroke cost model of package cost (match 0, mismatch 2,
//     insertion 1, deletion 1)
//
// ⚙️ Usage:
//
//	opts := nw.DefaultOptions()
//	opts.Window = 8
//	opts.ReturnPath = true
//
//	dist, path, err := nw.Align(typed, reference, &opts)
//
// Performance:
//
//   - Time:   O(N·M), or O(N·Window) with a window
//   - Memory: O(N·Window) or O(N·M) (FullMatrix), O(M) (TwoRows)
package nw
