// Package typealign tracks how a typing learner's input lines up with a
// reference text, one keystroke at a time.
//
// 🚀 What is typealign?
//
//	A small, pure-Go library that brings together:
//		• Grapheme segmentation: user-perceived characters as the unit of comparison
//		• Incremental banded alignment: an edit-distance table that grows from either side
//		• One-shot alignment: full Needleman–Wunsch with a path for per-unit verdicts
//		• Trials: keystrokes in, correctness, distance, accuracy and pace out
//
// ✨ Why choose typealign?
//
//   - Constant work per keystroke – only a band of 2p+1 cells per row is kept
//   - Order-free – typed and reference units may arrive in any interleaving
//   - Unicode-aware – "é" is one unit whether precomposed or built from a combining mark
//   - Observable – structured log/slog records tagged with a trial ID
//
// Under the hood, everything is organized under five subpackages:
//
//	cost/     edit costs and saturating arithmetic
//	segment/  grapheme cluster units and an incremental Assembler
//	history/  the banded, incrementally filled alignment table
//	nw/       full-table Needleman–Wunsch with window and path recovery
//	trial/    the typing session controller: events, verdicts, results
//
// Quick ASCII example (typed "sunday" against reference "saturday"):
//
//	      s a t u r d a y
//	    0 1 2 3 4 5 6 7 8
//	  s 1 0 1 2 3 4 5 6 7
//	  u 2 1 2 3 2 3 4 5 6
//	  ...
//	  y 6 5 4 5 6 7 6 5 4
//
// The bottom-right cell is the distance: two deletions ("a", "t") and
// one substitution ("n" for "r").
//
//	go get github.com/katalvlaran/typealign
package typealign
