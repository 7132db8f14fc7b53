// Package history keeps an incrementally updated, banded Needleman–Wunsch
// table between a stream of typed units and a stream of reference units.
//
// 🚀 What is it for?
//
//	A typing test compares what the user typed with what was asked for.
//	Users fall behind, skip a letter or type one twice; a plain position
//	by position comparison then marks everything after the slip as wrong.
//	The history prices such slips as edits instead, so a single missed
//	unit costs one keystroke rather than the rest of the word.
//
// ✨ Key properties:
//   - every push costs O(p) time, p being the max misalignment
//   - only cells with |col−row| ≤ p are stored: O(p·min(n,m)) memory
//   - typed and reference units may be pushed in any interleaving;
//     the final table does not depend on the order
//   - saturating uint32 arithmetic: untracked cells are cost.Infinite
//
// ⚙️ Usage:
//
//	h, _ := history.New(8)
//	for _, u := range segment.Units("saturday") {
//		_ = h.PushReference(u)
//	}
//	for _, u := range segment.Units("sunday") {
//		_ = h.PushTyped(u)
//	}
//	c, _ := h.Current() // 4: insert "a", insert "t", replace "n" with "r"
//
// Within the band the stored cost equals the Needleman–Wunsch distance
// restricted to the same window (nw.Align with Window=p). When p is at
// least the longer sequence length that is the unrestricted distance;
// a narrower band can only overestimate it.
//
// A History is single-writer and has no undo. Build a fresh one and
// replay the corrected sequences instead.
package history
