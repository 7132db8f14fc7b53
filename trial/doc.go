// Package trial is the controller that sits between keystrokes and the
// alignment history of one typing trial.
//
// A Trial owns:
//   - the reference text, segmented into units up front
//   - a segment.Assembler holding the unit currently being typed
//   - a history.History fed with every finished typed unit, and with
//     reference units lazily, never more than p units ahead
//   - the event log used for results
//
// The history has no undo. Backspace over a finished unit rebuilds a fresh
// history from the corrected typed sequence.
//
// Correctness policy: a typed unit is correct when the cheapest alignment
// of the typed text so far ends by matching that unit with an equal
// reference unit. Per reference unit verdicts come from an nw path over
// the typed units and their best matching reference prefix.
//
// A Trial is not safe for concurrent use.
package trial
