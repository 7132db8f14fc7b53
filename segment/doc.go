// Package segment splits text into grapheme clusters, the atomic units
// compared by the alignment history.
//
// A unit is never split: "é" written as 'e' followed by U+0301, a flag made
// of two regional indicators, or an emoji ZWJ sequence each count as one
// unit. Segmentation follows Unicode UAX #29 extended grapheme clusters as
// implemented by github.com/rivo/uniseg.
//
// Keystrokes arrive one rune at a time, so a unit cannot be known to be
// finished until the next rune starts a new one. Assembler buffers the
// working unit and releases units as soon as they are complete:
//
//	var a segment.Assembler
//	a.Push('e')      // nil, "e" is pending
//	a.Push('\u0301') // nil, "é" is pending
//	a.Push('x')      // ["é"], "x" is pending
//	a.Flush()        // "x", true
package segment
