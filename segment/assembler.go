package segment

import "unicode/utf8"

// Assembler builds units incrementally from runes.
// The zero value is ready to use.
type Assembler struct {
	pending string
}

// Push appends r to the working unit and returns the units that r
// completed, in order. Usually that is zero or one unit.
func (a *Assembler) Push(r rune) []string {
	units := Units(a.pending + string(r))
	if len(units) <= 1 {
		a.pending += string(r)
		return nil
	}
	a.pending = units[len(units)-1]

	return units[:len(units)-1]
}

// Pending returns the working unit, which may still grow.
func (a *Assembler) Pending() string {
	return a.pending
}

// Flush releases the working unit. ok is false when nothing was pending.
func (a *Assembler) Flush() (unit string, ok bool) {
	if a.pending == "" {
		return "", false
	}
	unit, a.pending = a.pending, ""

	return unit, true
}

// Pop removes the last rune of the working unit.
// It reports false when nothing was pending.
func (a *Assembler) Pop() bool {
	if a.pending == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(a.pending)
	a.pending = a.pending[:len(a.pending)-size]

	return true
}

// Reset drops the working unit.
func (a *Assembler) Reset() {
	a.pending = ""
}
