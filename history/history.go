package history

import (
	"fmt"

	"github.com/katalvlaran/typealign/cost"
	"github.com/katalvlaran/typealign/segment"
)

// New creates a history with empty typed and reference sequences.
//
// The only materialized row is row 0, in which cost(0,0)=0 and every
// other entry is cost.Infinite until the matching reference unit arrives.
//
// Errors:
//   - ErrBadMisalignment if maxMisalignment < 0 or > MaxBand.
func New(maxMisalignment int) (*History, error) {
	if maxMisalignment < 0 || maxMisalignment > MaxBand {
		return nil, fmt.Errorf("%w: got %d", ErrBadMisalignment, maxMisalignment)
	}
	h := &History{maxMisalignment: maxMisalignment}
	h.entries = h.blankRow()
	h.entries[maxMisalignment] = 0

	return h, nil
}

// PushReference appends one reference unit and fills the tracked cells of
// the new column.
//
// Errors:
//   - ErrNotSingleUnit if unit is not exactly one grapheme cluster;
//     the history is left unchanged.
func (h *History) PushReference(unit string) error {
	if !segment.IsUnit(unit) {
		return fmt.Errorf("%w: reference %q", ErrNotSingleUnit, unit)
	}
	h.reference.push(unit)
	h.fill(referenceAxis, h.reference.len())

	return nil
}

// PushTyped appends one typed unit and fills the tracked cells of the new
// row. A row lying entirely beyond the band (row > n+p) is not stored;
// it materializes once enough reference units have been pushed.
//
// Errors:
//   - ErrNotSingleUnit if unit is not exactly one grapheme cluster;
//     the history is left unchanged.
func (h *History) PushTyped(unit string) error {
	if !segment.IsUnit(unit) {
		return fmt.Errorf("%w: typed %q", ErrNotSingleUnit, unit)
	}
	h.typed.push(unit)
	h.fill(typedAxis, h.typed.len())

	return nil
}

// Clone returns an independent copy. Pushes to either history do not
// affect the other.
func (h *History) Clone() *History {
	c := &History{
		maxMisalignment: h.maxMisalignment,
		entries:         append([]uint32(nil), h.entries...),
	}
	c.typed.copyFrom(&h.typed)
	c.reference.copyFrom(&h.reference)

	return c
}

// axis names the sequence that just grew.
type axis int

const (
	typedAxis     axis = iota // a new row
	referenceAxis             // a new column
)

// cell maps a position along a line of this axis to (row, col).
func (a axis) cell(line, k int) (row, col int) {
	if a == typedAxis {
		return line, k
	}

	return k, line
}

// fill recomputes every tracked cell of the newest line along ax.
// Cells are visited in increasing order of the other coordinate, so the
// in-line neighbor is always final by the time it is read; the other two
// neighbors lie on the previous line.
func (h *History) fill(ax axis, line int) {
	h.materialize()

	other := h.reference.len()
	if ax == referenceAxis {
		other = h.typed.len()
	}
	lo := max(0, line-h.maxMisalignment)
	hi := min(other, line+h.maxMisalignment)
	for k := lo; k <= hi; k++ {
		h.relax(ax.cell(line, k))
	}
}

// relax computes cell (row, col) from its top-left, top and left neighbors.
// (0,0) is seeded by New and never relaxed.
func (h *History) relax(row, col int) {
	idx, ok := h.index(row, col)
	if !ok {
		return
	}
	replace, insert, del := cost.Infinite, cost.Infinite, cost.Infinite
	if row > 0 && col > 0 {
		replace = cost.Add(h.at(row-1, col-1), h.replacementCost(row, col))
	}
	if row > 0 {
		insert = cost.Add(h.at(row-1, col), cost.Insertion)
	}
	if col > 0 {
		del = cost.Add(h.at(row, col-1), cost.Deletion)
	}
	h.entries[idx] = cost.Min3(replace, insert, del)
}

// replacementCost prices aligning typed unit row-1 with reference unit
// col-1. Cells computed ahead of either stream have no cost available.
func (h *History) replacementCost(row, col int) uint32 {
	typed, ok := h.typed.unit(row - 1)
	if !ok {
		return cost.Infinite
	}
	reference, ok := h.reference.unit(col - 1)
	if !ok {
		return cost.Infinite
	}

	return cost.Replace(typed, reference)
}

// materialize grows the arena to hold every row that has at least one
// in-band cell inside the matrix: rows 0..min(m, n+p).
// Each push raises that bound by at most one.
func (h *History) materialize() {
	target := min(h.typed.len(), h.reference.len()+h.maxMisalignment)
	for h.rows() <= target {
		h.entries = append(h.entries, h.blankRow()...)
	}
}

// index maps (row, col) to its slot in entries.
// ok is false for cells outside the band or in rows not yet stored.
func (h *History) index(row, col int) (idx int, ok bool) {
	if row < 0 || col < 0 || row >= h.rows() {
		return 0, false
	}
	offset := col - row + h.maxMisalignment
	if offset < 0 || offset >= h.width() {
		return 0, false
	}

	return row*h.width() + offset, true
}

// at returns the stored cost of (row, col), or cost.Infinite if untracked.
func (h *History) at(row, col int) uint32 {
	idx, ok := h.index(row, col)
	if !ok {
		return cost.Infinite
	}

	return h.entries[idx]
}

// width is the number of tracked entries per row, 2p+1.
func (h *History) width() int {
	return 2*h.maxMisalignment + 1
}

// rows is the number of materialized rows.
func (h *History) rows() int {
	return len(h.entries) / h.width()
}

func (h *History) blankRow() []uint32 {
	row := make([]uint32, h.width())
	for i := range row {
		row[i] = cost.Infinite
	}

	return row
}
