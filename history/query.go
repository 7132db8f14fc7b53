package history

import "github.com/katalvlaran/typealign/cost"

// MaxMisalignment returns p, the band half-width fixed at construction.
func (h *History) MaxMisalignment() int {
	return h.maxMisalignment
}

// TypedLen returns m, the number of typed units pushed.
func (h *History) TypedLen() int {
	return h.typed.len()
}

// ReferenceLen returns n, the number of reference units pushed.
func (h *History) ReferenceLen() int {
	return h.reference.len()
}

// Typed returns a copy of the typed units.
func (h *History) Typed() []string {
	return h.typed.units()
}

// Reference returns a copy of the reference units.
func (h *History) Reference() []string {
	return h.reference.units()
}

// TypedUnit returns the i'th typed unit (0-based).
func (h *History) TypedUnit(i int) (string, bool) {
	return h.typed.unit(i)
}

// ReferenceUnit returns the i'th reference unit (0-based).
func (h *History) ReferenceUnit(i int) (string, bool) {
	return h.reference.unit(i)
}

// Rows returns the number of rows currently stored. It never exceeds
// min(m, n+p)+1, however far the typed sequence has run ahead.
func (h *History) Rows() int {
	return h.rows()
}

// Cost returns the edit cost between the first row typed units and the
// first col reference units. ok is false for cells outside the band or
// beyond either sequence; those report cost.Infinite.
func (h *History) Cost(row, col int) (c uint32, ok bool) {
	if row < 0 || col < 0 || row > h.typed.len() || col > h.reference.len() {
		return cost.Infinite, false
	}
	if _, tracked := h.index(row, col); !tracked {
		return cost.Infinite, false
	}

	return h.at(row, col), true
}

// Current returns the cost between everything typed and everything in
// the reference, i.e. Cost(m, n).
func (h *History) Current() (uint32, bool) {
	return h.Cost(h.typed.len(), h.reference.len())
}

// Row returns a copy of the 2p+1 tracked entries of row, covering columns
// row-p..row+p. Entries before column 0 or past column n are
// cost.Infinite. It returns nil if the row is not stored.
func (h *History) Row(row int) []uint32 {
	if row < 0 || row >= h.rows() {
		return nil
	}
	start := row * h.width()
	out := make([]uint32, h.width())
	copy(out, h.entries[start:start+h.width()])

	return out
}

// Column returns the 2p+1 tracked entries of col, covering rows
// col-p..col+p. Entries before row 0 or past the stored rows are
// cost.Infinite. It returns nil if col > n.
func (h *History) Column(col int) []uint32 {
	if col < 0 || col > h.reference.len() {
		return nil
	}
	out := make([]uint32, h.width())
	for i := range out {
		out[i] = h.at(col-h.maxMisalignment+i, col)
	}

	return out
}

// Best returns the cheapest tracked cell of row: the reference prefix the
// first row typed units align to best. Ties go to the longer prefix.
// ok is false if row has no tracked cell yet.
func (h *History) Best(row int) (col int, c uint32, ok bool) {
	if row < 0 || row > h.typed.len() || row >= h.rows() {
		return 0, cost.Infinite, false
	}
	c = cost.Infinite
	lo := max(0, row-h.maxMisalignment)
	hi := min(h.reference.len(), row+h.maxMisalignment)
	for k := lo; k <= hi; k++ {
		if v := h.at(row, k); v <= c {
			col, c = k, v
		}
	}
	if c == cost.Infinite {
		return 0, cost.Infinite, false
	}

	return col, c, true
}
