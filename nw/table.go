package nw

import "github.com/katalvlaran/typealign/cost"

// table holds the (m+1)x(n+1) cost table. With a band it keeps only the
// 2w+1 cells of each row around the diagonal, addressed the same way as
// the incremental history: cell (i, j) sits at offset j-i+w of row i.
type table struct {
	rows, cols int

	// band is the half-width w, or -1 when whole rows are stored.
	band  int
	width int
	cells []uint32
}

// newTable allocates a table for m typed and n reference units.
// window must already be clamped; a band is only used when it is narrower
// than a full row.
func newTable(m, n, window int) *table {
	t := &table{rows: m + 1, cols: n + 1, band: -1, width: n + 1}
	if window >= 0 && window < n && 2*window < n {
		t.band = window
		t.width = 2*window + 1
	}
	t.cells = make([]uint32, t.rows*t.width)
	for i := range t.cells {
		t.cells[i] = cost.Infinite
	}

	return t
}

// index maps (i, j) to its slot; ok is false outside the table or band.
func (t *table) index(i, j int) (idx int, ok bool) {
	if i < 0 || j < 0 || i >= t.rows || j >= t.cols {
		return 0, false
	}
	if t.band < 0 {
		return i*t.width + j, true
	}
	offset := j - i + t.band
	if offset < 0 || offset >= t.width {
		return 0, false
	}

	return i*t.width + offset, true
}

// at returns cell (i, j), or cost.Infinite when it is not stored.
func (t *table) at(i, j int) uint32 {
	idx, ok := t.index(i, j)
	if !ok {
		return cost.Infinite
	}

	return t.cells[idx]
}

func (t *table) set(i, j int, v uint32) {
	if idx, ok := t.index(i, j); ok {
		t.cells[idx] = v
	}
}

// dense expands the table into a [][]uint32.
func (t *table) dense() [][]uint32 {
	dp := make([][]uint32, t.rows)
	for i := range dp {
		dp[i] = make([]uint32, t.cols)
		for j := range dp[i] {
			dp[i][j] = t.at(i, j)
		}
	}

	return dp
}
