package nw

import (
	"fmt"

	"github.com/katalvlaran/typealign/cost"
)

// Align computes the Needleman–Wunsch edit distance between typed and reference.
//
// Algorithm Outline:
//  1. Let m = len(typed), n = len(reference). Cells with |i-j| > Window
//     are +∞ (cost.Infinite) and, in FullMatrix mode, are not stored:
//     a window w keeps (m+1)·(2w+1) cells instead of (m+1)·(n+1).
//  2. D[0][0] = 0.
//  3. For i = 0..m, j = max(0,i-w)..min(n,i+w):
//     replace = D[i-1][j-1] + (0 if typed[i-1] == reference[j-1] else 2)
//     insert  = D[i-1][j]   + 1
//     delete  = D[i][j-1]   + 1
//     D[i][j] = min(replace, insert, delete), saturating at +∞
//  4. distance = D[m][n].
//  5. If ReturnPath, backtrack from (m,n) to (0,0), preferring the
//     diagonal, then insert, then delete.
//
// Empty inputs are valid: the distance to an empty sequence is the other
// sequence's length.
//
// Errors:
//   - ErrBadInput:        Window < -1 or unknown MemoryMode.
//   - ErrPathNeedsMatrix: ReturnPath=true with TwoRows.
//   - ErrNoPath:          ReturnPath=true and |m-n| > Window.
func Align(typed, reference []string, opts *Options) (distance uint32, path []Step, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = validate(o); err != nil {
		return cost.Infinite, nil, err
	}
	w := clampWindow(o.Window, len(typed), len(reference))

	if o.MemoryMode == TwoRows {
		return twoRows(typed, reference, w), nil, nil
	}

	t := fill(typed, reference, w)
	distance = t.at(len(typed), len(reference))
	if !o.ReturnPath {
		return distance, nil, nil
	}
	if distance == cost.Infinite {
		return distance, nil, ErrNoPath
	}

	return distance, backtrack(t, typed, reference), nil
}

// Matrix returns the full (m+1)x(n+1) cost table for typed against
// reference, with cells outside the window set to cost.Infinite.
// A window of -1 means unlimited.
func Matrix(typed, reference []string, window int) ([][]uint32, error) {
	if window < -1 {
		return nil, fmt.Errorf("%w: window %d", ErrBadInput, window)
	}

	return fill(typed, reference, clampWindow(window, len(typed), len(reference))).dense(), nil
}

// validate checks option consistency.
func validate(o Options) error {
	if o.Window < -1 {
		return fmt.Errorf("%w: window %d", ErrBadInput, o.Window)
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return fmt.Errorf("%w: memory mode %d", ErrBadInput, o.MemoryMode)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}

	return nil
}

// clampWindow maps every window that admits all cells to -1.
func clampWindow(window, m, n int) int {
	if window < 0 || window >= max(m, n) {
		return -1
	}

	return window
}

// span returns the columns of row i inside window w (-1 is unlimited).
func span(i, n, w int) (lo, hi int) {
	if w < 0 {
		return 0, n
	}

	return max(0, i-w), min(n, i+w)
}

// fill relaxes every in-window cell of the table, row by row.
func fill(typed, reference []string, w int) *table {
	n := len(reference)
	t := newTable(len(typed), n, w)
	for i := 0; i <= len(typed); i++ {
		lo, hi := span(i, n, w)
		for j := lo; j <= hi; j++ {
			t.set(i, j, relax(typed, reference, i, j, t.at(i-1, j-1), t.at(i-1, j), t.at(i, j-1)))
		}
	}

	return t
}

// twoRows computes the distance keeping only the previous and current row.
// Entries just outside the current band are reset to +∞, since the next
// row reads them as its neighbors.
func twoRows(typed, reference []string, w int) uint32 {
	n := len(reference)
	prev := make([]uint32, n+1)
	curr := make([]uint32, n+1)
	for i := 0; i <= len(typed); i++ {
		lo, hi := span(i, n, w)
		if lo > n {
			// every later row lies past the last column too
			return cost.Infinite
		}
		if lo > 0 {
			curr[lo-1] = cost.Infinite
		}
		if hi < n {
			curr[hi+1] = cost.Infinite
		}
		for j := lo; j <= hi; j++ {
			diag, top, left := cost.Infinite, cost.Infinite, cost.Infinite
			if i > 0 && j > 0 {
				diag = prev[j-1]
			}
			if i > 0 {
				top = prev[j]
			}
			if j > 0 {
				left = curr[j-1]
			}
			curr[j] = relax(typed, reference, i, j, diag, top, left)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// relax applies the recurrence to cell (i, j) given its neighbors.
func relax(typed, reference []string, i, j int, diag, top, left uint32) uint32 {
	if i == 0 && j == 0 {
		return 0
	}
	replace, insert, del := cost.Infinite, cost.Infinite, cost.Infinite
	if i > 0 && j > 0 {
		replace = cost.Add(diag, cost.Replace(typed[i-1], reference[j-1]))
	}
	if i > 0 {
		insert = cost.Add(top, cost.Insertion)
	}
	if j > 0 {
		del = cost.Add(left, cost.Deletion)
	}

	return cost.Min3(replace, insert, del)
}

// backtrack walks from (m,n) to (0,0) and returns the path in forward order.
func backtrack(t *table, typed, reference []string) []Step {
	i, j := len(typed), len(reference)
	path := make([]Step, 0, max(i, j))
	for i > 0 || j > 0 {
		cur := t.at(i, j)
		switch {
		case i > 0 && j > 0 && cost.Add(t.at(i-1, j-1), cost.Replace(typed[i-1], reference[j-1])) == cur:
			op := Match
			if typed[i-1] != reference[j-1] {
				op = Mismatch
			}
			path = append(path, Step{Op: op, Typed: i - 1, Reference: j - 1})
			i--
			j--
		case i > 0 && cost.Add(t.at(i-1, j), cost.Insertion) == cur:
			path = append(path, Step{Op: Insert, Typed: i - 1, Reference: -1})
			i--
		default:
			path = append(path, Step{Op: Delete, Typed: -1, Reference: j - 1})
			j--
		}
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
