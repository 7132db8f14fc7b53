package nw

import "errors"

var (
	// ErrBadInput indicates invalid options (Window < -1 or unknown MemoryMode).
	ErrBadInput = errors.New("nw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("nw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrNoPath indicates the end cell lies outside the window, so no path exists.
	ErrNoPath = errors.New("nw: end cell is unreachable within the window")
)

// MemoryMode selects what Align keeps while filling the table.
//
// FullMatrix keeps every in-window cell so the path can be traced back.
// With a window w that is (m+1)·(2w+1) cells, the same band layout the
// incremental history uses; without one it is (m+1)·(n+1).
// TwoRows keeps the previous and current row, 2·(n+1) cells: O(n) in the
// reference length whatever the typed length. It returns the distance only.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps two rows, distance only.
	TwoRows
)

// Options configures Align.
//
// Fields:
//   - Window:     maximum deviation |i-j| allowed. -1 means unlimited.
//   - ReturnPath: if true, Align backtracks and returns the alignment.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode: FullMatrix or TwoRows storage.
type Options struct {
	Window     int
	ReturnPath bool
	MemoryMode MemoryMode
}

// DefaultOptions returns unlimited window, no path, FullMatrix.
func DefaultOptions() Options {
	return Options{
		Window:     -1,
		ReturnPath: false,
		MemoryMode: FullMatrix,
	}
}

// Op is the edit taken by one alignment step.
type Op int

const (
	// Match aligns a typed unit with an equal reference unit.
	Match Op = iota
	// Mismatch aligns a typed unit with a different reference unit.
	Mismatch
	// Insert is a typed unit with no reference counterpart.
	Insert
	// Delete is a reference unit that was never typed.
	Delete
)

// String returns the op name.
func (o Op) String() string {
	switch o {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Step is one move of an alignment path. Typed and Reference are 0-based
// unit indices; the side an Insert or Delete does not consume is -1.
type Step struct {
	Op        Op
	Typed     int
	Reference int
}
