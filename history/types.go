package history

import (
	"errors"
	"strings"
)

// MaxBand is the largest accepted max misalignment. A row then holds
// 2·MaxBand+1 entries (512 KiB).
const MaxBand = 1 << 16

var (
	// ErrBadMisalignment indicates a max misalignment outside [0, MaxBand].
	ErrBadMisalignment = errors.New("history: max misalignment out of range")

	// ErrNotSingleUnit indicates a push of something other than exactly one grapheme cluster.
	ErrNotSingleUnit = errors.New("history: input must be exactly one grapheme cluster")
)

// History stores the typed and reference units and the tracked entries
// of their Needleman–Wunsch table.
type History struct {
	// maxMisalignment is p: cells with |col-row| > p are not tracked.
	maxMisalignment int

	typed     sequence
	reference sequence

	// entries is a flat array of materialized rows, 2p+1 entries each.
	// Row r covers columns r-p..r+p, so the first p rows start with
	// entries outside the matrix; those stay cost.Infinite.
	entries []uint32
}

// sequence is an append-only list of units stored as one string plus
// the starting byte offset of every unit.
type sequence struct {
	text    strings.Builder
	offsets []int
}

func (s *sequence) push(unit string) {
	s.offsets = append(s.offsets, s.text.Len())
	s.text.WriteString(unit)
}

// copyFrom replaces s with a copy of src.
func (s *sequence) copyFrom(src *sequence) {
	s.text.Reset()
	s.text.WriteString(src.text.String())
	s.offsets = append([]int(nil), src.offsets...)
}

func (s *sequence) len() int {
	return len(s.offsets)
}

// unit returns the i'th unit, or false when i is out of range.
func (s *sequence) unit(i int) (string, bool) {
	if i < 0 || i >= len(s.offsets) {
		return "", false
	}
	text := s.text.String()
	end := len(text)
	if i+1 < len(s.offsets) {
		end = s.offsets[i+1]
	}

	return text[s.offsets[i]:end], true
}

func (s *sequence) units() []string {
	out := make([]string, s.len())
	for i := range out {
		out[i], _ = s.unit(i)
	}

	return out
}
