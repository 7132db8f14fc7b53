package trial

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrBadInput indicates invalid options.
	ErrBadInput = errors.New("trial: invalid options")

	// ErrEmptyReference indicates a reference text with no units.
	ErrEmptyReference = errors.New("trial: reference text must not be empty")

	// ErrNothingToDelete indicates a backspace with nothing typed.
	ErrNothingToDelete = errors.New("trial: nothing to delete")
)

// Options configures a Trial.
//
// Fields:
//   - MaxMisalignment: band half-width p of the alignment history.
//   - Tolerance:       highest distance still reported as on track.
//   - Now:             clock used to timestamp events.
//   - Logger:          structured logger; nil discards.
type Options struct {
	MaxMisalignment int
	Tolerance       uint32
	Now             func() time.Time
	Logger          *slog.Logger
}

// DefaultOptions returns p=8, zero tolerance, the wall clock and no logging.
func DefaultOptions() Options {
	return Options{
		MaxMisalignment: 8,
		Tolerance:       0,
		Now:             time.Now,
	}
}

// Verdict is the state of one reference unit.
type Verdict int

const (
	// Pending units have not been reached yet.
	Pending Verdict = iota
	// Correct units were typed as asked.
	Correct
	// Incorrect units were typed as a different unit.
	Incorrect
	// Missed units were skipped.
	Missed
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Pending:
		return "pending"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Missed:
		return "missed"
	default:
		return "unknown"
	}
}

// Event records one committed unit or one backspace.
type Event struct {
	Time      time.Time
	Unit      string // empty for backspace
	Correct   bool
	Backspace bool
}

// Fraction is a ratio with a denominator of at least one.
type Fraction struct {
	Numerator   int
	Denominator int
}

// newFraction builds n/d, clamping the denominator to 1.
func newFraction(n, d int) Fraction {
	return Fraction{Numerator: n, Denominator: max(d, 1)}
}

// Float returns the ratio as a float64.
func (f Fraction) Float() float64 {
	return float64(f.Numerator) / float64(max(f.Denominator, 1))
}

// String formats the fraction as "n/d".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, max(f.Denominator, 1))
}

// Results summarizes a trial.
type Results struct {
	ID uuid.UUID

	// Accuracy is correct committed units over all committed units.
	Accuracy Fraction
	// CPS is the mean of the per-event rates 1/Δt between consecutive events.
	CPS float64
	// Duration runs from trial start to the last event.
	Duration time.Duration
	// Distance is the edit cost of the typed text against its best reference prefix.
	Distance uint32
	// Progress is committed units over reference units, capped at one.
	Progress Fraction

	// PerEvent holds 1/Δt for every pair of consecutive events with Δt > 0,
	// in event order. CPS is its mean.
	PerEvent []float64
	// PerUnitCPS is the mean rate of the events that committed each unit.
	PerUnitCPS map[string]float64
	// PerUnitAccuracy is, for each unit typed, how often it was correct.
	PerUnitAccuracy map[string]Fraction

	Typed     string
	Reference string
}
