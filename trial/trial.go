package trial

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/typealign/cost"
	"github.com/katalvlaran/typealign/history"
	"github.com/katalvlaran/typealign/nw"
	"github.com/katalvlaran/typealign/segment"
)

const (
	// checkpointEvery is the number of committed units between history snapshots.
	checkpointEvery = 32
	// maxCheckpoints bounds the snapshots kept; older ones are dropped first.
	maxCheckpoints = 4
)

// Trial tracks one run through a reference text.
type Trial struct {
	id        uuid.UUID
	opts      Options
	log       *slog.Logger
	reference []string
	history   *history.History
	working   segment.Assembler
	events    []Event
	started   time.Time

	// checkpoints are snapshots of history at multiples of checkpointEvery
	// typed units, oldest first. Backspace rewinds from the nearest one.
	checkpoints []*history.History
}

// New starts a trial over reference.
//
// Errors:
//   - ErrBadInput if opts.MaxMisalignment is outside [0, history.MaxBand].
//   - ErrEmptyReference if reference has no units.
func New(reference string, opts Options) (*Trial, error) {
	if opts.MaxMisalignment < 0 || opts.MaxMisalignment > history.MaxBand {
		return nil, fmt.Errorf("%w: max misalignment %d", ErrBadInput, opts.MaxMisalignment)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	units := segment.Units(reference)
	if len(units) == 0 {
		return nil, ErrEmptyReference
	}
	h, err := history.New(opts.MaxMisalignment)
	if err != nil {
		return nil, fmt.Errorf("trial: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t := &Trial{
		id:        uuid.New(),
		opts:      opts,
		reference: units,
		history:   h,
		started:   opts.Now(),
	}
	t.log = logger.With("trial", t.id.String())
	if err = t.feedReference(); err != nil {
		return nil, err
	}
	t.log.Info("trial started",
		"units", len(units),
		"max_misalignment", opts.MaxMisalignment,
	)

	return t, nil
}

// ID returns the trial's unique identifier.
func (t *Trial) ID() uuid.UUID {
	return t.id
}

// History exposes the alignment history for read-only queries.
func (t *Trial) History() *history.History {
	return t.history
}

// Reference returns a copy of the reference units.
func (t *Trial) Reference() []string {
	return append([]string(nil), t.reference...)
}

// Pending returns the unit still being typed.
func (t *Trial) Pending() string {
	return t.working.Pending()
}

// Events returns a copy of the event log.
func (t *Trial) Events() []Event {
	return append([]Event(nil), t.events...)
}

// TypeRune feeds one keystroke rune. Units it completes are committed.
func (t *Trial) TypeRune(r rune) error {
	for _, unit := range t.working.Push(r) {
		if err := t.commit(unit); err != nil {
			return err
		}
	}

	return nil
}

// Type feeds every rune of s.
func (t *Trial) Type(s string) error {
	for _, r := range s {
		if err := t.TypeRune(r); err != nil {
			return err
		}
	}

	return nil
}

// Flush commits the unit being typed, if any. Callers flush at points
// where no further rune can extend the unit: a word boundary or the end
// of input.
func (t *Trial) Flush() error {
	unit, ok := t.working.Flush()
	if !ok {
		return nil
	}

	return t.commit(unit)
}

// Backspace removes the last rune of the unit being typed or, when nothing
// is pending, the last committed unit.
//
// Errors:
//   - ErrNothingToDelete if nothing has been typed.
func (t *Trial) Backspace() error {
	if t.working.Pop() {
		t.events = append(t.events, Event{Time: t.opts.Now(), Backspace: true})
		return nil
	}
	m := t.history.TypedLen()
	if m == 0 {
		return ErrNothingToDelete
	}
	from, err := t.rewind(m - 1)
	if err != nil {
		return err
	}
	t.events = append(t.events, Event{Time: t.opts.Now(), Backspace: true})
	t.log.Debug("history replayed", "from", from, "typed", m-1, "distance", t.Distance())

	return nil
}

// Distance returns the edit cost of the typed text against the reference
// prefix it aligns to best. Once the typed text has run more than p units
// past the end of the reference the history row is not stored, and the
// distance is computed against the whole reference instead.
func (t *Trial) Distance() uint32 {
	_, c, ok := t.history.Best(t.history.TypedLen())
	if !ok {
		return t.overtypedDistance()
	}

	return c
}

// Progress returns committed units over reference units, capped at one.
func (t *Trial) Progress() Fraction {
	return newFraction(min(t.history.TypedLen(), len(t.reference)), len(t.reference))
}

// overtypedDistance aligns all typed units with the whole reference in two
// rows, inside the narrowest window that still reaches the end cell.
func (t *Trial) overtypedDistance() uint32 {
	typed := t.history.Typed()
	opts := nw.Options{
		Window:     t.overtypedWindow(len(typed)),
		MemoryMode: nw.TwoRows,
	}
	d, _, err := nw.Align(typed, t.reference, &opts)
	if err != nil {
		return cost.Infinite
	}

	return d
}

// overtypedWindow is the band used once m typed units have run past the
// reference: p, widened to the length difference when that is larger.
func (t *Trial) overtypedWindow(m int) int {
	return max(t.opts.MaxMisalignment, m-len(t.reference))
}

// OnTrack reports whether Distance is within the configured tolerance.
func (t *Trial) OnTrack() bool {
	return t.Distance() <= t.opts.Tolerance
}

// Complete reports whether the typed text aligns best with the whole reference.
func (t *Trial) Complete() bool {
	if t.history.ReferenceLen() < len(t.reference) {
		return false
	}
	col, _, ok := t.history.Best(t.history.TypedLen())

	return ok && col == len(t.reference)
}

// commit pushes a finished unit and records whether it was correct.
func (t *Trial) commit(unit string) error {
	if err := t.history.PushTyped(unit); err != nil {
		return fmt.Errorf("trial: %w", err)
	}
	if err := t.feedReference(); err != nil {
		return err
	}
	if m := t.history.TypedLen(); m%checkpointEvery == 0 {
		t.checkpoint()
	}
	correct := t.lastUnitMatched()
	t.events = append(t.events, Event{Time: t.opts.Now(), Unit: unit, Correct: correct})
	t.log.Debug("unit committed",
		"unit", unit,
		"correct", correct,
		"distance", t.Distance(),
	)
	if t.Complete() {
		t.log.Info("trial complete", "distance", t.Distance())
	}

	return nil
}

// lastUnitMatched reports whether the best cell of the newest row is
// reached by matching the newest typed unit with an equal reference unit.
func (t *Trial) lastUnitMatched() bool {
	m := t.history.TypedLen()
	col, c, ok := t.history.Best(m)
	if !ok || col == 0 {
		return false
	}
	typed, _ := t.history.TypedUnit(m - 1)
	reference, _ := t.history.ReferenceUnit(col - 1)
	if typed != reference {
		return false
	}
	diag, ok := t.history.Cost(m-1, col-1)

	return ok && cost.Add(diag, cost.Match) == c
}

// feedReference keeps the history's reference p units ahead of the typed
// text, so every tracked cell of the newest row is available.
func (t *Trial) feedReference() error {
	target := min(len(t.reference), t.history.TypedLen()+t.opts.MaxMisalignment)
	for n := t.history.ReferenceLen(); n < target; n++ {
		if err := t.history.PushReference(t.reference[n]); err != nil {
			return fmt.Errorf("trial: %w", err)
		}
	}

	return nil
}

// checkpoint snapshots the current history.
func (t *Trial) checkpoint() {
	t.checkpoints = append(t.checkpoints, t.history.Clone())
	if len(t.checkpoints) > maxCheckpoints {
		t.checkpoints = t.checkpoints[1:]
	}
}

// rewind swaps in a history holding the first m typed units and the
// matching reference prefix. It starts from the newest checkpoint holding
// at most m units, or from scratch, and returns the typed length it
// started from.
func (t *Trial) rewind(m int) (int, error) {
	for len(t.checkpoints) > 0 && t.checkpoints[len(t.checkpoints)-1].TypedLen() > m {
		t.checkpoints = t.checkpoints[:len(t.checkpoints)-1]
	}

	var h *history.History
	if n := len(t.checkpoints); n > 0 {
		h = t.checkpoints[n-1].Clone()
	} else {
		var err error
		if h, err = history.New(t.opts.MaxMisalignment); err != nil {
			return 0, fmt.Errorf("trial: %w", err)
		}
	}
	from := h.TypedLen()
	old := t.history
	t.history = h
	if err := t.feedReference(); err != nil {
		return from, err
	}
	for i := from; i < m; i++ {
		unit, _ := old.TypedUnit(i)
		if err := h.PushTyped(unit); err != nil {
			return from, fmt.Errorf("trial: %w", err)
		}
		if err := t.feedReference(); err != nil {
			return from, err
		}
	}

	return from, nil
}
