package trial

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/typealign/nw"
)

// Verdicts returns one verdict per reference unit.
//
// The typed units are aligned with the reference prefix they match best,
// inside the same band as the history; units past that prefix are
// Pending. If the typed text has run beyond the band the whole reference
// is aligned, with the band widened just enough to reach its end.
// Only the band is stored, so a call costs O(m·p).
func (t *Trial) Verdicts() ([]Verdict, error) {
	typed := t.history.Typed()
	opts := nw.Options{
		Window:     t.opts.MaxMisalignment,
		ReturnPath: true,
		MemoryMode: nw.FullMatrix,
	}
	col, _, ok := t.history.Best(len(typed))
	if !ok {
		col = len(t.reference)
		opts.Window = t.overtypedWindow(len(typed))
	}

	_, path, err := nw.Align(typed, t.reference[:col], &opts)
	if err != nil {
		return nil, fmt.Errorf("trial: %w", err)
	}
	verdicts := make([]Verdict, len(t.reference))
	for _, s := range path {
		switch s.Op {
		case nw.Match:
			verdicts[s.Reference] = Correct
		case nw.Mismatch:
			verdicts[s.Reference] = Incorrect
		case nw.Delete:
			verdicts[s.Reference] = Missed
		}
	}

	return verdicts, nil
}

// Results summarizes the trial so far.
//
// Rates are taken between consecutive events, backspaces included, and
// credited to the later event. Per-unit figures cover committed units
// only; a unit never committed has no entry.
func (t *Trial) Results() Results {
	var committed, correct int
	perUnitAccuracy := make(map[string]Fraction)
	for _, e := range t.events {
		if e.Backspace {
			continue
		}
		committed++
		f := perUnitAccuracy[e.Unit]
		f.Denominator++
		if e.Correct {
			correct++
			f.Numerator++
		}
		perUnitAccuracy[e.Unit] = f
	}

	var perEvent []float64
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i := 1; i < len(t.events); i++ {
		dt := t.events[i].Time.Sub(t.events[i-1].Time)
		if dt <= 0 {
			continue
		}
		rate := 1 / dt.Seconds()
		perEvent = append(perEvent, rate)
		if e := t.events[i]; !e.Backspace {
			sums[e.Unit] += rate
			counts[e.Unit]++
		}
	}
	perUnitCPS := make(map[string]float64, len(sums))
	for unit, sum := range sums {
		perUnitCPS[unit] = sum / float64(counts[unit])
	}

	r := Results{
		ID:              t.id,
		Accuracy:        newFraction(correct, committed),
		CPS:             mean(perEvent),
		Distance:        t.Distance(),
		Progress:        t.Progress(),
		PerEvent:        perEvent,
		PerUnitCPS:      perUnitCPS,
		PerUnitAccuracy: perUnitAccuracy,
		Typed:           strings.Join(t.history.Typed(), ""),
		Reference:       strings.Join(t.reference, ""),
	}
	if n := len(t.events); n > 0 {
		r.Duration = t.events[n-1].Time.Sub(t.started)
	}

	return r
}

// mean returns the arithmetic mean of xs, or 0 when xs is empty.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}
