package trial_test

import (
	"fmt"

	"github.com/katalvlaran/typealign/trial"
)

// ExampleTrial types a word with one skipped letter and prints the
// verdict of every reference unit.
func ExampleTrial() {
	opts := trial.DefaultOptions()
	opts.MaxMisalignment = 2
	tr, err := trial.New("typing", opts)
	if err != nil {
		panic(err)
	}
	_ = tr.Type("tping")
	_ = tr.Flush()

	verdicts, _ := tr.Verdicts()
	for i, unit := range tr.Reference() {
		fmt.Println(unit, verdicts[i])
	}
	r := tr.Results()
	fmt.Println("accuracy", r.Accuracy, "distance", r.Distance)
	// Output:
	// t correct
	// y missed
	// p correct
	// i correct
	// n correct
	// g correct
	// accuracy 5/5 distance 1
}

// ExampleTrial_Backspace corrects a typo before moving on.
func ExampleTrial_Backspace() {
	tr, _ := trial.New("cat", trial.DefaultOptions())
	_ = tr.Type("cu")
	_ = tr.Backspace()
	_ = tr.Type("at")
	_ = tr.Flush()

	fmt.Println(tr.Complete(), tr.Distance())
	// Output: true 0
}
