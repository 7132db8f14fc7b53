package segment_test

import (
	"fmt"

	"github.com/katalvlaran/typealign/segment"
)

// ExampleUnits splits text into the units the alignment history compares.
func ExampleUnits() {
	units := segment.Units("cafe\u0301!")
	fmt.Println(len(units), units[3] == "e\u0301")
	// Output:
	// 5 true
}

// ExampleAssembler feeds keystroke runes and collects finished units.
func ExampleAssembler() {
	var a segment.Assembler
	var done []string
	for _, r := range "ne\u0301e" {
		done = append(done, a.Push(r)...)
	}
	last, _ := a.Flush()
	done = append(done, last)
	fmt.Println(len(done))
	// Output:
	// 3
}
