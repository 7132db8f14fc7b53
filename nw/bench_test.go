package nw_test

import (
	"testing"

	"github.com/katalvlaran/typealign/nw"
)

// benchmarkAlign runs Align on sequences of lengths n and m using opts.
func benchmarkAlign(b *testing.B, n, m int, opts nw.Options) {
	typed := make([]string, n)
	reference := make([]string, m)
	for i := range typed {
		typed[i] = string(rune('a' + i%26))
	}
	for j := range reference {
		reference[j] = string(rune('a' + (j*7)%26))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := nw.Align(typed, reference, &opts); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_FullMatrix benchmarks FullMatrix mode on 500×500 units.
func BenchmarkAlign_FullMatrix(b *testing.B) {
	benchmarkAlign(b, 500, 500, nw.DefaultOptions())
}

// BenchmarkAlign_TwoRows benchmarks the rolling mode on 500×500 units.
func BenchmarkAlign_TwoRows(b *testing.B) {
	opts := nw.DefaultOptions()
	opts.MemoryMode = nw.TwoRows
	benchmarkAlign(b, 500, 500, opts)
}

// BenchmarkAlign_Path benchmarks path recovery inside a narrow window.
func BenchmarkAlign_Path(b *testing.B) {
	opts := nw.DefaultOptions()
	opts.Window = 8
	opts.ReturnPath = true
	benchmarkAlign(b, 500, 504, opts)
}

// BenchmarkAlign_LongBanded recovers a path over 4000 units inside a
// window of 8; storage is the band only.
func BenchmarkAlign_LongBanded(b *testing.B) {
	opts := nw.DefaultOptions()
	opts.Window = 8
	opts.ReturnPath = true
	b.ReportAllocs()
	benchmarkAlign(b, 4000, 4000, opts)
}
