package bykey_test

import (
	"testing"

	"github.com/hasbyte1/go-bykey/bykey"
)

// makeInts creates n pseudo-random-ish ints over a small key space.
func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = (i * 7919) % 257
	}
	return items
}

func BenchmarkCountBy(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bykey.CountBy(items, func(x int) int { return x })
	}
}

func BenchmarkCountByWithHint(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bykey.CountBy(items, func(x int) int { return x }, 257)
	}
}

func BenchmarkGroupBy(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bykey.GroupBy(items, func(x int) int { return x % 16 })
	}
}

func BenchmarkAccumulateBy(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bykey.AccumulateBy(items, func(x int) int { return x % 16 }, func(x int) int { return x })
	}
}

func BenchmarkExtremaBy(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bykey.ExtremaBy(items,
			func(x int) int { return x % 16 },
			func(x int) int { return x },
			func(x int) int { return x })
	}
}
