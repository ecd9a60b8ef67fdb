package adjmap_test

import (
	"testing"

	"github.com/katalvlaran/algraph/adjmap"
	"github.com/katalvlaran/algraph/gen"
)

// benchPair builds two independent random graphs for binary operations.
func benchPair(b *testing.B, n int) (adjmap.Graph[int], adjmap.Graph[int]) {
	b.Helper()

	x, err := gen.Sparse(n, 0.05, gen.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	y, err := gen.Sparse(n, 0.05, gen.WithSeed(2))
	if err != nil {
		b.Fatal(err)
	}

	return x, y
}

func BenchmarkOverlay(b *testing.B) {
	x, y := benchPair(b, 512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = adjmap.Overlay(x, y)
	}
}

func BenchmarkConnect(b *testing.B) {
	x, y := benchPair(b, 128)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = adjmap.Connect(x, y)
	}
}

func BenchmarkCompare(b *testing.B) {
	x, y := benchPair(b, 512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Compare(y)
	}
}

func BenchmarkString(b *testing.B) {
	x, _ := benchPair(b, 512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}

func BenchmarkGMap(b *testing.B) {
	x, _ := benchPair(b, 512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = adjmap.GMap(x, func(v int) int { return v / 2 })
	}
}
