package reach_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/watershed/grid"
	"github.com/katalvlaran/watershed/reach"
)

// BenchmarkTraverse measures a single border-seeded traversal on a randomly
// generated 1000×1000 grid with elevations in [0,100).
// Complexity: O(rows×cols)
func BenchmarkTraverse(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	values := make([][]float64, n)
	for r := 0; r < n; r++ {
		row := make([]float64, n)
		for c := 0; c < n; c++ {
			row[c] = float64(rng.Intn(100))
		}
		values[r] = row
	}
	g, err := grid.FromFloat64s(values)
	if err != nil {
		b.Fatalf("setup FromFloat64s failed: %v", err)
	}
	group := reach.DefaultGroupA()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = reach.Traverse(g, group); err != nil {
			b.Fatalf("Traverse failed: %v", err)
		}
	}
}

// BenchmarkTraverse_Flat measures the worst case for queue growth: a uniform
// grid where every cell is reachable from one edge.
func BenchmarkTraverse_Flat(b *testing.B) {
	const n = 1000
	values := make([][]float64, n)
	for r := 0; r < n; r++ {
		values[r] = make([]float64, n)
	}
	g, err := grid.FromFloat64s(values)
	if err != nil {
		b.Fatalf("setup FromFloat64s failed: %v", err)
	}
	group := reach.Group{Name: "top", Edges: []reach.Edge{reach.Top}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = reach.Traverse(g, group); err != nil {
			b.Fatalf("Traverse failed: %v", err)
		}
	}
}
