// File: analyze/example_test.go
package analyze_test

import (
	"fmt"

	"github.com/katalvlaran/watershed/analyze"
	"github.com/katalvlaran/watershed/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Analyze
////////////////////////////////////////////////////////////////////////////////

// ExampleAnalyze demonstrates a dual-boundary drainage analysis on the
// reference 5×5 elevation grid.
// Scenario:
//
//   - GroupA (top+left) and GroupB (bottom+right) act as two oceans.
//   - A flow cell is one whose water can reach both oceans walking downhill.
//   - Expect the seven cells of the classic scenario, in (row,col) order.
//
// Complexity: O(rows×cols), Memory: O(rows×cols)
func ExampleAnalyze() {
	g, _ := grid.FromFloat64s([][]float64{
		{1, 2, 2, 3, 5},
		{3, 2, 3, 4, 4},
		{2, 4, 5, 3, 1},
		{6, 7, 1, 4, 5},
		{5, 1, 1, 2, 4},
	})

	res, _ := analyze.Analyze(g)
	fmt.Println("flow cells:", len(res.Cells))
	for _, c := range res.Cells {
		fmt.Printf("%s elevation=%g\n", c.Coordinate, c.Elevation)
	}
	fmt.Printf("coverage: %.4f\n", res.Stats.Coverage)

	// Output:
	// flow cells: 7
	// (0,4) elevation=5
	// (1,3) elevation=4
	// (1,4) elevation=4
	// (2,2) elevation=5
	// (3,0) elevation=6
	// (3,1) elevation=7
	// (4,0) elevation=5
	// coverage: 0.2800
}
