package analyze

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/watershed/grid"
	"github.com/katalvlaran/watershed/reach"
)

// complexityLabel names the asymptotic cost of one full analysis.
const complexityLabel = "O(rows×cols)"

// ComputeStatistics derives coverage, efficiency, and per-boundary
// reachability metrics from two completed traversals. It is a pure function
// of its inputs: no I/O, no clock reads.
//
// All ratios are computed with exact decimal arithmetic and rounded to
// 4 decimal places. An elapsed time that rounds to 0 ms is treated as
// instantaneous: the total cell count is reported as the throughput rate,
// never a division by zero.
func ComputeStatistics(g *grid.Grid, a, b *reach.Set, flowCells int, elapsed time.Duration) Statistics {
	total := g.Cells()

	return Statistics{
		TotalCells: total,
		FlowCells:  flowCells,
		Coverage:   ratio4(flowCells, total),
		Efficiency: Efficiency{
			CellsPerMs:      cellsPerMs(total, elapsed),
			ComplexityLabel: complexityLabel,
		},
		OceanReachability: OceanReachability{
			ReachASize:       a.Len(),
			ReachBSize:       b.Len(),
			IntersectionSize: flowCells,
			AOnlyPercent:     ratio4(a.Len()-flowCells, total),
			BOnlyPercent:     ratio4(b.Len()-flowCells, total),
			BothPercent:      ratio4(flowCells, total),
		},
	}
}

// ratio4 returns part/whole rounded to 4 decimal places.
func ratio4(part, whole int) float64 {
	return decimal.NewFromInt(int64(part)).
		Div(decimal.NewFromInt(int64(whole))).
		Round(4).
		InexactFloat64()
}

// cellsPerMs returns round(total / elapsedMs), with instantaneous runs
// reporting the full cell count as the rate.
func cellsPerMs(total int, elapsed time.Duration) float64 {
	ms := elapsed.Milliseconds()
	if ms <= 0 {
		return float64(total)
	}
	return decimal.NewFromInt(int64(total)).
		Div(decimal.NewFromInt(ms)).
		Round(0).
		InexactFloat64()
}
