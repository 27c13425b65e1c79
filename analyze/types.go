// Package analyze defines options, result types, and sentinel errors
// for the analyze subpackage of github.com/katalvlaran/watershed.
package analyze

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/watershed/reach"
)

// Algorithm identifies the traversal strategy recorded in result metadata.
const Algorithm = "border-seeded-bfs"

// Sentinel errors for analysis execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("analyze: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("analyze: invalid option supplied")
)

// Option configures analysis behavior via functional arguments.
// If an Option is invalid (e.g. a group with no edges), it is recorded
// internally and surfaced as ErrOptionViolation when Analyze is invoked.
type Option func(*Options)

// Options holds parameters that customize a single analysis run.
type Options struct {
	// GroupA and GroupB are the two drainage targets. Overlapping edges
	// across the groups are accepted and analyzed as supplied.
	GroupA, GroupB reach.Group

	// IncludeStats controls whether Result.Stats is populated.
	IncludeStats bool

	// Parallel runs the two boundary traversals concurrently. Outputs are
	// identical either way; this is purely a wall-clock optimization.
	Parallel bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the conventional configuration:
// GroupA = top+left, GroupB = bottom+right, statistics included,
// sequential traversals.
func DefaultOptions() Options {
	return Options{
		GroupA:       reach.DefaultGroupA(),
		GroupB:       reach.DefaultGroupB(),
		IncludeStats: true,
	}
}

// WithGroups sets the two boundary groups. Either group being empty is an
// invalid option and surfaces ErrOptionViolation at Analyze time.
func WithGroups(a, b reach.Group) Option {
	return func(o *Options) {
		if len(a.Edges) == 0 || len(b.Edges) == 0 {
			o.err = fmt.Errorf("%w: boundary groups must not be empty", ErrOptionViolation)
			return
		}
		o.GroupA, o.GroupB = a, b
	}
}

// WithoutStats skips statistics computation; Result.Stats will be nil.
func WithoutStats() Option {
	return func(o *Options) { o.IncludeStats = false }
}

// WithParallelTraversal runs the two traversals on separate goroutines.
func WithParallelTraversal() Option {
	return func(o *Options) { o.Parallel = true }
}

// Cell is a flow cell: a coordinate reachable from both boundary groups,
// carrying its elevation and a display-ready "(row,col)" string.
type Cell struct {
	Row        int     `json:"row"`
	Col        int     `json:"col"`
	Elevation  float64 `json:"elevation"`
	Coordinate string  `json:"coordinate"`
}

// Efficiency describes throughput of the completed analysis.
type Efficiency struct {
	// CellsPerMs is round(totalCells / elapsedMs). When the elapsed time
	// rounds to zero milliseconds the run is treated as instantaneous and
	// the total cell count is reported as the rate.
	CellsPerMs      float64 `json:"cellsPerMs"`
	ComplexityLabel string  `json:"complexityLabel"`
}

// OceanReachability breaks down per-boundary reachability. All percentages
// are fractions of the total cell count, rounded to 4 decimal places.
type OceanReachability struct {
	ReachASize       int     `json:"reachA_size"`
	ReachBSize       int     `json:"reachB_size"`
	IntersectionSize int     `json:"intersectionSize"`
	AOnlyPercent     float64 `json:"aOnlyPercent"`
	BOnlyPercent     float64 `json:"bOnlyPercent"`
	BothPercent      float64 `json:"bothPercent"`
}

// Statistics aggregates coverage and efficiency metrics for one analysis.
type Statistics struct {
	TotalCells        int               `json:"totalCells"`
	FlowCells         int               `json:"flowCells"`
	Coverage          float64           `json:"coverage"`
	Efficiency        Efficiency        `json:"efficiency"`
	OceanReachability OceanReachability `json:"oceanReachability"`
}

// Dimensions records the analyzed grid's shape.
type Dimensions struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Config is the effective configuration echoed back in metadata, with
// edges flattened to their lowercase names for serialization.
type Config struct {
	GroupA       []string `json:"groupA_edges"`
	GroupB       []string `json:"groupB_edges"`
	IncludeStats bool     `json:"includeStats"`
	Parallel     bool     `json:"parallel"`
}

// Metadata describes how and when a result was produced.
type Metadata struct {
	GridDimensions   Dimensions `json:"gridDimensions"`
	Algorithm        string     `json:"algorithm"`
	Timestamp        time.Time  `json:"timestamp"`
	ProcessingTimeMs float64    `json:"processingTimeMs"`
	ReachASize       int        `json:"reachA_size"`
	ReachBSize       int        `json:"reachB_size"`
	IntersectionSize int        `json:"intersectionSize"`
	EffectiveConfig  Config     `json:"effectiveConfig"`
}

// Result is the full outcome of one dual-boundary analysis.
// Cells are sorted by (row, col) ascending; Stats is nil under WithoutStats.
type Result struct {
	Cells    []Cell      `json:"cells"`
	Stats    *Statistics `json:"stats,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// edgeNames flattens a group's edges to their string names.
func edgeNames(g reach.Group) []string {
	names := make([]string, len(g.Edges))
	for i, e := range g.Edges {
		names[i] = e.String()
	}
	return names
}
