// Package batch defines batch items, results, options, and sentinel errors
// for the batch subpackage of github.com/katalvlaran/watershed.
package batch

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/watershed/analyze"
)

// DefaultLimit is the default maximum number of items accepted per batch.
const DefaultLimit = 10

// Sentinel errors for batch orchestration.
var (
	// ErrBatchSize is returned when a batch is empty or exceeds its limit.
	ErrBatchSize = errors.New("batch: item count out of range")
)

// Item is one independent analysis request: a raw value matrix plus
// per-item analysis options.
type Item struct {
	// Grid is the raw matrix handed to grid.Validate; cells may be numbers
	// or numeric strings.
	Grid [][]any
	// Opts customizes the item's analysis (groups, stats, parallelism).
	Opts []analyze.Option
}

// ItemResult records the outcome for one batch index: either a successful
// analysis result or the error message that failed it.
type ItemResult struct {
	Index   int             `json:"index"`
	Success bool            `json:"success"`
	Result  *analyze.Result `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Stats aggregates timing across the whole batch.
type Stats struct {
	TotalProcessingTimeMs float64 `json:"totalProcessingTimeMs"`
	AverageTimePerItemMs  float64 `json:"averageTimePerItemMs"`
}

// Result is the outcome of one batch run. Results preserve input order;
// Successful+Failed always equals TotalItems.
type Result struct {
	BatchID    string       `json:"batchId"`
	TotalItems int          `json:"totalItems"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
	Results    []ItemResult `json:"results"`
	Stats      Stats        `json:"batchStats"`
}

// Option configures batch behavior via functional arguments.
type Option func(*Options)

// Options holds batch-level parameters.
type Options struct {
	// Limit caps the accepted item count (DefaultLimit unless overridden).
	Limit int
	// Logger receives per-item failure and advisory log entries.
	// Defaults to a no-op logger; the analysis engine itself never logs.
	Logger *zap.Logger
}

// DefaultOptions returns Options with the default limit and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Limit:  DefaultLimit,
		Logger: zap.NewNop(),
	}
}

// WithLimit overrides the maximum accepted item count; non-positive values
// are ignored.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Limit = n
		}
	}
}

// WithLogger attaches a logger for per-item failures and grid advisories.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
