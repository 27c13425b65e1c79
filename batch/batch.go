// Package batch orchestrates drainage analysis over an ordered list of
// independent grids with strict per-item failure isolation.
//
// Items run sequentially, in input order; an item that fails validation or
// analysis is recorded in place and never aborts the remaining items.
package batch

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/watershed/analyze"
	"github.com/katalvlaran/watershed/grid"
)

// Run processes items in input order and returns one ItemResult per item,
// at the matching index. The whole batch is rejected up front with
// ErrBatchSize when items is empty or longer than the limit; no partial
// results are ever returned in that case.
//
// Per-item errors (validation or analysis) are caught, recorded as
// ItemResult.Error, and processing continues with the next item.
func Run(items []Item, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(items) == 0 || len(items) > o.Limit {
		return nil, fmt.Errorf("%w: got %d items, limit is 1..%d", ErrBatchSize, len(items), o.Limit)
	}

	res := &Result{
		BatchID:    uuid.NewString(),
		TotalItems: len(items),
		Results:    make([]ItemResult, 0, len(items)),
	}
	log := o.Logger.With(zap.String("batchId", res.BatchID))
	log.Debug("batch started", zap.Int("items", len(items)))

	start := time.Now()
	for i, item := range items {
		out, err := runItem(item, log, i)
		if err != nil {
			log.Warn("batch item failed", zap.Int("index", i), zap.Error(err))
			res.Results = append(res.Results, ItemResult{Index: i, Success: false, Error: err.Error()})
			res.Failed++
			continue
		}
		res.Results = append(res.Results, ItemResult{Index: i, Success: true, Result: out})
		res.Successful++
	}
	elapsed := time.Since(start)

	totalMs := float64(elapsed) / float64(time.Millisecond)
	res.Stats = Stats{
		TotalProcessingTimeMs: totalMs,
		AverageTimePerItemMs:  totalMs / float64(len(items)),
	}
	log.Debug("batch finished",
		zap.Int("successful", res.Successful),
		zap.Int("failed", res.Failed),
		zap.Float64("totalMs", totalMs))

	return res, nil
}

// runItem executes the validate→analyze pipeline for one batch index.
func runItem(item Item, log *zap.Logger, index int) (*analyze.Result, error) {
	g, err := grid.Validate(item.Grid)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", index, err)
	}
	for _, w := range g.Warnings {
		log.Warn("grid advisory", zap.Int("index", index), zap.String("warning", w))
	}
	out, err := analyze.Analyze(g, item.Opts...)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", index, err)
	}
	return out, nil
}
