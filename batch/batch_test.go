package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/watershed/analyze"
	"github.com/katalvlaran/watershed/batch"
	"github.com/katalvlaran/watershed/grid"
)

// validItem returns a well-formed 2×2 batch item.
func validItem() batch.Item {
	return batch.Item{Grid: [][]any{{1, 2}, {3, 4}}}
}

// TestRun_SizeBoundary verifies up-front rejection of empty and oversized
// batches, and acceptance at exactly the limit.
func TestRun_SizeBoundary(t *testing.T) {
	_, err := batch.Run(nil)
	assert.ErrorIs(t, err, batch.ErrBatchSize, "empty batch must be rejected")

	over := make([]batch.Item, batch.DefaultLimit+1)
	for i := range over {
		over[i] = validItem()
	}
	res, err := batch.Run(over)
	assert.ErrorIs(t, err, batch.ErrBatchSize, "11 items must be rejected")
	assert.Nil(t, res, "no partial results on up-front rejection")

	full := over[:batch.DefaultLimit]
	res, err = batch.Run(full)
	require.NoError(t, err, "exactly 10 items must be accepted")
	assert.Equal(t, batch.DefaultLimit, res.TotalItems)
	assert.Equal(t, batch.DefaultLimit, res.Successful)
}

// TestRun_WithLimit verifies the tunable item cap.
func TestRun_WithLimit(t *testing.T) {
	items := []batch.Item{validItem(), validItem(), validItem()}
	_, err := batch.Run(items, batch.WithLimit(2))
	assert.ErrorIs(t, err, batch.ErrBatchSize)

	res, err := batch.Run(items[:2], batch.WithLimit(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Successful)
}

// TestRun_OrderAndIsolation verifies the core batch contract: a malformed
// item is recorded in place while its neighbors still succeed, and indices
// mirror input order.
func TestRun_OrderAndIsolation(t *testing.T) {
	items := []batch.Item{
		{Grid: [][]any{{1, 2}, {3, 4}}},
		{Grid: [][]any{{1, "not-a-number"}}},
		{Grid: [][]any{{5, 6}, {7, 8}}},
	}
	res, err := batch.Run(items, batch.WithLogger(zap.NewNop()))
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalItems)
	assert.Equal(t, 2, res.Successful)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Results, 3)

	for i, r := range res.Results {
		assert.Equal(t, i, r.Index, "result order must mirror input order")
	}
	assert.True(t, res.Results[0].Success)
	assert.False(t, res.Results[1].Success)
	assert.True(t, res.Results[2].Success)

	assert.Nil(t, res.Results[1].Result)
	assert.Contains(t, res.Results[1].Error, grid.ErrNonNumericCell.Error())
	assert.Contains(t, res.Results[1].Error, "item 1")
	assert.NotNil(t, res.Results[0].Result)
	assert.NotNil(t, res.Results[2].Result)
}

// TestRun_PerItemOptions verifies that item options flow through to the
// underlying analysis.
func TestRun_PerItemOptions(t *testing.T) {
	items := []batch.Item{
		{Grid: [][]any{{1, 2}, {3, 4}}, Opts: []analyze.Option{analyze.WithoutStats()}},
		{Grid: [][]any{{1, 2}, {3, 4}}},
	}
	res, err := batch.Run(items)
	require.NoError(t, err)
	assert.Nil(t, res.Results[0].Result.Stats, "WithoutStats item must carry no stats")
	assert.NotNil(t, res.Results[1].Result.Stats, "default item must carry stats")
}

// TestRun_Aggregates verifies identifier and timing aggregates.
func TestRun_Aggregates(t *testing.T) {
	res, err := batch.Run([]batch.Item{validItem(), validItem()})
	require.NoError(t, err)

	assert.NotEmpty(t, res.BatchID)
	assert.Equal(t, res.TotalItems, res.Successful+res.Failed)
	assert.GreaterOrEqual(t, res.Stats.TotalProcessingTimeMs, 0.0)
	assert.InDelta(t, res.Stats.TotalProcessingTimeMs/2, res.Stats.AverageTimePerItemMs, 1e-9)

	other, err := batch.Run([]batch.Item{validItem()})
	require.NoError(t, err)
	assert.NotEqual(t, res.BatchID, other.BatchID, "each batch gets its own identifier")
}
