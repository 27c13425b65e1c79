// Package cmd - batch command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/watershed/batch"
	"github.com/katalvlaran/watershed/internal/logging"
)

var batchLimit int

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:   "batch <items.json>",
	Short: "Analyze an ordered list of elevation grids",
	Long: `Read a JSON array of analysis requests and run them as one batch.

Each element uses the same shape as the analyze command's object form.
Items run in order; a malformed item is reported in place without
aborting the rest.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchLimit, "limit", batch.DefaultLimit, "maximum accepted item count")
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var reqs []analysisRequest
	if err = decodeStrictNumbers(data, &reqs); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	items := make([]batch.Item, 0, len(reqs))
	for i := range reqs {
		opts, optErr := requestOptions(&reqs[i])
		if optErr != nil {
			return fmt.Errorf("item %d: %w", i, optErr)
		}
		items = append(items, batch.Item{Grid: reqs[i].Grid, Opts: opts})
	}

	res, err := batch.Run(items,
		batch.WithLimit(batchLimit),
		batch.WithLogger(logging.Logger))
	if err != nil {
		return err
	}

	return printJSON(cmd, res)
}
