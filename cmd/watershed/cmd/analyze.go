// Package cmd - analyze command
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/watershed/analyze"
	"github.com/katalvlaran/watershed/grid"
	"github.com/katalvlaran/watershed/internal/logging"
	"github.com/katalvlaran/watershed/reach"
)

var (
	parallel bool
	noStats  bool
)

// analyzeCmd represents the analyze command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <grid.json>",
	Short: "Analyze a single elevation grid",
	Long: `Read an elevation grid from a JSON file and print the analysis result.

The file holds either a bare 2D array of elevations, or an object:

  {
    "grid": [[1, 2], [3, 4]],
    "groupA_edges": ["top", "left"],
    "groupB_edges": ["bottom", "right"],
    "includeStats": true
  }

Cells may be numbers or numeric strings (spreadsheet exports).`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVarP(&parallel, "parallel", "p", false, "run the two boundary traversals concurrently")
	analyzeCmd.Flags().BoolVar(&noStats, "no-stats", false, "skip statistics computation")
}

// analysisRequest is the object form of a grid file.
type analysisRequest struct {
	Grid         [][]any  `json:"grid"`
	GroupA       []string `json:"groupA_edges"`
	GroupB       []string `json:"groupB_edges"`
	IncludeStats *bool    `json:"includeStats"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	req, err := readRequest(args[0])
	if err != nil {
		return err
	}

	g, err := grid.Validate(req.Grid)
	if err != nil {
		return err
	}
	for _, w := range g.Warnings {
		logging.Logger.Warn("grid advisory", zap.String("warning", w))
	}

	opts, err := requestOptions(req)
	if err != nil {
		return err
	}
	res, err := analyze.Analyze(g, opts...)
	if err != nil {
		return err
	}

	logging.Logger.Debug("analysis complete",
		zap.Int("flowCells", len(res.Cells)),
		zap.Float64("processingTimeMs", res.Metadata.ProcessingTimeMs))

	return printJSON(cmd, res)
}

// readRequest parses a grid file: a bare 2D array, or the object form.
// Numbers are decoded as json.Number so grid.Validate coerces them exactly.
func readRequest(path string) (*analysisRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var bare [][]any
	if err = decodeStrictNumbers(data, &bare); err == nil {
		return &analysisRequest{Grid: bare}, nil
	}
	var req analysisRequest
	if err = decodeStrictNumbers(data, &req); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &req, nil
}

// decodeStrictNumbers unmarshals with json.Number preservation.
func decodeStrictNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// requestOptions maps the object-form fields to analyze options.
func requestOptions(req *analysisRequest) ([]analyze.Option, error) {
	var opts []analyze.Option

	if len(req.GroupA) > 0 || len(req.GroupB) > 0 {
		a, err := parseGroup("GroupA", req.GroupA, reach.DefaultGroupA())
		if err != nil {
			return nil, err
		}
		b, err := parseGroup("GroupB", req.GroupB, reach.DefaultGroupB())
		if err != nil {
			return nil, err
		}
		opts = append(opts, analyze.WithGroups(a, b))
	}
	if req.IncludeStats != nil && !*req.IncludeStats {
		opts = append(opts, analyze.WithoutStats())
	}
	if noStats {
		opts = append(opts, analyze.WithoutStats())
	}
	if parallel {
		opts = append(opts, analyze.WithParallelTraversal())
	}
	return opts, nil
}

// parseGroup converts edge names to a reach.Group, falling back to the
// given default when no names are supplied.
func parseGroup(name string, names []string, fallback reach.Group) (reach.Group, error) {
	if len(names) == 0 {
		return fallback, nil
	}
	edges := make([]reach.Edge, 0, len(names))
	for _, n := range names {
		e, err := reach.ParseEdge(n)
		if err != nil {
			return reach.Group{}, fmt.Errorf("%s: %w", name, err)
		}
		edges = append(edges, e)
	}
	return reach.Group{Name: name, Edges: edges}, nil
}

// printJSON writes v to the command's stdout, indented.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
