package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magicsquare/frozen"
	"github.com/katalvlaran/magicsquare/square"
)

// gridKeys are the mapping fields that may hold the grid, tried in order.
var gridKeys = []string{"square", "rows", "grid"}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file|->",
		Short: "Check that a grid read from YAML or JSON is a magic square",
		Long: `Check that a grid is a magic square: N×N distinct positive integers whose
rows, columns and both main diagonals share one sum.

The document is either a list of rows or a mapping with the rows under
"square", "rows" or "grid". Use "-" to read standard input.

Exit status is 0 for a magic square, 1 when the grid is not magic and 2 when
the input cannot be read.`,
		Example: `  magicsquare build --format json | magicsquare verify -
  magicsquare verify fixtures/lo_shu.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, rootOpts, args[0])
		},
	}
}

func runVerify(cmd *cobra.Command, opts *RootOptions, path string) error {
	doc, err := readDocument(cmd.InOrStdin(), path)
	if err != nil {
		return WrapExitError(ExitCommandError, "read input", err)
	}
	grid, err := gridFromValue(doc)
	if err != nil {
		return WrapExitError(ExitCommandError, "decode grid", err)
	}
	opts.Logger.Debug("verifying grid", "source", path, "rows", len(grid))

	out := cmd.OutOrStdout()
	verr := square.Verify(grid)
	if opts.Format == "json" {
		resp := Response{Status: "ok"}
		if verr != nil {
			resp = Response{Status: "error", Error: verr.Error()}
		} else {
			resp.Data = map[string]int{"side": len(grid), "magic_constant": sum(grid[0])}
		}
		if err := writeJSON(out, resp); err != nil {
			return err
		}
	} else if verr == nil {
		fmt.Fprintf(out, "ok: %d×%d magic square, magic constant %d\n", len(grid), len(grid), sum(grid[0]))
	}

	if verr != nil {
		return WrapExitError(ExitFailure, "not a magic square", verr)
	}
	return nil
}

// readDocument parses path, or stdin when path is "-".
func readDocument(stdin io.Reader, path string) (frozen.Value, error) {
	if path != "-" {
		return frozen.Load(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return frozen.Value{}, err
	}
	return frozen.Parse(data)
}

// gridFromValue extracts an integer grid from a list of rows, from a mapping
// holding one under a grid key, or from a build --format json envelope.
func gridFromValue(v frozen.Value) ([][]int, error) {
	if v.Kind() == frozen.KindMapping {
		if data, ok := v.Field("data"); ok {
			v = data
		}
		found := false
		for _, k := range gridKeys {
			if rows, ok := v.Field(k); ok {
				v, found = rows, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no grid under any of %v", gridKeys)
		}
	}
	if v.Kind() != frozen.KindSequence {
		return nil, fmt.Errorf("grid must be a list of rows, got %s", v.Kind())
	}

	grid := make([][]int, 0, v.Len())
	for i, rv := range v.Items() {
		if rv.Kind() != frozen.KindSequence {
			return nil, fmt.Errorf("row %d must be a list, got %s", i, rv.Kind())
		}
		row := make([]int, 0, rv.Len())
		for j, cv := range rv.Items() {
			n, ok := cv.Int()
			if !ok {
				return nil, fmt.Errorf("cell (%d,%d) is not an integer: %v", i, j, cv)
			}
			row = append(row, n)
		}
		grid = append(grid, row)
	}
	return grid, nil
}
