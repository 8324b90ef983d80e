package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/magicsquare/square"
)

// Render styles for the build command.
const (
	StyleClassic = "classic" // square.String layout
	StyleLight   = "light"
	StyleDouble  = "double"
	StyleASCII   = "ascii"
)

// ValidStyles defines the allowed --style values.
var ValidStyles = []string{StyleClassic, StyleLight, StyleDouble, StyleASCII}

func validStyle(s string) bool {
	return slices.Contains(ValidStyles, s)
}

var tableStyles = map[string]table.Style{
	StyleLight:  table.StyleLight,
	StyleDouble: table.StyleDouble,
	StyleASCII:  table.StyleDefault,
}

// renderSquare writes sq in the requested style. With sums, the table styles
// add a footer of column sums and a caption with the magic constant; the
// classic style appends the magic constant line.
func renderSquare(w io.Writer, sq *square.Square, style string, sums bool) error {
	if style == StyleClassic {
		if _, err := sq.WriteTo(w); err != nil {
			return err
		}
		if sums {
			_, err := fmt.Fprintf(w, "magic constant: %d\n", sq.MagicConstant())
			return err
		}
		return nil
	}

	ts, ok := tableStyles[style]
	if !ok {
		return fmt.Errorf("invalid style %q: must be one of %v", style, ValidStyles)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(ts)

	for _, r := range sq.Rows() {
		row := make(table.Row, len(r))
		for j, v := range r {
			row[j] = v
		}
		t.AppendRow(row)
	}

	if sums {
		footer := make(table.Row, sq.Side())
		for j := range footer {
			col, err := sq.Column(j)
			if err != nil {
				return err
			}
			footer[j] = sum(col)
		}
		t.AppendFooter(footer)
		t.SetCaption("magic constant: %d", sq.MagicConstant())
	}

	t.Render()
	return nil
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// squarePayload is the JSON form of a built square.
type squarePayload struct {
	Side          int     `json:"side"`
	Base          int     `json:"base"`
	MagicConstant int     `json:"magic_constant"`
	Rows          [][]int `json:"rows"`
}

func newSquarePayload(sq *square.Square) squarePayload {
	return squarePayload{
		Side:          sq.Side(),
		Base:          sq.Base(),
		MagicConstant: sq.MagicConstant(),
		Rows:          sq.Rows(),
	}
}
