// SPDX-License-Identifier: MIT

package square

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtHead = " ___"
	_fmtTail = " ---"
	_fmtCell = "|%3d"
	_fmtEdge = "|\n"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square)(nil)

// String renders the square as a bordered, fixed-width text block:
//
//	 ___ ___ ___
//	|  8|  1|  6|
//	|  3|  5|  7|
//	|  4|  9|  2|
//	 --- --- ---
//
// Cells are right-aligned in three columns; wider values push the row out
// rather than being truncated.
func (s *Square) String() string {
	var sb strings.Builder
	_, _ = s.WriteTo(&sb)

	return sb.String()
}

// WriteTo writes the String rendering to w.
func (s *Square) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(_fmtHead, s.side))
	sb.WriteByte('\n')
	for _, row := range s.cells {
		for _, v := range row {
			fmt.Fprintf(&sb, _fmtCell, v)
		}
		sb.WriteString(_fmtEdge)
	}
	sb.WriteString(strings.Repeat(_fmtTail, s.side))
	sb.WriteByte('\n')

	n, err := io.WriteString(w, sb.String())

	return int64(n), err
}
