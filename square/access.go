// SPDX-License-Identifier: MIT

// Package square - read-only accessors.
//
// Purpose:
//   - Expose the finished grid without ever handing out internal slices.
//   - Public indexers return ErrOutOfRange instead of panicking.
//
// Complexity quicksheet:
//   - Side/Base/MagicConstant/At: O(1); Row/Column/Diagonal: O(N); Rows/Slice: O(N²).

package square

import "fmt"

// accessErrorf attaches the method name and offending indices to a sentinel.
func accessErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, i, j, err)
}

// Side returns the side length N.
func (s *Square) Side() int { return s.side }

// Base returns the smallest value in the square.
func (s *Square) Base() int { return s.base }

// MagicConstant returns the shared line sum M = N·(2·base + N² − 1)/2.
// N·(2·base + N² − 1) is always even, so the division is exact.
func (s *Square) MagicConstant() int {
	return MagicConstant(s.side, s.base)
}

// MagicConstant returns the line sum of a side×side square whose values are
// base, base+1, ..., base+side²-1. The result is exact for every (side, base)
// pair New accepts; larger inputs overflow.
func MagicConstant(side, base int) int {
	return side * (2*base + side*side - 1) / 2
}

// At returns the value at (row, col).
func (s *Square) At(row, col int) (int, error) {
	if !s.inBounds(row) || !s.inBounds(col) {
		return 0, accessErrorf("At", row, col, ErrOutOfRange)
	}

	return s.cells[row][col], nil
}

// Row returns a copy of row i.
func (s *Square) Row(i int) ([]int, error) {
	if !s.inBounds(i) {
		return nil, accessErrorf("Row", i, 0, ErrOutOfRange)
	}

	return append([]int(nil), s.cells[i]...), nil
}

// Column returns a copy of column j, top to bottom.
func (s *Square) Column(j int) ([]int, error) {
	if !s.inBounds(j) {
		return nil, accessErrorf("Column", 0, j, ErrOutOfRange)
	}
	col := make([]int, s.side)
	for i := range col {
		col[i] = s.cells[i][j]
	}

	return col, nil
}

// Diagonal returns the main diagonal, top-left to bottom-right.
func (s *Square) Diagonal() []int {
	d := make([]int, s.side)
	for i := range d {
		d[i] = s.cells[i][i]
	}

	return d
}

// AntiDiagonal returns the other main diagonal, top-right to bottom-left.
func (s *Square) AntiDiagonal() []int {
	d := make([]int, s.side)
	for i := range d {
		d[i] = s.cells[i][s.side-1-i]
	}

	return d
}

// Rows returns a deep copy of the whole grid in row-major order.
func (s *Square) Rows() [][]int {
	out, _ := s.Slice(0, s.side)

	return out
}

// Slice returns a deep copy of rows [from, to), mirroring slice syntax on
// the grid. Requires 0 ≤ from ≤ to ≤ Side().
func (s *Square) Slice(from, to int) ([][]int, error) {
	if from < 0 || to > s.side || from > to {
		return nil, accessErrorf("Slice", from, to, ErrOutOfRange)
	}
	out := make([][]int, 0, to-from)
	for _, row := range s.cells[from:to] {
		out = append(out, append([]int(nil), row...))
	}

	return out, nil
}

// Equal reports whether both squares hold bit-identical grids.
// A nil square equals only another nil square.
func (s *Square) Equal(other *Square) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.side != other.side || s.base != other.base {
		return false
	}
	for i := range s.cells {
		for j := range s.cells[i] {
			if s.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}

	return true
}

// Verify checks the square's own grid; it is nil for every square built by New.
func (s *Square) Verify() error {
	return Verify(s.cells)
}

func (s *Square) inBounds(i int) bool {
	return i >= 0 && i < s.side
}
