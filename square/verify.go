// SPDX-License-Identifier: MIT
// Package: magicsquare/square
//
// verify.go — the magic-property checker for arbitrary grids.
//
// Check order (each stage fails fast and is covered by tests):
//   shape (empty → ragged/non-square) → sum overflow → cell values (non-positive → duplicate)
//   → row sums → column sums → diagonal sums.
//
// The target sum is the first row's sum, so grids that do not hold
// consecutive values are still judged on the magic property alone.

package square

import "fmt"

// Verify returns nil iff grid is a non-empty N×N grid of distinct positive
// values whose rows, columns and both main diagonals share one sum.
// Errors wrap one of ErrEmptyGrid, ErrNotSquare, ErrNonPositive, ErrDuplicate,
// ErrSumOverflow, ErrRowSum, ErrColumnSum or ErrDiagonalSum with the
// offending location.
// Complexity: O(N²) time, O(N²) memory for the duplicate set.
func Verify(grid [][]int) error {
	sums, err := LineSums(grid)
	if err != nil {
		return err
	}

	seen := make(map[int]Position, len(grid)*len(grid))
	for i, row := range grid {
		for j, v := range row {
			if v <= 0 {
				return fmt.Errorf("cell (%d,%d)=%d: %w", i, j, v, ErrNonPositive)
			}
			if p, dup := seen[v]; dup {
				return fmt.Errorf("value %d at (%d,%d) and (%d,%d): %w", v, p.Row, p.Column, i, j, ErrDuplicate)
			}
			seen[v] = Position{Row: i, Column: j}
		}
	}

	want := sums.Rows[0]
	for i, got := range sums.Rows {
		if got != want {
			return fmt.Errorf("row %d sums to %d, want %d: %w", i, got, want, ErrRowSum)
		}
	}
	for j, got := range sums.Columns {
		if got != want {
			return fmt.Errorf("column %d sums to %d, want %d: %w", j, got, want, ErrColumnSum)
		}
	}
	if sums.Diagonal != want {
		return fmt.Errorf("diagonal sums to %d, want %d: %w", sums.Diagonal, want, ErrDiagonalSum)
	}
	if sums.AntiDiagonal != want {
		return fmt.Errorf("anti-diagonal sums to %d, want %d: %w", sums.AntiDiagonal, want, ErrDiagonalSum)
	}

	return nil
}

// IsMagic reports whether Verify(grid) succeeds.
func IsMagic(grid [][]int) bool {
	return Verify(grid) == nil
}

// LineSums computes every row, column and main-diagonal sum of a square grid.
// It fails with ErrEmptyGrid or ErrNotSquare for a bad shape, and with
// ErrSumOverflow when any sum leaves the int range.
func LineSums(grid [][]int) (Sums, error) {
	if err := validateShape(grid); err != nil {
		return Sums{}, err
	}
	n := len(grid)
	out := Sums{
		Rows:    make([]int, n),
		Columns: make([]int, n),
	}
	var ok bool
	for i, row := range grid {
		for j, v := range row {
			if out.Rows[i], ok = addChecked(out.Rows[i], v); !ok {
				return Sums{}, fmt.Errorf("row %d: %w", i, ErrSumOverflow)
			}
			if out.Columns[j], ok = addChecked(out.Columns[j], v); !ok {
				return Sums{}, fmt.Errorf("column %d: %w", j, ErrSumOverflow)
			}
		}
		if out.Diagonal, ok = addChecked(out.Diagonal, row[i]); !ok {
			return Sums{}, fmt.Errorf("diagonal: %w", ErrSumOverflow)
		}
		if out.AntiDiagonal, ok = addChecked(out.AntiDiagonal, row[n-1-i]); !ok {
			return Sums{}, fmt.Errorf("anti-diagonal: %w", ErrSumOverflow)
		}
	}

	return out, nil
}

// addChecked returns a+b and false when the addition wraps.
func addChecked(a, b int) (int, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return s, false
	}

	return s, true
}

// validateShape requires at least one row, and every row as long as the grid is tall.
func validateShape(grid [][]int) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ErrEmptyGrid
	}
	n := len(grid)
	for i, row := range grid {
		if len(row) != n {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), n, ErrNotSquare)
		}
	}

	return nil
}
