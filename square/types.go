// SPDX-License-Identifier: MIT

// Package square defines core types, limits, and sentinel errors
// for the square subpackage of github.com/katalvlaran/magicsquare.
package square

import (
	"errors"
)

// Sentinel errors for construction and access.
var (
	// ErrInvalidSide indicates a side that is not a strictly positive odd integer
	// (or exceeds MaxSide).
	ErrInvalidSide = errors.New("square: side must be a positive odd integer")
	// ErrInvalidBase indicates an explicit base number that is not a positive integer,
	// or one that would overflow the largest placed value.
	ErrInvalidBase = errors.New("square: base number must be a positive integer")
	// ErrOutOfRange indicates a row, column or slice bound outside the grid.
	ErrOutOfRange = errors.New("square: index out of range")
)

// Sentinel errors for Verify and LineSums.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("square: grid must have at least one row and one column")
	// ErrNotSquare indicates a ragged grid or one whose row count differs from its width.
	ErrNotSquare = errors.New("square: grid is not square")
	// ErrNonPositive indicates a cell that is zero (unset) or negative.
	ErrNonPositive = errors.New("square: cell value must be positive")
	// ErrDuplicate indicates a value that occurs more than once.
	ErrDuplicate = errors.New("square: duplicate cell value")
	// ErrRowSum indicates a row whose sum differs from the magic constant.
	ErrRowSum = errors.New("square: row sum mismatch")
	// ErrColumnSum indicates a column whose sum differs from the magic constant.
	ErrColumnSum = errors.New("square: column sum mismatch")
	// ErrDiagonalSum indicates a main diagonal whose sum differs from the magic constant.
	ErrDiagonalSum = errors.New("square: diagonal sum mismatch")

	// ErrSumOverflow indicates a line sum does not fit in an int.
	ErrSumOverflow = errors.New("square: line sum overflows int")
)

// Limits and defaults.
const (
	// MaxSide bounds the side length so that side² cells stay addressable
	// and allocation stays sane on 32-bit platforms.
	MaxSide = 1<<15 - 1

	// DefaultBaseMin and DefaultBaseMax bound the base number drawn when
	// none is supplied (inclusive on both ends).
	DefaultBaseMin = 1
	DefaultBaseMax = 100

	// unset marks a cell that has not been written yet. Valid entries are > 0.
	unset = 0
)

// Position is a transient (row, column) cursor on the grid.
type Position struct {
	Row, Column int
}

// Square is an odd-sided magic square. It is immutable once built:
// every accessor returns copies.
// cells[row][col] holds the placed value; side and base are fixed by New.
type Square struct {
	side  int
	base  int
	cells [][]int
}

// Sums collects every line sum of a square grid.
type Sums struct {
	Rows         []int
	Columns      []int
	Diagonal     int // top-left to bottom-right
	AntiDiagonal int // top-right to bottom-left
}
