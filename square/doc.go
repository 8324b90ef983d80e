// Package square builds odd-sided magic squares and verifies the magic
// property of arbitrary grids.
//
// What:
//
//   - New(side, opts...) places base, base+1, ..., base+side²-1 with the siamese
//     rule: start mid top row, step up-right with wraparound, drop one row when
//     the up-right cell is taken.
//   - The returned *Square is complete and immutable; accessors return copies.
//   - Verify / LineSums / IsMagic check any [][]int grid, including ones not built here.
//
// Why:
//
//   - Deterministic fixtures: the same side and WithBase always yield the same grid.
//   - Verifiable: every row, column and both diagonals sum to
//     MagicConstant = side·(2·base + side² − 1)/2.
//
// Complexity:
//
//   - New:    O(N²) time, O(N²) memory.
//   - Verify: O(N²) time, O(N²) memory.
//
// Options:
//
//   - WithBase: explicit base number (≥ 1). Without it a base in [1,100] is drawn.
//   - WithSeed / WithRand: reproducible default draw.
//   - WithLogger: debug-level construction logs via log/slog.
//
// Errors:
//
//   - ErrInvalidSide: side not a positive odd integer ≤ MaxSide.
//   - ErrInvalidBase: explicit base < 1, or the magic constant would overflow int.
//   - ErrOutOfRange: accessor index outside the grid.
//   - ErrEmptyGrid, ErrNotSquare, ErrNonPositive, ErrDuplicate,
//     ErrSumOverflow, ErrRowSum, ErrColumnSum, ErrDiagonalSum: Verify failures.
//
// Only odd sides are supported; even-sided constructions are out of scope.
package square
