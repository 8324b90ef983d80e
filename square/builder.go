// SPDX-License-Identifier: MIT

package square

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// New builds an odd-sided magic square with the siamese placement rule.
//
// Algorithm:
//  1. Validate side (positive, odd, ≤ MaxSide) before allocating anything.
//  2. Resolve the base number: WithBase if given, else a draw in
//     [DefaultBaseMin, DefaultBaseMax].
//  3. Start at the middle of the top row and place base, base+1, ... base+N²-1.
//     After each write step one row up and one column right, wrapping on both
//     axes; if that cell is taken, step one row down (wrapping) instead.
//
// The walk runs exactly N² steps and visits every cell once for odd N, so the
// returned square is always complete.
//
// Errors:
//   - ErrInvalidSide: side < 1, even, or > MaxSide.
//   - ErrInvalidBase: explicit base < 1, or base+N²-1 overflows int.
//
// Complexity: O(N²) time and memory.
func New(side int, opts ...Option) (*Square, error) {
	if err := validateSide(side); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	base := cfg.base
	if cfg.hasBase {
		if err := validateBase(base, side); err != nil {
			return nil, err
		}
	} else {
		base = cfg.drawBase()
		cfg.logger.Debug("drew default base number", "base", base)
	}

	s := &Square{
		side:  side,
		base:  base,
		cells: make([][]int, side),
	}
	for r := range s.cells {
		s.cells[r] = make([]int, side)
	}
	s.populate()
	cfg.logger.Debug("built magic square", "side", side, "base", base, "magic_constant", s.MagicConstant())

	return s, nil
}

// MustNew is like New but panics on error. Intended for fixtures and examples.
func MustNew(side int, opts ...Option) *Square {
	s, err := New(side, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// validateSide reports ErrInvalidSide unless 1 ≤ side ≤ MaxSide and side is odd.
func validateSide(side int) error {
	if side < 1 || side%2 == 0 || side > MaxSide {
		return fmt.Errorf("side %d: %w", side, ErrInvalidSide)
	}

	return nil
}

// validateBase reports ErrInvalidBase for base < 1 or when side·(2·base+side²-1)
// would not fit in an int. That bound keeps the magic constant, every line sum
// and the largest placed value base+side²-1 representable.
func validateBase(base, side int) error {
	if base < 1 {
		return fmt.Errorf("base %d: %w", base, ErrInvalidBase)
	}
	if base > maxBase(side) {
		return fmt.Errorf("base %d overflows with side %d: %w", base, side, ErrInvalidBase)
	}

	return nil
}

// maxBase returns the largest base whose magic constant fits in an int.
// side ≤ MaxSide keeps math.MaxInt/side well above side².
func maxBase(side int) int {
	return (math.MaxInt/side - (side*side - 1)) / 2
}

// populate fills every cell once, in walk order.
func (s *Square) populate() {
	cur := Position{Row: 0, Column: s.side / 2}
	number := s.base
	for i := 0; i < s.side*s.side; i++ {
		s.cells[cur.Row][cur.Column] = number
		number++
		cur = s.next(cur)
	}
}

// next returns the cursor position that follows cur.
// The up-right cell wins when it is still unset; otherwise the cursor drops
// one row below cur in the same column. Both moves wrap modulo side.
func (s *Square) next(cur Position) Position {
	upRight := Position{
		Row:    wrap(cur.Row-1, s.side),
		Column: wrap(cur.Column+1, s.side),
	}
	if s.cells[upRight.Row][upRight.Column] == unset {
		return upRight
	}

	return Position{Row: wrap(cur.Row+1, s.side), Column: cur.Column}
}

// wrap maps i into [0, n) for any i, including negatives.
func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// ParseBase coerces textual input into a base number.
// An empty (or all-space) string means "not supplied" and yields ok=false with
// no error, so the caller can fall back to the default draw. Anything else
// must parse as an integer ≥ 1, or ErrInvalidBase is returned.
func ParseBase(s string) (base int, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("base %q is not an integer: %w", s, ErrInvalidBase)
	}
	if n < 1 {
		return 0, false, fmt.Errorf("base %d: %w", n, ErrInvalidBase)
	}

	return n, true, nil
}
