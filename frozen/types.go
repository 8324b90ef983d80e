// Package frozen defines the tagged variant, kinds, and sentinel errors
// for the frozen subpackage of github.com/katalvlaran/magicsquare.
package frozen

import "errors"

// Sentinel errors for frozen operations.
var (
	// ErrNoField indicates a path element that names no field of a mapping.
	ErrNoField = errors.New("frozen: no such field")
	// ErrIndex indicates a sequence index that is malformed or out of range.
	ErrIndex = errors.New("frozen: sequence index out of range")
	// ErrNotContainer indicates a path step into a scalar.
	ErrNotContainer = errors.New("frozen: value is not a mapping or sequence")
	// ErrParse indicates input that is neither valid YAML nor valid JSON.
	ErrParse = errors.New("frozen: cannot parse document")
)

// Kind selects which arm of the Value variant is populated.
type Kind int

const (
	// KindScalar holds any non-container value, including nil.
	KindScalar Kind = iota
	// KindMapping holds named fields with sanitized keys.
	KindMapping
	// KindSequence holds ordered, individually wrapped elements.
	KindSequence
)

// String returns "scalar", "mapping" or "sequence".
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// Value is an immutable, recursively wrapped view over decoded data.
// Exactly one arm is meaningful, selected by kind:
//   - KindMapping: fields keyed by sanitized name, keys in sorted order.
//   - KindSequence: items in input order.
//   - KindScalar: scalar as given.
//
// The zero Value is a nil scalar.
type Value struct {
	kind   Kind
	fields map[string]Value
	keys   []string
	items  []Value
	scalar any
}
