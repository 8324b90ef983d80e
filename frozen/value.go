package frozen

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Wrap builds a Value from decoded data.
//
//   - Any map whose keys format as strings becomes a mapping view; keys are
//     sanitized once here (see SanitizeKey) and values are wrapped recursively.
//   - Any slice or array (except []byte) becomes a sequence view with each
//     element wrapped independently.
//   - Everything else, including nil, strings and []byte, is a scalar.
//
// Wrap copies what it needs; later changes to v are not observed.
// Complexity: O(total elements) time and memory.
func Wrap(v any) Value {
	if v == nil {
		return Value{kind: KindScalar}
	}
	if w, ok := v.(Value); ok {
		return w
	}
	if _, ok := v.([]byte); ok {
		return Value{kind: KindScalar, scalar: v}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return wrapMap(rv)
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = Wrap(rv.Index(i).Interface())
		}
		return Value{kind: KindSequence, items: items}
	default:
		return Value{kind: KindScalar, scalar: v}
	}
}

func wrapMap(rv reflect.Value) Value {
	type entry struct {
		key, typ string
		val      any
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		entries = append(entries, entry{key: fmt.Sprint(k), typ: fmt.Sprintf("%T", k), val: iter.Value().Interface()})
	}
	// Distinct keys may format alike (1 and "1"); order them by type so the
	// suffixes they receive do not depend on map iteration order.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return entries[i].key < entries[j].key
		}
		return entries[i].typ < entries[j].typ
	})
	used := make(map[string]bool, len(entries))
	original := make([]string, len(entries))
	for i, e := range entries {
		k := e.key
		for n := 2; used[k]; n++ {
			k = e.key + "_" + strconv.Itoa(n)
		}
		used[k] = true
		original[i] = k
	}

	names := sanitizeKeys(original)
	fields := make(map[string]Value, len(entries))
	keys := make([]string, 0, len(entries))
	for i, k := range original {
		fields[names[k]] = Wrap(entries[i].val)
		keys = append(keys, names[k])
	}
	sort.Strings(keys)

	return Value{kind: KindMapping, fields: fields, keys: keys}
}

// Kind reports which arm of the variant is populated.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is a nil scalar (missing or null data).
func (v Value) IsNil() bool { return v.kind == KindScalar && v.scalar == nil }

// Len returns the number of fields of a mapping, items of a sequence, or 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindMapping:
		return len(v.fields)
	case KindSequence:
		return len(v.items)
	default:
		return 0
	}
}

// Keys returns the sanitized field names of a mapping in sorted order; nil otherwise.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}

	return append([]string(nil), v.keys...)
}

// Has reports whether a mapping has a field with the sanitized name.
func (v Value) Has(name string) bool {
	_, ok := v.fields[name]

	return ok
}

// Field returns the named field of a mapping. The name is the sanitized one
// ("type_" for a source key "type").
func (v Value) Field(name string) (Value, bool) {
	f, ok := v.fields[name]

	return f, ok
}

// Index returns item i of a sequence.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindSequence || i < 0 || i >= len(v.items) {
		return Value{}, false
	}

	return v.items[i], true
}

// Items returns the wrapped elements of a sequence; nil otherwise.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}

	return append([]Value(nil), v.items...)
}

// Get walks path from v. Mapping steps use sanitized field names; sequence
// steps use decimal indices ("0", "1", ...).
// Errors: ErrNoField, ErrIndex, ErrNotContainer, wrapped with the failing step.
func (v Value) Get(path ...string) (Value, error) {
	cur := v
	for depth, step := range path {
		switch cur.kind {
		case KindMapping:
			next, ok := cur.fields[step]
			if !ok {
				return Value{}, fmt.Errorf("step %d %q: %w", depth, step, ErrNoField)
			}
			cur = next
		case KindSequence:
			i, err := strconv.Atoi(step)
			if err != nil || i < 0 || i >= len(cur.items) {
				return Value{}, fmt.Errorf("step %d %q: %w", depth, step, ErrIndex)
			}
			cur = cur.items[i]
		default:
			return Value{}, fmt.Errorf("step %d %q: %w", depth, step, ErrNotContainer)
		}
	}

	return cur, nil
}

// Lookup resolves name as a field first. When the name is not a field, it is
// forwarded to the container's own operations:
//
//	"len"  → Len()
//	"keys" → Keys()
//	"kind" → Kind().String()
//
// Any other unknown name reports false.
func (v Value) Lookup(name string) (any, bool) {
	if f, ok := v.fields[name]; ok {
		return f, true
	}
	if op, ok := delegated[name]; ok {
		return op(v), true
	}

	return nil, false
}

// delegated is the fixed table of container operations reachable via Lookup.
var delegated = map[string]func(Value) any{
	"len":  func(v Value) any { return v.Len() },
	"keys": func(v Value) any { return v.Keys() },
	"kind": func(v Value) any { return v.Kind().String() },
}

// Scalar returns the underlying scalar; nil for containers.
func (v Value) Scalar() any {
	if v.kind != KindScalar {
		return nil
	}

	return v.scalar
}

// Text returns a string scalar.
func (v Value) Text() (string, bool) {
	s, ok := v.Scalar().(string)

	return s, ok
}

// Bool returns a boolean scalar.
func (v Value) Bool() (bool, bool) {
	b, ok := v.Scalar().(bool)

	return b, ok
}

// Int returns an integral numeric scalar that fits in int.
// Floats are accepted only when they hold an exact integer.
func (v Value) Int() (int, bool) {
	switch n := v.Scalar().(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	default:
		return 0, false
	}
}

// Float returns any numeric scalar as float64.
func (v Value) Float() (float64, bool) {
	switch n := v.Scalar().(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := v.Int(); ok {
		return float64(i), true
	}

	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}

	return int(f), true
}

// Raw returns a deep copy of the data as plain Go values, using the sanitized
// keys: map[string]any for mappings, []any for sequences, the scalar otherwise.
func (v Value) Raw() any {
	switch v.kind {
	case KindMapping:
		m := make(map[string]any, len(v.fields))
		for k, f := range v.fields {
			m[k] = f.Raw()
		}
		return m
	case KindSequence:
		s := make([]any, len(v.items))
		for i, it := range v.items {
			s[i] = it.Raw()
		}
		return s
	default:
		return v.scalar
	}
}

// String formats the underlying data with fmt's %v rules (maps print with sorted keys).
func (v Value) String() string {
	return fmt.Sprint(v.Raw())
}
