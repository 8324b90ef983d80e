package frozen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magicsquare/frozen"
)

// TestSanitizeKey covers keyword, invalid-identifier and pass-through keys.
func TestSanitizeKey(t *testing.T) {
	cases := []struct{ in, want string }{
		{"side", "side"},
		{"Base_Number", "Base_Number"},
		{"type", "type_"},
		{"func", "func_"},
		{"range", "range_"},
		{"1st", "v_1st"},
		{"max-size", "v_max_size"},
		{"a b", "v_a_b"},
		{"", "v_"},
		{"größe", "größe"},
		{"class", "class"},
	}
	for _, tc := range cases {
		if got := frozen.SanitizeKey(tc.in); got != tc.want {
			t.Errorf("SanitizeKey(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

// TestWrap_Mapping checks recursive wrapping, sanitized keys and sorted Keys.
func TestWrap_Mapping(t *testing.T) {
	v := frozen.Wrap(map[string]any{
		"type": "magic",
		"1st":  1,
		"square": map[string]any{
			"side": 5,
			"base": 41,
		},
	})
	require.Equal(t, frozen.KindMapping, v.Kind())
	assert.Equal(t, []string{"square", "type_", "v_1st"}, v.Keys())
	assert.Equal(t, 3, v.Len())
	assert.True(t, v.Has("type_"))
	assert.False(t, v.Has("type"))

	typ, ok := v.Field("type_")
	require.True(t, ok)
	s, ok := typ.Text()
	require.True(t, ok)
	assert.Equal(t, "magic", s)

	side, err := v.Get("square", "side")
	require.NoError(t, err)
	n, ok := side.Int()
	require.True(t, ok)
	assert.Equal(t, 5, n)
}

// TestWrap_Sequence checks that each element of a sequence is wrapped independently.
func TestWrap_Sequence(t *testing.T) {
	v := frozen.Wrap([]any{
		map[string]any{"name": "a"},
		[]int{1, 2, 3},
		"plain",
		nil,
	})
	require.Equal(t, frozen.KindSequence, v.Kind())
	require.Equal(t, 4, v.Len())

	first, ok := v.Index(0)
	require.True(t, ok)
	assert.Equal(t, frozen.KindMapping, first.Kind())

	second, _ := v.Index(1)
	assert.Equal(t, frozen.KindSequence, second.Kind())
	assert.Equal(t, 3, second.Len())

	third, _ := v.Index(2)
	assert.Equal(t, frozen.KindScalar, third.Kind())

	fourth, _ := v.Index(3)
	assert.True(t, fourth.IsNil())

	_, ok = v.Index(4)
	assert.False(t, ok)
	_, ok = v.Index(-1)
	assert.False(t, ok)
	assert.Len(t, v.Items(), 4)
}

// TestWrap_Scalars verifies strings and byte slices stay scalars.
func TestWrap_Scalars(t *testing.T) {
	for _, in := range []any{"text", []byte("raw"), 3, 2.5, true, nil} {
		v := frozen.Wrap(in)
		assert.Equal(t, frozen.KindScalar, v.Kind(), "%T", in)
		assert.Equal(t, 0, v.Len())
		assert.Nil(t, v.Keys())
		assert.Nil(t, v.Items())
	}
}

// TestWrap_Collisions verifies deterministic suffixes when sanitized keys collide.
func TestWrap_Collisions(t *testing.T) {
	v := frozen.Wrap(map[string]any{
		"v_a-b": 1,
		"a-b":   2,
		"a b":   3,
	})
	// Sorted originals: "a b", "a-b", "v_a-b" → v_a_b, v_a_b_2, v_v_a_b.
	assert.Equal(t, []string{"v_a_b", "v_a_b_2", "v_v_a_b"}, v.Keys())

	first, _ := v.Field("v_a_b")
	n, _ := first.Int()
	assert.Equal(t, 3, n)
	second, _ := v.Field("v_a_b_2")
	n, _ = second.Int()
	assert.Equal(t, 2, n)
}

// TestWrap_KeysFormattingAlike verifies map keys of different types that
// print the same still yield one field each.
func TestWrap_KeysFormattingAlike(t *testing.T) {
	for i := 0; i < 20; i++ {
		v := frozen.Wrap(map[any]any{1: "a", "1": "b", "1_2": "c"})
		require.Equal(t, 3, v.Len())
		require.Equal(t, []string{"v_1", "v_1_2", "v_1_2_2"}, v.Keys())

		for name, want := range map[string]string{"v_1": "a", "v_1_2": "b", "v_1_2_2": "c"} {
			f, ok := v.Field(name)
			require.True(t, ok, name)
			got, _ := f.Text()
			require.Equal(t, want, got, name)
		}
	}
}

// TestWrap_Immutable verifies later mutation of the input is not observed.
func TestWrap_Immutable(t *testing.T) {
	src := map[string]any{"items": []any{1, 2}}
	v := frozen.Wrap(src)
	src["items"] = []any{9}
	src["extra"] = true

	items, err := v.Get("items")
	require.NoError(t, err)
	assert.Equal(t, 2, items.Len())
	assert.False(t, v.Has("extra"))
}

// TestGet_Errors verifies each path failure maps to its sentinel.
func TestGet_Errors(t *testing.T) {
	v := frozen.Wrap(map[string]any{"rows": []any{[]any{1, 2}}, "name": "x"})
	cases := []struct {
		name string
		path []string
		err  error
	}{
		{"MissingField", []string{"nope"}, frozen.ErrNoField},
		{"BadIndex", []string{"rows", "x"}, frozen.ErrIndex},
		{"IndexOutOfRange", []string{"rows", "3"}, frozen.ErrIndex},
		{"NegativeIndex", []string{"rows", "-1"}, frozen.ErrIndex},
		{"IntoScalar", []string{"name", "first"}, frozen.ErrNotContainer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Get(tc.path...)
			if !errors.Is(err, tc.err) {
				t.Errorf("Get(%v) error = %v; want %v", tc.path, err, tc.err)
			}
		})
	}

	cell, err := v.Get("rows", "0", "1")
	require.NoError(t, err)
	n, _ := cell.Int()
	assert.Equal(t, 2, n)

	self, err := v.Get()
	require.NoError(t, err)
	assert.Equal(t, v.Keys(), self.Keys())
}

// TestLookup_Delegation verifies fields win and unknown names fall back to container operations.
func TestLookup_Delegation(t *testing.T) {
	v := frozen.Wrap(map[string]any{"a": 1, "len": "shadowed"})

	got, ok := v.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, frozen.KindScalar, got.(frozen.Value).Kind())

	got, ok = v.Lookup("len")
	require.True(t, ok)
	s, _ := got.(frozen.Value).Text()
	assert.Equal(t, "shadowed", s, "a real field shadows the delegated operation")

	got, ok = v.Lookup("keys")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "len"}, got)

	got, ok = v.Lookup("kind")
	require.True(t, ok)
	assert.Equal(t, "mapping", got)

	_, ok = v.Lookup("missing")
	assert.False(t, ok)

	seq := frozen.Wrap([]any{1, 2, 3})
	got, ok = seq.Lookup("len")
	require.True(t, ok)
	assert.Equal(t, 3, got)
}

// TestNumericGetters covers integral, float and mismatched scalars.
func TestNumericGetters(t *testing.T) {
	cases := []struct {
		in     any
		want   int
		wantOK bool
	}{
		{7, 7, true},
		{int64(9), 9, true},
		{uint8(3), 3, true},
		{4.0, 4, true},
		{4.5, 0, false},
		{"4", 0, false},
		{true, 0, false},
	}
	for _, tc := range cases {
		got, ok := frozen.Wrap(tc.in).Int()
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("Int(%v) = (%d,%v); want (%d,%v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}

	f, ok := frozen.Wrap(3).Float()
	require.True(t, ok)
	assert.Equal(t, 3.0, f)
	f, ok = frozen.Wrap(float32(1.5)).Float()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	b, ok := frozen.Wrap(true).Bool()
	require.True(t, ok)
	assert.True(t, b)
	_, ok = frozen.Wrap(1).Bool()
	assert.False(t, ok)

	assert.Nil(t, frozen.Wrap([]any{1}).Scalar())
}

// TestRawAndString verify the plain-data copy uses sanitized keys.
func TestRawAndString(t *testing.T) {
	v := frozen.Wrap(map[string]any{"type": []any{1, "two"}})
	assert.Equal(t, map[string]any{"type_": []any{1, "two"}}, v.Raw())
	assert.Equal(t, "map[type_:[1 two]]", v.String())
	assert.Equal(t, "scalar", frozen.KindScalar.String())
	assert.Equal(t, "sequence", frozen.KindSequence.String())
}
