package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestTypeKey_ShortName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key  TypeKey
		want string
	}{
		{"core.components.Color", "Color"},
		{"Temp", "Temp"},
		{"trailing.", "trailing."},
		{"", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.key.ShortName(), "key %q", tc.key)
	}
}

func TestDescriptor_String(t *testing.T) {
	t.Parallel()

	d := Descriptor{Archetype: "Points3D", Field: "colors", Key: "core.components.Color"}
	assert.Equal(t, "Points3D:core.components.Color#colors", d.String())
	assert.Equal(t, "Color", Descriptor{Key: "Color"}.String())
}

func TestRawValue_ZeroIsMissing(t *testing.T) {
	t.Parallel()

	var rv RawValue
	assert.True(t, rv.IsMissing())
	assert.Equal(t, 0, rv.Len())
	assert.Equal(t, CacheKey(0), rv.Hash())
}

func TestNewRawValue(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		rv, err := NewRawValue(cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}))
		require.NoError(t, err)
		assert.Equal(t, 2, rv.Len())
		assert.Equal(t, cty.String, rv.ElementType())
	})

	t.Run("set becomes list", func(t *testing.T) {
		rv, err := NewRawValue(cty.SetVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}))
		require.NoError(t, err)
		assert.True(t, rv.Value().Type().IsListType())
		assert.Equal(t, 2, rv.Len())
	})

	t.Run("null list is empty", func(t *testing.T) {
		rv, err := NewRawValue(cty.NullVal(cty.List(cty.Bool)))
		require.NoError(t, err)
		assert.False(t, rv.IsMissing())
		assert.Equal(t, 0, rv.Len())
	})

	t.Run("tuple", func(t *testing.T) {
		rv, err := NewRawValue(cty.TupleVal([]cty.Value{cty.StringVal("x"), cty.NumberIntVal(3)}))
		require.NoError(t, err)
		assert.Equal(t, 2, rv.Len())
		assert.Equal(t, cty.String, rv.ElementType())
	})

	t.Run("scalar is rejected", func(t *testing.T) {
		_, err := NewRawValue(cty.StringVal("nope"))
		require.ErrorIs(t, err, ErrNotABatch)
	})

	t.Run("nil value is missing", func(t *testing.T) {
		rv, err := NewRawValue(cty.NilVal)
		require.NoError(t, err)
		assert.True(t, rv.IsMissing())
	})
}

func TestRawValue_Slice(t *testing.T) {
	t.Parallel()

	rv := Batch(cty.Number, cty.NumberIntVal(10), cty.NumberIntVal(20), cty.NumberIntVal(30))

	s := rv.Slice(1)

	require.Equal(t, 1, s.Len())
	assert.True(t, s.Element(0).RawEquals(cty.NumberIntVal(20)))
	assert.Equal(t, 3, rv.Len(), "slicing must not modify the source batch")
}

func TestRawValue_HashIsContentBased(t *testing.T) {
	t.Parallel()

	a := Batch(cty.String, cty.StringVal("x"))
	b := Single(cty.StringVal("x"))
	c := Single(cty.StringVal("y"))

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestParseInstance(t *testing.T) {
	t.Parallel()

	inst, err := ParseInstance("all")
	require.NoError(t, err)
	assert.True(t, inst.IsAll())

	inst, err = ParseInstance("7")
	require.NoError(t, err)
	assert.Equal(t, Instance(7), inst)
	assert.Equal(t, "7", inst.String())

	_, err = ParseInstance("-1")
	require.Error(t, err)
}

func TestParseEntityPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EntityPath("/world/points"), ParseEntityPath("world//points/"))
	assert.Equal(t, EntityPath("/"), ParseEntityPath(""))
	assert.Equal(t, []string{"world", "points"}, ParseEntityPath("/world/points").Parts())
	assert.Equal(t, EntityPath("/blueprint/world"), EntityPath("/blueprint").Join("world"))
}
