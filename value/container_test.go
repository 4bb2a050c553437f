package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/llsd/errs"
)

func TestAppendElement(t *testing.T) {
	arr := NewArray(0)
	require.NoError(t, arr.AppendElement(NewInteger(1)))
	require.NoError(t, arr.AppendElement(NewInteger(2)))
	require.NoError(t, arr.AppendElement(NewInteger(3)))

	n, err := arr.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	elems := arr.Elements()
	assert.Equal(t, int32(1), elems[0].Int())
	assert.Equal(t, int32(2), elems[1].Int())
	assert.Equal(t, int32(3), elems[2].Int())
}

func TestAppendElement_WrongKind(t *testing.T) {
	v := NewInteger(1)
	err := v.AppendElement(NewInteger(2))
	assert.ErrorIs(t, err, errs.ErrWrongKind)
}

func TestAppendElement_GrowsPastInitialCapacity(t *testing.T) {
	arr := NewArray(0)
	for i := 0; i < 100; i++ {
		require.NoError(t, arr.AppendElement(NewInteger(int32(i))))
	}
	n, err := arr.Len()
	require.NoError(t, err)
	assert.Equal(t, 100, n)
	for i, e := range arr.Elements() {
		assert.Equal(t, int32(i), e.Int())
	}
}

func TestGrowArray_MinimumCapacityFour(t *testing.T) {
	var elems []*Value
	elems = growArray(elems, NewInteger(1))
	assert.GreaterOrEqual(t, cap(elems), 4)
}

func TestSetMapEntry(t *testing.T) {
	m := NewMap(0)
	require.NoError(t, m.SetMapEntry("a", NewInteger(1)))
	require.NoError(t, m.SetMapEntry("b", NewInteger(2)))

	n, err := m.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, int32(1), v.Int())

	assert.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestSetMapEntry_OverwriteInPlace(t *testing.T) {
	m := NewMap(0)
	require.NoError(t, m.SetMapEntry("a", NewInteger(1)))
	require.NoError(t, m.SetMapEntry("b", NewInteger(2)))
	require.NoError(t, m.SetMapEntry("a", NewInteger(99)))

	assert.Equal(t, []string{"a", "b"}, m.Keys(), "overwrite must not change insertion order")

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, int32(99), v.Int())
}

func TestSetMapEntry_WrongKind(t *testing.T) {
	v := NewInteger(1)
	err := v.SetMapEntry("a", NewInteger(2))
	assert.ErrorIs(t, err, errs.ErrWrongKind)
}

func TestGet_Missing(t *testing.T) {
	m := NewMap(0)
	_, ok := m.Get("missing")
	assert.False(t, ok)
}
