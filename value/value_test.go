package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/llsd/errs"
)

func TestNewUndef_Singleton(t *testing.T) {
	a := NewUndef()
	b := NewUndef()
	assert.Same(t, a, b)
	assert.Equal(t, Undef, a.Kind())
}

func TestNewBoolean(t *testing.T) {
	v := NewBoolean(true)
	assert.Equal(t, Boolean, v.Kind())
	assert.True(t, v.Bool())

	v = NewBoolean(false)
	assert.False(t, v.Bool())
}

func TestNewInteger(t *testing.T) {
	v := NewInteger(-42)
	assert.Equal(t, Integer, v.Kind())
	assert.Equal(t, int32(-42), v.Int())
}

func TestNewReal(t *testing.T) {
	v := NewReal(3.5)
	assert.Equal(t, Real, v.Kind())
	assert.Equal(t, 3.5, v.Real())
}

func TestNewUUID(t *testing.T) {
	var u [16]byte
	for i := range u {
		u[i] = byte(i)
	}
	v := NewUUID(u)
	assert.Equal(t, UUID, v.Kind())
	assert.Equal(t, u, v.UUIDBytes())
}

func TestZeroUUID(t *testing.T) {
	v := ZeroUUID()
	assert.Equal(t, UUID, v.Kind())
	assert.Equal(t, [16]byte{}, v.UUIDBytes())
	assert.False(t, v.Equal(NewUndef()))
}

func TestNewDate(t *testing.T) {
	v := NewDate(1609459200.5)
	assert.Equal(t, Date, v.Kind())
	assert.Equal(t, 1609459200.5, v.DateSeconds())
}

func TestNewString(t *testing.T) {
	v := NewString("hello")
	assert.Equal(t, String, v.Kind())
	assert.Equal(t, "hello", v.Text())
	assert.True(t, v.Owned())
}

func TestNewStringBytes_Borrowed(t *testing.T) {
	buf := []byte("borrowed")
	v := NewStringBytes(buf, false)
	assert.Equal(t, "borrowed", v.Text())
	assert.False(t, v.Owned())
}

func TestNewURI(t *testing.T) {
	v := NewURI("http://example.com/resource")
	assert.Equal(t, URI, v.Kind())
	assert.Equal(t, "http://example.com/resource", v.Text())
}

func TestNewBinary_Copies(t *testing.T) {
	src := []byte{1, 2, 3}
	v := NewBinary(src)
	src[0] = 0xff
	require.Equal(t, byte(1), v.Bytes()[0], "NewBinary must copy, not alias")
}

func TestNewBinaryBytes_TakesOwnership(t *testing.T) {
	src := []byte{1, 2, 3}
	v := NewBinaryBytes(src, true)
	assert.Same(t, &src[0], &v.Bytes()[0])
	assert.True(t, v.Owned())
}

func TestEmptyBinary(t *testing.T) {
	v := EmptyBinary()
	assert.Equal(t, Binary, v.Kind())
	assert.Equal(t, 0, len(v.Bytes()))
}

func TestNewArray(t *testing.T) {
	v := NewArray(4)
	assert.Equal(t, Array, v.Kind())
	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestNewArray_NegativeCapacityHint(t *testing.T) {
	v := NewArray(-1)
	assert.Equal(t, Array, v.Kind())
	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestNewMap(t *testing.T) {
	v := NewMap(0)
	assert.Equal(t, Map, v.Kind())
	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, v.Keys())
}

func TestLen_WrongKind(t *testing.T) {
	v := NewInteger(1)
	_, err := v.Len()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrWrongKind)
}

func TestGet_NonMapReturnsNotFound(t *testing.T) {
	v := NewInteger(1)
	_, ok := v.Get("key")
	assert.False(t, ok)
}

func TestKeys_NonMapReturnsNil(t *testing.T) {
	v := NewInteger(1)
	assert.Nil(t, v.Keys())
}
