package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arloliu/llsd/codec"
)

func TestAsBoolean(t *testing.T) {
	assert.False(t, NewUndef().AsBoolean())
	assert.True(t, NewBoolean(true).AsBoolean())
	assert.False(t, NewBoolean(false).AsBoolean())
	assert.True(t, NewInteger(7).AsBoolean())
	assert.False(t, NewInteger(0).AsBoolean())
	assert.True(t, NewReal(0.1).AsBoolean())
	assert.False(t, NewReal(0.0).AsBoolean())
	assert.False(t, ZeroUUID().AsBoolean())
	var u [16]byte
	u[15] = 1
	assert.True(t, NewUUID(u).AsBoolean())
	assert.True(t, NewString("x").AsBoolean())
	assert.False(t, NewString("").AsBoolean())
	assert.True(t, NewBinary([]byte{0}).AsBoolean())
	assert.False(t, NewBinary(nil).AsBoolean())
}

func TestAsBoolean_IllegalKindsDefaultFalse(t *testing.T) {
	assert.False(t, NewDate(5).AsBoolean())
	assert.False(t, NewArray(0).AsBoolean())
	assert.False(t, NewMap(0).AsBoolean())
}

func TestAsInteger(t *testing.T) {
	assert.Equal(t, int32(0), NewUndef().AsInteger())
	assert.Equal(t, int32(1), NewBoolean(true).AsInteger())
	assert.Equal(t, int32(0), NewBoolean(false).AsInteger())
	assert.Equal(t, int32(42), NewInteger(42).AsInteger())
	assert.Equal(t, int32(3), NewReal(3.9).AsInteger())
	assert.Equal(t, int32(-3), NewReal(-3.9).AsInteger())
	assert.Equal(t, int32(123), NewString("123abc").AsInteger())
	assert.Equal(t, int32(-7), NewString("  -7").AsInteger())
	assert.Equal(t, int32(0), NewString("not a number").AsInteger())

	buf := make([]byte, 4)
	codec.PutInt32(buf, 99)
	assert.Equal(t, int32(99), NewBinary(buf).AsInteger())
}

func TestAsInteger_IllegalKindsDefaultZero(t *testing.T) {
	assert.Equal(t, int32(0), ZeroUUID().AsInteger())
	assert.Equal(t, int32(0), NewDate(5).AsInteger())
}

func TestAsReal(t *testing.T) {
	assert.Equal(t, 0.0, NewUndef().AsReal())
	assert.Equal(t, 1.0, NewBoolean(true).AsReal())
	assert.Equal(t, 0.0, NewBoolean(false).AsReal())
	assert.Equal(t, 4.0, NewInteger(4).AsReal())
	assert.Equal(t, 2.5, NewReal(2.5).AsReal())
	assert.Equal(t, 2.5, NewString("2.5trailing").AsReal())
	assert.Equal(t, -1.25e3, NewString("-1.25e3").AsReal())
	assert.Equal(t, 0.0, NewString("nope").AsReal())

	buf := make([]byte, 8)
	codec.PutFloat64(buf, 3.14)
	assert.Equal(t, 3.14, NewBinary(buf).AsReal())
}

func TestAsReal_IllegalKindsDefaultZero(t *testing.T) {
	assert.Equal(t, 0.0, ZeroUUID().AsReal())
	assert.Equal(t, 0.0, NewDate(5).AsReal())
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "", NewUndef().AsString())
	assert.Equal(t, "true", NewBoolean(true).AsString())
	assert.Equal(t, "false", NewBoolean(false).AsString())
	assert.Equal(t, "42", NewInteger(42).AsString())
	assert.Equal(t, "x", NewString("x").AsString())
	assert.Equal(t, "raw", NewBinary([]byte("raw")).AsString())
}

func TestAsString_UUID(t *testing.T) {
	var u [16]byte
	for i := range u {
		u[i] = byte(i)
	}
	got := NewUUID(u).AsString()
	assert.Equal(t, "00010203-0405-0607-0809-0a0b0c0d0e0f", got)
}

func TestAsString_IllegalKindsDefaultEmpty(t *testing.T) {
	assert.Equal(t, "", NewDate(5).AsString())
	assert.Equal(t, "", NewArray(0).AsString())
}

func TestAsBinary(t *testing.T) {
	assert.Nil(t, NewUndef().AsBinary())
	assert.Equal(t, []byte{1}, NewBoolean(true).AsBinary())
	assert.Equal(t, []byte{0}, NewBoolean(false).AsBinary())

	want := make([]byte, 4)
	codec.PutInt32(want, 7)
	assert.Equal(t, want, NewInteger(7).AsBinary())

	wantR := make([]byte, 8)
	codec.PutFloat64(wantR, math.Pi)
	assert.Equal(t, wantR, NewReal(math.Pi).AsBinary())

	assert.Equal(t, []byte("raw"), NewString("raw").AsBinary())
	assert.Equal(t, []byte{9, 9}, NewBinary([]byte{9, 9}).AsBinary())
}

func TestAsBinary_IllegalKindsDefaultNil(t *testing.T) {
	assert.Nil(t, NewDate(5).AsBinary())
	assert.Nil(t, NewMap(0).AsBinary())
}

func TestOnIllegalCoercion_Hook(t *testing.T) {
	var gotFrom Kind
	var gotTo string
	prev := OnIllegalCoercion
	defer func() { OnIllegalCoercion = prev }()

	OnIllegalCoercion = func(from Kind, to string) {
		gotFrom, gotTo = from, to
	}

	NewDate(1).AsBoolean()
	assert.Equal(t, Date, gotFrom)
	assert.Equal(t, "boolean", gotTo)
}
