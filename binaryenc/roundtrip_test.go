package binaryenc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/llsd/sax"
	"github.com/arloliu/llsd/value"
)

func parseBody(t *testing.T, body []byte) *value.Value {
	t.Helper()
	tb := sax.NewTreeBuilder()
	require.NoError(t, Parse(bytes.NewReader(body), tb))
	v, err := tb.Result()
	require.NoError(t, err)

	return v
}

func formatBody(t *testing.T, v *value.Value) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Format(v, &buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte(sax.BinarySignature)))

	return buf.Bytes()[len(sax.BinarySignature):]
}

func TestFormatParse_BooleanTrue(t *testing.T) {
	out := formatBody(t, value.NewBoolean(true))
	assert.Equal(t, []byte{'1'}, out)

	got := parseBody(t, out)
	assert.True(t, value.NewBoolean(true).Equal(got))
}

func TestFormatParse_Integer(t *testing.T) {
	out := formatBody(t, value.NewInteger(42))
	assert.Equal(t, []byte{'i', 0x00, 0x00, 0x00, 0x2A}, out)

	got := parseBody(t, out)
	assert.True(t, value.NewInteger(42).Equal(got))
}

func TestFormatParse_StringArray(t *testing.T) {
	arr := value.NewArray(0)
	require.NoError(t, arr.AppendElement(value.NewString("a")))
	require.NoError(t, arr.AppendElement(value.NewInteger(1)))

	out := formatBody(t, arr)
	got := parseBody(t, out)
	assert.True(t, arr.Equal(got))
}

func TestFormatParse_Map(t *testing.T) {
	m := value.NewMap(0)
	require.NoError(t, m.SetMapEntry("k", value.NewString("v")))

	out := formatBody(t, m)

	var expect bytes.Buffer
	expect.WriteByte('{')
	expect.Write([]byte{0, 0, 0, 1})
	expect.WriteByte('s')
	expect.Write([]byte{0, 0, 0, 1})
	expect.WriteString("k")
	expect.WriteByte('s')
	expect.Write([]byte{0, 0, 0, 1})
	expect.WriteString("v")
	expect.WriteByte('}')
	assert.Equal(t, expect.Bytes(), out)

	got := parseBody(t, out)
	assert.True(t, m.Equal(got))
}

func TestFormatParse_NestedArrays(t *testing.T) {
	inner := value.NewArray(0)
	require.NoError(t, inner.AppendElement(value.NewInteger(1)))
	outer := value.NewArray(0)
	require.NoError(t, outer.AppendElement(inner))
	require.NoError(t, outer.AppendElement(value.NewInteger(2)))

	out := formatBody(t, outer)
	got := parseBody(t, out)
	assert.True(t, outer.Equal(got))
}

func TestFormatParse_EmptyContainers(t *testing.T) {
	got := parseBody(t, formatBody(t, value.NewArray(0)))
	n, err := got.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	got = parseBody(t, formatBody(t, value.NewMap(0)))
	n, err = got.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestFormatParse_UUIDAndBinary(t *testing.T) {
	var u [16]byte
	for i := range u {
		u[i] = byte(i)
	}
	got := parseBody(t, formatBody(t, value.NewUUID(u)))
	assert.True(t, value.NewUUID(u).Equal(got))

	bin := value.NewBinary([]byte{0xde, 0xad, 0xbe, 0xef})
	got = parseBody(t, formatBody(t, bin))
	assert.True(t, bin.Equal(got))
}

func TestParse_DeclaredSizeIsAdvisoryOnly(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.Write([]byte{0, 0, 0, 99}) // lies about the count
	buf.WriteByte('i')
	buf.Write([]byte{0, 0, 0, 1})
	buf.WriteByte(']')

	got := parseBody(t, buf.Bytes())
	n, err := got.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestParse_UnknownTypeByte(t *testing.T) {
	tb := sax.NewTreeBuilder()
	err := Parse(bytes.NewReader([]byte{'?'}), tb)
	require.Error(t, err)
}

func TestParse_TruncatedInput(t *testing.T) {
	tb := sax.NewTreeBuilder()
	err := Parse(bytes.NewReader([]byte{'i', 0x00, 0x00}), tb)
	require.Error(t, err)
}

func TestParse_MapKeyMustBeString(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write([]byte{0, 0, 0, 1})
	buf.WriteByte('i') // not a string key
	buf.Write([]byte{0, 0, 0, 1})

	tb := sax.NewTreeBuilder()
	err := Parse(bytes.NewReader(buf.Bytes()), tb)
	require.Error(t, err)
}
