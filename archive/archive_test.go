package archive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/llsd"
	"github.com/arloliu/llsd/value"
)

func TestFormatParse_AllCodecs(t *testing.T) {
	v := value.NewMap(0)
	require.NoError(t, v.SetMapEntry("name", value.NewString("example")))
	require.NoError(t, v.SetMapEntry("count", value.NewInteger(3)))

	codecs := map[string]Codec{
		"noop": NoOp,
		"s2":   S2,
		"lz4":  LZ4,
		"zstd": Zstd,
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Format(v, llsd.Binary, codec, &buf))

			got, err := Parse(&buf, codec)
			require.NoError(t, err)
			assert.True(t, v.Equal(got))
		})
	}
}

func TestGetCodec(t *testing.T) {
	c, err := GetCodec(CompressionLZ4)
	require.NoError(t, err)
	assert.Equal(t, LZ4, c)

	_, err = GetCodec(CompressionType(99))
	require.Error(t, err)
}

func TestNoOpCompressor_Identity(t *testing.T) {
	data := []byte("hello")
	out, err := NoOp.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	back, err := NoOp.Decompress(out)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestLZ4Compressor_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox "), 200)
	compressed, err := LZ4.Compress(data)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data))

	back, err := LZ4.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestS2Compressor_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("abcabcabc"), 500)
	compressed, err := S2.Compress(data)
	require.NoError(t, err)

	back, err := S2.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestZstdCompressor_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("zstandard payload "), 300)
	compressed, err := Zstd.Compress(data)
	require.NoError(t, err)

	back, err := Zstd.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}
