package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase16_RoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x00},
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
		[]byte("hello, llsd"),
	}
	for _, c := range cases {
		enc := EncodeBase16(c)
		dec, err := DecodeBase16(enc)
		require.NoError(t, err)
		if len(c) == 0 {
			assert.Empty(t, dec)
		} else {
			assert.Equal(t, c, dec)
		}
	}
}

func TestBase16_LowercaseOnEmit(t *testing.T) {
	assert.Equal(t, "deadbeef", EncodeBase16([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
}

func TestBase16_CaseInsensitiveDecode(t *testing.T) {
	lower, err := DecodeBase16("deadbeef")
	require.NoError(t, err)
	upper, err := DecodeBase16("DEADBEEF")
	require.NoError(t, err)
	mixed, err := DecodeBase16("DeAdBeEf")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
}

func TestBase16_InvalidInput(t *testing.T) {
	_, err := DecodeBase16("zz")
	assert.Error(t, err)

	_, err = DecodeBase16("abc") // odd length
	assert.Error(t, err)
}
