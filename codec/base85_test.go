package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase85_RoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x00},
		{0x00, 0x01},
		{0x00, 0x01, 0x02},
		{0x00, 0x01, 0x02, 0x03},
		{0x00, 0x01, 0x02, 0x03, 0x04},
		[]byte("01020304050607080900010203040506"),
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for _, c := range cases {
		enc := EncodeBase85(c)
		dec, err := DecodeBase85(enc)
		require.NoError(t, err)
		if len(c) == 0 {
			assert.Empty(t, dec)
		} else {
			assert.Equal(t, c, dec)
		}
	}
}

func TestBase85_UsesRFC1924Alphabet(t *testing.T) {
	enc := EncodeBase85([]byte{0, 0, 0, 0})
	assert.Equal(t, "00000", enc)
	for _, r := range enc {
		assert.Contains(t, base85Alphabet, string(r))
	}
}

func TestBase85_RejectsInvalidCharacter(t *testing.T) {
	_, err := DecodeBase85("00 00")
	assert.Error(t, err)
}

func TestBase85_RejectsShortTrailingGroup(t *testing.T) {
	_, err := DecodeBase85("000000") // 5 + 1, trailing group of length 1
	assert.Error(t, err)
}
