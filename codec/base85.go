package codec

import "fmt"

// base85Alphabet is the RFC 1924 (IPv6) alphabet LLSD uses for its base85
// binary encoding.
const base85Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

var base85Decode [256]int8

func init() {
	for i := range base85Decode {
		base85Decode[i] = -1
	}
	for i, c := range []byte(base85Alphabet) {
		base85Decode[c] = int8(i)
	}
}

// EncodeBase85 encodes data using the RFC 1924 alphabet, in fixed
// 4-bytes-in/5-chars-out groups. A final partial group of 1-3 bytes is
// zero-padded before encoding, and the output is truncated to n+1
// characters the way Ascii85-family codecs handle a short final group.
func EncodeBase85(data []byte) string {
	out := make([]byte, 0, (len(data)/4+1)*5)
	var buf [5]byte

	for i := 0; i < len(data); i += 4 {
		chunk := data[i:min(i+4, len(data))]
		n := len(chunk)

		var word uint32
		var padded [4]byte
		copy(padded[:], chunk)
		word = uint32(padded[0])<<24 | uint32(padded[1])<<16 | uint32(padded[2])<<8 | uint32(padded[3])

		for j := 4; j >= 0; j-- {
			buf[j] = base85Alphabet[word%85]
			word /= 85
		}

		if n == 4 {
			out = append(out, buf[:]...)
		} else {
			out = append(out, buf[:n+1]...)
		}
	}

	return string(out)
}

// DecodeBase85 decodes a base85 (RFC 1924 alphabet) string produced by EncodeBase85.
func DecodeBase85(s string) ([]byte, error) {
	out := make([]byte, 0, (len(s)/5+1)*4)

	for i := 0; i < len(s); i += 5 {
		group := s[i:min(i+5, len(s))]
		n := len(group)
		if n == 1 {
			return nil, fmt.Errorf("base85: invalid trailing group of length 1")
		}

		var padded [5]byte
		for j := range padded {
			padded[j] = base85Alphabet[84] // '~', the highest-value digit, as padding
		}
		copy(padded[:], group)

		var word uint32
		for _, c := range padded {
			d := base85Decode[c]
			if d < 0 {
				return nil, fmt.Errorf("base85: invalid character %q", c)
			}
			word = word*85 + uint32(d)
		}

		var b [4]byte
		b[0] = byte(word >> 24)
		b[1] = byte(word >> 16)
		b[2] = byte(word >> 8)
		b[3] = byte(word)

		out = append(out, b[:n-1]...)
	}

	return out, nil
}
