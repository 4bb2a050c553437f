package codec

import (
	"encoding/base64"
	"strings"
)

// EncodeBase64 returns the standard, padded base64 encoding of data.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes a standard, padded base64 string.
//
// Whitespace between (or around) base64 groups is tolerated, matching
// the common practice of wrapping base64 payloads across lines inside
// pretty-printed XML; whitespace is stripped before decoding rather than
// rejected, since the decoder has no way to tell "between a group" from
// "inside a group" once the characters are gone, and stripping degrades
// gracefully to the same result either way.
func DecodeBase64(s string) ([]byte, error) {
	cleaned := stripASCIIWhitespace(s)
	return base64.StdEncoding.DecodeString(cleaned)
}

func stripASCIIWhitespace(s string) string {
	if strings.IndexFunc(s, isASCIISpace) == -1 {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !isASCIISpace(rune(s[i])) {
			b = append(b, s[i])
		}
	}
	return string(b)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
