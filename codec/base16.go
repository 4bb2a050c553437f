package codec

import "encoding/hex"

// EncodeBase16 returns the lowercase hexadecimal encoding of data.
func EncodeBase16(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeBase16 decodes a hexadecimal string, accepting either case.
// encoding/hex already treats 'a'-'f' and 'A'-'F' as equivalent, so no
// extra normalization is needed before handing the string to it.
func DecodeBase16(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
