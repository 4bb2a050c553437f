package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/llsd/codec"
)

// OnIllegalCoercion is called whenever an As* method is asked to perform
// a coercion outside the table in spec.md §4.1. The default is a no-op:
// this package (like the teacher's core packages) carries no logging
// dependency, so a caller that cares about the diagnostic installs its
// own hook.
var OnIllegalCoercion = func(from Kind, to string) {}

func illegal(from Kind, to string) {
	OnIllegalCoercion(from, to)
}

// AsBoolean coerces v to BOOLEAN per spec.md §4.1's conversion table.
func (v *Value) AsBoolean() bool {
	switch v.kind {
	case Undef:
		return false
	case Boolean:
		return v.b
	case Integer:
		return v.i != 0
	case Real:
		return v.r != 0.0
	case UUID:
		return v.u != [16]byte{}
	case String, Binary:
		return len(v.bytes) > 0
	default:
		illegal(v.kind, "boolean")
		return false
	}
}

// AsInteger coerces v to INTEGER per spec.md §4.1's conversion table.
func (v *Value) AsInteger() int32 {
	switch v.kind {
	case Undef:
		return 0
	case Boolean:
		if v.b {
			return 1
		}
		return 0
	case Integer:
		return v.i
	case Real:
		return int32(v.r)
	case String:
		return parseLeadingInt(v.Text())
	case Binary:
		return parseLeadingBinaryInt(v.bytes)
	default:
		illegal(v.kind, "integer")
		return 0
	}
}

// AsReal coerces v to REAL per spec.md §4.1's conversion table.
func (v *Value) AsReal() float64 {
	switch v.kind {
	case Undef:
		return 0.0
	case Boolean:
		if v.b {
			return 1.0
		}
		return 0.0
	case Integer:
		return float64(v.i)
	case Real:
		return v.r
	case String:
		return parseLeadingFloat(v.Text())
	case Binary:
		return parseLeadingBinaryFloat(v.bytes)
	default:
		illegal(v.kind, "real")
		return 0.0
	}
}

// AsString coerces v to STRING per spec.md §4.1's conversion table.
func (v *Value) AsString() string {
	switch v.kind {
	case Undef:
		return ""
	case Boolean:
		if v.b {
			return "true"
		}
		return "false"
	case Integer:
		return strconv.FormatInt(int64(v.i), 10)
	case Real:
		return fmt.Sprintf("%f", v.r)
	case UUID:
		return formatUUID(v.u)
	case String:
		return v.Text()
	case Binary:
		return string(v.bytes)
	default:
		illegal(v.kind, "string")
		return ""
	}
}

// AsBinary coerces v to BINARY per spec.md §4.1's conversion table.
func (v *Value) AsBinary() []byte {
	switch v.kind {
	case Undef:
		return nil
	case Boolean:
		if v.b {
			return []byte{1}
		}
		return []byte{0}
	case Integer:
		b := make([]byte, 4)
		codec.PutInt32(b, v.i)
		return b
	case Real:
		b := make([]byte, 8)
		codec.PutFloat64(b, v.r)
		return b
	case UUID:
		b := make([]byte, 16)
		copy(b, v.u[:])
		return b
	case String:
		return []byte(v.Text())
	case Binary:
		return v.bytes
	default:
		illegal(v.kind, "binary")
		return nil
	}
}

func formatUUID(u [16]byte) string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}

// ParseLeadingInt mimics C's strtol: skip leading whitespace, parse an
// optionally-signed decimal integer prefix, ignore trailing junk. The XML
// parser shares this instead of parsing numeric character data strictly.
func ParseLeadingInt(s string) int32 {
	return parseLeadingInt(s)
}

func parseLeadingInt(s string) int32 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	n, err := strconv.ParseInt(s[:i], 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}

// ParseLeadingFloat mimics C's strtod: skip leading whitespace, parse a
// floating-point prefix, ignore trailing junk. Exported for the same
// reason as ParseLeadingInt.
func ParseLeadingFloat(s string) float64 {
	return parseLeadingFloat(s)
}

func parseLeadingFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	if i == start {
		return 0
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0
	}
	return f
}

// parseLeadingBinaryInt reads the first 4 bytes of data as a big-endian
// int32, zero-padding on the right if fewer than 4 bytes are available.
func parseLeadingBinaryInt(data []byte) int32 {
	var b [4]byte
	copy(b[:], data)
	return codec.Int32(b[:])
}

// parseLeadingBinaryFloat reads the first 8 bytes of data as a
// big-endian IEEE-754 float64, zero-padding on the right if fewer than 8
// bytes are available.
func parseLeadingBinaryFloat(data []byte) float64 {
	var b [8]byte
	copy(b[:], data)
	return codec.Float64(b[:])
}
