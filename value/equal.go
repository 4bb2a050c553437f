package value

import "bytes"

// Equal reports whether v and other are structurally equal: same kind,
// same payload, recursively. ARRAY comparison is order-sensitive; MAP
// comparison is order-insensitive (same key set, equal value per key).
//
// Equal(v, v) is true for every v except a REAL or DATE holding NaN,
// which (per IEEE-754, and spec.md §8 property 5) never compares equal
// to itself; NaN's round-trip fidelity is instead verified bit-exactly
// through its big-endian wire encoding, not through Equal.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case Undef:
		return true
	case Boolean:
		return v.b == other.b
	case Integer:
		return v.i == other.i
	case Real, Date:
		return v.r == other.r
	case UUID:
		return v.u == other.u
	case String, URI, Binary:
		return bytes.Equal(v.bytes, other.bytes)
	case Array:
		return v.arrayEqual(other)
	case Map:
		return v.mapEqual(other)
	default:
		return false
	}
}

func (v *Value) arrayEqual(other *Value) bool {
	if len(v.elems) != len(other.elems) {
		return false
	}
	for i, e := range v.elems {
		if !e.Equal(other.elems[i]) {
			return false
		}
	}
	return true
}

func (v *Value) mapEqual(other *Value) bool {
	if v.m.len() != other.m.len() {
		return false
	}
	for _, key := range v.m.orderedKeys() {
		want, ok := v.m.get(key)
		if !ok {
			continue
		}
		got, ok := other.m.get(key)
		if !ok || !want.Equal(got) {
			return false
		}
	}
	return true
}
