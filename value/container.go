package value

import (
	"fmt"

	"github.com/arloliu/llsd/errs"
)

func errWrongKind(k Kind, op string) error {
	return fmt.Errorf("%w: %s on a %s value", errs.ErrWrongKind, op, k)
}

// AppendElement appends v to an ARRAY value, transferring ownership of v
// to the array (spec.md §4.1 array_append). It fails with ErrWrongKind if
// called on a non-ARRAY value.
func (v *Value) AppendElement(elem *Value) error {
	if v.kind != Array {
		return errWrongKind(v.kind, "AppendElement")
	}
	v.elems = growArray(v.elems, elem)
	return nil
}

// growArray appends elem to elems with amortized capacity growth: when
// full, capacity grows by half its current size (1.5x), with a minimum
// capacity of 4.
func growArray(elems []*Value, elem *Value) []*Value {
	if len(elems) >= cap(elems) {
		newCap := cap(elems) + cap(elems)/2
		if newCap < 4 {
			newCap = 4
		}
		grown := make([]*Value, len(elems), newCap)
		copy(grown, elems)
		elems = grown
	}
	return append(elems, elem)
}

// SetMapEntry binds key to val in a MAP value, overwriting and releasing
// any prior binding for key (spec.md §4.1 map_insert). It fails with
// ErrWrongKind if called on a non-MAP value.
func (v *Value) SetMapEntry(key string, val *Value) error {
	if v.kind != Map {
		return errWrongKind(v.kind, "SetMapEntry")
	}
	v.m.set(key, val)
	return nil
}
