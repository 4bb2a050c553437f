package value

// Value is the LLSD tagged union: one of ten kinds, each with its own
// payload. The zero Value is a well-formed UNDEF, matching the reference
// implementation's static undefined singleton.
//
// Accessors below (Bool, Int, Real, UUIDBytes, DateSeconds, Bytes,
// Elements) do not themselves validate Kind(); callers dispatch on Kind()
// first, exactly the way the reference C union is accessed through typed
// member reads after a tag check. Keys and Get are the exception: on a
// non-MAP value they return nil and not-found.
type Value struct {
	kind Kind

	b bool
	i int32
	r float64 // also backs DATE, stored as seconds since the Unix epoch
	u [16]byte

	bytes []byte // STRING / URI / BINARY payload
	owned bool   // whether bytes is a heap buffer this Value owns

	elems []*Value // ARRAY, in order

	m *orderedMap // MAP
}

// undefSingleton is the process-wide UNDEF value the source's static
// llsd_undef_t becomes: a read-only package-level value (note 9).
var undefSingleton = &Value{kind: Undef}

// NewUndef returns the UNDEF value.
func NewUndef() *Value { return undefSingleton }

// NewBoolean constructs a BOOLEAN value.
func NewBoolean(b bool) *Value { return &Value{kind: Boolean, b: b} }

// NewInteger constructs an INTEGER value.
func NewInteger(i int32) *Value { return &Value{kind: Integer, i: i} }

// NewReal constructs a REAL value.
func NewReal(r float64) *Value { return &Value{kind: Real, r: r} }

// NewUUID constructs a UUID value from exactly 16 raw bytes.
func NewUUID(u [16]byte) *Value { return &Value{kind: UUID, u: u} }

// ZeroUUID returns the all-zero UUID, a legal value distinct from UNDEF.
func ZeroUUID() *Value { return NewUUID([16]byte{}) }

// NewDate constructs a DATE value from seconds since the Unix epoch,
// preserving sub-second precision.
func NewDate(seconds float64) *Value { return &Value{kind: Date, r: seconds} }

// NewString constructs an owned STRING value from a UTF-8 string.
func NewString(s string) *Value {
	return &Value{kind: String, bytes: []byte(s), owned: true}
}

// NewStringBytes constructs a STRING value from buf without copying,
// taking ownership of it (owned=true) or borrowing it (owned=false).
func NewStringBytes(buf []byte, owned bool) *Value {
	return &Value{kind: String, bytes: buf, owned: owned}
}

// NewURI constructs an owned URI value. The contents are not validated as
// a syntactically correct URI, per spec.
func NewURI(s string) *Value {
	return &Value{kind: URI, bytes: []byte(s), owned: true}
}

// NewURIBytes constructs a URI value from raw bytes.
func NewURIBytes(buf []byte, owned bool) *Value {
	return &Value{kind: URI, bytes: buf, owned: owned}
}

// NewBinary constructs an owned BINARY value, copying data.
func NewBinary(data []byte) *Value {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Value{kind: Binary, bytes: buf, owned: true}
}

// NewBinaryBytes constructs a BINARY value, taking ownership of buf
// without copying (owned=true) or borrowing it (owned=false).
func NewBinaryBytes(buf []byte, owned bool) *Value {
	return &Value{kind: Binary, bytes: buf, owned: owned}
}

// EmptyBinary returns a zero-length BINARY value.
func EmptyBinary() *Value { return NewBinaryBytes(nil, true) }

// NewArray constructs an empty ARRAY value with the given capacity hint.
func NewArray(capacityHint int) *Value {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Value{kind: Array, elems: make([]*Value, 0, capacityHint)}
}

// NewMap constructs an empty MAP value with the given capacity hint.
func NewMap(capacityHint int) *Value {
	return &Value{kind: Map, m: newOrderedMap(capacityHint)}
}

// Kind returns the value's runtime kind.
func (v *Value) Kind() Kind { return v.kind }

// Owned reports whether the value's byte payload (STRING/URI/BINARY) is a
// heap buffer owned by this Value, as opposed to a borrowed slice whose
// lifetime is bound by the caller. The parser always produces owned
// buffers; it is surfaced here only to let callback-based consumers
// report the own_flag parameter the vtable in spec.md §4.4 requires.
func (v *Value) Owned() bool { return v.owned }

// Bool returns the BOOLEAN payload.
func (v *Value) Bool() bool { return v.b }

// Int returns the INTEGER payload.
func (v *Value) Int() int32 { return v.i }

// Real returns the REAL payload, or the DATE payload if Kind() == Date.
func (v *Value) Real() float64 { return v.r }

// DateSeconds returns the DATE payload as seconds since the Unix epoch.
func (v *Value) DateSeconds() float64 { return v.r }

// UUIDBytes returns the 16-byte UUID payload.
func (v *Value) UUIDBytes() [16]byte { return v.u }

// Bytes returns the raw STRING/URI/BINARY payload.
func (v *Value) Bytes() []byte { return v.bytes }

// Text returns the STRING/URI payload decoded as a Go string.
func (v *Value) Text() string { return string(v.bytes) }

// Len returns the element count for ARRAY, the entry count for MAP, and
// an error (ErrWrongKind) for every other kind, matching spec.md's
// size_of operation.
func (v *Value) Len() (int, error) {
	switch v.kind {
	case Array:
		return len(v.elems), nil
	case Map:
		return v.m.len(), nil
	default:
		return 0, errWrongKind(v.kind, "Len")
	}
}

// Elements returns the ARRAY's children in order. The caller must not
// mutate the returned slice; use AppendElement to modify the array.
func (v *Value) Elements() []*Value { return v.elems }

// Keys returns the MAP's keys in insertion order.
func (v *Value) Keys() []string {
	if v.kind != Map {
		return nil
	}
	return v.m.orderedKeys()
}

// Get returns the value bound to key in a MAP, and whether it was found.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != Map {
		return nil, false
	}
	return v.m.get(key)
}
