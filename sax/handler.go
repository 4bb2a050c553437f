package sax

// Handler is the callback vtable a parser drives. Every method returns
// false to abort the parse at the current position; a parser that
// receives false stops reading and surfaces errs.ErrAborted to its
// caller.
//
// ArrayValueEnd, MapKeyEnd, and MapValueEnd are synthesized: no wire
// encoding carries a token for them directly. They fire once per
// element/entry so that a streaming consumer (one that never builds a
// tree) can tell when a logical record boundary has been reached.
type Handler interface {
	Undef() bool
	Boolean(b bool) bool
	Integer(i int32) bool
	Real(r float64) bool
	UUID(u [16]byte) bool
	Date(seconds float64) bool
	String(data []byte, owned bool) bool
	URI(data []byte, owned bool) bool
	Binary(data []byte, owned bool) bool

	ArrayBegin(declaredSize int) bool
	ArrayEnd() bool
	MapBegin(declaredSize int) bool
	MapEnd() bool

	// Key is invoked for the STRING that serves as a map key. It is
	// distinct from String because the XML and notation encodings tag
	// keys differently from ordinary string values, and because key
	// closure drives a different PositionStack transition than value
	// closure does.
	Key(data []byte, owned bool) bool

	ArrayValueEnd() bool
	MapKeyEnd() bool
	MapValueEnd() bool
}
