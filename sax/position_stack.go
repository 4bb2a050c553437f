package sax

import "github.com/arloliu/llsd/errs"

// position is one frame of the container-position state machine from
// spec.md §4.4.2, generalized here to drive all three parsers rather
// than just XML (the vtable requires the same synthesized events from
// every encoding).
type position int

const (
	topLevel position = iota
	arrayStart
	arrayValue
	mapStart
	mapKey
	mapValue
)

// PositionStack tracks where a parser sits inside nested ARRAY/MAP
// containers and fires the synthesized ArrayValueEnd/MapKeyEnd/
// MapValueEnd callbacks at the boundaries spec.md §4.4.2 describes.
// It is not safe for concurrent use, matching every other parser type
// in this module.
type PositionStack struct {
	frames []position
}

// NewPositionStack returns a stack positioned at the top level, i.e.
// ready to receive the single outermost value of a document.
func NewPositionStack() *PositionStack {
	return &PositionStack{frames: []position{topLevel}}
}

func (s *PositionStack) top() position { return s.frames[len(s.frames)-1] }

func (s *PositionStack) setTop(p position) { s.frames[len(s.frames)-1] = p }

// Depth returns the current container nesting depth (0 at top level).
func (s *PositionStack) Depth() int { return len(s.frames) - 1 }

// EnterArray pushes a new ARRAY_START frame, entered right after
// ArrayBegin fires.
func (s *PositionStack) EnterArray() { s.frames = append(s.frames, arrayStart) }

// EnterMap pushes a new MAP_START frame, entered right after MapBegin
// fires.
func (s *PositionStack) EnterMap() { s.frames = append(s.frames, mapStart) }

// ValueClosed reports that a scalar or a nested container just finished
// as the value in the current context (a top-level value, an ARRAY
// element, or the value half of a MAP entry). It fires ArrayValueEnd or
// MapKeyEnd as required by the predecessor's state and returns false if
// the handler aborted.
func (s *PositionStack) ValueClosed(h Handler) bool {
	switch s.top() {
	case topLevel:
		// The single outermost value; no container context to track.
	case arrayStart:
		s.setTop(arrayValue)
	case arrayValue:
		if !h.ArrayValueEnd() {
			return false
		}
	case mapKey:
		if !h.MapKeyEnd() {
			return false
		}
		s.setTop(mapValue)
	case mapStart, mapValue:
		// A bare value without a preceding key is a structural error;
		// callers validate this via KeyClosed before reaching here.
	}

	return true
}

// KeyClosed reports that a MAP key just finished. It fires MapValueEnd
// for the preceding entry, if any, and returns errs.ErrStructure if the
// current context is not a MAP (a key appearing outside any map, or
// immediately after another key with no intervening value).
func (s *PositionStack) KeyClosed(h Handler) (bool, error) {
	switch s.top() {
	case mapStart:
		s.setTop(mapKey)
	case mapValue:
		if !h.MapValueEnd() {
			return false, nil
		}
		s.setTop(mapKey)
	default:
		return false, errs.ErrStructure
	}

	return true, nil
}

// ExitArray flushes the trailing ArrayValueEnd for the last element (if
// any) and pops the frame. It returns errs.ErrStructure if the current
// context is not an ARRAY.
func (s *PositionStack) ExitArray(h Handler) (bool, error) {
	switch s.top() {
	case arrayStart:
	case arrayValue:
		if !h.ArrayValueEnd() {
			return false, nil
		}
	default:
		return false, errs.ErrStructure
	}
	s.frames = s.frames[:len(s.frames)-1]

	return true, nil
}

// ExitMap flushes the trailing MapValueEnd for the last entry (if any)
// and pops the frame. It returns errs.ErrStructure if the current
// context is not a MAP, or if a key was opened without a matching
// value.
func (s *PositionStack) ExitMap(h Handler) (bool, error) {
	switch s.top() {
	case mapStart:
	case mapValue:
		if !h.MapValueEnd() {
			return false, nil
		}
	case mapKey:
		return false, errs.ErrStructure
	default:
		return false, errs.ErrStructure
	}
	s.frames = s.frames[:len(s.frames)-1]

	return true, nil
}
