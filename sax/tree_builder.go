package sax

import (
	"github.com/arloliu/llsd/errs"
	"github.com/arloliu/llsd/value"
)

type treeFrame struct {
	container  *value.Value
	pendingKey string
}

// TreeBuilder is the default Handler: it materializes the parsed stream
// into a *value.Value tree. It ignores ArrayValueEnd, MapKeyEnd, and
// MapValueEnd, since a tree consumer has no use for synthesized
// boundaries — it already has the whole structure once parsing
// finishes.
type TreeBuilder struct {
	result *value.Value
	done   bool
	frames []treeFrame
	err    error
}

// NewTreeBuilder returns an empty TreeBuilder ready to drive a Parse call.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

// Result returns the parsed value tree, or the first structural error
// encountered while building it.
func (t *TreeBuilder) Result() (*value.Value, error) {
	if t.err != nil {
		return nil, t.err
	}
	if !t.done {
		return nil, errs.ErrStructure
	}

	return t.result, nil
}

func (t *TreeBuilder) fail(err error) bool {
	if t.err == nil {
		t.err = err
	}

	return false
}

// emit attaches v to whatever is open (the enclosing array, the
// enclosing map entry's pending key, or the document root).
func (t *TreeBuilder) emit(v *value.Value) bool {
	if len(t.frames) == 0 {
		if t.done {
			return t.fail(errs.ErrStructure)
		}
		t.result = v
		t.done = true

		return true
	}

	top := &t.frames[len(t.frames)-1]
	switch top.container.Kind() {
	case value.Array:
		if err := top.container.AppendElement(v); err != nil {
			return t.fail(err)
		}
	case value.Map:
		if err := top.container.SetMapEntry(top.pendingKey, v); err != nil {
			return t.fail(err)
		}
		top.pendingKey = ""
	default:
		return t.fail(errs.ErrStructure)
	}

	return true
}

func (t *TreeBuilder) Undef() bool           { return t.emit(value.NewUndef()) }
func (t *TreeBuilder) Boolean(b bool) bool   { return t.emit(value.NewBoolean(b)) }
func (t *TreeBuilder) Integer(i int32) bool  { return t.emit(value.NewInteger(i)) }
func (t *TreeBuilder) Real(r float64) bool   { return t.emit(value.NewReal(r)) }
func (t *TreeBuilder) UUID(u [16]byte) bool  { return t.emit(value.NewUUID(u)) }
func (t *TreeBuilder) Date(sec float64) bool { return t.emit(value.NewDate(sec)) }

func (t *TreeBuilder) String(data []byte, owned bool) bool {
	return t.emit(value.NewStringBytes(data, owned))
}

func (t *TreeBuilder) URI(data []byte, owned bool) bool {
	return t.emit(value.NewURIBytes(data, owned))
}

func (t *TreeBuilder) Binary(data []byte, owned bool) bool {
	return t.emit(value.NewBinaryBytes(data, owned))
}

func (t *TreeBuilder) ArrayBegin(declaredSize int) bool {
	t.frames = append(t.frames, treeFrame{container: value.NewArray(declaredSize)})

	return true
}

func (t *TreeBuilder) ArrayEnd() bool {
	if len(t.frames) == 0 {
		return t.fail(errs.ErrStructure)
	}
	arr := t.frames[len(t.frames)-1].container
	t.frames = t.frames[:len(t.frames)-1]

	return t.emit(arr)
}

func (t *TreeBuilder) MapBegin(declaredSize int) bool {
	t.frames = append(t.frames, treeFrame{container: value.NewMap(declaredSize)})

	return true
}

func (t *TreeBuilder) MapEnd() bool {
	if len(t.frames) == 0 {
		return t.fail(errs.ErrStructure)
	}
	m := t.frames[len(t.frames)-1].container
	t.frames = t.frames[:len(t.frames)-1]

	return t.emit(m)
}

func (t *TreeBuilder) Key(data []byte, owned bool) bool {
	if len(t.frames) == 0 {
		return t.fail(errs.ErrStructure)
	}
	top := &t.frames[len(t.frames)-1]
	if top.container.Kind() != value.Map {
		return t.fail(errs.ErrStructure)
	}
	top.pendingKey = string(data)

	return true
}

func (t *TreeBuilder) ArrayValueEnd() bool { return true }
func (t *TreeBuilder) MapKeyEnd() bool     { return true }
func (t *TreeBuilder) MapValueEnd() bool   { return true }
