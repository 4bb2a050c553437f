package binaryenc

import (
	"fmt"
	"io"

	"github.com/arloliu/llsd/codec"
	"github.com/arloliu/llsd/errs"
	"github.com/arloliu/llsd/internal/pool"
	"github.com/arloliu/llsd/sax"
	"github.com/arloliu/llsd/value"
)

// Format writes v to w in the LLSD binary encoding, signature line
// included. Container declared sizes are the exact in-memory element
// count, never advisory, per spec.md §4.5.
func Format(v *value.Value, w io.Writer) error {
	bb := pool.Get()
	defer pool.Put(bb)

	bb.MustWriteString(sax.BinarySignature)
	if err := writeValue(bb, v); err != nil {
		return err
	}

	_, err := bb.WriteTo(w)

	return err
}

func writeLengthPrefixed(bb *pool.ByteBuffer, tag byte, data []byte) {
	var lenBuf [4]byte
	codec.PutUint32(lenBuf[:], uint32(len(data)))
	bb.MustWriteByte(tag)
	bb.MustWrite(lenBuf[:])
	bb.MustWrite(data)
}

func writeValue(bb *pool.ByteBuffer, v *value.Value) error {
	switch v.Kind() {
	case value.Undef:
		bb.MustWriteByte(tagUndef)
	case value.Boolean:
		if v.Bool() {
			bb.MustWriteByte(tagBoolTrue)
		} else {
			bb.MustWriteByte(tagBoolFalse)
		}
	case value.Integer:
		var buf [4]byte
		codec.PutInt32(buf[:], v.Int())
		bb.MustWriteByte(tagInteger)
		bb.MustWrite(buf[:])
	case value.Real:
		var buf [8]byte
		codec.PutFloat64(buf[:], v.Real())
		bb.MustWriteByte(tagReal)
		bb.MustWrite(buf[:])
	case value.Date:
		var buf [8]byte
		codec.PutFloat64(buf[:], v.DateSeconds())
		bb.MustWriteByte(tagDate)
		bb.MustWrite(buf[:])
	case value.UUID:
		u := v.UUIDBytes()
		bb.MustWriteByte(tagUUID)
		bb.MustWrite(u[:])
	case value.String:
		writeLengthPrefixed(bb, tagString, v.Bytes())
	case value.URI:
		writeLengthPrefixed(bb, tagURI, v.Bytes())
	case value.Binary:
		writeLengthPrefixed(bb, tagBinary, v.Bytes())
	case value.Array:
		return writeArray(bb, v)
	case value.Map:
		return writeMap(bb, v)
	default:
		return fmt.Errorf("%w: unrecognized kind %s", errs.ErrStructure, v.Kind())
	}

	return nil
}

func writeArray(bb *pool.ByteBuffer, v *value.Value) error {
	elems := v.Elements()
	var lenBuf [4]byte
	codec.PutUint32(lenBuf[:], uint32(len(elems)))
	bb.MustWriteByte(tagArrayBegin)
	bb.MustWrite(lenBuf[:])
	for _, e := range elems {
		if err := writeValue(bb, e); err != nil {
			return err
		}
	}
	bb.MustWriteByte(tagArrayEnd)

	return nil
}

func writeMap(bb *pool.ByteBuffer, v *value.Value) error {
	keys := v.Keys()
	var lenBuf [4]byte
	codec.PutUint32(lenBuf[:], uint32(len(keys)))
	bb.MustWriteByte(tagMapBegin)
	bb.MustWrite(lenBuf[:])
	for _, key := range keys {
		writeLengthPrefixed(bb, tagString, []byte(key))
		entry, _ := v.Get(key)
		if err := writeValue(bb, entry); err != nil {
			return err
		}
	}
	bb.MustWriteByte(tagMapEnd)

	return nil
}
