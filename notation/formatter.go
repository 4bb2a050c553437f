package notation

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/llsd/codec"
	"github.com/arloliu/llsd/errs"
	"github.com/arloliu/llsd/internal/pool"
	"github.com/arloliu/llsd/value"
)

// Format writes v to w in the LLSD notation encoding. There is no
// document-level signature in this encoding; a consumer distinguishes it
// from binary/XML by the absence of either of those signatures, per
// sax.Detect.
func Format(v *value.Value, w io.Writer) error {
	bb := pool.Get()
	defer pool.Put(bb)

	if err := writeValue(bb, v); err != nil {
		return err
	}

	_, err := bb.WriteTo(w)

	return err
}

func writeQuoted(bb *pool.ByteBuffer, quote byte, s string) {
	bb.MustWriteByte(quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == quote || c == '\\' {
			bb.MustWriteByte('\\')
		}
		bb.MustWriteByte(c)
	}
	bb.MustWriteByte(quote)
}

func writeValue(bb *pool.ByteBuffer, v *value.Value) error {
	switch v.Kind() {
	case value.Undef:
		bb.MustWriteByte('!')
	case value.Boolean:
		if v.Bool() {
			bb.MustWriteByte('1')
		} else {
			bb.MustWriteByte('0')
		}
	case value.Integer:
		bb.MustWriteByte('i')
		bb.MustWriteString(strconv.FormatInt(int64(v.Int()), 10))
	case value.Real:
		bb.MustWriteByte('r')
		bb.MustWriteString(strconv.FormatFloat(v.Real(), 'g', -1, 64))
	case value.UUID:
		bb.MustWriteByte('u')
		bb.MustWriteString(v.AsString())
	case value.Date:
		bb.MustWriteByte('d')
		writeQuoted(bb, '"', codec.FormatDate(v.DateSeconds()))
	case value.String:
		bb.MustWriteByte('s')
		bb.MustWriteByte('(')
		bb.MustWriteString(strconv.Itoa(len(v.Bytes())))
		bb.MustWriteByte(')')
		writeQuoted(bb, '"', v.Text())
	case value.URI:
		bb.MustWriteByte('l')
		writeQuoted(bb, '"', v.Text())
	case value.Binary:
		encoded := codec.EncodeBase64(v.Bytes())
		bb.MustWriteByte('b')
		bb.MustWriteByte('(')
		bb.MustWriteString(strconv.Itoa(len(encoded)))
		bb.MustWriteByte(')')
		writeQuoted(bb, '"', encoded)
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
	bb.MustWriteByte('[')
	for i, e := range v.Elements() {
		if i > 0 {
			bb.MustWriteByte(',')
		}
		if err := writeValue(bb, e); err != nil {
			return err
		}
	}
	bb.MustWriteByte(']')

	return nil
}

func writeMap(bb *pool.ByteBuffer, v *value.Value) error {
	bb.MustWriteByte('{')
	for i, key := range v.Keys() {
		if i > 0 {
			bb.MustWriteByte(',')
		}
		writeQuoted(bb, '\'', key)
		bb.MustWriteByte(':')
		entry, _ := v.Get(key)
		if err := writeValue(bb, entry); err != nil {
			return err
		}
	}
	bb.MustWriteByte('}')

	return nil
}
