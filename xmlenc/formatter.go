package xmlenc

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/llsd/codec"
	"github.com/arloliu/llsd/errs"
	"github.com/arloliu/llsd/internal/pool"
	"github.com/arloliu/llsd/sax"
	"github.com/arloliu/llsd/value"
)

// Format writes v to w as a complete LLSD XML document: declaration,
// `<llsd>` wrapper, and the single value tree inside it.
func Format(v *value.Value, w io.Writer) error {
	bb := pool.Get()
	defer pool.Put(bb)

	bb.MustWriteString(sax.XMLSignature)
	bb.MustWriteString("<llsd>")
	if err := writeValue(bb, v); err != nil {
		return err
	}
	bb.MustWriteString("</llsd>")

	_, err := bb.WriteTo(w)

	return err
}

func writeEscaped(bb *pool.ByteBuffer, s string) {
	_ = xml.EscapeText(bb, []byte(s))
}

func writeValue(bb *pool.ByteBuffer, v *value.Value) error {
	switch v.Kind() {
	case value.Undef:
		bb.MustWriteString("<undef/>")
	case value.Boolean:
		bb.MustWriteString("<boolean>")
		bb.MustWriteString(v.AsString())
		bb.MustWriteString("</boolean>")
	case value.Integer:
		bb.MustWriteString("<integer>")
		bb.MustWriteString(v.AsString())
		bb.MustWriteString("</integer>")
	case value.Real:
		bb.MustWriteString("<real>")
		bb.MustWriteString(strconv.FormatFloat(v.Real(), 'g', -1, 64))
		bb.MustWriteString("</real>")
	case value.UUID:
		bb.MustWriteString("<uuid>")
		bb.MustWriteString(v.AsString())
		bb.MustWriteString("</uuid>")
	case value.Date:
		bb.MustWriteString("<date>")
		bb.MustWriteString(codec.FormatDate(v.DateSeconds()))
		bb.MustWriteString("</date>")
	case value.String:
		bb.MustWriteString("<string>")
		writeEscaped(bb, v.Text())
		bb.MustWriteString("</string>")
	case value.URI:
		bb.MustWriteString("<uri>")
		writeEscaped(bb, v.Text())
		bb.MustWriteString("</uri>")
	case value.Binary:
		bb.MustWriteString(`<binary encoding="base64">`)
		bb.MustWriteString(codec.EncodeBase64(v.Bytes()))
		bb.MustWriteString("</binary>")
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
	bb.MustWriteString(`<array size="`)
	bb.MustWriteString(strconv.Itoa(len(elems)))
	bb.MustWriteString(`">`)
	for _, e := range elems {
		if err := writeValue(bb, e); err != nil {
			return err
		}
	}
	bb.MustWriteString("</array>")

	return nil
}

func writeMap(bb *pool.ByteBuffer, v *value.Value) error {
	keys := v.Keys()
	bb.MustWriteString(`<map size="`)
	bb.MustWriteString(strconv.Itoa(len(keys)))
	bb.MustWriteString(`">`)
	for _, key := range keys {
		bb.MustWriteString("<key>")
		writeEscaped(bb, key)
		bb.MustWriteString("</key>")
		entry, _ := v.Get(key)
		if err := writeValue(bb, entry); err != nil {
			return err
		}
	}
	bb.MustWriteString("</map>")

	return nil
}
