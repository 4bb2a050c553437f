// Package llsd implements LLSD (Linden Lab Structured Data): a
// self-describing, schema-less data model with three interchangeable
// wire encodings (binary, XML, and a human-readable notation form).
//
// Parse autodetects the encoding from the document's leading bytes and
// builds a value tree. Format serializes a value tree to one of the
// three encodings. The value constructors and accessors live in the
// value subpackage and are re-exported here so callers can write
// llsd.NewString(...) directly instead of reaching into the subpackage.
//
// For advanced usage — streaming SAX-style consumers that avoid building
// a tree, or driving a specific encoding's parser/formatter directly —
// use the binaryenc, xmlenc, and notation packages, and the sax package's
// Handler interface.
package llsd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/llsd/binaryenc"
	"github.com/arloliu/llsd/errs"
	"github.com/arloliu/llsd/notation"
	"github.com/arloliu/llsd/sax"
	"github.com/arloliu/llsd/value"
	"github.com/arloliu/llsd/xmlenc"
)

// Encoding identifies one of the wire encodings Format/Parse understand.
type Encoding = sax.Encoding

const (
	Binary   = sax.Binary
	XML      = sax.XML
	Notation = sax.Notation
	JSON     = sax.JSON
)

// Re-exported value model, so callers need only import this package for
// the common case. Value's Kind constants (value.Undef, value.Boolean,
// ...) are not re-exported here since the Encoding constants above
// already claim the short names (Binary, XML) that would collide; use
// the value package directly when comparing against v.Kind().
type (
	Value = value.Value
	Kind  = value.Kind
)

var (
	NewUndef       = value.NewUndef
	NewBoolean     = value.NewBoolean
	NewInteger     = value.NewInteger
	NewReal        = value.NewReal
	NewUUID        = value.NewUUID
	ZeroUUID       = value.ZeroUUID
	NewDate        = value.NewDate
	NewString      = value.NewString
	NewStringBytes = value.NewStringBytes
	NewURI         = value.NewURI
	NewURIBytes    = value.NewURIBytes
	NewBinary      = value.NewBinary
	NewBinaryBytes = value.NewBinaryBytes
	EmptyBinary    = value.EmptyBinary
	NewArray       = value.NewArray
	NewMap         = value.NewMap
)

// Parse autodetects the encoding of source by its leading bytes and
// returns the resulting value tree.
func Parse(source []byte) (*Value, error) {
	enc := sax.Detect(source)
	tb := sax.NewTreeBuilder()

	switch enc {
	case sax.Binary:
		if err := binaryenc.Parse(bytes.NewReader(source[len(sax.BinarySignature):]), tb); err != nil {
			return nil, err
		}
	case sax.XML:
		if err := xmlenc.Parse(bytes.NewReader(source), tb); err != nil {
			return nil, err
		}
	default:
		if err := notation.Parse(bytes.NewReader(source), tb); err != nil {
			return nil, err
		}
	}

	return tb.Result()
}

// Format serializes v to w using enc. JSON is a named encoding constant
// per spec.md §6 but is never implemented; requesting it returns
// errs.ErrDecoderUnsupported.
func Format(v *Value, enc Encoding, w io.Writer) error {
	switch enc {
	case sax.Binary:
		return binaryenc.Format(v, w)
	case sax.XML:
		return xmlenc.Format(v, w)
	case sax.Notation:
		return notation.Format(v, w)
	case sax.JSON:
		return fmt.Errorf("%w: JSON encoding", errs.ErrDecoderUnsupported)
	default:
		return fmt.Errorf("%w: unknown encoding %s", errs.ErrDecoderUnsupported, enc)
	}
}
