// Package errs declares the sentinel errors for the LLSD error taxonomy.
// Parsers and formatters wrap these with fmt.Errorf("%w: ...") to add
// position/context information, the way the teacher wraps its own
// sentinel errors in blob.NumericDecoder.
package errs

import "errors"

var (
	// ErrTruncatedInput is returned when the input ends mid-record.
	ErrTruncatedInput = errors.New("llsd: truncated input")

	// ErrUnknownTypeByte is returned by the binary parser on an
	// unrecognized record type byte.
	ErrUnknownTypeByte = errors.New("llsd: unknown binary type byte")

	// ErrUnknownTag is returned by the XML and notation parsers on an
	// unrecognized tag or token.
	ErrUnknownTag = errors.New("llsd: unknown tag")

	// ErrMalformedPayload is returned for a non-hex UUID, a base-N decode
	// failure, an integer/real overflow, or an unparseable date.
	ErrMalformedPayload = errors.New("llsd: malformed payload")

	// ErrStructure is returned for a structural violation: an array/map
	// terminator with no matching opener, a key outside a map, a
	// non-string map key, or an out-of-order state transition.
	ErrStructure = errors.New("llsd: structure error")

	// ErrDecoderUnsupported is returned when JSON encoding is requested
	// from Format; JSON is explicitly out of scope.
	ErrDecoderUnsupported = errors.New("llsd: encoding not supported")

	// ErrWrongKind is returned when an operation is applied to a Value
	// of the wrong Kind (e.g. AppendElement on a non-ARRAY value).
	ErrWrongKind = errors.New("llsd: wrong value kind")

	// ErrAborted is returned when a SAX callback returns false, aborting
	// the parse at its current position.
	ErrAborted = errors.New("llsd: parse aborted by callback")
)
