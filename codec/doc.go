// Package codec provides the leaf-level byte-oriented helpers the LLSD
// wire encodings are built from: base16/base64/base85 for BINARY payloads
// embedded in text encodings, big-endian framing for INTEGER/REAL/DATE
// records in the binary encoding, and ISO-8601 date formatting.
//
// None of these helpers know about the LLSD value tree or the parser
// framework; they are pure byte/string transforms, grounded the way the
// teacher's endian package keeps byte-order concerns separate from the
// blob encoders that use them.
package codec
