// Package xmlenc implements the LLSD XML encoding on top of the
// standard library's encoding/xml.Decoder.Token() — the SAX-style XML
// event stream every XML-handling package in this module's ecosystem
// ultimately builds on, so there is nothing lower-level to reach for.
//
// Parse accepts a complete document, `<?xml ...?>` declaration and
// `<llsd>` wrapper included: the decoder tokenizes the declaration as an
// xml.ProcInst and this package simply skips it, so — unlike binaryenc,
// whose fixed-width signature the caller must strip before dispatch —
// there is no separate signature-stripping step here.
//
// The synthesized ArrayValueEnd/MapKeyEnd/MapValueEnd events are driven
// by the same sax.PositionStack state machine spec.md §4.4.2 describes
// for XML specifically, since XML's raw event stream is the least
// self-delimiting of the three encodings.
package xmlenc
