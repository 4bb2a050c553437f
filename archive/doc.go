// Package archive wraps llsd.Format/llsd.Parse with a pluggable
// compression codec, for callers storing or transmitting LLSD documents
// where size matters more than the ability to read the bytes directly.
//
// Compression is applied to the fully-encoded document, not to
// individual values: Format serializes v in the requested encoding, then
// compresses the result; Parse reverses both steps. The four built-in
// codecs — NoOp, Zstd, S2, LZ4 — trade compression ratio for speed
// differently:
//
//   - NoOp: no compression, for testing and already-compressed payloads.
//   - S2: fast, moderate ratio, good default for latency-sensitive paths.
//   - LZ4: fast decompression, commonly used when documents are written
//     once and read many times.
//   - Zstd: best ratio, higher CPU cost, suited to cold storage.
package archive
