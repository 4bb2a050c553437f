// Package binaryenc implements the LLSD binary encoding: a flat,
// state-free stream of single-byte-tagged, length-prefixed records.
//
// Parse expects the 18-byte signature line (sax.BinarySignature)
// already stripped by the caller — llsd.Parse detects the encoding and
// consumes the signature before handing the remainder to this package,
// so Parse itself never has to special-case it. Format writes the
// signature as the first thing it emits, keeping the pair symmetric
// from a caller that always goes through the llsd package.
package binaryenc
