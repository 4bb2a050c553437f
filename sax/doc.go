// Package sax defines the callback vtable shared by every LLSD parser
// (binary, XML, notation) and the position-tracking state machine those
// parsers use to synthesize the array/map boundary events the raw wire
// formats never spell out.
//
// A parser never builds a value tree itself: it walks its encoding's
// tokens and invokes Handler methods, in the order in which boundaries
// occur. TreeBuilder is the Handler implementation callers use when they
// just want a *value.Value back; other Handler implementations (a
// length-counter, a pass-through re-serializer) can drive the same
// parsers without ever materializing a tree.
package sax
