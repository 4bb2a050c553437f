// Package value implements the LLSD value tree: the ten-kind tagged union
// described by the LLSD data model, construction and structural-equality
// operations over it, and the total coercion table between scalar kinds.
//
// A Value's Kind is fixed at construction. ARRAY and MAP values own their
// children; Go's garbage collector discharges the recursive-release duty
// the reference implementation performs by hand, so there is no Delete
// operation here (see DESIGN.md for the "ownership" translation).
package value
