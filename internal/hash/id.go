// Package hash provides the key-hashing primitive backing the MAP
// container's lookup table.
package hash

import "github.com/cespare/xxhash/v2"

// Key computes the xxHash64 of a MAP key's UTF-8 bytes.
//
// LLSD leaves the map implementation's hash function unspecified
// ("the default hash table load factor is implementation-defined;
// correctness does not depend on it"); xxHash64 is used here instead of
// the reference implementation's FNV-1a because it is faster and already
// part of this module's dependency stack.
func Key(data string) uint64 {
	return xxhash.Sum64String(data)
}
