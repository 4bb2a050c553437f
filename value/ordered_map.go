package value

import "github.com/arloliu/llsd/internal/hash"

// orderedMap is the MAP container primitive: an insertion-ordered,
// chained hash table keyed by the byte-wise UTF-8 key. spec.md §4.2 only
// requires *some* hash table ("the default hash table load factor is
// implementation-defined; correctness does not depend on it"), so this
// hashes keys with xxHash64 (internal/hash) in place of the reference
// implementation's FNV-1a; everything else about the contract — insertion
// order preserved for iteration, duplicate insert overwrites the value in
// place — matches spec.md exactly.
type orderedMap struct {
	keys    []string
	vals    []*Value
	buckets []int32 // bucket -> index into keys/vals, or -1
	next    []int32 // chain: keys[i] -> keys[next[i]], or -1
}

const mapMaxLoadFactor = 0.75

func newOrderedMap(capacityHint int) *orderedMap {
	if capacityHint < 0 {
		capacityHint = 0
	}
	m := &orderedMap{
		keys: make([]string, 0, capacityHint),
		vals: make([]*Value, 0, capacityHint),
		next: make([]int32, 0, capacityHint),
	}
	m.buckets = make([]int32, bucketCountFor(capacityHint))
	resetBuckets(m.buckets)
	return m
}

func bucketCountFor(n int) int {
	size := 8
	for size < n*2 {
		size *= 2
	}
	return size
}

func resetBuckets(buckets []int32) {
	for i := range buckets {
		buckets[i] = -1
	}
}

func (m *orderedMap) bucketFor(key string, numBuckets int) int {
	return int(hash.Key(key) % uint64(numBuckets))
}

func (m *orderedMap) len() int { return len(m.keys) }

func (m *orderedMap) orderedKeys() []string { return m.keys }

func (m *orderedMap) get(key string) (*Value, bool) {
	if len(m.buckets) == 0 {
		return nil, false
	}
	idx := m.buckets[m.bucketFor(key, len(m.buckets))]
	for idx != -1 {
		if m.keys[idx] == key {
			return m.vals[idx], true
		}
		idx = m.next[idx]
	}
	return nil, false
}

// set inserts key/val, or overwrites the value bound to an existing key
// in place (preserving its original insertion position).
func (m *orderedMap) set(key string, val *Value) {
	bucket := m.bucketFor(key, len(m.buckets))
	idx := m.buckets[bucket]
	for idx != -1 {
		if m.keys[idx] == key {
			m.vals[idx] = val
			return
		}
		idx = m.next[idx]
	}

	if float64(len(m.keys)+1) > mapMaxLoadFactor*float64(len(m.buckets)) {
		m.grow()
		bucket = m.bucketFor(key, len(m.buckets))
	}

	newIdx := int32(len(m.keys))
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
	m.next = append(m.next, m.buckets[bucket])
	m.buckets[bucket] = newIdx
}

func (m *orderedMap) grow() {
	newBuckets := make([]int32, len(m.buckets)*2)
	resetBuckets(newBuckets)
	for i, key := range m.keys {
		b := m.bucketFor(key, len(newBuckets))
		m.next[i] = newBuckets[b]
		newBuckets[b] = int32(i)
	}
	m.buckets = newBuckets
}
