package codec

import (
	"encoding/binary"
	"math"
)

// PutInt32 writes v to b (which must be at least 4 bytes) as big-endian network order.
func PutInt32(b []byte, v int32) {
	binary.BigEndian.PutUint32(b, uint32(v))
}

// Int32 reads a big-endian network-order int32 from b (which must be at least 4 bytes).
func Int32(b []byte) int32 {
	return int32(binary.BigEndian.Uint32(b))
}

// PutFloat64 writes v to b (which must be at least 8 bytes) as big-endian
// network-order IEEE-754.
func PutFloat64(b []byte, v float64) {
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
}

// Float64 reads a big-endian network-order IEEE-754 float64 from b
// (which must be at least 8 bytes).
func Float64(b []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

// PutUint32 writes v to b (which must be at least 4 bytes) as big-endian network order.
func PutUint32(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// Uint32 reads a big-endian network-order uint32 from b (which must be at least 4 bytes).
func Uint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}
