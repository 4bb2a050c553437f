package archive

// NoOpCompressor bypasses compression and returns the input unchanged.
// Useful for benchmarking and for payloads that are already compressed.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
