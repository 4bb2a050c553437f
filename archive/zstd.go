package archive

// ZstdCompressor compresses using Zstandard. Its Compress/Decompress
// methods live in zstd_pure.go (pure Go, klauspost/compress/zstd) and
// zstd_cgo.go (cgo, valyala/gozstd) behind build tags.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}
