package archive

import "fmt"

// Compressor compresses a complete encoded LLSD document.
type Compressor interface {
	// Compress compresses data and returns the compressed result; data is
	// not modified. The returned slice is newly allocated, except that
	// NoOpCompressor returns data itself.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes; data is
	// not modified. The returned slice is newly allocated, except that
	// NoOpCompressor returns data itself.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionType names one of the built-in codecs.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (t CompressionType) String() string {
	switch t {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Built-in Codec instances, ready to pass to Format/Parse.
var (
	NoOp Codec = NoOpCompressor{}
	Zstd Codec = ZstdCompressor{}
	S2   Codec = S2Compressor{}
	LZ4  Codec = LZ4Compressor{}
)

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NoOp,
	CompressionZstd: Zstd,
	CompressionS2:   S2,
	CompressionLZ4:  LZ4,
}

// GetCodec retrieves a built-in Codec for the named compression type.
func GetCodec(t CompressionType) (Codec, error) {
	if c, ok := builtinCodecs[t]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("archive: unsupported compression type: %s", t)
}
