//go:build nobuild

package archive

import "github.com/valyala/gozstd"

// Kept disabled by the nobuild tag, the way the teacher keeps its cgo
// zstd path on ice: gozstd needs a C toolchain this module does not
// assume is present. zstd_pure.go is the active implementation.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
