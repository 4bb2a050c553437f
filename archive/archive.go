package archive

import (
	"bytes"
	"io"

	"github.com/arloliu/llsd"
	"github.com/arloliu/llsd/value"
)

// Format encodes v in enc and compresses the result with codec, writing
// the compressed bytes to w.
func Format(v *value.Value, enc llsd.Encoding, codec Codec, w io.Writer) error {
	var buf bytes.Buffer
	if err := llsd.Format(v, enc, &buf); err != nil {
		return err
	}

	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return err
	}

	_, err = w.Write(compressed)

	return err
}

// Parse decompresses r with codec and autodetects/parses the resulting
// LLSD document.
func Parse(r io.Reader, codec Codec) (*value.Value, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(compressed)
	if err != nil {
		return nil, err
	}

	return llsd.Parse(data)
}
