package binaryenc

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arloliu/llsd/codec"
	"github.com/arloliu/llsd/errs"
	"github.com/arloliu/llsd/sax"
)

const (
	tagUndef       = '!'
	tagBoolTrue    = '1'
	tagBoolFalse   = '0'
	tagInteger     = 'i'
	tagReal        = 'r'
	tagUUID        = 'u'
	tagBinary      = 'b'
	tagString      = 's'
	tagURI         = 'l'
	tagDate        = 'd'
	tagArrayBegin  = '['
	tagArrayEnd    = ']'
	tagMapBegin    = '{'
	tagMapEnd      = '}'
)

// Parse reads one LLSD binary-encoded value from r — the record stream
// that follows the signature line — and drives h with the corresponding
// callbacks. It returns errs.ErrAborted if a callback returned false.
func Parse(r io.Reader, h sax.Handler) error {
	br := bufio.NewReader(r)
	pos := sax.NewPositionStack()

	ok, err := readValue(br, h, pos)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrAborted
	}

	return nil
}

func readByte(br *bufio.Reader) (byte, error) {
	b, err := br.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrTruncatedInput, err)
	}

	return b, nil
}

func readExact(br *bufio.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrTruncatedInput, err)
	}

	return buf, nil
}

func readDeclaredSize(br *bufio.Reader) (int, error) {
	buf, err := readExact(br, 4)
	if err != nil {
		return 0, err
	}

	return int(codec.Uint32(buf)), nil
}

func readLengthPrefixed(br *bufio.Reader) ([]byte, error) {
	n, err := readDeclaredSize(br)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	return readExact(br, n)
}

// readValue reads exactly one record — a scalar or a full container —
// and returns false without error if a callback aborted the parse.
func readValue(br *bufio.Reader, h sax.Handler, pos *sax.PositionStack) (bool, error) {
	tag, err := readByte(br)
	if err != nil {
		return false, err
	}

	switch tag {
	case tagUndef:
		return h.Undef(), nil
	case tagBoolTrue:
		return h.Boolean(true), nil
	case tagBoolFalse:
		return h.Boolean(false), nil
	case tagInteger:
		buf, err := readExact(br, 4)
		if err != nil {
			return false, err
		}

		return h.Integer(codec.Int32(buf)), nil
	case tagReal:
		buf, err := readExact(br, 8)
		if err != nil {
			return false, err
		}

		return h.Real(codec.Float64(buf)), nil
	case tagDate:
		buf, err := readExact(br, 8)
		if err != nil {
			return false, err
		}

		return h.Date(codec.Float64(buf)), nil
	case tagUUID:
		buf, err := readExact(br, 16)
		if err != nil {
			return false, err
		}
		var u [16]byte
		copy(u[:], buf)

		return h.UUID(u), nil
	case tagBinary:
		data, err := readLengthPrefixed(br)
		if err != nil {
			return false, err
		}

		return h.Binary(data, true), nil
	case tagString:
		data, err := readLengthPrefixed(br)
		if err != nil {
			return false, err
		}

		return h.String(data, true), nil
	case tagURI:
		data, err := readLengthPrefixed(br)
		if err != nil {
			return false, err
		}

		return h.URI(data, true), nil
	case tagArrayBegin:
		return readArray(br, h, pos)
	case tagMapBegin:
		return readMap(br, h, pos)
	default:
		return false, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownTypeByte, tag)
	}
}

func readArray(br *bufio.Reader, h sax.Handler, pos *sax.PositionStack) (bool, error) {
	declared, err := readDeclaredSize(br)
	if err != nil {
		return false, err
	}
	if !h.ArrayBegin(declared) {
		return false, nil
	}
	pos.EnterArray()

	for {
		peek, err := br.Peek(1)
		if err != nil {
			return false, fmt.Errorf("%w: %v", errs.ErrTruncatedInput, err)
		}
		if peek[0] == tagArrayEnd {
			_, _ = br.Discard(1)
			ok, err := pos.ExitArray(h)
			if err != nil || !ok {
				return false, err
			}

			return h.ArrayEnd(), nil
		}

		ok, err := readValue(br, h, pos)
		if err != nil || !ok {
			return false, err
		}
		if !pos.ValueClosed(h) {
			return false, nil
		}
	}
}

func readMap(br *bufio.Reader, h sax.Handler, pos *sax.PositionStack) (bool, error) {
	declared, err := readDeclaredSize(br)
	if err != nil {
		return false, err
	}
	if !h.MapBegin(declared) {
		return false, nil
	}
	pos.EnterMap()

	for {
		peek, err := br.Peek(1)
		if err != nil {
			return false, fmt.Errorf("%w: %v", errs.ErrTruncatedInput, err)
		}
		if peek[0] == tagMapEnd {
			_, _ = br.Discard(1)
			ok, err := pos.ExitMap(h)
			if err != nil || !ok {
				return false, err
			}

			return h.MapEnd(), nil
		}

		keyTag, err := readByte(br)
		if err != nil {
			return false, err
		}
		if keyTag != tagString {
			return false, fmt.Errorf("%w: map key must be a string record, got 0x%02x", errs.ErrStructure, keyTag)
		}
		key, err := readLengthPrefixed(br)
		if err != nil {
			return false, err
		}
		if !h.Key(key, true) {
			return false, nil
		}
		if ok, err := pos.KeyClosed(h); err != nil || !ok {
			return false, err
		}

		ok, err := readValue(br, h, pos)
		if err != nil || !ok {
			return false, err
		}
		if !pos.ValueClosed(h) {
			return false, nil
		}
	}
}
