package notation

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/llsd/codec"
	"github.com/arloliu/llsd/errs"
	"github.com/arloliu/llsd/sax"
)

// Parse reads one LLSD notation document from r and drives h with the
// corresponding callbacks. It returns errs.ErrAborted if a callback
// returned false.
func Parse(r io.Reader, h sax.Handler) error {
	br := bufio.NewReader(r)
	pos := sax.NewPositionStack()

	if err := skipWhitespace(br); err != nil {
		return err
	}
	ok, err := readValue(br, h, pos)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrAborted
	}

	return nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func skipWhitespace(br *bufio.Reader) error {
	for {
		b, err := br.Peek(1)
		if err != nil {
			if err == io.EOF {
				return nil
			}

			return fmt.Errorf("%w: %v", errs.ErrTruncatedInput, err)
		}
		if !isSpace(b[0]) {
			return nil
		}
		_, _ = br.ReadByte()
	}
}

func readByte(br *bufio.Reader) (byte, error) {
	b, err := br.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrTruncatedInput, err)
	}

	return b, nil
}

func peekByte(br *bufio.Reader) (byte, bool) {
	b, err := br.Peek(1)
	if err != nil {
		return 0, false
	}

	return b[0], true
}

// readQuoted reads a quote-delimited payload. A backslash escapes the
// following byte literally; no other escape sequences are recognized.
func readQuoted(br *bufio.Reader, quote byte) (string, error) {
	open, err := readByte(br)
	if err != nil {
		return "", err
	}
	if open != quote {
		return "", fmt.Errorf("%w: expected %q, got %q", errs.ErrStructure, quote, open)
	}

	var sb strings.Builder
	for {
		b, err := readByte(br)
		if err != nil {
			return "", err
		}
		if b == '\\' {
			next, err := readByte(br)
			if err != nil {
				return "", err
			}
			sb.WriteByte(next)

			continue
		}
		if b == quote {
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

// readLengthPrefix reads "(<digits>)" and returns the enclosed value.
func readLengthPrefix(br *bufio.Reader) (int, error) {
	open, err := readByte(br)
	if err != nil {
		return 0, err
	}
	if open != '(' {
		return 0, fmt.Errorf("%w: expected '(' before length prefix, got %q", errs.ErrStructure, open)
	}

	var sb strings.Builder
	for {
		b, err := readByte(br)
		if err != nil {
			return 0, err
		}
		if b == ')' {
			break
		}
		sb.WriteByte(b)
	}

	n, err := strconv.Atoi(sb.String())
	if err != nil {
		return 0, fmt.Errorf("%w: malformed length prefix %q", errs.ErrMalformedPayload, sb.String())
	}

	return n, nil
}

func readNumericRun(br *bufio.Reader, allowFraction bool) (string, error) {
	var sb strings.Builder
	if b, ok := peekByte(br); ok && (b == '+' || b == '-') {
		_, _ = br.ReadByte()
		sb.WriteByte(b)
	}
	for {
		b, ok := peekByte(br)
		if !ok || b < '0' || b > '9' {
			break
		}
		_, _ = br.ReadByte()
		sb.WriteByte(b)
	}
	if !allowFraction {
		return sb.String(), nil
	}
	if b, ok := peekByte(br); ok && b == '.' {
		_, _ = br.ReadByte()
		sb.WriteByte(b)
		for {
			b, ok := peekByte(br)
			if !ok || b < '0' || b > '9' {
				break
			}
			_, _ = br.ReadByte()
			sb.WriteByte(b)
		}
	}
	if b, ok := peekByte(br); ok && (b == 'e' || b == 'E') {
		_, _ = br.ReadByte()
		sb.WriteByte(b)
		if b2, ok := peekByte(br); ok && (b2 == '+' || b2 == '-') {
			_, _ = br.ReadByte()
			sb.WriteByte(b2)
		}
		for {
			b, ok := peekByte(br)
			if !ok || b < '0' || b > '9' {
				break
			}
			_, _ = br.ReadByte()
			sb.WriteByte(b)
		}
	}

	return sb.String(), nil
}

func isHexOrDash(b byte) bool {
	return b == '-' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func readUUIDText(br *bufio.Reader) ([16]byte, error) {
	var u [16]byte
	var sb strings.Builder
	for {
		b, ok := peekByte(br)
		if !ok || !isHexOrDash(b) {
			break
		}
		_, _ = br.ReadByte()
		sb.WriteByte(b)
	}
	hexOnly := strings.ReplaceAll(sb.String(), "-", "")
	buf, err := codec.DecodeBase16(hexOnly)
	if err != nil || len(buf) != 16 {
		return u, fmt.Errorf("%w: malformed uuid %q", errs.ErrMalformedPayload, sb.String())
	}
	copy(u[:], buf)

	return u, nil
}

func decodeBinaryPayload(encoding string, text string) ([]byte, error) {
	switch encoding {
	case "16":
		return codec.DecodeBase16(text)
	case "85":
		return codec.DecodeBase85(text)
	default:
		return codec.DecodeBase64(text)
	}
}

// readValue dispatches on the next non-whitespace byte.
func readValue(br *bufio.Reader, h sax.Handler, pos *sax.PositionStack) (bool, error) {
	tag, err := readByte(br)
	if err != nil {
		return false, err
	}

	switch tag {
	case '!':
		return h.Undef(), nil
	case '1':
		return h.Boolean(true), nil
	case '0':
		return h.Boolean(false), nil
	case 'i':
		text, err := readNumericRun(br, false)
		if err != nil {
			return false, err
		}
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return false, fmt.Errorf("%w: malformed integer %q", errs.ErrMalformedPayload, text)
		}

		return h.Integer(int32(n)), nil
	case 'r':
		text, err := readNumericRun(br, true)
		if err != nil {
			return false, err
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return false, fmt.Errorf("%w: malformed real %q", errs.ErrMalformedPayload, text)
		}

		return h.Real(f), nil
	case 'u':
		u, err := readUUIDText(br)
		if err != nil {
			return false, err
		}

		return h.UUID(u), nil
	case 'd':
		text, err := readQuoted(br, '"')
		if err != nil {
			return false, err
		}
		sec, err := codec.ParseDate(text)
		if err != nil {
			return false, err
		}

		return h.Date(sec), nil
	case 's':
		if _, err := readLengthPrefix(br); err != nil {
			return false, err
		}
		text, err := readQuoted(br, '"')
		if err != nil {
			return false, err
		}

		return h.String([]byte(text), true), nil
	case 'l':
		text, err := readQuoted(br, '"')
		if err != nil {
			return false, err
		}

		return h.URI([]byte(text), true), nil
	case 'b':
		return readBinary(br, h)
	case '[':
		return readArray(br, h, pos)
	case '{':
		return readMap(br, h, pos)
	default:
		return false, fmt.Errorf("%w: unexpected token %q", errs.ErrUnknownTag, tag)
	}
}

func readBinary(br *bufio.Reader, h sax.Handler) (bool, error) {
	b0, ok := peekByte(br)
	if ok && b0 == '(' {
		if _, err := readLengthPrefix(br); err != nil {
			return false, err
		}
		text, err := readQuoted(br, '"')
		if err != nil {
			return false, err
		}
		data, err := codec.DecodeBase64(text)
		if err != nil {
			return false, fmt.Errorf("%w: %v", errs.ErrMalformedPayload, err)
		}

		return h.Binary(data, true), nil
	}

	tagBuf, err := readExactBytes(br, 2)
	if err != nil {
		return false, err
	}
	text, err := readQuoted(br, '"')
	if err != nil {
		return false, err
	}
	data, err := decodeBinaryPayload(string(tagBuf), text)
	if err != nil {
		return false, fmt.Errorf("%w: %v", errs.ErrMalformedPayload, err)
	}

	return h.Binary(data, true), nil
}

func readExactBytes(br *bufio.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrTruncatedInput, err)
	}

	return buf, nil
}

func readArray(br *bufio.Reader, h sax.Handler, pos *sax.PositionStack) (bool, error) {
	if !h.ArrayBegin(-1) {
		return false, nil
	}
	pos.EnterArray()

	if err := skipWhitespace(br); err != nil {
		return false, err
	}
	if b, ok := peekByte(br); ok && b == ']' {
		_, _ = br.ReadByte()
		ok, err := pos.ExitArray(h)
		if err != nil || !ok {
			return false, err
		}

		return h.ArrayEnd(), nil
	}

	for {
		if err := skipWhitespace(br); err != nil {
			return false, err
		}
		ok, err := readValue(br, h, pos)
		if err != nil || !ok {
			return false, err
		}
		if !pos.ValueClosed(h) {
			return false, nil
		}

		if err := skipWhitespace(br); err != nil {
			return false, err
		}
		sep, err := readByte(br)
		if err != nil {
			return false, err
		}
		switch sep {
		case ',':
			continue
		case ']':
			ok, err := pos.ExitArray(h)
			if err != nil || !ok {
				return false, err
			}

			return h.ArrayEnd(), nil
		default:
			return false, fmt.Errorf("%w: expected ',' or ']' in array, got %q", errs.ErrStructure, sep)
		}
	}
}

func readMap(br *bufio.Reader, h sax.Handler, pos *sax.PositionStack) (bool, error) {
	if !h.MapBegin(-1) {
		return false, nil
	}
	pos.EnterMap()

	if err := skipWhitespace(br); err != nil {
		return false, err
	}
	if b, ok := peekByte(br); ok && b == '}' {
		_, _ = br.ReadByte()
		ok, err := pos.ExitMap(h)
		if err != nil || !ok {
			return false, err
		}

		return h.MapEnd(), nil
	}

	for {
		if err := skipWhitespace(br); err != nil {
			return false, err
		}
		key, err := readQuoted(br, '\'')
		if err != nil {
			return false, err
		}
		if !h.Key([]byte(key), true) {
			return false, nil
		}
		if ok, err := pos.KeyClosed(h); err != nil || !ok {
			return false, err
		}

		if err := skipWhitespace(br); err != nil {
			return false, err
		}
		colon, err := readByte(br)
		if err != nil {
			return false, err
		}
		if colon != ':' {
			return false, fmt.Errorf("%w: expected ':' after map key, got %q", errs.ErrStructure, colon)
		}

		if err := skipWhitespace(br); err != nil {
			return false, err
		}
		ok, err := readValue(br, h, pos)
		if err != nil || !ok {
			return false, err
		}
		if !pos.ValueClosed(h) {
			return false, nil
		}

		if err := skipWhitespace(br); err != nil {
			return false, err
		}
		sep, err := readByte(br)
		if err != nil {
			return false, err
		}
		switch sep {
		case ',':
			continue
		case '}':
			ok, err := pos.ExitMap(h)
			if err != nil || !ok {
				return false, err
			}

			return h.MapEnd(), nil
		default:
			return false, fmt.Errorf("%w: expected ',' or '}' in map, got %q", errs.ErrStructure, sep)
		}
	}
}
