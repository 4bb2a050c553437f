package xmlenc

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/llsd/codec"
	"github.com/arloliu/llsd/errs"
	"github.com/arloliu/llsd/sax"
	"github.com/arloliu/llsd/value"
)

// Parse reads one LLSD XML document from r and drives h with the
// corresponding callbacks. It returns errs.ErrAborted if a callback
// returned false.
func Parse(r io.Reader, h sax.Handler) error {
	dec := xml.NewDecoder(r)
	pos := sax.NewPositionStack()

	tok, err := nextStartOrEnd(dec)
	if err != nil {
		return err
	}
	root, ok := tok.(xml.StartElement)
	if !ok || root.Name.Local != "llsd" {
		return fmt.Errorf("%w: document must open with <llsd>", errs.ErrStructure)
	}

	valTok, err := nextStartOrEnd(dec)
	if err != nil {
		return err
	}
	valStart, ok := valTok.(xml.StartElement)
	if !ok {
		return fmt.Errorf("%w: <llsd> must wrap exactly one value", errs.ErrStructure)
	}

	contOK, err := parseValue(dec, valStart, h, pos)
	if err != nil {
		return err
	}
	if !contOK {
		return errs.ErrAborted
	}

	endTok, err := nextStartOrEnd(dec)
	if err != nil {
		return err
	}
	end, ok := endTok.(xml.EndElement)
	if !ok || end.Name.Local != "llsd" {
		return fmt.Errorf("%w: missing </llsd>", errs.ErrStructure)
	}

	return nil
}

// nextStartOrEnd returns the next StartElement or EndElement token,
// skipping whitespace CharData, processing instructions, comments, and
// directives — everything a document can legally carry between the
// tags that matter to the state machine.
func nextStartOrEnd(dec *xml.Decoder) (xml.Token, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrTruncatedInput, err)
		}
		switch tok.(type) {
		case xml.StartElement, xml.EndElement:
			return xml.CopyToken(tok), nil
		default:
			continue
		}
	}
}

func readCharDataUntilEnd(dec *xml.Decoder, name string) (string, error) {
	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("%w: %v", errs.ErrTruncatedInput, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name.Local != name {
				return "", fmt.Errorf("%w: expected </%s>, got </%s>", errs.ErrStructure, name, t.Name.Local)
			}

			return sb.String(), nil
		case xml.StartElement:
			return "", fmt.Errorf("%w: unexpected <%s> inside <%s>", errs.ErrStructure, t.Name.Local, name)
		}
	}
}

func attrValue(tok xml.StartElement, name string) (string, bool) {
	for _, a := range tok.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}

	return "", false
}

func attrInt(tok xml.StartElement, name string) int {
	s, ok := attrValue(tok, name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return n
}

// parseLeadingInt32 and parseLeadingFloat64 apply the source's
// scan-with-trailing-junk tolerance to numeric character data, matching
// the tolerance spec.md §4.4.2 calls for. They share the same leading-scan
// logic value.Value's AsInteger/AsReal coercions use, rather than
// rejecting content on trailing junk the way strconv.ParseInt/ParseFloat do.
func parseLeadingInt32(s string) int32 {
	return value.ParseLeadingInt(s)
}

func parseLeadingFloat64(s string) float64 {
	return value.ParseLeadingFloat(s)
}

// parseBoolText follows the source's boolean_from_buf: "1", "t", and "T"
// as a leading character mean true ("true" qualifies since it starts
// with 't'); everything else, including "false" and "0", is false.
func parseBoolText(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	return s[0] == '1' || s[0] == 't' || s[0] == 'T'
}

func parseUUIDText(s string) ([16]byte, error) {
	var u [16]byte
	hexOnly := strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	buf, err := codec.DecodeBase16(hexOnly)
	if err != nil || len(buf) != 16 {
		return u, fmt.Errorf("%w: malformed uuid %q", errs.ErrMalformedPayload, s)
	}
	copy(u[:], buf)

	return u, nil
}

func decodeBinaryText(tok xml.StartElement, text string) ([]byte, error) {
	enc, _ := attrValue(tok, "encoding")
	switch enc {
	case "base16":
		return codec.DecodeBase16(strings.TrimSpace(text))
	case "base85":
		return codec.DecodeBase85(strings.TrimSpace(text))
	default:
		return codec.DecodeBase64(text)
	}
}

// parseValue dispatches on tok, already consumed from the decoder, and
// reads everything through the matching end tag.
func parseValue(dec *xml.Decoder, tok xml.StartElement, h sax.Handler, pos *sax.PositionStack) (bool, error) {
	name := tok.Name.Local

	switch name {
	case "undef":
		if _, err := readCharDataUntilEnd(dec, name); err != nil {
			return false, err
		}

		return h.Undef(), nil
	case "boolean":
		text, err := readCharDataUntilEnd(dec, name)
		if err != nil {
			return false, err
		}

		return h.Boolean(parseBoolText(text)), nil
	case "integer":
		text, err := readCharDataUntilEnd(dec, name)
		if err != nil {
			return false, err
		}

		return h.Integer(parseLeadingInt32(text)), nil
	case "real":
		text, err := readCharDataUntilEnd(dec, name)
		if err != nil {
			return false, err
		}

		return h.Real(parseLeadingFloat64(text)), nil
	case "uuid":
		text, err := readCharDataUntilEnd(dec, name)
		if err != nil {
			return false, err
		}
		u, err := parseUUIDText(text)
		if err != nil {
			return false, err
		}

		return h.UUID(u), nil
	case "date":
		text, err := readCharDataUntilEnd(dec, name)
		if err != nil {
			return false, err
		}
		sec, err := codec.ParseDate(strings.TrimSpace(text))
		if err != nil {
			return false, err
		}

		return h.Date(sec), nil
	case "string":
		text, err := readCharDataUntilEnd(dec, name)
		if err != nil {
			return false, err
		}

		return h.String([]byte(text), true), nil
	case "uri":
		text, err := readCharDataUntilEnd(dec, name)
		if err != nil {
			return false, err
		}

		return h.URI([]byte(text), true), nil
	case "binary":
		text, err := readCharDataUntilEnd(dec, name)
		if err != nil {
			return false, err
		}
		data, err := decodeBinaryText(tok, text)
		if err != nil {
			return false, fmt.Errorf("%w: %v", errs.ErrMalformedPayload, err)
		}

		return h.Binary(data, true), nil
	case "array":
		if !h.ArrayBegin(attrInt(tok, "size")) {
			return false, nil
		}
		pos.EnterArray()

		return readArrayChildren(dec, h, pos)
	case "map":
		if !h.MapBegin(attrInt(tok, "size")) {
			return false, nil
		}
		pos.EnterMap()

		return readMapChildren(dec, h, pos)
	default:
		return false, fmt.Errorf("%w: <%s>", errs.ErrUnknownTag, name)
	}
}

func readArrayChildren(dec *xml.Decoder, h sax.Handler, pos *sax.PositionStack) (bool, error) {
	for {
		tok, err := nextStartOrEnd(dec)
		if err != nil {
			return false, err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name.Local != "array" {
				return false, fmt.Errorf("%w: expected </array>, got </%s>", errs.ErrStructure, t.Name.Local)
			}
			ok, err := pos.ExitArray(h)
			if err != nil || !ok {
				return false, err
			}

			return h.ArrayEnd(), nil
		case xml.StartElement:
			ok, err := parseValue(dec, t, h, pos)
			if err != nil || !ok {
				return false, err
			}
			if !pos.ValueClosed(h) {
				return false, nil
			}
		}
	}
}

func readMapChildren(dec *xml.Decoder, h sax.Handler, pos *sax.PositionStack) (bool, error) {
	for {
		tok, err := nextStartOrEnd(dec)
		if err != nil {
			return false, err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name.Local != "map" {
				return false, fmt.Errorf("%w: expected </map>, got </%s>", errs.ErrStructure, t.Name.Local)
			}
			ok, err := pos.ExitMap(h)
			if err != nil || !ok {
				return false, err
			}

			return h.MapEnd(), nil
		case xml.StartElement:
			if t.Name.Local != "key" {
				return false, fmt.Errorf("%w: map entry must begin with <key>, got <%s>", errs.ErrStructure, t.Name.Local)
			}
			keyText, err := readCharDataUntilEnd(dec, "key")
			if err != nil {
				return false, err
			}
			if !h.Key([]byte(keyText), true) {
				return false, nil
			}
			if ok, err := pos.KeyClosed(h); err != nil || !ok {
				return false, err
			}

			valTok, err := nextStartOrEnd(dec)
			if err != nil {
				return false, err
			}
			valStart, ok := valTok.(xml.StartElement)
			if !ok {
				return false, fmt.Errorf("%w: <key> must be followed by a value element", errs.ErrStructure)
			}
			ok, err = parseValue(dec, valStart, h, pos)
			if err != nil || !ok {
				return false, err
			}
			if !pos.ValueClosed(h) {
				return false, nil
			}
		}
	}
}
