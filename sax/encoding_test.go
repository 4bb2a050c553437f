package sax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_Binary(t *testing.T) {
	src := []byte(BinarySignature + "1")
	assert.Equal(t, Binary, Detect(src))
}

func TestDetect_XML(t *testing.T) {
	src := []byte(XMLSignature + "<llsd><undef/></llsd>")
	assert.Equal(t, XML, Detect(src))
}

func TestDetect_FallsBackToNotation(t *testing.T) {
	assert.Equal(t, Notation, Detect([]byte("!")))
	assert.Equal(t, Notation, Detect(nil))
}

func TestEncoding_String(t *testing.T) {
	assert.Equal(t, "binary", Binary.String())
	assert.Equal(t, "xml", XML.String())
	assert.Equal(t, "notation", Notation.String())
	assert.Equal(t, "json", JSON.String())
	assert.Equal(t, "unknown", Encoding(255).String())
}
