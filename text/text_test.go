package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGen3DecodeStopsAtTerminator(t *testing.T) {
	data := []byte{0xBB, 0xBC, 0xBD, 0xFF, 0xBB, 0xBB}
	assert.Equal(t, "ABC", Gen3.Decode(data))
}

func TestGen3DecodeNeverExceedsFieldWidth(t *testing.T) {
	data := []byte{0xBB, 0xBC, 0xBD} // no terminator present
	assert.Equal(t, "ABC", Gen3.Decode(data))
}

func TestGen3EncodePadsWithTerminator(t *testing.T) {
	got := Gen3.Encode("AB", 5)
	assert.Equal(t, []byte{0xBB, 0xBC, 0xFF, 0xFF, 0xFF}, got)
}

func TestGen3EncodeUnknownRuneIsSpace(t *testing.T) {
	got := Gen3.Encode("A€B", 4)
	assert.Equal(t, byte(0x00), got[1])
}

func TestGen3DecodeUnknownByteIsQuestionMark(t *testing.T) {
	data := []byte{0x01, 0xFF}
	assert.Equal(t, "?", Gen3.Decode(data))
}

func TestGen3RoundTrip(t *testing.T) {
	for _, s := range []string{"TREECKO", "ash", "A1B2"} {
		encoded := Gen3.Encode(s, 10)
		assert.Equal(t, s, Gen3.Decode(encoded))
	}
}

func TestGen3Lowercase(t *testing.T) {
	got := Gen3.Encode("abc", 4)
	decoded := Gen3.Decode(got)
	assert.Equal(t, "abc", decoded)
}

func TestGen3GenderedSymbols(t *testing.T) {
	assert.Equal(t, "♂", Gen3.Decode([]byte{0xB8, 0xFF}))
	assert.Equal(t, "♀", Gen3.Decode([]byte{0xB9, 0xFF}))
}

func TestGen12DecodeStopsAtTerminator(t *testing.T) {
	data := []byte{0x80, 0x81, 0x82, 0x50, 0x80}
	assert.Equal(t, "ABC", Gen12.Decode(data))
}

func TestGen12EncodePadsWithTerminator(t *testing.T) {
	got := Gen12.Encode("AB", 5)
	assert.Equal(t, []byte{0x80, 0x81, 0x50, 0x50, 0x50}, got)
}

func TestGen12RoundTrip(t *testing.T) {
	for _, s := range []string{"RED", "blue", "A9"} {
		encoded := Gen12.Encode(s, 11)
		assert.Equal(t, s, Gen12.Decode(encoded))
	}
}

func TestGen12Punctuation(t *testing.T) {
	data := []byte{0xE6, 0xE7, 0xE8, 0xE3, 0x50}
	assert.Equal(t, "?!.-", Gen12.Decode(data))
}

func TestTerminatorAccessor(t *testing.T) {
	assert.Equal(t, byte(0xFF), Gen3.Terminator())
	assert.Equal(t, byte(0x50), Gen12.Terminator())
}
