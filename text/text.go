// Package text implements the two independent Game Boy / Game Boy
// Advance Pokémon character tables (Gen-1/2 and Gen-3) used to decode
// and encode the fixed-length, terminator-padded byte strings found in
// save data: nicknames, trainer names, and player names.
//
// Decoding stops at the terminator and never reads past the field
// width. Encoding pads any remaining bytes with the terminator. Unknown
// input code points encode to the table's space byte; unknown bytes
// decode to '?'.
package text

// Table is a fixed character table with a single terminator byte.
type Table struct {
	terminator byte
	space      byte
	decode     map[byte]rune
	encode     map[rune]byte
}

// Gen3 is the Generation-3 (Game Boy Advance) character table.
var Gen3 = buildGen3()

// Gen12 is the Generation-1/2 (Game Boy / Game Boy Color) character
// table.
var Gen12 = buildGen12()

func buildGen3() *Table {
	t := &Table{terminator: 0xFF, space: 0x00}
	t.decode = make(map[byte]rune)
	t.encode = make(map[rune]byte)

	t.add(0x00, ' ')
	for i := 0; i < 10; i++ {
		t.add(byte(0xA1+i), rune('0'+i))
	}
	t.add(0xAC, '!')
	t.add(0xAD, '?')
	t.add(0xAE, '.')
	t.add(0xAF, '-')
	t.add(0xB8, '♂')
	t.add(0xB9, '♀')
	for i := 0; i < 26; i++ {
		t.add(byte(0xBB+i), rune('A'+i))
	}
	for i := 0; i < 26; i++ {
		t.add(byte(0xD5+i), rune('a'+i))
	}
	return t
}

func buildGen12() *Table {
	t := &Table{terminator: 0x50, space: 0x7F}
	t.decode = make(map[byte]rune)
	t.encode = make(map[rune]byte)

	t.add(0x7F, ' ')
	for i := 0; i < 26; i++ {
		t.add(byte(0x80+i), rune('A'+i))
	}
	for i := 0; i < 26; i++ {
		t.add(byte(0xA0+i), rune('a'+i))
	}
	for i := 0; i < 10; i++ {
		t.add(byte(0xF6+i), rune('0'+i))
	}
	t.add(0xE3, '-')
	t.add(0xE6, '?')
	t.add(0xE7, '!')
	t.add(0xE8, '.')
	// PK / MN digraphs (the Pokémon League "PK"/"MN" ligatures). These
	// have no single-rune ASCII equivalent; map them to private-use
	// runes so they survive an encode/decode round trip.
	t.add(0xE0, '\uE000') // "PK" digraph
	t.add(0xE1, '\uE001') // "MN" digraph
	return t
}

func (t *Table) add(b byte, r rune) {
	t.decode[b] = r
	t.encode[r] = b
}

// Decode reads data, which may be shorter than a nominal field, and
// returns the decoded string. Decoding stops at the table's terminator
// byte or at the end of data, whichever comes first. Bytes with no
// table entry decode to '?'.
func (t *Table) Decode(data []byte) string {
	out := make([]rune, 0, len(data))
	for _, b := range data {
		if b == t.terminator {
			break
		}
		if r, ok := t.decode[b]; ok {
			out = append(out, r)
		} else {
			out = append(out, '?')
		}
	}
	return string(out)
}

// Encode encodes s into a fixed-width byte slice of length width,
// padding unused trailing bytes with the table's terminator. Runes with
// no table entry encode to the table's space byte. If s encodes to more
// than width bytes, it is truncated to fit.
func (t *Table) Encode(s string, width int) []byte {
	out := make([]byte, width)
	i := 0
	for _, r := range s {
		if i >= width {
			break
		}
		if b, ok := t.encode[r]; ok {
			out[i] = b
		} else {
			out[i] = t.space
		}
		i++
	}
	for ; i < width; i++ {
		out[i] = t.terminator
	}
	return out
}

// Terminator returns the table's terminator byte.
func (t *Table) Terminator() byte { return t.terminator }
