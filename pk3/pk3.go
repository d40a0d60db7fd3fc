// Package pk3 implements the Generation-3 80-byte box-Pokémon codec
// (component C3 of the save-file specification): the encrypt/decrypt
// XOR cipher, substructure shuffle/unshuffle, internal checksum, and
// the Record parse/emit pair.
package pk3

import (
	"encoding/binary"

	"github.com/JohnDeved/pk3save/codecerr"
	"github.com/JohnDeved/pk3save/gbabin"
	"github.com/JohnDeved/pk3save/internal/log"
)

// Size is the fixed on-disk size of a PK3 record.
const Size = 80

// PayloadSize is the size of the encrypted, shuffled substructure blob.
const PayloadSize = 48

// ChunkSize is the size of each of the four substructures packed into
// the payload.
const ChunkSize = 12

// Record is the raw, on-disk representation of a single box Pokémon.
// The Payload field is the encrypted, shuffled 48-byte blob; use
// Decrypt+Unshuffle (or DecryptedChunks) to recover plaintext
// substructures, and Verify to check them against Checksum.
type Record struct {
	Personality uint32
	OTID        uint32
	Nickname    [10]byte
	Language    uint16
	OTName      [7]byte
	Markings    uint8
	Checksum    uint16
	Unknown     uint16
	Payload     [PayloadSize]byte
}

// Chunks is the four 12-byte substructures. Unshuffle returns them in
// logical order (Growth, Attacks, EVs&Contest, Misc), which is also the
// order Shuffle and EmitFromChunks take.
type Chunks [4][ChunkSize]byte

// IsEmpty reports whether every one of the record's 80 bytes is zero.
func (r Record) IsEmpty() bool {
	if r.Personality != 0 || r.OTID != 0 || r.Language != 0 ||
		r.Markings != 0 || r.Checksum != 0 || r.Unknown != 0 {
		return false
	}
	for _, b := range r.Nickname {
		if b != 0 {
			return false
		}
	}
	for _, b := range r.OTName {
		if b != 0 {
			return false
		}
	}
	for _, b := range r.Payload {
		if b != 0 {
			return false
		}
	}
	return true
}

// Parse decodes an 80-byte region into a Record. It does not decrypt or
// verify the payload; use Verify or Decrypt+Unshuffle for that.
func Parse(data []byte) (Record, error) {
	if len(data) != Size {
		return Record{}, codecerr.Newf(codecerr.InvalidSize,
			"pk3 record must be %d bytes, got %d", Size, len(data))
	}
	region := gbabin.Region(data)

	var r Record
	var err error
	if r.Personality, err = region.ReadU32(0); err != nil {
		return Record{}, err
	}
	if r.OTID, err = region.ReadU32(4); err != nil {
		return Record{}, err
	}
	copy(r.Nickname[:], data[8:18])
	if r.Language, err = region.ReadU16(18); err != nil {
		return Record{}, err
	}
	copy(r.OTName[:], data[20:27])
	r.Markings = data[27]
	if r.Checksum, err = region.ReadU16(28); err != nil {
		return Record{}, err
	}
	if r.Unknown, err = region.ReadU16(30); err != nil {
		return Record{}, err
	}
	copy(r.Payload[:], data[32:80])
	return r, nil
}

// Emit serializes r to an 80-byte slice.
func (r Record) Emit() []byte {
	out := make([]byte, Size)
	region := gbabin.Region(out)
	_ = region.WriteU32(0, r.Personality)
	_ = region.WriteU32(4, r.OTID)
	copy(out[8:18], r.Nickname[:])
	_ = region.WriteU16(18, r.Language)
	copy(out[20:27], r.OTName[:])
	out[27] = r.Markings
	_ = region.WriteU16(28, r.Checksum)
	_ = region.WriteU16(30, r.Unknown)
	copy(out[32:80], r.Payload[:])
	return out
}

// key returns the 32-bit XOR cipher key for a record.
func key(personality, otID uint32) uint32 { return personality ^ otID }

// Decrypt XORs every 32-bit little-endian word of payload with the key
// personality^otID. Encrypt is the identical operation: XOR is its own
// inverse.
func Decrypt(payload [PayloadSize]byte, personality, otID uint32) [PayloadSize]byte {
	return xorWords(payload, key(personality, otID))
}

// Encrypt is Decrypt: the XOR cipher is a self-inverse.
func Encrypt(payload [PayloadSize]byte, personality, otID uint32) [PayloadSize]byte {
	return xorWords(payload, key(personality, otID))
}

func xorWords(payload [PayloadSize]byte, k uint32) [PayloadSize]byte {
	var out [PayloadSize]byte
	for i := 0; i < PayloadSize; i += 4 {
		w := binary.LittleEndian.Uint32(payload[i:]) ^ k
		binary.LittleEndian.PutUint32(out[i:], w)
	}
	return out
}

// Unshuffle splits a decrypted 48-byte payload into four 12-byte chunks
// in physical (offset) order, then routes them to logical substructure
// positions (Growth, Attacks, EVs&Contest, Misc) using orderTable[pid
// mod 24]. Logical slot i receives the chunk whose physical index is
// order.index_of(i).
func Unshuffle(payload [PayloadSize]byte, personality uint32) Chunks {
	order := orderFor(personality)
	var physical Chunks
	for i := 0; i < 4; i++ {
		copy(physical[i][:], payload[i*ChunkSize:(i+1)*ChunkSize])
	}

	var logical Chunks
	for i := 0; i < 4; i++ {
		logical[i] = physical[indexOf(order, i)]
	}
	return logical
}

// Shuffle is the inverse of Unshuffle: physical chunk i is filled from
// logical slot order[i], then the four chunks are concatenated into a
// 48-byte payload.
func Shuffle(logical Chunks, personality uint32) [PayloadSize]byte {
	order := orderFor(personality)
	var payload [PayloadSize]byte
	for physical := 0; physical < 4; physical++ {
		copy(payload[physical*ChunkSize:(physical+1)*ChunkSize], logical[order[physical]][:])
	}
	return payload
}

// Checksum16 sums bytes as a sequence of little-endian 16-bit words,
// modulo 2^16. It is the internal PK3 checksum function applied to the
// concatenation of the four plaintext substructures (G++A++E++M).
func Checksum16(data []byte) uint16 {
	var sum uint16
	for i := 0; i+1 < len(data); i += 2 {
		sum += binary.LittleEndian.Uint16(data[i:])
	}
	return sum
}

// Verify reports whether a non-empty record's stored checksum matches
// the checksum of its decrypted, unshuffled substructures. Empty
// records short-circuit to false without decoding.
func Verify(r Record) bool {
	if r.IsEmpty() {
		return false
	}
	decrypted := Decrypt(r.Payload, r.Personality, r.OTID)
	logical := Unshuffle(decrypted, r.Personality)

	var flat [PayloadSize]byte
	for i, c := range logical {
		copy(flat[i*ChunkSize:], c[:])
	}
	computed := Checksum16(flat[:])
	ok := computed == r.Checksum
	if !ok {
		log.Warn("pk3 checksum mismatch",
			log.F("personality", r.Personality), log.F("stored", r.Checksum), log.F("computed", computed))
	}
	return ok
}

// EmitFromChunks assembles an 80-byte Record from plaintext substructure chunks:
// it computes the checksum over the plaintext, shuffles, encrypts, and
// fills in the unencrypted header fields.
func EmitFromChunks(logical Chunks, personality, otID uint32, nickname [10]byte, language uint16, otName [7]byte, markings uint8, unknown uint16) Record {
	var flat [PayloadSize]byte
	for i, c := range logical {
		copy(flat[i*ChunkSize:], c[:])
	}
	checksum := Checksum16(flat[:])

	shuffled := Shuffle(logical, personality)
	encrypted := Encrypt(shuffled, personality, otID)

	return Record{
		Personality: personality,
		OTID:        otID,
		Nickname:    nickname,
		Language:    language,
		OTName:      otName,
		Markings:    markings,
		Checksum:    checksum,
		Unknown:     unknown,
		Payload:     encrypted,
	}
}

// LevelFromExperience derives a display-only level from an experience
// total under the Medium Fast growth rate (exp = level^3), the most
// common growth rate and the one used whenever the true rate is
// unknown. It is never fed back into the codec; growth rate is not
// recoverable from a PK3 record alone.
func LevelFromExperience(exp uint32) uint8 {
	level := uint8(1)
	for l := uint32(1); l <= 100; l++ {
		if l*l*l > exp {
			break
		}
		level = uint8(l)
	}
	return level
}

// DecryptedChunks decrypts and unshuffles r's payload into logical
// substructure chunks without checking the checksum. Callers that need
// the checksum result should use Verify.
func DecryptedChunks(r Record) Chunks {
	decrypted := Decrypt(r.Payload, r.Personality, r.OTID)
	return Unshuffle(decrypted, r.Personality)
}
