// Package substruct implements the four fixed-layout 12-byte PK3
// substructures (Growth, Attacks, EVs&Contest, Misc) plus the packed
// IV, Origins, and OT-id fields nested inside them (component C4 of the
// save-file specification). Each substructure has an exported
// parse/emit pair over a fixed [12]byte chunk; parsing does not
// range-check field values.
package substruct

import (
	"encoding/binary"

	"github.com/JohnDeved/pk3save/codecerr"
)

// Growth is the first 12-byte substructure: species, held item,
// experience, PP bonuses, friendship.
type Growth struct {
	Species     uint16
	HeldItem    uint16
	Experience  uint32
	PPBonuses   uint8
	Friendship  uint8
	Reserved    uint16
}

// ParseGrowth decodes a 12-byte chunk into a Growth substructure.
func ParseGrowth(chunk [12]byte) Growth {
	return Growth{
		Species:    binary.LittleEndian.Uint16(chunk[0:]),
		HeldItem:   binary.LittleEndian.Uint16(chunk[2:]),
		Experience: binary.LittleEndian.Uint32(chunk[4:]),
		PPBonuses:  chunk[8],
		Friendship: chunk[9],
		Reserved:   binary.LittleEndian.Uint16(chunk[10:]),
	}
}

// Emit serializes g to a 12-byte chunk.
func (g Growth) Emit() [12]byte {
	var c [12]byte
	binary.LittleEndian.PutUint16(c[0:], g.Species)
	binary.LittleEndian.PutUint16(c[2:], g.HeldItem)
	binary.LittleEndian.PutUint32(c[4:], g.Experience)
	c[8] = g.PPBonuses
	c[9] = g.Friendship
	binary.LittleEndian.PutUint16(c[10:], g.Reserved)
	return c
}

// Attacks is the second 12-byte substructure: four moves and their
// current PP.
type Attacks struct {
	Moves [4]uint16
	PP    [4]uint8
}

// ParseAttacks decodes a 12-byte chunk into an Attacks substructure.
func ParseAttacks(chunk [12]byte) Attacks {
	var a Attacks
	for i := 0; i < 4; i++ {
		a.Moves[i] = binary.LittleEndian.Uint16(chunk[i*2:])
	}
	copy(a.PP[:], chunk[8:12])
	return a
}

// Emit serializes a to a 12-byte chunk.
func (a Attacks) Emit() [12]byte {
	var c [12]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint16(c[i*2:], a.Moves[i])
	}
	copy(c[8:12], a.PP[:])
	return c
}

// EVContest is the third 12-byte substructure: six effort values and
// six contest stats.
type EVContest struct {
	EVHP, EVAtk, EVDef, EVSpe, EVSpA, EVSpD uint8
	Contest                                  [6]uint8
}

// ParseEVContest decodes a 12-byte chunk into an EVContest substructure.
func ParseEVContest(chunk [12]byte) EVContest {
	var e EVContest
	e.EVHP, e.EVAtk, e.EVDef, e.EVSpe, e.EVSpA, e.EVSpD = chunk[0], chunk[1], chunk[2], chunk[3], chunk[4], chunk[5]
	copy(e.Contest[:], chunk[6:12])
	return e
}

// Emit serializes e to a 12-byte chunk.
func (e EVContest) Emit() [12]byte {
	var c [12]byte
	c[0], c[1], c[2], c[3], c[4], c[5] = e.EVHP, e.EVAtk, e.EVDef, e.EVSpe, e.EVSpA, e.EVSpD
	copy(c[6:12], e.Contest[:])
	return c
}

// Misc is the fourth 12-byte substructure: Pokérus, met location, the
// packed Origins field, the packed IVs/egg/ability field, and ribbons.
type Misc struct {
	Pokerus      uint8
	MetLocation  uint8
	Origins      Origins
	IVs          IVs
	Egg          bool
	AbilityBit   bool
	Ribbons      uint32
}

// ParseMisc decodes a 12-byte chunk into a Misc substructure.
func ParseMisc(chunk [12]byte) Misc {
	origins := UnpackOrigins(binary.LittleEndian.Uint16(chunk[2:]))
	packed := binary.LittleEndian.Uint32(chunk[4:])
	ivs, egg, ability := UnpackIVs(packed)
	return Misc{
		Pokerus:     chunk[0],
		MetLocation: chunk[1],
		Origins:     origins,
		IVs:         ivs,
		Egg:         egg,
		AbilityBit:  ability,
		Ribbons:     binary.LittleEndian.Uint32(chunk[8:]),
	}
}

// Emit serializes m to a 12-byte chunk.
func (m Misc) Emit() [12]byte {
	var c [12]byte
	c[0] = m.Pokerus
	c[1] = m.MetLocation
	binary.LittleEndian.PutUint16(c[2:], m.Origins.Pack())
	binary.LittleEndian.PutUint32(c[4:], PackIVs(m.IVs, m.Egg, m.AbilityBit))
	binary.LittleEndian.PutUint32(c[8:], m.Ribbons)
	return c
}

// IVs are the six 5-bit individual values packed into Misc's
// iv_egg_ability field.
type IVs struct {
	HP, Atk, Def, Spe, SpA, SpD uint8
}

// UnpackIVs unpacks the 32-bit iv_egg_ability field:
// hp[0..5] | atk[5..10] | def[10..15] | spe[15..20] | spa[20..25] |
// spd[25..30] | egg[30] | ability_bit[31].
func UnpackIVs(packed uint32) (ivs IVs, egg, ability bool) {
	const mask = 0x1F
	ivs.HP = uint8(packed & mask)
	ivs.Atk = uint8((packed >> 5) & mask)
	ivs.Def = uint8((packed >> 10) & mask)
	ivs.Spe = uint8((packed >> 15) & mask)
	ivs.SpA = uint8((packed >> 20) & mask)
	ivs.SpD = uint8((packed >> 25) & mask)
	egg = (packed>>30)&1 != 0
	ability = (packed>>31)&1 != 0
	return
}

// PackIVs packs six 5-bit IVs plus the egg and ability bits into a
// 32-bit iv_egg_ability field.
func PackIVs(ivs IVs, egg, ability bool) uint32 {
	var packed uint32
	packed |= uint32(ivs.HP&0x1F) << 0
	packed |= uint32(ivs.Atk&0x1F) << 5
	packed |= uint32(ivs.Def&0x1F) << 10
	packed |= uint32(ivs.Spe&0x1F) << 15
	packed |= uint32(ivs.SpA&0x1F) << 20
	packed |= uint32(ivs.SpD&0x1F) << 25
	if egg {
		packed |= 1 << 30
	}
	if ability {
		packed |= 1 << 31
	}
	return packed
}

// Origins is the packed met_level/game_origin/ball/ot_gender field.
type Origins struct {
	MetLevel   uint8 // 7 bits
	GameOrigin uint8 // 4 bits
	Ball       uint8 // 4 bits
	OTGender   bool  // 1 bit
}

// UnpackOrigins unpacks a 16-bit origins field:
// met_level[0..7] | game_origin[7..11] | ball[11..15] | ot_gender[15].
func UnpackOrigins(packed uint16) Origins {
	return Origins{
		MetLevel:   uint8(packed & 0x7F),
		GameOrigin: uint8((packed >> 7) & 0x0F),
		Ball:       uint8((packed >> 11) & 0x0F),
		OTGender:   (packed>>15)&1 != 0,
	}
}

// Pack packs o into a 16-bit origins field.
func (o Origins) Pack() uint16 {
	var packed uint16
	packed |= uint16(o.MetLevel&0x7F) << 0
	packed |= uint16(o.GameOrigin&0x0F) << 7
	packed |= uint16(o.Ball&0x0F) << 11
	if o.OTGender {
		packed |= 1 << 15
	}
	return packed
}

// OTID is the 32-bit trainer id: low 16 bits are the public TID, high
// 16 bits the secret SID.
type OTID uint32

// Split returns the public (TID) and secret (SID) halves.
func (o OTID) Split() (tid, sid uint16) {
	return uint16(o), uint16(o >> 16)
}

// JoinOTID packs a TID/SID pair into a single 32-bit OT id.
func JoinOTID(tid, sid uint16) OTID {
	return OTID(uint32(tid) | uint32(sid)<<16)
}

// validateChunkWidth reports an InvalidSize error unless data is exactly
// 12 bytes. Nothing in this module calls it: every parser here takes a
// fixed-size [12]byte chunk.
func validateChunkWidth(data []byte) error {
	if len(data) != 12 {
		return codecerr.Newf(codecerr.InvalidSize, "substructure chunk must be 12 bytes, got %d", len(data))
	}
	return nil
}
