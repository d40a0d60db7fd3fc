// Package gen12 parses Generation-1/2 (Game Boy / Game Boy Color) save
// images (component C7 of the save-file specification): box layout
// walking and PK12 record extraction, including the packed DV field and
// Stat-Exp values later widened/compressed by package pccs.
package gen12

import (
	"encoding/binary"

	"github.com/JohnDeved/pk3save/codecerr"
	"github.com/JohnDeved/pk3save/sizenorm"
	"github.com/JohnDeved/pk3save/text"
)

const (
	slotsPerBox = 20

	// Gen-1 box layout. Each box is a 1-byte count, 20 species ids, a
	// 0xFF terminator, 20 33-byte box-format records, 20 11-byte OT
	// names, and 20 11-byte nicknames.
	gen1NumBoxes    = 12
	gen1RecordSize  = 33
	gen1NameSize    = 11
	gen1BoxHeader   = 1 + slotsPerBox + 1
	gen1BoxStride   = gen1BoxHeader + slotsPerBox*gen1RecordSize + slotsPerBox*gen1NameSize + slotsPerBox*gen1NameSize
	gen1BoxRegionAt = 0x4000

	// Gen-2 box layout: a 32-byte box-format record in place of Gen-1's
	// 33 bytes (it trades the separate level byte's position but adds
	// held item, friendship, pokérus, and caught-data fields).
	gen2NumBoxes    = 14
	gen2RecordSize  = 32
	gen2NameSize    = 11
	gen2BoxHeader   = 1 + slotsPerBox + 1
	gen2BoxStride   = gen2BoxHeader + slotsPerBox*gen2RecordSize + slotsPerBox*gen2NameSize + slotsPerBox*gen2NameSize
	gen2BoxRegionAt = 0x4000
)

// gen1 box-format record field offsets.
const (
	g1Species = 0
	g1HP      = 1
	g1Level   = 3
	g1Moves   = 8
	g1OTID    = 12
	g1Exp     = 14
	g1HPEV    = 17
	g1AtkEV   = 19
	g1DefEV   = 21
	g1SpdEV   = 23
	g1SpcEV   = 25
	g1DV      = 27
	g1PP      = 29
)

// gen2 box-format record field offsets.
const (
	g2Species    = 0
	g2Item       = 1
	g2Moves      = 2
	g2OTID       = 6
	g2Exp        = 8
	g2HPEV       = 11
	g2AtkEV      = 13
	g2DefEV      = 15
	g2SpdEV      = 17
	g2SpcEV      = 19
	g2DV         = 21
	g2PP         = 23
	g2Friendship = 27
	g2Pokerus    = 28
	g2CaughtData = 29
	g2Level      = 31
)

// DVs are the four packed 4-bit determinant values plus the derived
// HP DV, per §4.7.
type DVs struct {
	Attack, Defense, Speed, Special, HP uint8
}

// UnpackDVs unpacks the 16-bit field
// attack[15..12] | defense[11..8] | speed[7..4] | special[3..0], and
// derives hp_dv from the low bit of each of the other four.
func UnpackDVs(packed uint16) DVs {
	atk := uint8((packed >> 12) & 0xF)
	def := uint8((packed >> 8) & 0xF)
	spd := uint8((packed >> 4) & 0xF)
	spc := uint8(packed & 0xF)
	hp := (atk&1)<<3 | (def&1)<<2 | (spd&1)<<1 | (spc & 1)
	return DVs{Attack: atk, Defense: def, Speed: spd, Special: spc, HP: hp}
}

// StatExp is the pre-EV "Stat Experience" accumulator, one value per
// stat (Gen-1/2 share a single Special stat exp).
type StatExp struct {
	HP, Attack, Defense, Speed, Special uint16
}

// PK12 is a parsed Generation-1/2 box Pokémon, source material for a
// PCCS conversion to PK3.
type PK12 struct {
	Generation  sizenorm.Kind // Gen1 or Gen2
	Box, Slot   int
	Species     uint8
	HeldItem    uint8 // Gen-2 only; zero in Gen-1
	Level       uint8
	Moves       [4]uint8
	PP          [4]uint8
	OTID        uint16
	Experience  uint32
	StatExp     StatExp
	DVs         DVs
	Friendship  uint8 // Gen-2 only; Gen-1 callers should default to 70
	HasFriendship bool
	OTName      string
	Nickname    string
}

// Parse walks every box in a 32-KiB-normalized Gen-1/2 image and
// extracts every non-empty slot's PK12 record. kind must be Gen1 or
// Gen2 (use sizenorm.Detect to determine it).
func Parse(data []byte, kind sizenorm.Kind) ([]PK12, error) {
	switch kind {
	case sizenorm.Gen1:
		return parseGen1(data)
	case sizenorm.Gen2:
		return parseGen2(data)
	default:
		return nil, codecerr.Newf(codecerr.UnsupportedGeneration, "gen12.Parse: unsupported kind %s", kind)
	}
}

func parseGen1(data []byte) ([]PK12, error) {
	var out []PK12
	for box := 0; box < gen1NumBoxes; box++ {
		base := gen1BoxRegionAt + box*gen1BoxStride
		if base+gen1BoxStride > len(data) {
			return nil, codecerr.Newf(codecerr.OutOfRange, "gen1 box %d out of range", box)
		}
		count := int(data[base])
		speciesList := data[base+1 : base+1+slotsPerBox]
		recordsBase := base + gen1BoxHeader
		otBase := recordsBase + slotsPerBox*gen1RecordSize
		nickBase := otBase + slotsPerBox*gen1NameSize

		for slot := 0; slot < slotsPerBox; slot++ {
			if slot >= count || speciesList[slot] == 0 {
				continue
			}
			rec := data[recordsBase+slot*gen1RecordSize : recordsBase+(slot+1)*gen1RecordSize]
			otName := data[otBase+slot*gen1NameSize : otBase+(slot+1)*gen1NameSize]
			nickname := data[nickBase+slot*gen1NameSize : nickBase+(slot+1)*gen1NameSize]

			dv := UnpackDVs(binary.BigEndian.Uint16(rec[g1DV:]))
			out = append(out, PK12{
				Generation: sizenorm.Gen1,
				Box:        box,
				Slot:       slot,
				Species:    rec[g1Species],
				Level:      rec[g1Level],
				Moves:      [4]uint8{rec[g1Moves], rec[g1Moves+1], rec[g1Moves+2], rec[g1Moves+3]},
				PP:         [4]uint8{rec[g1PP] & 0x3F, rec[g1PP+1] & 0x3F, rec[g1PP+2] & 0x3F, rec[g1PP+3] & 0x3F},
				OTID:       binary.BigEndian.Uint16(rec[g1OTID:]),
				Experience: uint32(rec[g1Exp])<<16 | uint32(rec[g1Exp+1])<<8 | uint32(rec[g1Exp+2]),
				StatExp: StatExp{
					HP:      binary.BigEndian.Uint16(rec[g1HPEV:]),
					Attack:  binary.BigEndian.Uint16(rec[g1AtkEV:]),
					Defense: binary.BigEndian.Uint16(rec[g1DefEV:]),
					Speed:   binary.BigEndian.Uint16(rec[g1SpdEV:]),
					Special: binary.BigEndian.Uint16(rec[g1SpcEV:]),
				},
				DVs:      dv,
				OTName:   text.Gen12.Decode(otName),
				Nickname: text.Gen12.Decode(nickname),
			})
		}
	}
	return out, nil
}

func parseGen2(data []byte) ([]PK12, error) {
	var out []PK12
	for box := 0; box < gen2NumBoxes; box++ {
		base := gen2BoxRegionAt + box*gen2BoxStride
		if base+gen2BoxStride > len(data) {
			return nil, codecerr.Newf(codecerr.OutOfRange, "gen2 box %d out of range", box)
		}
		count := int(data[base])
		speciesList := data[base+1 : base+1+slotsPerBox]
		recordsBase := base + gen2BoxHeader
		otBase := recordsBase + slotsPerBox*gen2RecordSize
		nickBase := otBase + slotsPerBox*gen2NameSize

		for slot := 0; slot < slotsPerBox; slot++ {
			if slot >= count || speciesList[slot] == 0 {
				continue
			}
			rec := data[recordsBase+slot*gen2RecordSize : recordsBase+(slot+1)*gen2RecordSize]
			otName := data[otBase+slot*gen2NameSize : otBase+(slot+1)*gen2NameSize]
			nickname := data[nickBase+slot*gen2NameSize : nickBase+(slot+1)*gen2NameSize]

			dv := UnpackDVs(binary.BigEndian.Uint16(rec[g2DV:]))
			out = append(out, PK12{
				Generation: sizenorm.Gen2,
				Box:        box,
				Slot:       slot,
				Species:    rec[g2Species],
				HeldItem:   rec[g2Item],
				Level:      rec[g2Level],
				Moves:      [4]uint8{rec[g2Moves], rec[g2Moves+1], rec[g2Moves+2], rec[g2Moves+3]},
				PP:         [4]uint8{rec[g2PP] & 0x3F, rec[g2PP+1] & 0x3F, rec[g2PP+2] & 0x3F, rec[g2PP+3] & 0x3F},
				OTID:       binary.BigEndian.Uint16(rec[g2OTID:]),
				Experience: uint32(rec[g2Exp])<<16 | uint32(rec[g2Exp+1])<<8 | uint32(rec[g2Exp+2]),
				StatExp: StatExp{
					HP:      binary.BigEndian.Uint16(rec[g2HPEV:]),
					Attack:  binary.BigEndian.Uint16(rec[g2AtkEV:]),
					Defense: binary.BigEndian.Uint16(rec[g2DefEV:]),
					Speed:   binary.BigEndian.Uint16(rec[g2SpdEV:]),
					Special: binary.BigEndian.Uint16(rec[g2SpcEV:]),
				},
				DVs:           dv,
				Friendship:    rec[g2Friendship],
				HasFriendship: true,
				OTName:        text.Gen12.Decode(otName),
				Nickname:      text.Gen12.Decode(nickname),
			})
		}
	}
	return out, nil
}
