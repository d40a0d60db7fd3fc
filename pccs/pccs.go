// Package pccs implements the community "PCCS" PK12→PK3 conversion
// rules (component C8 of the save-file specification): deterministic
// IV widening, EV compression, nature derivation, and personality
// synthesis that preserves the source Pokémon's shininess.
package pccs

import (
	"math"

	"github.com/JohnDeved/pk3save/gen12"
	"github.com/JohnDeved/pk3save/pk3"
	"github.com/JohnDeved/pk3save/substruct"
	"github.com/JohnDeved/pk3save/text"
)

const (
	defaultFriendship = 70
	convertedBall      = 4  // Poké Ball
	convertedOrigin    = 15 // event/transfer
	evCompressionCap   = 510
)

// Convert transforms a PK12 into PK3 substructures plus the record
// header fields §4.3 needs (personality, ot id, nickname, OT name,
// language). sourceShiny tells the synthesis step which shiny state
// the resulting personality must reproduce.
func Convert(p gen12.PK12, sourceShiny bool, language uint16) pk3.Record {
	growth := substruct.Growth{
		Species:    species3From1(p.Species),
		HeldItem:   0,
		Experience: p.Experience,
		PPBonuses:  0,
		Friendship: friendship(p),
	}
	attacks := substruct.Attacks{
		Moves: [4]uint16{uint16(p.Moves[0]), uint16(p.Moves[1]), uint16(p.Moves[2]), uint16(p.Moves[3])},
		PP:    p.PP,
	}
	evs := compressEVs(p.StatExp)
	evContest := substruct.EVContest{
		EVHP: evs[0], EVAtk: evs[1], EVDef: evs[2], EVSpe: evs[3], EVSpA: evs[4], EVSpD: evs[5],
	}
	ivs := widenIVs(p.DVs)
	misc := substruct.Misc{
		Pokerus:     0,
		MetLocation: 0,
		Origins: substruct.Origins{
			MetLevel:   p.Level,
			GameOrigin: convertedOrigin,
			Ball:       convertedBall,
			OTGender:   false,
		},
		IVs:        ivs,
		Egg:        false,
		AbilityBit: false,
		Ribbons:    0,
	}

	tid := p.OTID
	const sid = 0
	personality := synthesizePersonality(p.DVs, tid, sid, sourceShiny)
	otid := substruct.JoinOTID(tid, sid)

	var nickname [10]byte
	copy(nickname[:], text.Gen3.Encode(p.Nickname, 10))
	var otName [7]byte
	copy(otName[:], text.Gen3.Encode(p.OTName, 7))

	logical := pk3.Chunks{growth.Emit(), attacks.Emit(), evContest.Emit(), misc.Emit()}
	return pk3.EmitFromChunks(logical, personality, uint32(otid), nickname, language, otName, 0, 0)
}

// widenIVs implements the §4.8 IV widening rule: iv = min(31, 2*dv+1).
// HP, special attack, and special defense IVs are all derived from the
// Gen-1/2 HP and Special DVs respectively, since Gen-1/2 has no split
// between the two special stats.
func widenIVs(dv gen12.DVs) substruct.IVs {
	widen := func(v uint8) uint8 {
		w := 2*int(v) + 1
		if w > 31 {
			w = 31
		}
		return uint8(w)
	}
	return substruct.IVs{
		HP:  widen(dv.HP),
		Atk: widen(dv.Attack),
		Def: widen(dv.Defense),
		Spe: widen(dv.Speed),
		SpA: widen(dv.Special),
		SpD: widen(dv.Special),
	}
}

// compressEVs implements the §4.8 EV compression rule: each stat's EV
// is floor(sqrt(stat_exp)) capped at 255; if the six values sum past
// 510, all six are scaled down proportionally by floor division.
func compressEVs(se gen12.StatExp) [6]uint8 {
	raw := [6]uint16{se.HP, se.Attack, se.Defense, se.Speed, se.Special, se.Special}
	var compressed [6]int
	var sum int
	for i, stat := range raw {
		v := int(math.Sqrt(float64(stat)))
		if v > 255 {
			v = 255
		}
		compressed[i] = v
		sum += v
	}
	if sum > evCompressionCap {
		for i := range compressed {
			compressed[i] = (compressed[i] * evCompressionCap) / sum
		}
	}
	var out [6]uint8
	for i, v := range compressed {
		out[i] = uint8(v)
	}
	return out
}

// friendship returns the source friendship value, or the default base
// friendship (70) if the source generation didn't track one.
func friendship(p gen12.PK12) uint8 {
	if p.HasFriendship {
		return p.Friendship
	}
	return defaultFriendship
}

// Nature derives the §4.8 nature index: (atk+def+spd+spc) mod 25. The
// caller maps this to whatever nature table it uses for display; the
// core only needs the deterministic index.
func Nature(dv gen12.DVs) uint8 {
	sum := int(dv.Attack) + int(dv.Defense) + int(dv.Speed) + int(dv.Special)
	return uint8(sum % 25)
}

// synthesizePersonality builds a 32-bit personality value from the
// source DVs per §4.8, adjusting its low 16 bits so the G3 shiny
// predicate (hi^lo^tid^sid < 8) reproduces sourceShiny. The high 16
// bits are always the DV-derived base.
func synthesizePersonality(dv gen12.DVs, tid, sid uint16, sourceShiny bool) uint32 {
	base := uint32(dv.Attack)<<28 | uint32(dv.Defense)<<24 | uint32(dv.Speed)<<20 | uint32(dv.Special)<<16 |
		uint32(dv.Attack)<<12 | uint32(dv.Defense)<<8 | uint32(dv.Speed)<<4 | uint32(dv.Special)

	hi := uint16(base >> 16)
	lo := uint16(base & 0xFFFF)

	shinyXOR := hi ^ lo ^ tid ^ sid
	if sourceShiny {
		// Match lo's upper 13 bits to hi^tid^sid so only the low 3 bits
		// of the predicate's XOR can be set.
		lo = ((hi ^ tid ^ sid) & 0xFFF8) | (lo & 0x7)
	} else if shinyXOR < 8 {
		// Flipping bit 3 moves the XOR into [8, 16).
		lo ^= 0x8
	}

	return uint32(hi)<<16 | uint32(lo)
}

// species3From1 maps a Gen-1/2 national dex number to its Gen-3
// internal species id. Gen-1/2's dex numbering is already the national
// dex order that Gen-3 uses for these ids, so the mapping is the
// identity; a dedicated species table would only matter for species
// introduced after Gen-2, which never appear in a PK12 source record.
func species3From1(species uint8) uint16 {
	return uint16(species)
}
