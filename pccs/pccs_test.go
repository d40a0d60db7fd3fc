package pccs

import (
	"testing"

	"github.com/JohnDeved/pk3save/gen12"
	"github.com/JohnDeved/pk3save/pk3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidenIVsBoundaries(t *testing.T) {
	ivs := widenIVs(gen12.DVs{HP: 15, Attack: 0, Defense: 8, Speed: 15, Special: 1})
	assert.Equal(t, uint8(31), ivs.HP)  // 2*15+1 = 31
	assert.Equal(t, uint8(1), ivs.Atk)  // 2*0+1 = 1
	assert.Equal(t, uint8(17), ivs.Def) // 2*8+1 = 17
	assert.Equal(t, uint8(31), ivs.Spe)
	assert.Equal(t, uint8(3), ivs.SpA)
	assert.Equal(t, uint8(3), ivs.SpD)
}

func TestWidenIVsRecoversFloorHalf(t *testing.T) {
	// dv = floor(iv/2) must hold for every widened IV.
	for dv := uint8(0); dv <= 15; dv++ {
		ivs := widenIVs(gen12.DVs{HP: dv, Attack: dv, Defense: dv, Speed: dv, Special: dv})
		assert.Equal(t, dv, ivs.Atk/2, "dv=%d", dv)
	}
}

func TestCompressEVsUnderCapPassesThrough(t *testing.T) {
	se := gen12.StatExp{HP: 100, Attack: 100, Defense: 100, Speed: 100, Special: 100}
	evs := compressEVs(se)
	// sqrt(100) = 10 for each of 6 slots = 60, well under 510
	for _, v := range evs {
		assert.Equal(t, uint8(10), v)
	}
}

func TestCompressEVsScalesDownOverCap(t *testing.T) {
	se := gen12.StatExp{HP: 65535, Attack: 65535, Defense: 65535, Speed: 65535, Special: 65535}
	evs := compressEVs(se)
	var sum int
	for _, v := range evs {
		sum += int(v)
	}
	assert.LessOrEqual(t, sum, evCompressionCap)
}

func TestNatureIsBoundedMod25(t *testing.T) {
	n := Nature(gen12.DVs{Attack: 15, Defense: 15, Speed: 15, Special: 15})
	assert.Less(t, n, uint8(25))
}

func TestFriendshipDefaultsWhenAbsent(t *testing.T) {
	assert.Equal(t, uint8(defaultFriendship), friendship(gen12.PK12{HasFriendship: false}))
	assert.Equal(t, uint8(200), friendship(gen12.PK12{HasFriendship: true, Friendship: 200}))
}

func TestSynthesizePersonalityReproducesShininess(t *testing.T) {
	dv := gen12.DVs{Attack: 10, Defense: 5, Speed: 12, Special: 9}
	tid, sid := uint16(1000), uint16(0)

	shinyPersonality := synthesizePersonality(dv, tid, sid, true)
	hi := uint16(shinyPersonality >> 16)
	lo := uint16(shinyPersonality & 0xFFFF)
	assert.Less(t, hi^lo^tid^sid, uint16(8))

	nonShiny := synthesizePersonality(dv, tid, sid, false)
	hi2 := uint16(nonShiny >> 16)
	lo2 := uint16(nonShiny & 0xFFFF)
	assert.GreaterOrEqual(t, hi2^lo2^tid^sid, uint16(8))
}

func TestConvertProducesVerifiablePK3(t *testing.T) {
	p := gen12.PK12{
		Species:    25,
		Level:      10,
		Experience: 1000,
		Moves:      [4]uint8{1, 2, 3, 4},
		PP:         [4]uint8{10, 10, 10, 10},
		OTID:       54321,
		DVs:        gen12.DVs{Attack: 8, Defense: 8, Speed: 8, Special: 8, HP: 8},
		StatExp:    gen12.StatExp{HP: 1000, Attack: 1000, Defense: 1000, Speed: 1000, Special: 1000},
		OTName:     "ASH",
		Nickname:   "PIKACHU",
	}
	record := Convert(p, false, 2)
	require.NotZero(t, record.Personality)
	assert.True(t, pk3.Verify(record))

	chunks := pk3.DecryptedChunks(record)
	growth := chunks[0]
	assert.Equal(t, uint16(25), uint16(growth[0])|uint16(growth[1])<<8)
}
