package save

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSlot assembles a structurally valid SlotSize-byte slot: 14
// sections with distinct ids 0..13, each with a correct checksum and
// signature, all sharing the given save_counter.
func buildSlot(counter uint32) []byte {
	raw := make([]byte, SlotSize)
	for id := 0; id < NumSections; id++ {
		off := id * SectionSize
		copy(raw[off:off+SectionSize], buildSection(uint16(id), counter, false))
	}
	return raw
}

func TestParseSlotValid(t *testing.T) {
	raw := buildSlot(42)
	slot, err := ParseSlot(raw)
	require.NoError(t, err)
	assert.True(t, slot.Valid)
	assert.Equal(t, uint32(42), slot.Counter)
	assert.Empty(t, slot.BadIDs)
}

func TestParseSlotDetectsMissingSection(t *testing.T) {
	raw := buildSlot(1)
	// overwrite section id 13 with a duplicate of id 0, leaving 13 missing
	dup := buildSection(0, 1, false)
	copy(raw[13*SectionSize:14*SectionSize], dup)

	slot, err := ParseSlot(raw)
	require.NoError(t, err)
	assert.False(t, slot.Valid)
}

func TestParseSlotDetectsBadChecksum(t *testing.T) {
	raw := buildSlot(1)
	corrupt := buildSection(5, 1, true)
	copy(raw[5*SectionSize:6*SectionSize], corrupt)

	slot, err := ParseSlot(raw)
	require.NoError(t, err)
	assert.False(t, slot.Valid)
	assert.Contains(t, slot.BadIDs, uint16(5))
}

func TestParseSlotRejectsWrongSize(t *testing.T) {
	_, err := ParseSlot(make([]byte, 100))
	require.Error(t, err)
}

func TestSlotDataRegionRoundTrip(t *testing.T) {
	raw := buildSlot(1)
	slot, err := ParseSlot(raw)
	require.NoError(t, err)

	region, err := slot.DataRegion(7)
	require.NoError(t, err)
	assert.Len(t, region, SectionDataSize)

	region[0] = 0xAB
	// DataRegion is a zero-copy view: mutating it mutates the backing slot.
	assert.Equal(t, byte(0xAB), raw[7*SectionSize])
}

func TestSlotDataRegionMissingID(t *testing.T) {
	raw := buildSlot(1)
	slot, err := ParseSlot(raw)
	require.NoError(t, err)

	_, err = slot.DataRegion(99)
	require.Error(t, err)
}

func TestSlotRewriteFootersBumpsCounterAndChecksum(t *testing.T) {
	raw := buildSlot(10)
	slot, err := ParseSlot(raw)
	require.NoError(t, err)

	region, err := slot.DataRegion(5)
	require.NoError(t, err)
	region[0] ^= 0xFF // mutate section 5's data in place

	require.NoError(t, slot.RewriteFooters(11, []uint16{5}))

	reparsed, err := ParseSlot(raw)
	require.NoError(t, err)
	assert.True(t, reparsed.Valid)
	assert.Equal(t, uint32(11), reparsed.Counter)
}
