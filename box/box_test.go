package box

import (
	"testing"

	"github.com/JohnDeved/pk3save/pk3"
	"github.com/JohnDeved/pk3save/substruct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord(species uint16) pk3.Record {
	var logical pk3.Chunks
	growth := substruct.Growth{Species: species, Experience: 8000}
	logical[0] = growth.Emit()

	var nickname [10]byte
	copy(nickname[:], []byte{0xBB, 0xBC, 0xBD})
	var otName [7]byte
	copy(otName[:], []byte{0xBB, 0xBC})

	return pk3.EmitFromChunks(logical, 0x01020304, 0x05060708, nickname, 2, otName, 0, 0)
}

func blankRegion() []byte {
	return make([]byte, RegionSize)
}

func TestOffsetBoundsChecking(t *testing.T) {
	_, err := offset(-1, 0)
	assert.Error(t, err)
	_, err = offset(NumBoxes, 0)
	assert.Error(t, err)
	_, err = offset(0, -1)
	assert.Error(t, err)
	_, err = offset(0, SlotsPerBox)
	assert.Error(t, err)

	off, err := offset(0, 0)
	require.NoError(t, err)
	assert.Equal(t, HeaderSize, off)

	off, err = offset(1, 0)
	require.NoError(t, err)
	assert.Equal(t, HeaderSize+SlotsPerBox*pk3.Size, off)
}

func TestExtractRejectsWrongSizedRegion(t *testing.T) {
	_, err := Extract(make([]byte, RegionSize-1))
	assert.Error(t, err)
}

func TestExtractFindsAllEmptySlotsByDefault(t *testing.T) {
	entries, err := Extract(blankRegion())
	require.NoError(t, err)
	require.Len(t, entries, NumBoxes*SlotsPerBox)
	for _, e := range entries {
		assert.True(t, e.Empty)
		assert.True(t, e.Checked)
	}
}

func TestInjectThenExtractRoundTripsOneSlot(t *testing.T) {
	region := blankRegion()
	record := validRecord(7)

	err := Inject(region, []Target{{Box: 2, Slot: 5, Record: record}})
	require.NoError(t, err)

	entries, err := Extract(region)
	require.NoError(t, err)

	var found *Entry
	for i := range entries {
		if entries[i].Box == 2 && entries[i].Slot == 5 {
			found = &entries[i]
		}
	}
	require.NotNil(t, found)
	assert.False(t, found.Empty)
	assert.True(t, found.Checked)
	assert.Equal(t, record.Emit(), found.Record.Emit())
}

func TestInjectLeavesOtherSlotsUntouched(t *testing.T) {
	region := blankRegion()
	require.NoError(t, Inject(region, []Target{{Box: 0, Slot: 0, Record: validRecord(1)}}))

	entries, err := Extract(region)
	require.NoError(t, err)
	for _, e := range entries {
		if e.Box == 0 && e.Slot == 0 {
			continue
		}
		assert.True(t, e.Empty, "box %d slot %d should remain empty", e.Box, e.Slot)
	}
}

func TestInjectLastWriteWinsOnDuplicateTarget(t *testing.T) {
	region := blankRegion()
	targets := []Target{
		{Box: 0, Slot: 0, Record: validRecord(1)},
		{Box: 0, Slot: 0, Record: validRecord(2)},
	}
	require.NoError(t, Inject(region, targets))

	entries, err := Extract(region)
	require.NoError(t, err)
	v := findEntry(entries, 0, 0)
	require.NotNil(t, v)
	assert.False(t, v.Empty)
	assert.Equal(t, validRecord(2).Emit(), v.Record.Emit())
}

func TestInjectRejectsOutOfRangeTarget(t *testing.T) {
	region := blankRegion()
	err := Inject(region, []Target{{Box: NumBoxes, Slot: 0, Record: validRecord(1)}})
	assert.Error(t, err)
}

func TestInjectRejectsWrongSizedRegion(t *testing.T) {
	err := Inject(make([]byte, RegionSize-1), nil)
	assert.Error(t, err)
}

func findEntry(entries []Entry, boxN, slotN int) *Entry {
	for i := range entries {
		if entries[i].Box == boxN && entries[i].Slot == slotN {
			return &entries[i]
		}
	}
	return nil
}
