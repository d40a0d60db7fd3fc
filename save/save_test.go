package save

import (
	"testing"

	"github.com/JohnDeved/pk3save/box"
	"github.com/JohnDeved/pk3save/pk3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSaveImage(counterA, counterB uint32) []byte {
	raw := make([]byte, SaveImageSize)
	copy(raw[0:SlotSize], buildSlot(counterA))
	copy(raw[SlotSize:2*SlotSize], buildSlot(counterB))
	return raw
}

func TestLoadElectsNewerSlot(t *testing.T) {
	raw := buildSaveImage(500, 400)
	s, err := Load(raw)
	require.NoError(t, err)
	assert.True(t, s.ActiveIsA)
	assert.Equal(t, uint32(500), s.Active.Counter)
}

func TestLoadRejectsWrongSize(t *testing.T) {
	_, err := Load(make([]byte, 100))
	require.Error(t, err)
}

// Testable property: Bytes() returns an untouched save image byte for
// byte identical to what was loaded.
func TestBytesIsExactRoundTrip(t *testing.T) {
	raw := buildSaveImage(10, 9)
	s, err := Load(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, s.Bytes())
}

func TestBytesDoesNotAliasInput(t *testing.T) {
	raw := buildSaveImage(10, 9)
	s, err := Load(raw)
	require.NoError(t, err)
	out := s.Bytes()
	out[0] ^= 0xFF
	assert.NotEqual(t, raw[0], out[0])
}

func TestInjectWritesRecordAndBumpsCounter(t *testing.T) {
	raw := buildSaveImage(10, 9)
	s, err := Load(raw)
	require.NoError(t, err)

	var logical pk3.Chunks
	logical[0] = [12]byte{1, 2, 3}
	var nickname [10]byte
	var otName [7]byte
	record := pk3.EmitFromChunks(logical, 0x12345678, 0xAABBCCDD, nickname, 5, otName, 0, 0)

	out, err := s.Inject([]box.Target{{Box: 0, Slot: 0, Record: record}})
	require.NoError(t, err)
	require.Len(t, out, SaveImageSize)

	reloaded, err := Load(out)
	require.NoError(t, err)
	assert.True(t, reloaded.Active.Valid)
	assert.Equal(t, uint32(11), reloaded.Active.Counter, "counter must advance past both prior slots")

	region, err := reloaded.pcRegion()
	require.NoError(t, err)
	entries, err := box.Extract(region[:box.RegionSize])
	require.NoError(t, err)
	assert.Equal(t, record, entries[0].Record)
}

func TestInjectDoesNotMutateReceiver(t *testing.T) {
	raw := buildSaveImage(10, 9)
	s, err := Load(raw)
	require.NoError(t, err)
	before := s.Bytes()

	var record pk3.Record
	_, err = s.Inject([]box.Target{{Box: 0, Slot: 0, Record: record}})
	require.NoError(t, err)

	assert.Equal(t, before, s.Bytes(), "Inject must not mutate the original Save")
}

func TestLoadRejectsSaveWithNoValidSlot(t *testing.T) {
	raw := buildSaveImage(1, 1)
	corrupt := buildSection(3, 1, true)
	copy(raw[3*SectionSize:4*SectionSize], corrupt)
	copy(raw[SlotSize+3*SectionSize:SlotSize+4*SectionSize], corrupt)

	_, err := Load(raw)
	require.Error(t, err, "a save with no valid slot must fail to load")
}

func TestValidateWarnsOnEqualCounters(t *testing.T) {
	raw := buildSaveImage(5, 5)
	s, err := Load(raw)
	require.NoError(t, err)

	modifiable, reasons := s.Validate()
	assert.True(t, modifiable)
	assert.NotEmpty(t, reasons)
}
