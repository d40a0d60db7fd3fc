package save

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNewerWrapsAroundCounterSpace(t *testing.T) {
	// scenario: counter wrapped from near-max back down past zero
	assert.False(t, isNewer(0xFFFFFFFE, 1), "B should win: A trails by a huge diff, meaning B actually wrapped past A")
}

func TestIsNewerOrdinaryCase(t *testing.T) {
	assert.True(t, isNewer(500, 400))
	assert.False(t, isNewer(400, 500))
}

func TestIsNewerEqualIsNotNewer(t *testing.T) {
	assert.False(t, isNewer(7, 7))
}

func slotWith(counter uint32) Slot {
	raw := buildSlot(counter)
	slot, err := ParseSlot(raw)
	if err != nil {
		panic(err)
	}
	return slot
}

func TestElectActiveSlotPicksNewerCounter(t *testing.T) {
	a := slotWith(500)
	b := slotWith(400)
	active, isA, err := ElectActiveSlot(a, b)
	require.NoError(t, err)
	assert.True(t, isA)
	assert.Equal(t, uint32(500), active.Counter)
}

func TestElectActiveSlotHandlesWrap(t *testing.T) {
	a := slotWith(0xFFFFFFFE)
	b := slotWith(1)
	active, isA, err := ElectActiveSlot(a, b)
	require.NoError(t, err)
	assert.False(t, isA)
	assert.Equal(t, uint32(1), active.Counter)
}

func TestElectActiveSlotOnlyOneValid(t *testing.T) {
	raw := buildSlot(1)
	corrupt := buildSection(3, 1, true)
	copy(raw[3*SectionSize:4*SectionSize], corrupt)
	invalid, err := ParseSlot(raw)
	require.NoError(t, err)
	require.False(t, invalid.Valid)

	valid := slotWith(1)
	active, isA, err := ElectActiveSlot(valid, invalid)
	require.NoError(t, err)
	assert.True(t, isA)
	assert.Equal(t, valid.Counter, active.Counter)
}

func TestElectActiveSlotNeitherValidIsCorrupt(t *testing.T) {
	raw := buildSlot(1)
	corrupt := buildSection(3, 1, true)
	copy(raw[3*SectionSize:4*SectionSize], corrupt)
	invalid, err := ParseSlot(raw)
	require.NoError(t, err)

	_, _, err = ElectActiveSlot(invalid, invalid)
	require.Error(t, err)
}
