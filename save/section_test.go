package save

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSection(id uint16, counter uint32, corruptChecksum bool) []byte {
	raw := make([]byte, SectionSize)
	for i := 0; i < SectionDataSize; i += 4 {
		binary.LittleEndian.PutUint32(raw[i:], uint32(i)*2654435761)
	}
	checksum, err := ComputeChecksum(raw[:SectionDataSize])
	if err != nil {
		panic(err)
	}
	if corruptChecksum {
		checksum ^= 0xFFFF
	}
	writeFooter(raw, id, checksum, Signature, counter)
	return raw
}

func TestComputeChecksumAllZero(t *testing.T) {
	data := make([]byte, SectionDataSize)
	checksum, err := ComputeChecksum(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), checksum)
}

func TestComputeChecksumRejectsWrongSize(t *testing.T) {
	_, err := ComputeChecksum(make([]byte, 10))
	require.Error(t, err)
}

func TestParseSectionRoundTrip(t *testing.T) {
	raw := buildSection(3, 77, false)
	section, err := ParseSection(raw)
	require.NoError(t, err)
	assert.Equal(t, uint16(3), section.ID)
	assert.Equal(t, uint32(77), section.SaveCounter)
	assert.Equal(t, uint32(Signature), section.Signature)
	assert.True(t, section.IsValid())
}

func TestSectionInvalidOnBadChecksum(t *testing.T) {
	raw := buildSection(0, 1, true)
	section, err := ParseSection(raw)
	require.NoError(t, err)
	assert.False(t, section.IsValid())
}

func TestSectionInvalidOnBadSignature(t *testing.T) {
	raw := buildSection(0, 1, false)
	binary.LittleEndian.PutUint32(raw[SectionDataSize+footerOffSignature:], 0xBADBEEF)
	section, err := ParseSection(raw)
	require.NoError(t, err)
	assert.False(t, section.IsValid())
}

func TestSectionInvalidOnOutOfRangeID(t *testing.T) {
	raw := buildSection(200, 1, false)
	section, err := ParseSection(raw)
	require.NoError(t, err)
	assert.False(t, section.IsValid())
}

func TestParseSectionRejectsWrongSize(t *testing.T) {
	_, err := ParseSection(make([]byte, 100))
	require.Error(t, err)
}
