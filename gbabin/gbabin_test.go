package gbabin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadU16(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		offset   int
		expected uint16
	}{
		{"zero", []byte{0x00, 0x00}, 0, 0x0000},
		{"little endian 0x1234", []byte{0x34, 0x12}, 0, 0x1234},
		{"max value", []byte{0xFF, 0xFF}, 0, 0xFFFF},
		{"with offset", []byte{0x00, 0x34, 0x12, 0x00}, 1, 0x1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Region(tt.data).ReadU16(tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReadU32(t *testing.T) {
	r := Region([]byte{0x78, 0x56, 0x34, 0x12})
	got, err := r.ReadU32(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), got)
}

func TestReadU24(t *testing.T) {
	r := Region([]byte{0x01, 0x02, 0x03})
	got, err := r.ReadU24(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x030201), got)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	r := make(Region, 4)
	require.NoError(t, r.WriteU32(0, 0xDEADBEEF))
	got, err := r.ReadU32(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), got)
}

func TestOutOfRangeSignalsError(t *testing.T) {
	r := make(Region, 2)
	_, err := r.ReadU32(0)
	assert.Error(t, err)

	_, err = r.ReadU16(1)
	assert.Error(t, err)

	err = r.WriteU8(5, 1)
	assert.Error(t, err)
}

func TestSlice(t *testing.T) {
	r := Region([]byte{1, 2, 3, 4, 5})
	sub, err := r.Slice(1, 4)
	require.NoError(t, err)
	assert.Equal(t, Region{2, 3, 4}, sub)

	_, err = r.Slice(4, 10)
	assert.Error(t, err)
}

func TestIsAllZero(t *testing.T) {
	assert.True(t, Region{0, 0, 0}.IsAllZero())
	assert.False(t, Region{0, 1, 0}.IsAllZero())
	assert.True(t, Region{}.IsAllZero())
}

func TestCopyBytesIsIndependent(t *testing.T) {
	r := Region{1, 2, 3}
	cp := r.CopyBytes()
	cp[0] = 99
	assert.Equal(t, byte(1), r[0])
}
