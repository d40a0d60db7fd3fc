// Package gbabin provides bounds-checked little-endian readers and
// writers over a raw byte region, the primitive C1 layer every other
// codec package in this module is built on.
package gbabin

import (
	"encoding/binary"

	"github.com/JohnDeved/pk3save/codecerr"
)

// Region is a byte slice viewed as an addressable little-endian region.
// It never copies on construction; callers that need an owned buffer
// should call CopyBytes explicitly.
type Region []byte

// ReadU8 reads a single byte at offset.
func (r Region) ReadU8(offset int) (uint8, error) {
	if offset < 0 || offset+1 > len(r) {
		return 0, outOfRange(offset, 1, len(r))
	}
	return r[offset], nil
}

// ReadU16 reads a little-endian uint16 at offset.
func (r Region) ReadU16(offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(r) {
		return 0, outOfRange(offset, 2, len(r))
	}
	return binary.LittleEndian.Uint16(r[offset:]), nil
}

// ReadU24 reads a little-endian 24-bit unsigned integer at offset. This
// width is needed only by Gen-1/2 experience fields.
func (r Region) ReadU24(offset int) (uint32, error) {
	if offset < 0 || offset+3 > len(r) {
		return 0, outOfRange(offset, 3, len(r))
	}
	return uint32(r[offset]) | uint32(r[offset+1])<<8 | uint32(r[offset+2])<<16, nil
}

// ReadU32 reads a little-endian uint32 at offset.
func (r Region) ReadU32(offset int) (uint32, error) {
	if offset < 0 || offset+4 > len(r) {
		return 0, outOfRange(offset, 4, len(r))
	}
	return binary.LittleEndian.Uint32(r[offset:]), nil
}

// WriteU8 writes a single byte at offset.
func (r Region) WriteU8(offset int, v uint8) error {
	if offset < 0 || offset+1 > len(r) {
		return outOfRange(offset, 1, len(r))
	}
	r[offset] = v
	return nil
}

// WriteU16 writes a little-endian uint16 at offset.
func (r Region) WriteU16(offset int, v uint16) error {
	if offset < 0 || offset+2 > len(r) {
		return outOfRange(offset, 2, len(r))
	}
	binary.LittleEndian.PutUint16(r[offset:], v)
	return nil
}

// WriteU24 writes the low 24 bits of v, little-endian, at offset.
func (r Region) WriteU24(offset int, v uint32) error {
	if offset < 0 || offset+3 > len(r) {
		return outOfRange(offset, 3, len(r))
	}
	r[offset] = byte(v)
	r[offset+1] = byte(v >> 8)
	r[offset+2] = byte(v >> 16)
	return nil
}

// WriteU32 writes a little-endian uint32 at offset.
func (r Region) WriteU32(offset int, v uint32) error {
	if offset < 0 || offset+4 > len(r) {
		return outOfRange(offset, 4, len(r))
	}
	binary.LittleEndian.PutUint32(r[offset:], v)
	return nil
}

// Slice returns the sub-region [start:end) as a zero-copy view.
func (r Region) Slice(start, end int) (Region, error) {
	if start < 0 || end < start || end > len(r) {
		return nil, outOfRange(start, end-start, len(r))
	}
	return r[start:end], nil
}

// CopyBytes returns an owned copy of r.
func (r Region) CopyBytes() []byte {
	out := make([]byte, len(r))
	copy(out, r)
	return out
}

// IsAllZero reports whether every byte in r is zero.
func (r Region) IsAllZero() bool {
	for _, b := range r {
		if b != 0 {
			return false
		}
	}
	return true
}

func outOfRange(offset, width, regionLen int) error {
	return codecerr.Newf(codecerr.OutOfRange,
		"access [%d:%d) out of bounds for region of length %d", offset, offset+width, regionLen)
}
