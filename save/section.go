// Package save implements the Generation-3 save container (component C5
// of the save-file specification): section parsing and checksums, slot
// parsing, active-slot election under counter wrap-around, and
// reassembly of a modified save image after injection.
package save

import (
	"encoding/binary"

	"github.com/JohnDeved/pk3save/codecerr"
	"github.com/JohnDeved/pk3save/gbabin"
)

const (
	// SectionSize is the fixed on-disk size of one section, data plus
	// footer.
	SectionSize = 4096
	// SectionDataSize is the size of a section's data region, excluding
	// its 12-byte footer.
	SectionDataSize = 4084
	// FooterSize is the size of a section's trailing footer.
	FooterSize = 12
	// NumSections is the number of sections in a slot; section ids are
	// exactly {0, ..., NumSections-1}.
	NumSections = 14
	// SlotSize is the size of one slot: NumSections sections back to back.
	SlotSize = NumSections * SectionSize
	// SaveImageSize is the total canonical Gen-3 save file size: two
	// slots plus 16,384 bytes of auxiliary data the core does not use.
	SaveImageSize = 2*SlotSize + 16384
	// Signature is the fixed magic value every valid section footer
	// must carry.
	Signature = 0x08012025
)

// footer offsets, relative to the start of a section's 12-byte footer.
const (
	footerOffID        = 0
	footerOffChecksum  = 2
	footerOffSignature = 4
	footerOffCounter   = 8
)

// Section is a parsed view over one 4,096-byte section: its footer
// fields plus a zero-copy view of its 4,084-byte data region.
type Section struct {
	ID          uint16
	Checksum    uint16
	Signature   uint32
	SaveCounter uint32
	Data        gbabin.Region // 4,084 bytes, view into the owning buffer
}

// ParseSection reads one 4,096-byte section. It always succeeds
// structurally (a bad signature or checksum is reported via IsValid,
// not by returning an error) so that slot-level diagnosis can name every
// bad section.
func ParseSection(raw []byte) (Section, error) {
	if len(raw) != SectionSize {
		return Section{}, codecerr.Newf(codecerr.InvalidSize,
			"section must be %d bytes, got %d", SectionSize, len(raw))
	}
	footer := raw[SectionDataSize:]
	return Section{
		ID:          binary.LittleEndian.Uint16(footer[footerOffID:]),
		Checksum:    binary.LittleEndian.Uint16(footer[footerOffChecksum:]),
		Signature:   binary.LittleEndian.Uint32(footer[footerOffSignature:]),
		SaveCounter: binary.LittleEndian.Uint32(footer[footerOffCounter:]),
		Data:        gbabin.Region(raw[:SectionDataSize]),
	}, nil
}

// ComputeChecksum computes the §4.5 section checksum: the 4,084-byte
// data region is summed as 1,021 little-endian uint32 words using
// 32-bit wrapping addition, then folded to 16 bits by adding the high
// and low halves modulo 2^16.
func ComputeChecksum(data []byte) (uint16, error) {
	if len(data) != SectionDataSize {
		return 0, codecerr.Newf(codecerr.InvalidSize,
			"section data region must be %d bytes, got %d", SectionDataSize, len(data))
	}
	var sum uint32
	for i := 0; i < SectionDataSize; i += 4 {
		sum += binary.LittleEndian.Uint32(data[i:]) // wraps on overflow, uint32 arithmetic
	}
	folded := uint16(sum>>16) + uint16(sum&0xFFFF)
	return folded, nil
}

// IsValid reports whether the section's id is in range, its signature
// matches, and its stored checksum agrees with the computed one.
func (s Section) IsValid() bool {
	if s.ID > NumSections-1 {
		return false
	}
	if s.Signature != Signature {
		return false
	}
	computed, err := ComputeChecksum(s.Data)
	if err != nil {
		return false
	}
	return computed == s.Checksum
}

// writeFooter writes id/checksum/signature/counter into raw's trailing
// 12 bytes. raw must be a full SectionSize-byte section.
func writeFooter(raw []byte, id uint16, checksum uint16, signature uint32, counter uint32) {
	footer := raw[SectionDataSize:]
	binary.LittleEndian.PutUint16(footer[footerOffID:], id)
	binary.LittleEndian.PutUint16(footer[footerOffChecksum:], checksum)
	binary.LittleEndian.PutUint32(footer[footerOffSignature:], signature)
	binary.LittleEndian.PutUint32(footer[footerOffCounter:], counter)
}
