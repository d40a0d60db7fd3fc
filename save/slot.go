package save

import (
	"fmt"
	"sort"

	"github.com/JohnDeved/pk3save/codecerr"
)

// Slot is a parsed, order-independent collection of the 14 sections
// physically stored back to back in one 57,344-byte region. Sections
// are indexed by their logical id, not their physical position:
// physical rotation across save counters is why the footer carries an
// explicit id field at all.
type Slot struct {
	raw        []byte              // the slot's SlotSize-byte backing region
	byID       map[uint16]Section  // logical id -> section
	physOffset map[uint16]int      // logical id -> byte offset within raw
	idCounts   map[uint16]int      // footer id -> number of physical sections carrying it
	Counter    uint32              // max counter across all physical sections
	Valid      bool
	BadIDs     []uint16 // ids that failed §4.5 integrity (signature or checksum)
}

// ParseSlot parses a SlotSize-byte region into a Slot. It never returns
// an error for corrupt data: corruption is reported via Slot.Valid and
// Slot.BadIDs so the caller can diagnose both slots before giving up.
func ParseSlot(raw []byte) (Slot, error) {
	if len(raw) != SlotSize {
		return Slot{}, codecerr.Newf(codecerr.InvalidSize, "slot must be %d bytes, got %d", SlotSize, len(raw))
	}

	slot := Slot{
		raw:        raw,
		byID:       make(map[uint16]Section, NumSections),
		physOffset: make(map[uint16]int, NumSections),
	}

	idCounts := make(map[uint16]int)
	var maxCounter uint32
	var badIDs []uint16

	for phys := 0; phys < NumSections; phys++ {
		off := phys * SectionSize
		section, err := ParseSection(raw[off : off+SectionSize])
		if err != nil {
			return Slot{}, err
		}
		if section.SaveCounter > maxCounter {
			maxCounter = section.SaveCounter
		}
		idCounts[section.ID]++
		// Only the first occurrence of a given id is kept in byID; a
		// duplicate id always makes the slot invalid regardless, and
		// diagnosis reports the id itself, not which physical copy won.
		if _, exists := slot.byID[section.ID]; !exists {
			slot.byID[section.ID] = section
			slot.physOffset[section.ID] = off
		}
		if !section.IsValid() {
			badIDs = append(badIDs, section.ID)
		}
	}

	slot.Counter = maxCounter
	slot.BadIDs = badIDs
	slot.idCounts = idCounts

	missing, duplicate := diagnoseIDs(idCounts)
	slot.Valid = len(badIDs) == 0 && len(missing) == 0 && len(duplicate) == 0
	return slot, nil
}

// diagnoseIDs compares the observed id multiset against {0..13} and
// reports which ids are missing and which are duplicated.
func diagnoseIDs(counts map[uint16]int) (missing, duplicate []uint16) {
	for id := uint16(0); id < NumSections; id++ {
		if counts[id] == 0 {
			missing = append(missing, id)
		}
	}
	for id, n := range counts {
		if id < NumSections && n > 1 {
			duplicate = append(duplicate, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	sort.Slice(duplicate, func(i, j int) bool { return duplicate[i] < duplicate[j] })
	return
}

// Section returns the parsed section for a logical id.
func (s Slot) Section(id uint16) (Section, bool) {
	sec, ok := s.byID[id]
	return sec, ok
}

// DataRegion returns a mutable, zero-copy view of section id's
// 4,084-byte data region within the slot's backing buffer.
func (s Slot) DataRegion(id uint16) ([]byte, error) {
	off, ok := s.physOffset[id]
	if !ok {
		return nil, codecerr.Newf(codecerr.MissingSections, "slot has no section %d", id)
	}
	return s.raw[off : off+SectionDataSize], nil
}

// RewriteFooters sets every physical section's counter field to counter
// and, for each id in touchedIDs, recomputes and rewrites that section's
// checksum from its current data region. Sections not named in
// touchedIDs keep their existing checksum untouched.
func (s Slot) RewriteFooters(counter uint32, touchedIDs []uint16) error {
	touched := make(map[uint16]bool, len(touchedIDs))
	for _, id := range touchedIDs {
		touched[id] = true
	}

	for phys := 0; phys < NumSections; phys++ {
		off := phys * SectionSize
		raw := s.raw[off : off+SectionSize]
		section, err := ParseSection(raw)
		if err != nil {
			return err
		}
		checksum := section.Checksum
		if touched[section.ID] {
			computed, err := ComputeChecksum(raw[:SectionDataSize])
			if err != nil {
				return err
			}
			checksum = computed
		}
		writeFooter(raw, section.ID, checksum, section.Signature, counter)
	}
	return nil
}

// Diagnosis renders a short human-readable summary of why a slot is
// invalid, for CorruptSave error messages.
func (s Slot) Diagnosis() string {
	if s.Valid {
		return "valid"
	}
	missing, duplicate := diagnoseIDs(s.idCounts)
	return fmt.Sprintf("bad_sections=%v missing=%v duplicate=%v", s.BadIDs, missing, duplicate)
}
