package save

import (
	"fmt"

	"github.com/JohnDeved/pk3save/box"
	"github.com/JohnDeved/pk3save/codecerr"
	ilog "github.com/JohnDeved/pk3save/internal/log"
)

// pcSectionIDs are the logical section ids whose data regions
// concatenate into the flat PC box region, in order.
var pcSectionIDs = [9]uint16{5, 6, 7, 8, 9, 10, 11, 12, 13}

// Save is a loaded Gen-3 save image: both slots as parsed, plus which
// one is currently active.
type Save struct {
	raw       []byte
	SlotA     Slot
	SlotB     Slot
	Active    Slot
	ActiveIsA bool
}

// Load parses a full SaveImageSize-byte save image and elects the
// active slot. A save with no valid slot fails with codecerr.CorruptSave.
func Load(raw []byte) (*Save, error) {
	if len(raw) != SaveImageSize {
		return nil, codecerr.Newf(codecerr.InvalidSize,
			"save image must be %d bytes, got %d", SaveImageSize, len(raw))
	}

	slotA, err := ParseSlot(raw[0:SlotSize])
	if err != nil {
		return nil, err
	}
	slotB, err := ParseSlot(raw[SlotSize : 2*SlotSize])
	if err != nil {
		return nil, err
	}

	active, activeIsA, err := ElectActiveSlot(slotA, slotB)
	if err != nil {
		return nil, err
	}
	ilog.Debug("elected active slot", ilog.F("is_a", activeIsA), ilog.F("counter", active.Counter))

	return &Save{raw: raw, SlotA: slotA, SlotB: slotB, Active: active, ActiveIsA: activeIsA}, nil
}

// Bytes returns the save image exactly as loaded, byte for byte.
func (s *Save) Bytes() []byte {
	out := make([]byte, len(s.raw))
	copy(out, s.raw)
	return out
}

// pcRegion concatenates the active slot's sections 5..13 data regions
// into one flat buffer, in logical id order.
func (s *Save) pcRegion() ([]byte, error) {
	region := make([]byte, 0, len(pcSectionIDs)*SectionDataSize)
	for _, id := range pcSectionIDs {
		data, err := s.Active.DataRegion(id)
		if err != nil {
			return nil, err
		}
		region = append(region, data...)
	}
	return region, nil
}

// scatterPCRegion writes region's bytes back into the active slot's
// sections 5..13 data regions, in the same order pcRegion built it.
func (s *Save) scatterPCRegion(raw []byte, region []byte) error {
	slotOff := 0
	if !s.ActiveIsA {
		slotOff = SlotSize
	}
	for i, id := range pcSectionIDs {
		physOff, ok := s.Active.physOffset[id]
		if !ok {
			return codecerr.Newf(codecerr.MissingSections, "active slot missing section %d", id)
		}
		dst := raw[slotOff+physOff : slotOff+physOff+SectionDataSize]
		copy(dst, region[i*SectionDataSize:(i+1)*SectionDataSize])
	}
	return nil
}

// Inject returns a new save image with each target written into the PC
// box region, and the active slot's save_counter bumped past both
// slots' current counters. The receiver's backing bytes are never
// mutated.
func (s *Save) Inject(targets []box.Target) ([]byte, error) {
	raw := s.Bytes()

	region, err := s.pcRegion()
	if err != nil {
		return nil, err
	}
	boxView := region[:box.RegionSize]
	if err := box.Inject(boxView, targets); err != nil {
		return nil, err
	}

	if err := s.scatterPCRegion(raw, region); err != nil {
		return nil, err
	}

	slotOff := 0
	activeSlot := s.SlotA
	if !s.ActiveIsA {
		slotOff = SlotSize
		activeSlot = s.SlotB
	}
	activeSlot.raw = raw[slotOff : slotOff+SlotSize]

	nextCounter := maxCounter(s.SlotA.Counter, s.SlotB.Counter) + 1
	if err := activeSlot.RewriteFooters(nextCounter, pcSectionIDs[:]); err != nil {
		return nil, err
	}
	ilog.Info("injected save", ilog.F("targets", len(targets)), ilog.F("counter", nextCounter))

	return raw, nil
}

func maxCounter(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// Validate reports whether the save is safe to modify and, if not, why.
func (s *Save) Validate() (modifiable bool, reasons []string) {
	if !s.SlotA.Valid && !s.SlotB.Valid {
		return false, []string{"no valid slot"}
	}
	if !s.Active.Valid {
		return false, []string{"active slot failed integrity checks"}
	}
	var warnings []string
	if s.SlotA.Valid && s.SlotB.Valid && s.SlotA.Counter == s.SlotB.Counter {
		warnings = append(warnings, fmt.Sprintf("both slots share save_counter %d", s.SlotA.Counter))
	}
	return true, warnings
}
