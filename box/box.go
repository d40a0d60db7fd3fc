// Package box implements the PC box layout (component C6 of the
// save-file specification): a flat byte region holding 14 boxes of 30
// Pokémon each, addressed by a fixed per-slot stride. The package is
// independent of the save container; callers assemble the flat region
// from whichever sections back it and scatter the result back
// themselves.
package box

import (
	"github.com/JohnDeved/pk3save/codecerr"
	"github.com/JohnDeved/pk3save/pk3"
)

const (
	// NumBoxes is the number of storage boxes.
	NumBoxes = 14
	// SlotsPerBox is the number of Pokémon slots per box.
	SlotsPerBox = 30
	// HeaderSize is the size of the PC region's leading header (current
	// box index plus padding); the spec treats it as opaque.
	HeaderSize = 4
	// RegionSize is the total size of the flat PC region.
	RegionSize = HeaderSize + NumBoxes*SlotsPerBox*pk3.Size
)

// Target names a single box slot and the record to write there.
type Target struct {
	Box    int
	Slot   int
	Record pk3.Record
}

// Entry is one slot's parsed contents, returned by Extract.
type Entry struct {
	Box     int
	Slot    int
	Record  pk3.Record
	Empty   bool
	Checked bool // false if Record.Checksum did not verify against its payload
}

func offset(boxN, slotN int) (int, error) {
	if boxN < 0 || boxN >= NumBoxes {
		return 0, codecerr.Newf(codecerr.OutOfRange, "box %d out of range [0,%d)", boxN, NumBoxes)
	}
	if slotN < 0 || slotN >= SlotsPerBox {
		return 0, codecerr.Newf(codecerr.OutOfRange, "slot %d out of range [0,%d)", slotN, SlotsPerBox)
	}
	return HeaderSize + pk3.Size*(SlotsPerBox*boxN+slotN), nil
}

// Extract walks every box slot in region and returns its parsed state.
// region must be exactly RegionSize bytes.
func Extract(region []byte) ([]Entry, error) {
	if len(region) != RegionSize {
		return nil, codecerr.Newf(codecerr.InvalidSize,
			"PC region must be %d bytes, got %d", RegionSize, len(region))
	}

	entries := make([]Entry, 0, NumBoxes*SlotsPerBox)
	for boxN := 0; boxN < NumBoxes; boxN++ {
		for slotN := 0; slotN < SlotsPerBox; slotN++ {
			off, err := offset(boxN, slotN)
			if err != nil {
				return nil, err
			}
			record, err := pk3.Parse(region[off : off+pk3.Size])
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{
				Box:     boxN,
				Slot:    slotN,
				Record:  record,
				Empty:   record.IsEmpty(),
				Checked: record.IsEmpty() || pk3.Verify(record),
			})
		}
	}
	return entries, nil
}

// Inject writes each target's record into region at its (Box, Slot)
// address, overwriting exactly pk3.Size bytes per target and leaving
// everything else untouched. region must be exactly RegionSize bytes.
func Inject(region []byte, targets []Target) error {
	if len(region) != RegionSize {
		return codecerr.Newf(codecerr.InvalidSize,
			"PC region must be %d bytes, got %d", RegionSize, len(region))
	}
	for _, t := range targets {
		off, err := offset(t.Box, t.Slot)
		if err != nil {
			return err
		}
		copy(region[off:off+pk3.Size], t.Record.Emit())
	}
	return nil
}
