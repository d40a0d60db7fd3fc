package main

import (
	"github.com/JohnDeved/pk3save/save"
)

// pcSectionIDs mirrors the save package's private ordering: sections
// 5..13's data regions concatenate, in id order, into the flat PC box
// region.
var pcSectionIDs = [9]uint16{5, 6, 7, 8, 9, 10, 11, 12, 13}

// pcRegionOf concatenates a loaded save's active-slot PC sections into
// one flat buffer, the same region the box package addresses.
func pcRegionOf(s *save.Save) ([]byte, error) {
	region := make([]byte, 0, len(pcSectionIDs)*save.SectionDataSize)
	for _, id := range pcSectionIDs {
		data, err := s.Active.DataRegion(id)
		if err != nil {
			return nil, err
		}
		region = append(region, data...)
	}
	return region, nil
}

func activeSlotLabel(s *save.Save) string {
	if s.ActiveIsA {
		return "A"
	}
	return "B"
}
