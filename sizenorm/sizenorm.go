// Package sizenorm implements save-image size normalization and
// generation detection (component C9 of the save-file specification):
// trimming backup/padded dumps to their canonical size and classifying
// a raw region as Gen-1, Gen-2, or Gen-3 before handing it to the
// matching parser.
package sizenorm

import (
	"encoding/binary"

	"github.com/JohnDeved/pk3save/codecerr"
)

// Canonical target sizes.
const (
	TargetGen12 = 32768
	TargetGen3  = 131072

	// overTolerance is the maximum number of trailing bytes a dump may
	// carry past the canonical target and still be trimmed rather than
	// rejected.
	overTolerance = 512

	// gen2ChecksumRegionStart/End and gen2ChecksumOffset locate the
	// Gen-2 checksum probe used to disambiguate Gen-1 from Gen-2 dumps.
	gen2ChecksumRegionStart = 0x2009
	gen2ChecksumRegionEnd   = 0x2D0C // inclusive
	gen2ChecksumOffset      = 0x2D0D
)

// Kind is the closed set of save generations this module recognizes.
type Kind int

const (
	Unknown Kind = iota
	Gen1
	Gen2
	Gen3
)

func (k Kind) String() string {
	switch k {
	case Gen1:
		return "gen1"
	case Gen2:
		return "gen2"
	case Gen3:
		return "gen3"
	default:
		return "unknown"
	}
}

// Normalize trims raw to exactly target bytes, per §4.9:
//   - already exactly target: returned unchanged
//   - within overTolerance bytes over target: sliced to target
//   - exactly double target (a doubled backup image): sliced to target
//   - anything else: a codecerr.InvalidSize error ("file too small" or
//     "file too large")
func Normalize(raw []byte, target int) ([]byte, error) {
	n := len(raw)
	switch {
	case n == target:
		return raw[:target:target], nil
	case n > target && n <= target+overTolerance:
		return raw[:target:target], nil
	case n == 2*target:
		return raw[:target:target], nil
	case n < target:
		return nil, codecerr.Newf(codecerr.InvalidSize,
			"file too small: got %d bytes, want %d", n, target)
	default:
		return nil, codecerr.Newf(codecerr.InvalidSize,
			"file too large: got %d bytes, want %d", n, target)
	}
}

// Detect classifies raw by size, then (for the Gen-1/2 size range)
// probes the Gen-2 checksum to disambiguate Gen-1 from Gen-2.
func Detect(raw []byte) Kind {
	n := len(raw)
	switch {
	case n == TargetGen3 || (n > TargetGen3 && n <= TargetGen3+overTolerance) || n == 2*TargetGen3:
		return Gen3
	case n == TargetGen12 || (n > TargetGen12 && n <= TargetGen12+overTolerance) || n == 2*TargetGen12:
		normalized, err := Normalize(raw, TargetGen12)
		if err != nil {
			return Unknown
		}
		if hasValidGen2Checksum(normalized) {
			return Gen2
		}
		return Gen1
	default:
		return Unknown
	}
}

// hasValidGen2Checksum reports whether data (already normalized to 32
// KiB) carries a valid Gen-2 checksum: a 16-bit little-endian sum of
// bytes [0x2009, 0x2D0C] stored at 0x2D0D. A stored value of 0 or
// 0xFFFF (blank or erased memory) never counts as valid.
func hasValidGen2Checksum(data []byte) bool {
	if len(data) < gen2ChecksumOffset+2 {
		return false
	}
	if stored := binary.LittleEndian.Uint16(data[gen2ChecksumOffset:]); stored == 0 || stored == 0xFFFF {
		return false
	}
	var sum uint16
	for i := gen2ChecksumRegionStart; i <= gen2ChecksumRegionEnd; i++ {
		sum += uint16(data[i])
	}
	stored := binary.LittleEndian.Uint16(data[gen2ChecksumOffset:])
	return sum == stored
}
