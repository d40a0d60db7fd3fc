package save

import "github.com/JohnDeved/pk3save/codecerr"

// isNewer reports whether counter cA is more recent than cB under the
// §4.5 wrap-tolerant unsigned comparison: the difference is taken modulo
// 2^32, and cA is newer iff that difference is nonzero and less than
// 2^31. This treats the 32-bit counter space as a circle with cB at the
// origin, so a counter that has wrapped past 0xFFFFFFFF still compares
// as newer than the value it wrapped from.
func isNewer(cA, cB uint32) bool {
	diff := cA - cB
	return diff != 0 && diff < 0x80000000
}

// ElectActiveSlot picks the slot that holds the game's current state.
// If exactly one slot validated, it wins outright regardless of its
// counter. If both validated, the one with the newer save_counter wins
// under isNewer. If neither validated, the save is unrecoverable.
func ElectActiveSlot(a, b Slot) (active Slot, activeIsA bool, err error) {
	switch {
	case a.Valid && !b.Valid:
		return a, true, nil
	case b.Valid && !a.Valid:
		return b, false, nil
	case !a.Valid && !b.Valid:
		return Slot{}, false, codecerr.Newf(codecerr.CorruptSave,
			"no valid slot: slot A (%s), slot B (%s)", a.Diagnosis(), b.Diagnosis())
	default:
		if isNewer(a.Counter, b.Counter) {
			return a, true, nil
		}
		return b, false, nil
	}
}
