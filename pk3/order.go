package pk3

// orderTable holds the 24 permutations of (0,1,2,3) that the Generation-3
// games use to scramble the four 12-byte substructures (Growth, Attacks,
// EVs&Contest, Misc) inside a PK3 payload. orderTable[k][p] is the
// logical substructure index stored at physical chunk p when
// personality mod 24 == k.
//
// The canonical ordering (by substructure letters G/A/E/M) is the one
// the original games use, enumerated in the fixed sequence:
// GAEM GAME GEAM GEMA GMAE GMEA AGEM AGME AEGM AEMG AMGE AMEG
// EGAM EGMA EAGM EAMG EMGA EMAG MGAE MGEA MAGE MAEG MEGA MEAG
var orderTable = [24][4]int{
	{0, 1, 2, 3}, // GAEM
	{0, 1, 3, 2}, // GAME
	{0, 2, 1, 3}, // GEAM
	{0, 2, 3, 1}, // GEMA
	{0, 3, 1, 2}, // GMAE
	{0, 3, 2, 1}, // GMEA
	{1, 0, 2, 3}, // AGEM
	{1, 0, 3, 2}, // AGME
	{1, 2, 0, 3}, // AEGM
	{1, 2, 3, 0}, // AEMG
	{1, 3, 0, 2}, // AMGE
	{1, 3, 2, 0}, // AMEG
	{2, 0, 1, 3}, // EGAM
	{2, 0, 3, 1}, // EGMA
	{2, 1, 0, 3}, // EAGM
	{2, 1, 3, 0}, // EAMG
	{2, 3, 0, 1}, // EMGA
	{2, 3, 1, 0}, // EMAG
	{3, 0, 1, 2}, // MGAE
	{3, 0, 2, 1}, // MGEA
	{3, 1, 0, 2}, // MAGE
	{3, 1, 2, 0}, // MAEG
	{3, 2, 0, 1}, // MEGA
	{3, 2, 1, 0}, // MEAG
}

// orderFor returns the 24-entry table row for the given personality.
func orderFor(personality uint32) [4]int {
	return orderTable[personality%24]
}

// indexOf returns the physical chunk index that holds logical slot i
// under order.
func indexOf(order [4]int, logical int) int {
	for physical, l := range order {
		if l == logical {
			return physical
		}
	}
	panic("pk3: order table row missing an index, table is corrupt")
}
