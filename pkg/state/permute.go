package state

// transposeGates permutes the 36-bit gate stack (bits 36..63 reserved for the ball-exit
// layer and left untouched) so that each layer's 3x3 row-major cells are swapped with
// their column-major counterparts: bit 9L+c <-> bit 9L+(c/3 + 3*(c%3)). Computed via
// http://programming.sirrida.de/calcperm.php on permutation
// 0 3 6 1 4 7 2 5 8 9 12 15 10 13 16 11 14 17 18 21 24 19 22 25 20 23 26 27 30 33 28 31 34 29 32 35 36..63.
func transposeGates(gates uint64) uint64 {
	return (gates & 0xffff_fff8_8c46_2311) |
		((gates & 0x0000_0001_1088_4422) << 2) |
		((gates & 0x0000_0000_2010_0804) << 4) |
		((gates & 0x0000_0002_0100_8040) >> 4) |
		((gates & 0x0000_0004_4221_1088) >> 2)
}

// mirrorGates permutes each gate's 3-bit row in place: bit 9L+3g+k <-> bit 9L+3g+(2-k).
func mirrorGates(gates uint64) uint64 {
	return (gates & 0xffff_fff4_9249_2492) |
		((gates & 0x0000_0002_4924_9249) << 2) |
		((gates & 0x0000_0009_2492_4924) >> 2)
}

// twoBitArrayAdd sums twelve independent 2-bit counters packed into a 24-bit word,
// by the standard SWAR popcount-style reduction.
func twoBitArrayAdd(tba uint64) uint8 {
	it1 := (tba & 0x0033_3333) + ((tba & 0x00cc_cccc) >> 2)
	it2 := (it1 & 0x000f_0f0f) + ((it1 & 0x00f0_f0f0) >> 4)
	it3 := (it2 & 0x00ff_00ff) + ((it2 & 0x0000_ff00) >> 8)
	it4 := (it3 & 0xffff) + (it3 >> 16)
	return uint8(it4)
}
