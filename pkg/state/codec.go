package state

import "github.com/corrodedhash/ballcube-go/pkg/board"

// compressedBallBits is the number of low bits spent on the base-5 depth encoding of the
// 9 cells: ceil(log2(5^9)) = 21.
const compressedBallBits = 21

// ToUint64 encodes the state into its canonical 64-bit key (§4.4): low 21 bits are a
// base-5 encoding of the 9 per-cell depths, the upper 24 bits are the gate_shifts word.
func (c *Compact) ToUint64() uint64 {
	return compressBalls(c.Depth()) | (c.gateShifts << compressedBallBits)
}

func compressBalls(depths [board.NumCells]uint8) uint64 {
	var bits uint64
	pow5 := uint64(1)
	for _, d := range depths {
		bits += uint64(d) * pow5
		pow5 *= 5
	}
	return bits
}

func decompressBalls(compressed uint64, b *board.Board) uint64 {
	var depths [board.NumCells]uint8
	for i := range depths {
		depths[i] = uint8(compressed % 5)
		compressed /= 5
	}

	var balls uint64
	for cell, depth := range depths {
		if _, ok := b.Ball(uint8(cell)); !ok {
			continue
		}
		balls |= 1 << (uint64(depth)*9 + uint64(cell))
	}
	return balls
}

// FromUint64 decodes a state from its canonical 64-bit key, relative to the board it was
// built from. The gate_shifts are replayed move by move so that `gates` ends up
// consistent with the board's hole patterns, rather than trusted verbatim.
func FromUint64(v uint64, b *board.Board) *Compact {
	result := BuildFromBoard(b)

	ballBits := v & (1<<compressedBallBits - 1)
	result.balls = decompressBalls(ballBits, b)

	shifts := v >> compressedBallBits
	for layer := uint8(0); layer < board.NumLayers; layer++ {
		for gate := uint8(0); gate < board.NumGatesPerLayer; gate++ {
			n := shifts & 0b11
			for i := uint64(0); i < n; i++ {
				result.ShiftGateRaw(b, layer, gate)
			}
			shifts >>= 2
		}
	}

	return result
}
