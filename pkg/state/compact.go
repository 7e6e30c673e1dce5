// Package state holds the dynamic, mutable half of a Ballcube position: where the balls
// currently sit and how far each gate has been shifted. A Compact is always derived from
// an immutable board.Board via BuildFromBoard, then advanced by ShiftGate.
package state

import (
	"math/bits"

	"github.com/corrodedhash/ballcube-go/pkg/board"
)

// Compact is the ball-position bitmask, gate open-hole bitmask and per-gate shift
// counters for one position. It is small (three 64-bit words) and copied by value.
type Compact struct {
	balls      uint64
	gates      uint64
	gateShifts uint64
}

// Equals reports whether two states carry identical balls, gates and shift counters.
func (c Compact) Equals(o Compact) bool {
	return c.balls == o.balls && c.gates == o.gates && c.gateShifts == o.gateShifts
}

// BuildFromBoard derives the initial dynamic state from a board: every ball starts at
// layer 0 of its cell and then falls through any already-open gate.
func BuildFromBoard(b *board.Board) *Compact {
	var balls uint64
	for c := uint8(0); c < board.NumCells; c++ {
		if _, ok := b.Ball(c); ok {
			balls |= 1 << c
		}
	}

	var gates uint64
	for l := uint8(0); l < board.NumLayers; l++ {
		gates |= buildLayerGateBits(b, l) << (uint64(l) * 9)
	}

	c := &Compact{balls: balls, gates: gates}
	c.DropBalls()
	return c
}

func buildLayerGateBits(b *board.Board, layerID uint8) uint64 {
	layer := b.Layer(layerID)
	var layerBits uint64
	for g := uint8(0); g < board.NumGatesPerLayer; g++ {
		gate := layer.Gate(g)
		bits := gate.GateType().HoleBits()
		if !gate.TopLeft() {
			bits = mirrorGates(bits)
		}
		layerBits |= bits << (uint64(g) * 3)
	}
	if !layer.Horizontal() {
		layerBits = transposeGates(layerBits)
	}
	return layerBits
}

func gateShiftBitIndex(layer, gate uint8) uint64 {
	return uint64(layer*board.NumGatesPerLayer+gate) * 2
}

// GetShift returns the current shift counter (0..3) of the gate at (layer, gate).
func (c *Compact) GetShift(layer, gate uint8) uint8 {
	return uint8((c.gateShifts >> gateShiftBitIndex(layer, gate)) & 0b11)
}

// ShiftCount sums the shift counters of all 12 gates.
func (c *Compact) ShiftCount() uint8 {
	return twoBitArrayAdd(c.gateShifts)
}

// ShiftCountSilver sums the shift counters of the gates owned by Silver.
func (c *Compact) ShiftCountSilver(b *board.Board) uint8 {
	var silverMask uint64
	for l := uint8(0); l < board.NumLayers; l++ {
		for g := uint8(0); g < board.NumGatesPerLayer; g++ {
			if b.Layer(l).Gate(g).Owner() == board.Silver {
				silverMask |= 0b11 << gateShiftBitIndex(l, g)
			}
		}
	}
	return twoBitArrayAdd(c.gateShifts & silverMask)
}

// GetGateBits returns the raw 36-bit (layers 0-3) open-hole bitmask.
func (c *Compact) GetGateBits() uint64 {
	return c.gates
}

// GetBallBits returns the raw ball-position bitmask; bit 9*L+c set means the ball
// originally at cell c currently rests at layer L (L==4 meaning it fell off the board).
func (c *Compact) GetBallBits() uint64 {
	return c.balls
}

// Depth returns, for each of the 9 cells, the layer its ball currently rests at (0..4;
// 4 means it fell off the board, including cells that never held a ball).
func (c *Compact) Depth() [board.NumCells]uint8 {
	var layerMask uint64 = 1
	for i := 0; i < 4; i++ {
		layerMask <<= 9
		layerMask |= 1
	}

	var depths [board.NumCells]uint8
	for i := range depths {
		found := c.balls & (layerMask << uint(i))
		d := bits.TrailingZeros64(found) / 9
		if d > 4 {
			d = 4
		}
		depths[i] = uint8(d)
	}
	return depths
}

// ShiftGateRaw increments the gate's shift counter and rewrites the hole pattern,
// without propagating the resulting drop. It panics if the gate is already exhausted
// (GetShift(layer, gate) == 3).
func (c *Compact) ShiftGateRaw(b *board.Board, layer, gate uint8) {
	if c.GetShift(layer, gate) >= 3 {
		panic("state: shift of an exhausted gate")
	}
	c.gateShifts += 1 << gateShiftBitIndex(layer, gate)

	h := b.Layer(layer).Horizontal()
	t := b.Layer(layer).Gate(gate).TopLeft()

	gates := c.gates
	if !h {
		gates = transposeGates(gates)
	}
	if !t {
		gates = mirrorGates(gates)
	}

	offset := uint64(layer)*9 + uint64(gate)*3
	mask := uint64(0b111) << offset
	gates = (gates &^ mask) | ((gates >> 1) & mask) | (0b100 << offset)

	if !t {
		gates = mirrorGates(gates)
	}
	if !h {
		gates = transposeGates(gates)
	}
	c.gates = gates
}

// ShiftGate applies a move: shift the gate, then let gravity settle every ball.
func (c *Compact) ShiftGate(b *board.Board, layer, gate uint8) {
	c.ShiftGateRaw(b, layer, gate)
	c.DropBalls()
}

// DropBalls runs the fixed-point gravity loop: any ball aligned with an open hole falls
// one layer, repeated until no ball coincides with a hole in its own layer.
func (c *Compact) DropBalls() {
	for c.balls&c.gates != 0 {
		dropped := c.balls & c.gates
		c.balls ^= dropped | (dropped << 9)
	}
}
