// Package rules sits above board and state: it enumerates legal moves for a player and
// decides whether a position is won, using both packages' accessors.
package rules

import (
	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/state"
)

// Move names one of the 12 gates by its (layer, gate) coordinate.
type Move struct {
	Layer uint8
	Gate  uint8
}

// MoveChecker enumerates the legal moves for each player on a fixed board, precomputing
// the (layer, gate) pairs each owner controls in layer-major insertion order.
type MoveChecker struct {
	goldGates   [6]Move
	silverGates [6]Move
}

// NewMoveChecker precomputes the gate ownership split for board b.
func NewMoveChecker(b *board.Board) *MoveChecker {
	var mc MoveChecker
	gi, si := 0, 0
	for l := uint8(0); l < board.NumLayers; l++ {
		for g := uint8(0); g < board.NumGatesPerLayer; g++ {
			m := Move{Layer: l, Gate: g}
			if b.Layer(l).Gate(g).Owner() == board.Silver {
				mc.silverGates[si] = m
				si++
			} else {
				mc.goldGates[gi] = m
				gi++
			}
		}
	}
	return &mc
}

// Moves returns the non-exhausted gates owned by p, in precomputed layer-major order.
func (mc *MoveChecker) Moves(s *state.Compact, p board.Player) []Move {
	gates := mc.goldGates[:]
	if p == board.Silver {
		gates = mc.silverGates[:]
	}

	out := make([]Move, 0, len(gates))
	for _, m := range gates {
		if s.GetShift(m.Layer, m.Gate) < 3 {
			out = append(out, m)
		}
	}
	return out
}
