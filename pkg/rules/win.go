package rules

import (
	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/state"
)

// Winner names the outcome of a position: nobody yet, one player, or both at once (a
// draw, since both sets of balls reached layer 4 on the same move).
type Winner uint8

const (
	NoWinner Winner = iota
	GoldWins
	SilverWins
	BothWin
)

func (w Winner) String() string {
	switch w {
	case NoWinner:
		return "none"
	case GoldWins:
		return "gold"
	case SilverWins:
		return "silver"
	case BothWin:
		return "both"
	default:
		return "?"
	}
}

// WinningChecker decides whether a player's balls have all fallen through to layer 4,
// precomputing each owner's 36-bit "ball still in play at layer <=3" mask from the board.
type WinningChecker struct {
	goldMask   uint64
	silverMask uint64
}

// NewWinningChecker precomputes the per-owner ball masks for board b.
func NewWinningChecker(b *board.Board) *WinningChecker {
	var gold, silver uint64
	for c := uint8(0); c < board.NumCells; c++ {
		owner, ok := b.Ball(c)
		if !ok {
			continue
		}
		if owner == board.Gold {
			gold |= 1 << c
		} else {
			silver |= 1 << c
		}
	}
	gold |= gold << 9
	gold |= gold << 18
	silver |= silver << 9
	silver |= silver << 18

	return &WinningChecker{goldMask: gold, silverMask: silver}
}

// Won reports the outcome of state s.
func (wc *WinningChecker) Won(s *state.Compact) Winner {
	gw := s.GetBallBits()&wc.goldMask == 0
	sw := s.GetBallBits()&wc.silverMask == 0
	switch {
	case gw && sw:
		return BothWin
	case gw:
		return GoldWins
	case sw:
		return SilverWins
	default:
		return NoWinner
	}
}
