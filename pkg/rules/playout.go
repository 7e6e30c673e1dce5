package rules

import (
	"math/rand"

	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/state"
)

// Step is one move of a random playout: the state reached and the move that produced it.
type Step struct {
	State *state.Compact
	Move  Move
}

// RandomGame plays s forward with uniformly random legal moves, alternating players
// starting with startingPlayer, until a winner is decided. Used to build test fixtures,
// not by the solver itself.
func RandomGame(b *board.Board, s *state.Compact, startingPlayer board.Player) []Step {
	moveGen := NewMoveChecker(b)
	winChecker := NewWinningChecker(b)

	cur := *s
	var out []Step
	for winChecker.Won(&cur) == NoWinner {
		player := startingPlayer
		if len(out)%2 == 1 {
			player = startingPlayer.Other()
		}

		moves := moveGen.Moves(&cur, player)
		if len(moves) == 0 {
			panic("rules: no moves left, but no one won yet")
		}
		m := moves[rand.Intn(len(moves))]

		cur.ShiftGate(b, m.Layer, m.Gate)
		snapshot := cur
		out = append(out, Step{State: &snapshot, Move: m})
	}
	return out
}
