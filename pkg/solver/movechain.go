package solver

import (
	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/rules"
)

// MoveChain is an ordered sequence of moves plus the player who makes its first move
// (for an empty chain, the player to move at the terminal state). Prepend pushes a move
// to the front and flips that player, so that iterating from the root forward alternates
// players starting with StartingPlayer.
type MoveChain struct {
	moves          []rules.Move
	startingPlayer board.Player
}

// NewMoveChain returns the empty chain of a terminal position to move by p.
func NewMoveChain(p board.Player) MoveChain {
	return MoveChain{startingPlayer: p}
}

// Moves returns the chain's moves, root-first.
func (c MoveChain) Moves() []rules.Move {
	return c.moves
}

// StartingPlayer returns the player who makes the chain's first move; for an empty chain,
// the player to move at the terminal state.
func (c MoveChain) StartingPlayer() board.Player {
	return c.startingPlayer
}

// Len returns the number of moves in the chain.
func (c MoveChain) Len() int {
	return len(c.moves)
}

// Prepend returns a new chain with m pushed to the front, one ply earlier than c.
func (c MoveChain) Prepend(m rules.Move) MoveChain {
	moves := make([]rules.Move, 0, len(c.moves)+1)
	moves = append(moves, m)
	moves = append(moves, c.moves...)
	return MoveChain{moves: moves, startingPlayer: c.startingPlayer.Other()}
}
