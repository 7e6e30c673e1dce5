package solver

import (
	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/island"
	"github.com/corrodedhash/ballcube-go/pkg/rules"
	"github.com/corrodedhash/ballcube-go/pkg/state"
)

// saturated is the "not achievable in the game" distance an absent island.Island implies.
const saturated = 4

// DFSWinFinder runs the exhaustive depth-first game-tree search (§4.8): for a given
// (state, to-move), it returns a Win/Draw/Loss verdict carrying a minimum-length (for
// Win/Draw) or maximum-length (for Loss) MoveChain. A verdict decided by the island
// shortcut carries an empty chain.
//
// startingPlayer is bound once, at construction, rather than re-derived per call from
// shift-count parity: the parity trick in the island shortcut's tie-break is only valid
// when the game's actual first mover is known, so callers must say who opened rather than
// have it guessed.
type DFSWinFinder struct {
	board          *board.Board
	startingPlayer board.Player
	win            *rules.WinningChecker
	moves          *rules.MoveChecker
	cache          *transpositionTable
}

// NewDFSWinFinder precomputes the winning and move checkers for b.
func NewDFSWinFinder(b *board.Board, startingPlayer board.Player) *DFSWinFinder {
	return &DFSWinFinder{
		board:          b,
		startingPlayer: startingPlayer,
		win:            rules.NewWinningChecker(b),
		moves:          rules.NewMoveChecker(b),
		cache:          newTranspositionTable(defaultTableSizeLog2),
	}
}

// Evaluate returns the verdict for state s with player to move. If prune is set, search
// cuts off as soon as a Win is found at a node (alpha-beta style), which never changes
// the resulting Kind, only possibly which winning chain is returned. Results are memoized
// in a transposition table, since the same state is frequently reachable by more than one
// move order.
func (f *DFSWinFinder) Evaluate(s *state.Compact, player board.Player, prune bool) Evaluation {
	key := s.ToUint64()
	if kind, moves, ok := f.cache.Read(key, player, prune); ok {
		return Evaluation{Kind: kind, Chain: MoveChain{moves: moves, startingPlayer: player}}
	}

	ev := f.evaluate(s, player, prune)
	f.cache.Write(key, player, prune, ev.Kind, ev.Chain.Moves(), s.ShiftCount())
	return ev
}

func (f *DFSWinFinder) evaluate(s *state.Compact, player board.Player, prune bool) Evaluation {
	if ev, ok := f.terminal(s, player); ok {
		return ev
	}
	if ev, ok := f.islandShortcut(s, player); ok {
		return ev
	}

	var best Evaluation
	haveBest := false

	for _, m := range f.moves.Moves(s, player) {
		next := *s
		next.ShiftGate(f.board, m.Layer, m.Gate)

		child := f.Evaluate(&next, player.Other(), prune)
		ev := Evaluation{Kind: child.flip().Kind, Chain: child.Chain.Prepend(m)}

		if !haveBest || ev.better(best) {
			best = ev
			haveBest = true
		}
		if prune && haveBest && best.Kind == Win {
			return best
		}
	}

	if !haveBest {
		panic("solver: no legal moves but position is not terminal")
	}
	return best
}

func (f *DFSWinFinder) terminal(s *state.Compact, player board.Player) (Evaluation, bool) {
	switch f.win.Won(s) {
	case rules.NoWinner:
		return Evaluation{}, false
	case rules.BothWin:
		return Evaluation{Kind: Draw, Chain: NewMoveChain(player)}, true
	case rules.GoldWins:
		return f.terminalFor(board.Gold, player), true
	case rules.SilverWins:
		return f.terminalFor(board.Silver, player), true
	default:
		panic("solver: unknown winner")
	}
}

func (f *DFSWinFinder) terminalFor(winner, player board.Player) Evaluation {
	kind := Loss
	if winner == player {
		kind = Win
	}
	return Evaluation{Kind: kind, Chain: NewMoveChain(player)}
}

// islandShortcut implements §4.8 step 2: if the opponent's guaranteed (definite) forced
// distance is strictly worse than the current player's optimistic (heuristic) distance,
// the current player wins without descending further, and symmetrically for a loss. On
// an exact tie, the player other than startingPlayer is disadvantaged.
func (f *DFSWinFinder) islandShortcut(s *state.Compact, player board.Player) (Evaluation, bool) {
	m := island.Measure(f.board, s)

	myHeuristic := distanceOrSaturated(playerHeuristic(m, player))
	myDefinite := distanceOrSaturated(playerDefinite(m, player))
	oppHeuristic := distanceOrSaturated(playerHeuristic(m, player.Other()))
	oppDefinite := distanceOrSaturated(playerDefinite(m, player.Other()))

	favorsCurrent := player == f.startingPlayer

	if oppDefinite > myHeuristic || (oppDefinite == myHeuristic && favorsCurrent) {
		return Evaluation{Kind: Win, Chain: NewMoveChain(player)}, true
	}
	if myDefinite > oppHeuristic || (myDefinite == oppHeuristic && !favorsCurrent) {
		return Evaluation{Kind: Loss, Chain: NewMoveChain(player)}, true
	}
	return Evaluation{}, false
}

// playerHeuristic/playerDefinite report the forced distance for player's OWN balls to
// reach layer 4: that distance is bucketed, in island.Measure, under the opposing gate
// owner (a ball only counts as "relevant" on a gate it does not itself belong to).
func playerHeuristic(m island.Measure, player board.Player) (island.Island, bool) {
	if player == board.Gold {
		return m.SilverHeuristic.V()
	}
	return m.GoldHeuristic.V()
}

func playerDefinite(m island.Measure, player board.Player) (island.Island, bool) {
	if player == board.Gold {
		return m.SilverDefinite.V()
	}
	return m.GoldDefinite.V()
}

func distanceOrSaturated(isl island.Island, ok bool) uint8 {
	if !ok {
		return saturated
	}
	return isl.Distance
}
