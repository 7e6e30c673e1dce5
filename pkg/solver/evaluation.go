package solver

// Kind discriminates a DFSEvaluation's outcome. Evaluation is a tagged union (Kind plus
// payload) rather than a Go interface, so that callers switch on Kind and never need to
// branch on payload shape.
type Kind uint8

const (
	Win Kind = iota
	Draw
	Loss
)

func (k Kind) String() string {
	switch k {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	default:
		return "?"
	}
}

// Evaluation is the solver's verdict for a (state, to-move) pair: a Kind plus the
// MoveChain that realizes it.
type Evaluation struct {
	Kind  Kind
	Chain MoveChain
}

// flip swaps Win and Loss, leaving Draw unchanged -- the verdict as seen by the other
// player at this node.
func (e Evaluation) flip() Evaluation {
	switch e.Kind {
	case Win:
		return Evaluation{Kind: Loss, Chain: e.Chain}
	case Loss:
		return Evaluation{Kind: Win, Chain: e.Chain}
	default:
		return e
	}
}

// better reports whether e is strictly preferred over o by the mover: Win > Draw > Loss;
// among same-kind evaluations, a shorter chain wins faster (preferred for Win and Draw),
// a longer chain delays defeat longest (preferred for Loss).
func (e Evaluation) better(o Evaluation) bool {
	if e.Kind != o.Kind {
		return e.Kind < o.Kind // Win(0) < Draw(1) < Loss(2); lower Kind is better
	}
	switch e.Kind {
	case Loss:
		return e.Chain.Len() > o.Chain.Len()
	default:
		return e.Chain.Len() < o.Chain.Len()
	}
}
