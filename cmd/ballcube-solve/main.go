// Command ballcube-solve evaluates a single Ballcube position and prints the solver's
// verdict and winning (or delaying) move chain. It is a minimal, non-interactive
// entrypoint; the interactive shell and visualization layers are external collaborators.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/corrodedhash/ballcube-go/pkg/board"
	"github.com/corrodedhash/ballcube-go/pkg/solver"
	"github.com/corrodedhash/ballcube-go/pkg/state"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	boardKey  = flag.String("board", "", "Board key, as a 64-bit hex literal (e.g. 0xac443fce1873580f); random if empty")
	stateKey  = flag.String("state", "", "State key, as a 64-bit hex literal; derived from the board's initial layout if empty")
	player    = flag.String("player", "gold", "Player to move: gold or silver")
	startedBy = flag.String("started-by", "gold", "Player who opened the game: gold or silver")
	prune     = flag.Bool("prune", true, "Enable alpha-beta style pruning once a win is found")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: ballcube-solve [options]

ballcube-solve evaluates one Ballcube position and prints the forced win/draw/loss
verdict and its move chain.

Options:
`)
		flag.PrintDefaults()
	}
}

func parsePlayer(s string) (board.Player, error) {
	switch s {
	case "gold":
		return board.Gold, nil
	case "silver":
		return board.Silver, nil
	default:
		return 0, fmt.Errorf("unknown player %q, want gold or silver", s)
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "ballcube-solve %v", version)

	p, err := parsePlayer(*player)
	if err != nil {
		logw.Exitf(ctx, "Invalid -player: %v", err)
	}
	started, err := parsePlayer(*startedBy)
	if err != nil {
		logw.Exitf(ctx, "Invalid -started-by: %v", err)
	}

	b := board.Random()
	if *boardKey != "" {
		v, err := strconv.ParseUint(*boardKey, 0, 64)
		if err != nil {
			logw.Exitf(ctx, "Invalid -board: %v", err)
		}
		b, err = board.FromUint64(v)
		if err != nil {
			logw.Exitf(ctx, "Could not decode board: %v", err)
		}
	}

	s := state.BuildFromBoard(b)
	if *stateKey != "" {
		v, err := strconv.ParseUint(*stateKey, 0, 64)
		if err != nil {
			logw.Exitf(ctx, "Invalid -state: %v", err)
		}
		s = state.FromUint64(v, b)
	}

	logw.Infof(ctx, "Board: 0x%016x", b.ToUint64())
	logw.Infof(ctx, "State: 0x%016x", s.ToUint64())

	f := solver.NewDFSWinFinder(b, started)
	ev := f.Evaluate(s, p, *prune)

	fmt.Printf("%v for %v in %v move(s)\n", ev.Kind, p, ev.Chain.Len())
	for i, m := range ev.Chain.Moves() {
		fmt.Printf("  %2d. layer=%d gate=%d\n", i+1, m.Layer, m.Gate)
	}
}
