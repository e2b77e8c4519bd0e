// play is a demonstration driver that plays one full game between two engine-supplied Players,
// printing each move and the final result to stdout (spec §6 "Player protocol").
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/fathomchess/morlock/pkg/board"
	"github.com/fathomchess/morlock/pkg/board/fen"
	"github.com/fathomchess/morlock/pkg/engine"
	"github.com/fathomchess/morlock/pkg/eval"
	"github.com/fathomchess/morlock/pkg/mcts"
	"github.com/fathomchess/morlock/pkg/player"
	"github.com/seekerror/logw"
)

var (
	white    = flag.String("white", "negamax:hard", "White player: negamax:<easy|medium|hard|expert>, mcts or human")
	black    = flag.String("black", "mcts", "Black player: negamax:<easy|medium|hard|expert>, mcts or human")
	position = flag.String("fen", "", "Start position (default to standard)")
	maxMoves = flag.Int("max-moves", 200, "Maximum full moves before declaring the game adjudicated")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}
	pos, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", *position, err)
	}

	players := map[board.Color]player.Player{
		board.White: mustPlayer(ctx, "White", *white),
		board.Black: mustPlayer(ctx, "Black", *black),
	}

	zt := board.NewZobristTable(0)
	b := board.NewBoard(zt, pos)

	for ply := 0; ply < 2*(*maxMoves); ply++ {
		if r := b.Result(); r != board.ResultInProgress {
			fmt.Printf("%v\n", r)
			return
		}

		turn := b.Turn()
		p := players[turn]

		m, ok := p.RequestMove(ctx, b)
		if !ok {
			fmt.Println("no legal move available")
			return
		}
		if !b.PushMove(m) {
			logw.Exitf(ctx, "%v proposed illegal move %v in position %v", p.Name(), m, b.Position())
		}

		fmt.Printf("%v. %v (%v): %v\n", b.Position().FullMoveNumber(), turn, p.Name(), m)
	}

	fmt.Println("adjudicated: move limit reached")
}

func mustPlayer(ctx context.Context, name, spec string) player.Player {
	spec = strings.ToLower(strings.TrimSpace(spec))

	if spec == "mcts" {
		return player.NewMCTSPlayer(name, mcts.DefaultConfig)
	}
	if spec == "human" {
		fmt.Printf("%v: enter moves as UCI notation (e.g. e2e4, a7a8q)\n", name)
		return player.NewHumanPlayer(name, engine.ReadStdinLines(ctx))
	}

	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 || parts[0] != "negamax" {
		logw.Exitf(ctx, "Invalid player spec %q (want negamax:<difficulty>, mcts or human)", spec)
	}

	var difficulty player.Difficulty
	switch parts[1] {
	case "easy":
		difficulty = player.Easy
	case "medium":
		difficulty = player.Medium
	case "hard":
		difficulty = player.Hard
	case "expert":
		difficulty = player.Expert
	default:
		logw.Exitf(ctx, "Invalid negamax difficulty %q", parts[1])
	}

	return player.NewNegamaxPlayer(name, eval.Standard{}, difficulty)
}
