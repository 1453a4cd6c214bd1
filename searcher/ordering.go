package searcher

import (
	"math"
	"sort"

	"tarati/game"
)

// scoredMove pairs a move with the position it leads to, so the recursion
// reuses the child built while ordering.
type scoredMove struct {
	move  game.Move
	child *game.GameState
	score float64
}

// orderMoves sorts moves most promising first for the side to move of gs:
// moves that end the game in the mover's favor, then by material gained
// (quick evaluation) plus a bonus per converted piece. The sort is stable,
// so equal scores keep enumeration order.
func orderMoves(gs *game.GameState, moves []game.Move, w game.Weights) []scoredMove {
	mover := gs.Turn()
	sign := mover.Sign()
	base := game.QuickEvaluate(gs, w)

	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		child := gs.Play(m)
		scored[i] = scoredMove{move: m, child: child}

		if o := game.StatusOf(child, nil); o.IsOver() && o.HasWinner && o.Winner == mover {
			scored[i].score = math.Inf(1)
			continue
		}

		score := sign * (game.QuickEvaluate(child, w) - base)
		for _, v := range game.Converted(gs, m) {
			if p, _ := gs.PieceAt(v); p.Upgraded {
				score += w.UpgradedCaptureBonus
			} else {
				score += w.CaptureBonus
			}
		}
		scored[i].score = score
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}
