package searcher

import (
	"math"

	"tarati/game"
)

// WinScore is the magnitude of a decided position. Terminal nodes score
// WinScore plus the remaining depth, so quicker wins rank higher and every
// decided line dominates any heuristic score.
const WinScore = 1_000_000.0

var infinity = math.Inf(1)

// Result is the outcome of a search.
type Result struct {
	Move    game.Move
	Ok      bool    // false when the position is terminal and no move exists
	Score   float64 // positive favors WHITE
	Depth   int     // deepest completed iteration
	Metrics Metrics
}

// terminalScore scores a decided outcome with depth plies left.
func terminalScore(o game.Outcome, depth int) float64 {
	if !o.HasWinner {
		return 0
	}
	return o.Winner.Sign() * (WinScore + float64(depth))
}
