package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"tarati/game"
)

func stateOf(t *testing.T, turn game.Color, pieces map[game.Vertex]game.Piece) *game.GameState {
	t.Helper()
	gs, err := game.NewGameState(pieces, turn)
	require.NoError(t, err)
	return gs
}

func randomState(rng *rand.Rand) *game.GameState {
	n := 2 + rng.Intn(game.MaxPieces-1)
	pieces := make(map[game.Vertex]game.Piece, n)
	for _, i := range rng.Perm(game.NumVertices)[:n] {
		pieces[game.Vertex(i)] = game.Piece{Color: game.Color(rng.Intn(game.NumColors)), Upgraded: rng.Intn(3) == 0}
	}
	gs, err := game.NewGameState(pieces, game.Color(rng.Intn(game.NumColors)))
	if err != nil {
		panic(err)
	}
	return gs
}

// unpruned disables both winning thresholds.
func unpruned(w game.Weights) game.Weights {
	w.WinningScoreThreshold = 0
	w.WinningPositionThreshold = 0
	return w
}

// bruteForce is plain minimax over the same root ordering.
func bruteForce(gs *game.GameState, depth int, w game.Weights) (game.Move, float64) {
	sign := gs.Turn().Sign()
	var bestMove game.Move
	best := 0.0
	for i, sm := range orderMoves(gs, game.LegalMoves(gs), w) {
		score := plainMinimax(sm.child, depth-1, w)
		if i == 0 || sign*score > sign*best {
			bestMove, best = sm.move, score
		}
	}
	return bestMove, best
}

func plainMinimax(gs *game.GameState, depth int, w game.Weights) float64 {
	if o := game.StatusOf(gs, nil); o.IsOver() {
		return terminalScore(o, depth)
	}
	if depth == 0 {
		return game.Evaluate(gs, w)
	}
	sign := gs.Turn().Sign()
	best := -sign * infinity
	for _, m := range game.LegalMoves(gs) {
		score := plainMinimax(gs.Play(m), depth-1, w)
		if sign*score > sign*best {
			best = score
		}
	}
	return best
}
