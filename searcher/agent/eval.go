package agent

import (
	"context"

	"tarati/game"
	"tarati/searcher"
)

type searchAgent struct {
	minimax *searcher.Minimax
}

// NewSearchAgent returns an agent that plays the searcher's best move.
func NewSearchAgent(minimax *searcher.Minimax) Agent {
	return searchAgent{minimax: minimax}
}

func (a searchAgent) FindMove(ctx context.Context, state *game.GameState) searcher.Result {
	return a.minimax.BestMoveContext(ctx, state)
}
