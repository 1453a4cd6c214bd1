package agent

import (
	"context"

	"tarati/game"
	"tarati/searcher"
)

type Agent interface {
	// FindMove returns the move to play in state and, when collected, the
	// metrics of the search that chose it. Result.Ok is false when the agent
	// has no move to offer.
	FindMove(ctx context.Context, state *game.GameState) searcher.Result
}
