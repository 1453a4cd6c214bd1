package agent

import (
	"context"
	"sync"

	"golang.org/x/exp/rand"

	"tarati/game"
	"tarati/searcher"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// The same seed replays the same choices, which keeps tournament openings
// reproducible.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(_ context.Context, state *game.GameState) searcher.Result {
	moves := game.LegalMoves(state)
	if len(moves) == 0 {
		return searcher.Result{}
	}
	a.mu.Lock()
	move := moves[a.rng.Intn(len(moves))]
	a.mu.Unlock()
	return searcher.Result{Move: move, Ok: true}
}
