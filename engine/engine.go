package engine

import (
	"errors"

	"tarati/game"
	"tarati/meta"
	"tarati/searcher/agent"
)

// ErrNoMove is returned when an agent offers no move in a running game.
var ErrNoMove = errors.New("agent returned no move")

type Option func(e *Engine)

// WithMaxMoves caps the number of plies. The game is a timeout once reached.
func WithMaxMoves(moves int) Option {
	return func(e *Engine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithOpening lets a play the first plies moves of the game for both sides.
func WithOpening(a agent.Agent, plies int) Option {
	return func(e *Engine) {
		if a != nil && plies > 0 {
			e.opening = a
			e.openingPlies = plies
		}
	}
}

// WithStart starts the game from state instead of the initial position.
func WithStart(state *game.GameState) Option {
	return func(e *Engine) {
		if state != nil {
			e.start = state
		}
	}
}

// Result is how a game ended.
type Result struct {
	Outcome  game.Outcome
	TimedOut bool
	Moves    int
	Final    *game.GameState
}

// Decided reports whether the game produced a winner.
func (r Result) Decided() bool {
	return !r.TimedOut && r.Outcome.HasWinner
}

func defaultEngine() *Engine {
	return &Engine{
		maxMoves: meta.MAX_TURNS,
		start:    game.InitialState(),
		history:  game.NewHistory(),
	}
}
