package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tarati/experiments/metrics"
	"tarati/game"
	"tarati/searcher/agent"
)

// Engine plays one game between two agents on its own position history.
type Engine struct {
	agents       [game.NumColors]agent.Agent
	opening      agent.Agent
	openingPlies int
	maxMoves     int
	start        *game.GameState
	history      *game.History
}

func New(white, black agent.Agent, options ...Option) *Engine {
	if white == nil || black == nil {
		panic("engine needs an agent for each color")
	}
	e := defaultEngine()
	e.agents[game.White] = white
	e.agents[game.Black] = black
	for _, option := range options {
		option(e)
	}
	return e
}

// History returns the positions recorded by the last Run.
func (e *Engine) History() *game.History {
	return e.history
}

// Run plays until the position is terminal or the move cap is reached. It
// fails when ctx is done or an agent offers no valid move.
func (e *Engine) Run(ctx context.Context) (Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	e.history.Clear()
	state := e.start
	collector := metrics.NewCollector()
	collector.Start(state.Turn())

	log.Info().Msgf("%s is starting", state.Turn())

	ply := 0
	timedOut := false
	outcome := game.StatusOf(state, e.history)
	for !outcome.IsOver() {
		if ply >= e.maxMoves {
			timedOut = true
			break
		}
		if err := ctx.Err(); err != nil {
			return Result{}, metrics.GameMetric{}, nil, fmt.Errorf("game interrupted at ply %d: %w", ply, err)
		}

		mover := state.Turn()
		a, opening := e.agents[mover], false
		if ply < e.openingPlies {
			a, opening = e.opening, true
		}

		r := a.FindMove(ctx, state)
		if !r.Ok {
			return Result{}, metrics.GameMetric{}, nil, fmt.Errorf("%w: %s at ply %d", ErrNoMove, mover, ply+1)
		}
		if !game.IsValidMove(state, r.Move.From, r.Move.To) {
			return Result{}, metrics.GameMetric{}, nil, fmt.Errorf("%s at ply %d: %w: %s", mover, ply+1, game.ErrIllegalMove, r.Move)
		}

		state = state.Play(r.Move)
		e.history.Record(state, mover)
		ply++
		collector.AddMove(metrics.MoveMetric{
			Player:  mover,
			Move:    r.Move,
			Score:   r.Score,
			Opening: opening,
			Metrics: r.Metrics,
		})
		log.Debug().Int("ply", ply).Str("player", mover.String()).Str("move", r.Move.String()).Float64("score", r.Score).Msg("move")

		outcome = game.StatusOf(state, e.history)
	}

	gm, moves := collector.Complete(outcome, timedOut)
	if timedOut {
		log.Info().Msgf("stopped after %d moves without a winner", ply)
	} else if outcome.HasWinner {
		log.Info().Msgf("game over by %s after %d moves, winner: %s", outcome.Status, ply, outcome.Winner)
	} else {
		log.Info().Msgf("game over by %s after %d moves without a winner", outcome.Status, ply)
	}

	return Result{Outcome: outcome, TimedOut: timedOut, Moves: ply, Final: state}, gm, moves, nil
}
