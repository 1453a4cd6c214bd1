package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tarati/game"
	"tarati/searcher"
	"tarati/searcher/agent"
)

type fixedAgent struct {
	result searcher.Result
}

func (a fixedAgent) FindMove(context.Context, *game.GameState) searcher.Result {
	return a.result
}

func searchAgent(depth int) agent.Agent {
	return agent.NewSearchAgent(searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithMetrics()))
}

func TestEngineRun(t *testing.T) {
	t.Run("elimination in one move", func(t *testing.T) {
		start, err := game.NewGameState(map[game.Vertex]game.Piece{
			game.C5: {Color: game.White},
			game.B4: {Color: game.Black},
		}, game.White)
		require.NoError(t, err)

		e := New(searchAgent(2), searchAgent(2), WithStart(start))
		result, gm, moves, err := e.Run(context.Background())
		require.NoError(t, err)
		require.True(t, result.Decided())
		require.Equal(t, game.Elimination, result.Outcome.Status)
		require.Equal(t, game.White, result.Outcome.Winner)
		require.Equal(t, 1, result.Moves)

		require.Equal(t, "WHITE", gm.Winner)
		require.Equal(t, game.White, gm.StartingPlayer)
		require.Equal(t, 1, gm.TotalMoves)
		require.False(t, gm.TimedOut)
		require.Len(t, moves, 1)
		require.Equal(t, game.Move{From: game.C5, To: game.B3}, moves[0].Move)
		require.Equal(t, 1, moves[0].Step)
		require.Positive(t, moves[0].Nodes)
		require.Equal(t, 1, e.History().Len())
	})

	t.Run("depth two self play from the initial position", func(t *testing.T) {
		first := searcher.BestMove(game.InitialState(), 2, game.DefaultWeights(), false)
		require.True(t, first.Ok)
		require.True(t, game.IsValidMove(game.InitialState(), first.Move.From, first.Move.To))

		e := New(searchAgent(2), searchAgent(2), WithMaxMoves(100))
		result, gm, moves, err := e.Run(context.Background())
		require.NoError(t, err)
		require.False(t, result.TimedOut)
		require.True(t, game.IsGameOver(result.Final, e.History()))
		require.Equal(t, game.TripleRepetition, result.Outcome.Status)
		require.Equal(t, game.White, result.Outcome.Winner)
		require.Equal(t, 16, result.Moves)
		require.Equal(t, "WHITE", gm.Winner)
		require.Len(t, moves, 16)
		require.Equal(t, first.Move, moves[0].Move)
	})

	t.Run("move cap is a timeout", func(t *testing.T) {
		e := New(agent.NewRandomAgent(1), agent.NewRandomAgent(2), WithMaxMoves(4))
		result, gm, moves, err := e.Run(context.Background())
		require.NoError(t, err)
		require.True(t, result.TimedOut)
		require.False(t, result.Decided())
		require.Equal(t, 4, result.Moves)
		require.True(t, gm.TimedOut)
		require.Len(t, moves, 4)
		require.Equal(t, game.White, moves[0].Player)
		require.Equal(t, game.Black, moves[1].Player)
	})

	t.Run("opening plies come from the opening agent", func(t *testing.T) {
		e := New(searchAgent(1), searchAgent(1), WithOpening(agent.NewRandomAgent(3), 2), WithMaxMoves(3))
		_, _, moves, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, moves, 3)
		require.True(t, moves[0].Opening)
		require.True(t, moves[1].Opening)
		require.False(t, moves[2].Opening)
		require.Positive(t, moves[2].Nodes)
	})

	t.Run("game already over", func(t *testing.T) {
		start, err := game.NewGameState(map[game.Vertex]game.Piece{
			game.D3: {Color: game.White},
			game.C7: {Color: game.Black},
			game.D4: {Color: game.Black},
		}, game.White)
		require.NoError(t, err)

		result, _, moves, err := New(searchAgent(1), searchAgent(1), WithStart(start)).Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, game.NoMoves, result.Outcome.Status)
		require.Equal(t, game.Black, result.Outcome.Winner)
		require.Empty(t, moves)
	})
}

func TestEngineErrors(t *testing.T) {
	t.Run("agent without a move", func(t *testing.T) {
		e := New(fixedAgent{}, fixedAgent{})
		_, _, _, err := e.Run(context.Background())
		require.ErrorIs(t, err, ErrNoMove)
	})

	t.Run("agent with an illegal move", func(t *testing.T) {
		illegal := fixedAgent{result: searcher.Result{Move: game.Move{From: game.C1, To: game.A1}, Ok: true}}
		_, _, _, err := New(illegal, illegal).Run(context.Background())
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, _, err := New(agent.NewRandomAgent(1), agent.NewRandomAgent(1)).Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("nil agent", func(t *testing.T) {
		require.Panics(t, func() { New(nil, agent.NewRandomAgent(1)) })
	})
}
