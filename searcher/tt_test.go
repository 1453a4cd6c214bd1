package searcher

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"tarati/game"
)

func TestTranspositionTable(t *testing.T) {
	t.Run("cutoff by bound", func(t *testing.T) {
		exact := ttEntry{score: 5, flag: ttExact}
		score, ok := exact.cutoff(10, 20)
		require.True(t, ok)
		require.Equal(t, 5.0, score)

		lower := ttEntry{score: 25, flag: ttLower}
		_, ok = lower.cutoff(10, 30)
		require.False(t, ok, "a lower bound inside the window settles nothing")
		score, ok = lower.cutoff(10, 20)
		require.True(t, ok)
		require.Equal(t, 25.0, score)

		upper := ttEntry{score: 5, flag: ttUpper}
		_, ok = upper.cutoff(0, 20)
		require.False(t, ok)
		score, ok = upper.cutoff(10, 20)
		require.True(t, ok)
		require.Equal(t, 5.0, score)
	})

	t.Run("keys depend on depth and turn", func(t *testing.T) {
		gs := game.InitialState()
		require.NotEqual(t, keyOf(gs, 2), keyOf(gs, 3))
		require.NotEqual(t, keyOf(gs, 2), keyOf(gs.PassTurn(), 2))
		require.Equal(t, keyOf(gs, 2), keyOf(game.InitialState(), 2))
	})

	t.Run("exact entries are not replaced by bounds", func(t *testing.T) {
		tt := newTranspositionTable()
		key := keyOf(game.InitialState(), 1)
		tt.store(key, ttEntry{score: 1, flag: ttExact})
		tt.store(key, ttEntry{score: 2, flag: ttLower})
		e, ok := tt.probe(key)
		require.True(t, ok)
		require.Equal(t, ttEntry{score: 1, flag: ttExact}, e)

		tt.store(key, ttEntry{score: 3, flag: ttExact})
		e, _ = tt.probe(key)
		require.Equal(t, 3.0, e.score)
		require.Equal(t, 1, tt.len())
	})
}

func TestOrderMoves(t *testing.T) {
	t.Run("ties keep enumeration order", func(t *testing.T) {
		gs := game.InitialState()
		var got []game.Move
		for _, sm := range orderMoves(gs, game.LegalMoves(gs), game.DefaultWeights()) {
			got = append(got, sm.move)
		}
		require.Equal(t, game.LegalMoves(gs), got)
	})

	t.Run("immediate wins first", func(t *testing.T) {
		gs := stateOf(t, game.White, map[game.Vertex]game.Piece{
			game.C1: {Color: game.White},
			game.C5: {Color: game.White},
			game.B4: {Color: game.Black},
		})
		ordered := orderMoves(gs, game.LegalMoves(gs), game.DefaultWeights())
		require.Len(t, ordered, 5)
		require.Equal(t, game.Move{From: game.C5, To: game.B3}, ordered[0].move)
		require.True(t, math.IsInf(ordered[0].score, 1))
		for _, sm := range ordered {
			require.True(t, sm.child.Equal(gs.Play(sm.move)), "child of %s", sm.move)
		}
	})

	t.Run("conversions before quiet moves", func(t *testing.T) {
		gs := stateOf(t, game.White, map[game.Vertex]game.Piece{
			game.C3:  {Color: game.White},
			game.C6:  {Color: game.White},
			game.B4:  {Color: game.Black},
			game.C10: {Color: game.Black},
		})
		ordered := orderMoves(gs, game.LegalMoves(gs), game.DefaultWeights())
		require.Equal(t, game.Move{From: game.C6, To: game.C7}, ordered[0].move)
		require.Greater(t, ordered[0].score, 0.0)
		for i := 1; i < len(ordered); i++ {
			require.GreaterOrEqual(t, ordered[i-1].score, ordered[i].score)
		}
	})
}

func TestEffectiveDepth(t *testing.T) {
	schedule := DefaultDepthSchedule()

	require.Equal(t, 4, schedule.EffectiveDepth(4, game.InitialState()))

	two := stateOf(t, game.White, map[game.Vertex]game.Piece{
		game.C1: {Color: game.White}, game.C2: {Color: game.White}, game.C3: {Color: game.White},
		game.C7: {Color: game.Black}, game.C8: {Color: game.Black},
	})
	require.Equal(t, 5, schedule.EffectiveDepth(4, two))

	one := stateOf(t, game.White, map[game.Vertex]game.Piece{
		game.C1: {Color: game.White}, game.C2: {Color: game.White},
		game.C7: {Color: game.Black},
	})
	require.Equal(t, 6, schedule.EffectiveDepth(4, one))
	require.Equal(t, 4, DepthSchedule(nil).EffectiveDepth(4, one))

	t.Run("search reaches the deepened depth", func(t *testing.T) {
		r := NewMinimax(WithDepth(2), WithMetrics()).BestMove(one)
		require.True(t, r.Ok)
		require.Equal(t, 4, r.Depth)
		require.Equal(t, 4, r.Metrics.Depth)
	})
}

func TestDifficulty(t *testing.T) {
	require.Equal(t, 2, Easy.Depth())
	require.Equal(t, 3, Medium.Depth())
	require.Equal(t, 4, Hard.Depth())
	require.Equal(t, 5, Expert.Depth())
	require.Equal(t, 3, Difficulty(42).Depth())
	require.Equal(t, "expert", Expert.String())
}

func TestRootEntryBound(t *testing.T) {
	// C5-B3 converts the last BLACK piece; C5-C6 is the only other move.
	gs := stateOf(t, game.White, map[game.Vertex]game.Piece{
		game.C5: {Color: game.White},
		game.B4: {Color: game.Black},
	})

	rootEntry := func(gs *game.GameState, w game.Weights) ttEntry {
		s := &search{
			ctx:     context.Background(),
			weights: w,
			tt:      newTranspositionTable(),
			metrics: NewNoMetricsCollector(),
		}
		r, completed := s.root(gs, 1)
		require.True(t, completed)
		require.True(t, r.Ok)
		e, ok := s.tt.probe(keyOf(gs, 1))
		require.True(t, ok)
		require.Equal(t, r.Score, e.score)
		require.Equal(t, r.Move, e.move)
		return e
	}

	t.Run("early break stores a lower bound for WHITE", func(t *testing.T) {
		e := rootEntry(gs, game.DefaultWeights())
		require.Equal(t, ttLower, e.flag)
		require.Equal(t, game.Move{From: game.C5, To: game.B3}, e.move)
	})

	t.Run("early break stores an upper bound for BLACK", func(t *testing.T) {
		e := rootEntry(gs.Mirror(), game.DefaultWeights())
		require.Equal(t, ttUpper, e.flag)
		require.Negative(t, e.score)
	})

	t.Run("full root is exact", func(t *testing.T) {
		w := game.DefaultWeights()
		w.WinningPositionThreshold = 0
		require.Equal(t, ttExact, rootEntry(gs, w).flag)
	})
}
