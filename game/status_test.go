package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedCount int

func (c fixedCount) Count(*GameState) int { return int(c) }

func TestStatusOf(t *testing.T) {
	t.Run("initial position is playing", func(t *testing.T) {
		o := StatusOf(InitialState(), NewHistory())
		require.Equal(t, Outcome{Status: Playing}, o)
		require.False(t, IsGameOver(InitialState(), nil))
		_, ok := Winner(InitialState(), nil)
		require.False(t, ok)
	})

	t.Run("elimination", func(t *testing.T) {
		gs := stateOf(t, White, map[Vertex]Piece{C5: cob(White), B4: cob(Black)})
		require.False(t, IsGameOver(gs, nil))

		next := gs.Play(Move{From: C5, To: B3})
		o := StatusOf(next, nil)
		require.Equal(t, Elimination, o.Status)
		require.True(t, o.HasWinner)
		require.Equal(t, White, o.Winner)
	})

	t.Run("no moves loses", func(t *testing.T) {
		gs := stateOf(t, White, map[Vertex]Piece{D3: cob(White), C7: cob(Black), D4: cob(Black)})
		o := StatusOf(gs, nil)
		require.Equal(t, NoMoves, o.Status)
		winner, ok := Winner(gs, nil)
		require.True(t, ok)
		require.Equal(t, Black, winner)
	})

	t.Run("empty board has no winner", func(t *testing.T) {
		gs := stateOf(t, White, nil)
		o := StatusOf(gs, nil)
		require.True(t, o.IsOver())
		require.False(t, o.HasWinner)
	})

	t.Run("repetition only with a counter", func(t *testing.T) {
		gs := InitialState()
		require.False(t, IsGameOver(gs, nil))
		require.False(t, IsGameOver(gs, fixedCount(RepetitionLimit-1)))

		o := StatusOf(gs, fixedCount(RepetitionLimit))
		require.Equal(t, TripleRepetition, o.Status)
		require.Equal(t, White, o.Winner, "the side to move did not cause the repetition")
	})

	t.Run("elimination is checked before repetition", func(t *testing.T) {
		gs := stateOf(t, Black, map[Vertex]Piece{B3: cob(White)})
		o := StatusOf(gs, fixedCount(RepetitionLimit))
		require.Equal(t, Elimination, o.Status)
		require.Equal(t, White, o.Winner)
	})
}
