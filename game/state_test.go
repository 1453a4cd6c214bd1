package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewGameState(t *testing.T) {
	t.Run("initial position", func(t *testing.T) {
		gs := InitialState()
		require.Equal(t, White, gs.Turn())
		white, black := gs.PieceCounts()
		require.Equal(t, 4, white)
		require.Equal(t, 4, black)
		for _, v := range HomeBase(Black) {
			p, ok := gs.PieceAt(v)
			require.True(t, ok)
			require.Equal(t, cob(Black), p)
		}
		require.True(t, gs.IsEmpty(A1))
	})

	t.Run("rejects invalid placements", func(t *testing.T) {
		pieces := map[Vertex]Piece{}
		for _, v := range Vertices()[:MaxPieces+1] {
			pieces[v] = cob(White)
		}
		_, err := NewGameState(pieces, White)
		require.ErrorIs(t, err, ErrInvalidPlacement)

		_, err = NewGameState(map[Vertex]Piece{Vertex(NumVertices): cob(White)}, White)
		require.ErrorIs(t, err, ErrInvalidPlacement)
		require.ErrorIs(t, err, ErrUnknownVertex)

		_, err = NewGameState(map[Vertex]Piece{A1: {Color: Color(5)}}, White)
		require.ErrorIs(t, err, ErrInvalidPlacement)

		_, err = NewGameState(nil, Color(2))
		require.ErrorIs(t, err, ErrInvalidPlacement)
	})

	t.Run("pieces returns a copy", func(t *testing.T) {
		gs := InitialState()
		pieces := gs.Pieces()
		delete(pieces, C1)
		require.Len(t, gs.Pieces(), MaxPieces)
	})
}

func TestTransformations(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	t.Run("mirror is an involution", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			gs := randomState(rng)
			require.True(t, gs.Equal(gs.Mirror().Mirror()))
			require.Equal(t, gs.Hash(), gs.Mirror().Mirror().Hash())
			require.Equal(t, gs.Turn().Opponent(), gs.Mirror().Turn())
		}
	})

	t.Run("mirror of the initial position", func(t *testing.T) {
		require.True(t, InitialState().WithTurn(Black).Equal(InitialState().Mirror()))
	})

	t.Run("with turn", func(t *testing.T) {
		gs := InitialState()
		require.True(t, gs.Equal(gs.WithTurn(White)))
		require.Equal(t, gs.Hash(), gs.PassTurn().PassTurn().Hash())
		require.NotEqual(t, gs.Hash(), gs.PassTurn().Hash())
	})

	t.Run("string", func(t *testing.T) {
		gs := stateOf(t, Black, map[Vertex]Piece{A1: roc(White), C7: cob(Black)})
		require.Equal(t, "{A1:WHITE(roc) C7:BLACK} BLACK to move", gs.String())
	})
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("C1-B1")
	require.NoError(t, err)
	require.Equal(t, Move{From: C1, To: B1}, m)
	require.Equal(t, "C1-B1", m.String())

	for _, s := range []string{"", "C1", "C1-", "-B1", "C1-X9", "c1-b1"} {
		_, err := ParseMove(s)
		require.ErrorIs(t, err, ErrUnknownVertex, "input %q", s)
	}
}
