package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var (
	cob = func(c Color) Piece { return Piece{Color: c} }
	roc = func(c Color) Piece { return Piece{Color: c, Upgraded: true} }
)

func stateOf(t *testing.T, turn Color, pieces map[Vertex]Piece) *GameState {
	t.Helper()
	gs, err := NewGameState(pieces, turn)
	require.NoError(t, err)
	return gs
}

// randomState places one to MaxPieces random pieces on distinct vertices.
func randomState(rng *rand.Rand) *GameState {
	n := 1 + rng.Intn(MaxPieces)
	pieces := make(map[Vertex]Piece, n)
	for _, i := range rng.Perm(NumVertices)[:n] {
		pieces[Vertex(i)] = Piece{Color: Color(rng.Intn(NumColors)), Upgraded: rng.Intn(3) == 0}
	}
	gs, err := NewGameState(pieces, Color(rng.Intn(NumColors)))
	if err != nil {
		panic(err)
	}
	return gs
}
