package game

import (
	"fmt"
	"sort"
	"strings"
)

// cell encodes the content of one vertex.
type cell uint8

const (
	empty cell = iota
	whiteCob
	whiteRoc
	blackCob
	blackRoc
	numCells
)

func cellOf(p Piece) cell {
	c := whiteCob
	if p.Color == Black {
		c = blackCob
	}
	if p.Upgraded {
		c++
	}
	return c
}

func (c cell) piece() (Piece, bool) {
	switch c {
	case whiteCob:
		return Piece{Color: White}, true
	case whiteRoc:
		return Piece{Color: White, Upgraded: true}, true
	case blackCob:
		return Piece{Color: Black}, true
	case blackRoc:
		return Piece{Color: Black, Upgraded: true}, true
	default:
		return Piece{}, false
	}
}

func (c cell) color() Color {
	if c >= blackCob {
		return Black
	}
	return White
}

func (c cell) upgraded() bool {
	return c == whiteRoc || c == blackRoc
}

// GameState is an immutable snapshot of the placement and the side to move.
// Every transformation returns a new value.
type GameState struct {
	cells [NumVertices]cell
	turn  Color
	hash  StateHash
}

// NewGameState validates a placement and returns the corresponding state.
func NewGameState(pieces map[Vertex]Piece, turn Color) (*GameState, error) {
	if turn != White && turn != Black {
		return nil, fmt.Errorf("%w: turn %d", ErrInvalidPlacement, turn)
	}
	if len(pieces) > MaxPieces {
		return nil, fmt.Errorf("%w: %d pieces, at most %d allowed", ErrInvalidPlacement, len(pieces), MaxPieces)
	}
	gs := &GameState{turn: turn}
	for v, p := range pieces {
		if int(v) >= NumVertices {
			return nil, fmt.Errorf("%w: %w: %d", ErrInvalidPlacement, ErrUnknownVertex, v)
		}
		if p.Color != White && p.Color != Black {
			return nil, fmt.Errorf("%w: color %d on %s", ErrInvalidPlacement, p.Color, v)
		}
		gs.cells[v] = cellOf(p)
	}
	gs.hash = hashCells(&gs.cells, turn)
	return gs, nil
}

// InitialState is the fixed starting position: each side fills its home
// base and WHITE moves first.
func InitialState() *GameState {
	pieces := make(map[Vertex]Piece, MaxPieces)
	for c := White; c <= Black; c++ {
		for _, v := range board.home[c] {
			pieces[v] = Piece{Color: c}
		}
	}
	gs, err := NewGameState(pieces, White)
	if err != nil {
		panic(err)
	}
	return gs
}

// Turn returns the side to move.
func (gs *GameState) Turn() Color {
	return gs.turn
}

// Hash returns the Zobrist digest of the placement and the side to move.
func (gs *GameState) Hash() StateHash {
	return gs.hash
}

// PieceAt returns the piece on v, if any.
func (gs *GameState) PieceAt(v Vertex) (Piece, bool) {
	return gs.cells[v].piece()
}

// IsEmpty reports whether v holds no piece.
func (gs *GameState) IsEmpty(v Vertex) bool {
	return gs.cells[v] == empty
}

// Pieces returns a copy of the vertex to piece mapping.
func (gs *GameState) Pieces() map[Vertex]Piece {
	pieces := make(map[Vertex]Piece, MaxPieces)
	for v, c := range gs.cells {
		if p, ok := c.piece(); ok {
			pieces[Vertex(v)] = p
		}
	}
	return pieces
}

// PieceCounts tallies the pieces of each side.
func (gs *GameState) PieceCounts() (white, black int) {
	for _, c := range gs.cells {
		switch {
		case c == empty:
		case c.color() == White:
			white++
		default:
			black++
		}
	}
	return white, black
}

// WithTurn returns a copy of the state with the given side to move.
func (gs *GameState) WithTurn(turn Color) *GameState {
	next := *gs
	if next.turn != turn {
		next.turn = turn
		next.hash ^= zobristSideToMove
	}
	return &next
}

// PassTurn returns a copy of the state with the other side to move.
func (gs *GameState) PassTurn() *GameState {
	return gs.WithTurn(gs.turn.Opponent())
}

// Mirror rotates the board half a turn and swaps every color, including the
// side to move. The evaluation of the mirror is the negated evaluation.
func (gs *GameState) Mirror() *GameState {
	next := &GameState{turn: gs.turn.Opponent()}
	for v, c := range gs.cells {
		if p, ok := c.piece(); ok {
			p.Color = p.Color.Opponent()
			next.cells[Rotate(Vertex(v))] = cellOf(p)
		}
	}
	next.hash = hashCells(&next.cells, next.turn)
	return next
}

// Equal reports whether two states hold the same placement and side to move.
func (gs *GameState) Equal(other *GameState) bool {
	return gs.turn == other.turn && gs.cells == other.cells
}

func (gs *GameState) String() string {
	var parts []string
	for v, c := range gs.cells {
		if p, ok := c.piece(); ok {
			parts = append(parts, fmt.Sprintf("%s:%s", Vertex(v), p))
		}
	}
	sort.Strings(parts)
	return fmt.Sprintf("{%s} %s to move", strings.Join(parts, " "), gs.turn)
}
