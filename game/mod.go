package game

import "errors"

// Color identifies one of the two sides.
type Color uint8

const (
	White Color = iota
	Black
)

// NumColors is the number of sides in a game.
const NumColors = 2

// MaxPieces is the largest number of cobs a legal placement may hold.
const MaxPieces = 8

// Opponent returns the other side.
func (c Color) Opponent() Color {
	return c ^ 1
}

// Sign is +1 for WHITE and -1 for BLACK, matching the evaluator's convention.
func (c Color) Sign() float64 {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) String() string {
	switch c {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	default:
		return "UNKNOWN"
	}
}

// Piece is a cob. An upgraded cob is called a roc.
type Piece struct {
	Color    Color
	Upgraded bool
}

func (p Piece) String() string {
	if p.Upgraded {
		return p.Color.String() + "(roc)"
	}
	return p.Color.String()
}

// StateHash is a Zobrist digest of a placement and the side to move.
type StateHash uint64

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrUnknownVertex    = errors.New("unknown vertex")
	ErrInvalidPlacement = errors.New("invalid placement")
)
