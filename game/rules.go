package game

import "fmt"

// LegalMoves enumerates the moves of the side to move. Pieces are visited in
// vertex order; for each piece its castling move comes first, followed by its
// steps in neighbor order. The order is stable and the search relies on it.
func LegalMoves(gs *GameState) []Move {
	moves := make([]Move, 0, 16)
	for v, c := range gs.cells {
		if c == empty || c.color() != gs.turn {
			continue
		}
		from := Vertex(v)
		if to, ok := castleTarget(gs, from); ok {
			moves = append(moves, Move{From: from, To: to})
		}
		for _, to := range board.adjacency[from] {
			if canStep(gs, c, from, to) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// HasLegalMove reports whether the side to move can move at all.
func HasLegalMove(gs *GameState) bool {
	for v, c := range gs.cells {
		if c == empty || c.color() != gs.turn {
			continue
		}
		from := Vertex(v)
		if _, ok := castleTarget(gs, from); ok {
			return true
		}
		for _, to := range board.adjacency[from] {
			if canStep(gs, c, from, to) {
				return true
			}
		}
	}
	return false
}

// IsValidMove reports whether from -> to is legal for the side to move.
func IsValidMove(gs *GameState, from, to Vertex) bool {
	if int(from) >= NumVertices || int(to) >= NumVertices || from == to {
		return false
	}
	c := gs.cells[from]
	if c == empty || c.color() != gs.turn || gs.cells[to] != empty {
		return false
	}
	if AreAdjacent(from, to) {
		return canStep(gs, c, from, to)
	}
	target, ok := castleTarget(gs, from)
	return ok && target == to
}

// IsCastling reports whether from -> to is a triggered castling leap.
func IsCastling(gs *GameState, from, to Vertex) bool {
	target, ok := castleTarget(gs, from)
	return ok && target == to
}

// canStep checks a single-edge step by the piece encoded as c.
func canStep(gs *GameState, c cell, from, to Vertex) bool {
	if gs.cells[to] != empty {
		return false
	}
	return c.upgraded() || !IsRetreat(c.color(), from, to)
}

// castleTarget returns the landing vertex of the castling leap available to
// the piece on from. The leap needs a friendly piece on the home vertex it
// jumps over and an empty landing vertex on the bridge.
func castleTarget(gs *GameState, from Vertex) (Vertex, bool) {
	cs := board.castles[from]
	if cs == nil || cs.color != gs.turn {
		return 0, false
	}
	mover, over := gs.cells[from], gs.cells[cs.over]
	if mover == empty || mover.color() != cs.color || over == empty || over.color() != cs.color {
		return 0, false
	}
	if gs.cells[cs.to] != empty {
		return 0, false
	}
	return cs.to, true
}

// ApplyMove relocates the piece on from to to, converts every enemy piece
// adjacent to to and upgrades the mover when it lands in the opponent's home
// base. The side to move is unchanged.
//
// The move must have been checked with IsValidMove; an unchecked pair yields
// an unspecified state.
func ApplyMove(gs *GameState, from, to Vertex) *GameState {
	next := *gs
	c := next.cells[from]
	next.setCell(from, empty)

	mover := c.color()
	enemyCob, enemyRoc := blackCob, blackRoc
	if mover == Black {
		enemyCob, enemyRoc = whiteCob, whiteRoc
	}
	for _, n := range board.adjacency[to] {
		switch next.cells[n] {
		case enemyCob:
			next.setCell(n, cellOf(Piece{Color: mover}))
		case enemyRoc:
			next.setCell(n, cellOf(Piece{Color: mover, Upgraded: true}))
		}
	}

	if c != empty && !c.upgraded() && InHomeBase(mover.Opponent(), to) {
		c++
	}
	next.setCell(to, c)
	return &next
}

// TryApplyMove validates m before applying it. The side to move is unchanged.
func TryApplyMove(gs *GameState, m Move) (*GameState, error) {
	if !IsValidMove(gs, m.From, m.To) {
		return nil, fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, gs.turn)
	}
	return ApplyMove(gs, m.From, m.To), nil
}

// Play applies a valid move and hands the turn to the opponent.
func (gs *GameState) Play(m Move) *GameState {
	next := ApplyMove(gs, m.From, m.To)
	next.turn = next.turn.Opponent()
	next.hash ^= zobristSideToMove
	return next
}

// Converted lists the enemy pieces a move to m.To would flip.
func Converted(gs *GameState, m Move) []Vertex {
	c := gs.cells[m.From]
	if c == empty {
		return nil
	}
	var flipped []Vertex
	for _, n := range board.adjacency[m.To] {
		if n != m.From && gs.cells[n] != empty && gs.cells[n].color() != c.color() {
			flipped = append(flipped, n)
		}
	}
	return flipped
}

// setCell updates one vertex and the cached hash.
func (gs *GameState) setCell(v Vertex, c cell) {
	if old := gs.cells[v]; old != empty {
		gs.hash ^= zobristCell[v][old]
	}
	gs.cells[v] = c
	if c != empty {
		gs.hash ^= zobristCell[v][c]
	}
}
