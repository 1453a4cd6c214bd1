package searcher

import "tarati/game"

// ttFlag is the kind of bound an entry holds.
type ttFlag uint8

const (
	ttExact ttFlag = iota
	ttLower        // failed high: the true score is at least the stored one
	ttUpper        // failed low: the true score is at most the stored one
)

type ttKey struct {
	hash  game.StateHash
	depth int
	turn  game.Color
}

type ttEntry struct {
	score float64
	flag  ttFlag
	move  game.Move // best move found at the node
}

// transpositionTable memoizes search results within one BestMove call.
type transpositionTable struct {
	entries map[ttKey]ttEntry
}

func newTranspositionTable() *transpositionTable {
	return &transpositionTable{entries: make(map[ttKey]ttEntry, 1<<12)}
}

func keyOf(gs *game.GameState, depth int) ttKey {
	return ttKey{hash: gs.Hash(), depth: depth, turn: gs.Turn()}
}

func (tt *transpositionTable) probe(key ttKey) (ttEntry, bool) {
	e, ok := tt.entries[key]
	return e, ok
}

// store keeps an exact entry over a later bound for the same key.
func (tt *transpositionTable) store(key ttKey, e ttEntry) {
	if old, ok := tt.entries[key]; ok && old.flag == ttExact && e.flag != ttExact {
		return
	}
	tt.entries[key] = e
}

// cutoff returns the stored score when it settles the window.
func (e ttEntry) cutoff(alpha, beta float64) (float64, bool) {
	switch e.flag {
	case ttExact:
		return e.score, true
	case ttLower:
		if e.score >= beta {
			return e.score, true
		}
	case ttUpper:
		if e.score <= alpha {
			return e.score, true
		}
	}
	return 0, false
}

func (tt *transpositionTable) len() int {
	return len(tt.entries)
}
