package game

// RepetitionLimit is the occurrence count at which the repeating side loses.
const RepetitionLimit = 3

// History counts how often each position occurred in a real game. Only
// committed moves are recorded; search never reads or writes it.
type History struct {
	counts map[StateHash]int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{counts: make(map[StateHash]int)}
}

// Hash is the key a position is counted under.
func (h *History) Hash(gs *GameState) StateHash {
	return gs.Hash()
}

// Record counts gs, the position reached by mover's move. On the third
// occurrence it returns mover as the loser. Every later occurrence keeps
// reporting the mover.
func (h *History) Record(gs *GameState, mover Color) (loser Color, repeated bool) {
	h.counts[gs.Hash()]++
	if h.counts[gs.Hash()] >= RepetitionLimit {
		return mover, true
	}
	return 0, false
}

// WouldCauseRepetition reports whether recording gs now would reach the limit.
func (h *History) WouldCauseRepetition(gs *GameState) bool {
	return h.counts[gs.Hash()]+1 >= RepetitionLimit
}

// Count returns how many times gs has been recorded.
func (h *History) Count(gs *GameState) int {
	return h.counts[gs.Hash()]
}

// Forget undoes one Record of gs.
func (h *History) Forget(gs *GameState) {
	key := gs.Hash()
	switch n := h.counts[key]; {
	case n <= 1:
		delete(h.counts, key)
	default:
		h.counts[key] = n - 1
	}
}

// Len returns the number of distinct positions recorded.
func (h *History) Len() int {
	return len(h.counts)
}

// Clear drops every count. Called at the start of each game.
func (h *History) Clear() {
	clear(h.counts)
}
