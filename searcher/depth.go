package searcher

import "tarati/game"

// Difficulty selects a base search depth.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

var difficultyDepths = map[Difficulty]int{
	Easy:   2,
	Medium: 3,
	Hard:   4,
	Expert: 5,
}

// Depth returns the base depth of d, falling back to Medium's.
func (d Difficulty) Depth() int {
	if depth, ok := difficultyDepths[d]; ok {
		return depth
	}
	return difficultyDepths[Medium]
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// DepthStep adds Bonus plies when the smaller side holds at most MaxPieces.
type DepthStep struct {
	MaxPieces int
	Bonus     int
}

// DepthSchedule lists steps by ascending MaxPieces; the first match applies.
type DepthSchedule []DepthStep

// DefaultDepthSchedule deepens the endgame, where one side is nearly
// converted and the branching factor collapses.
func DefaultDepthSchedule() DepthSchedule {
	return DepthSchedule{
		{MaxPieces: 1, Bonus: 2},
		{MaxPieces: 2, Bonus: 1},
	}
}

// EffectiveDepth applies the schedule to a base depth for gs.
func (s DepthSchedule) EffectiveDepth(base int, gs *game.GameState) int {
	white, black := gs.PieceCounts()
	pieces := min(white, black)
	for _, step := range s {
		if pieces <= step.MaxPieces {
			return base + step.Bonus
		}
	}
	return base
}
