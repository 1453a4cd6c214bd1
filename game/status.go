package game

// Status classifies a position. Every status except Playing is terminal.
type Status int

const (
	Playing Status = iota
	Elimination
	NoMoves
	TripleRepetition
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Elimination:
		return "elimination"
	case NoMoves:
		return "no-moves"
	case TripleRepetition:
		return "triple-repetition"
	default:
		return "unknown"
	}
}

// Outcome is the classification of a position and, when decided, its winner.
type Outcome struct {
	Status    Status
	Winner    Color
	HasWinner bool
}

// IsOver reports whether the outcome is terminal.
func (o Outcome) IsOver() bool {
	return o.Status != Playing
}

// RepetitionCounter exposes how often a position occurred in the real game.
type RepetitionCounter interface {
	Count(gs *GameState) int
}

// StatusOf classifies gs. Repetition is only considered when h is non-nil,
// so search exploration passes nil.
func StatusOf(gs *GameState, h RepetitionCounter) Outcome {
	white, black := gs.PieceCounts()
	switch {
	case white == 0 && black == 0:
		return Outcome{Status: Elimination}
	case white == 0:
		return Outcome{Status: Elimination, Winner: Black, HasWinner: true}
	case black == 0:
		return Outcome{Status: Elimination, Winner: White, HasWinner: true}
	}

	// Being unable to move loses.
	if !HasLegalMove(gs) {
		return Outcome{Status: NoMoves, Winner: gs.turn.Opponent(), HasWinner: true}
	}

	// The side that just moved caused the repetition and loses.
	if h != nil && h.Count(gs) >= RepetitionLimit {
		return Outcome{Status: TripleRepetition, Winner: gs.turn, HasWinner: true}
	}

	return Outcome{Status: Playing}
}

// IsGameOver reports whether gs is terminal given the real-game history h
// (which may be nil).
func IsGameOver(gs *GameState, h RepetitionCounter) bool {
	return StatusOf(gs, h).IsOver()
}

// Winner returns the winning side of a terminal position.
func Winner(gs *GameState, h RepetitionCounter) (Color, bool) {
	o := StatusOf(gs, h)
	return o.Winner, o.HasWinner
}
