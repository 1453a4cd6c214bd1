package game

import "fmt"

// Move relocates the piece on From to To. A Move carries no validity of its
// own; legality always depends on a GameState.
type Move struct {
	From Vertex
	To   Vertex
}

// ParseMove reads a move written as two labels, e.g. "C1-B1".
func ParseMove(s string) (Move, error) {
	var from, to string
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			from, to = s[:i], s[i+1:]
			break
		}
	}
	f, err := ParseVertex(from)
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: %w", s, err)
	}
	t, err := ParseVertex(to)
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: %w", s, err)
	}
	return Move{From: f, To: t}, nil
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}
