package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tarati/game"
	"tarati/searcher"
)

var (
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

type step struct {
	move  game.Move
	mover game.Color
	state *game.GameState // position after the move
}

// Session owns one game played through a UI: the current position, the
// real-game history and an undo/redo timeline. It is safe for concurrent use.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	start    *game.GameState
	timeline []step
	undone   []step
	history  *game.History
	outcome  game.Outcome
}

// NewSession starts a game from the initial position.
func NewSession() *Session {
	return NewSessionFrom(game.InitialState())
}

// NewSessionFrom starts a game from an edited position.
func NewSessionFrom(start *game.GameState) *Session {
	s := &Session{
		ID:      uuid.New(),
		start:   start,
		history: game.NewHistory(),
	}
	s.outcome = game.StatusOf(start, s.history)
	log.Info().Str("session", s.ID.String()).Msgf("session started, %s to move", start.Turn())
	return s
}

func (s *Session) current() *game.GameState {
	if n := len(s.timeline); n > 0 {
		return s.timeline[n-1].state
	}
	return s.start
}

func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Session) Outcome() game.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// LegalMoves lists the moves of the side to move, none once the game is over.
func (s *Session) LegalMoves() []game.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcome.IsOver() {
		return nil
	}
	return game.LegalMoves(s.current())
}

func (s *Session) IsValidMove(from, to game.Vertex) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.outcome.IsOver() && game.IsValidMove(s.current(), from, to)
}

// Moves returns the moves played so far.
func (s *Session) Moves() []game.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	moves := make([]game.Move, len(s.timeline))
	for i, st := range s.timeline {
		moves[i] = st.move
	}
	return moves
}

// Play validates and commits a move, then classifies the new position.
// Playing clears the redo stack.
func (s *Session) Play(from, to game.Vertex) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome.IsOver() {
		return s.outcome, ErrGameOver
	}
	gs := s.current()
	m := game.Move{From: from, To: to}
	if !game.IsValidMove(gs, from, to) {
		return s.outcome, fmt.Errorf("%w: %s for %s", game.ErrIllegalMove, m, gs.Turn())
	}

	s.commit(step{move: m, mover: gs.Turn(), state: gs.Play(m)})
	s.undone = nil
	return s.outcome, nil
}

// PlayLabels is Play for vertex labels as the UI has them.
func (s *Session) PlayLabels(from, to string) (game.Outcome, error) {
	f, err := game.ParseVertex(from)
	if err != nil {
		return s.Outcome(), err
	}
	t, err := game.ParseVertex(to)
	if err != nil {
		return s.Outcome(), err
	}
	return s.Play(f, t)
}

func (s *Session) commit(st step) {
	s.timeline = append(s.timeline, st)
	if _, repeated := s.history.Record(st.state, st.mover); repeated {
		log.Debug().Str("session", s.ID.String()).Msgf("%s repeated a position", st.mover)
	}
	s.outcome = game.StatusOf(st.state, s.history)
	if s.outcome.IsOver() {
		log.Info().Str("session", s.ID.String()).Msgf("game over by %s after %d moves", s.outcome.Status, len(s.timeline))
	}
}

// Undo takes back the last move, including a move that ended the game.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.timeline)
	if n == 0 {
		return ErrNothingToUndo
	}
	last := s.timeline[n-1]
	s.timeline = s.timeline[:n-1]
	s.history.Forget(last.state)
	s.undone = append(s.undone, last)
	s.outcome = game.StatusOf(s.current(), s.history)
	return nil
}

// Redo replays the last undone move.
func (s *Session) Redo() (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.undone)
	if n == 0 {
		return s.outcome, ErrNothingToRedo
	}
	next := s.undone[n-1]
	s.undone = s.undone[:n-1]
	s.commit(next)
	return s.outcome, nil
}

func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timeline) > 0
}

func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undone) > 0
}

// WouldCauseRepetition reports whether playing m now loses by repetition.
func (s *Session) WouldCauseRepetition(m game.Move) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs := s.current()
	if !game.IsValidMove(gs, m.From, m.To) {
		return false
	}
	return s.history.WouldCauseRepetition(gs.Play(m))
}

// BestMove searches the current position. The search does not see the
// session history.
func (s *Session) BestMove(ctx context.Context, difficulty searcher.Difficulty, weights game.Weights, debug bool) searcher.Result {
	s.mu.Lock()
	gs, over := s.current(), s.outcome.IsOver()
	s.mu.Unlock()
	if over {
		return searcher.Result{}
	}
	m := searcher.NewMinimax(
		searcher.WithWeights(weights),
		searcher.WithDifficulty(difficulty),
		searcher.WithDebug(debug),
	)
	return m.BestMoveContext(ctx, gs)
}

// Reset restarts the game from the initial position with a fresh history.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = game.InitialState()
	s.timeline = nil
	s.undone = nil
	s.history.Clear()
	s.outcome = game.StatusOf(s.start, s.history)
	log.Info().Str("session", s.ID.String()).Msg("session reset")
}
