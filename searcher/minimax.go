package searcher

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"tarati/game"
	"tarati/meta"
	"tarati/utils"
)

// Minimax is a depth-first alpha-beta searcher. WHITE maximizes and BLACK
// minimizes. A Minimax holds configuration only; every BestMove call owns
// its transposition table, so one Minimax may serve sequential searches.
type Minimax struct {
	weights  game.Weights
	depth    int
	schedule DepthSchedule
	duration time.Duration
	maxNodes int64
	debug    bool
	metrics  MetricsCollector
}

// NewMinimax builds a searcher. Without WithWeights it copies the
// process-wide weights at construction time.
func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		weights:  game.EvaluationWeights(),
		schedule: DefaultDepthSchedule(),
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// BestMove searches state with the given base depth (or the weights' depth
// when depth <= 0).
func BestMove(state *game.GameState, depth int, weights game.Weights, debug bool) Result {
	return NewMinimax(WithWeights(weights), WithDepth(depth), WithDebug(debug)).BestMove(state)
}

// Weights returns the configuration the searcher evaluates with.
func (m *Minimax) Weights() game.Weights {
	return m.weights
}

func (m *Minimax) baseDepth() int {
	switch {
	case m.depth > 0:
		return m.depth
	case m.weights.SearchDepth > 0:
		return m.weights.SearchDepth
	default:
		return meta.DEFAULT_DEPTH
	}
}

func (m *Minimax) BestMove(state *game.GameState) Result {
	return m.BestMoveContext(context.Background(), state)
}

// BestMoveContext deepens iteratively up to the effective depth. When the
// context, the time budget or the node budget interrupts an iteration, the
// last completed iteration is returned; the first iteration always
// completes. Without a budget the result is that of the full-depth search.
func (m *Minimax) BestMoveContext(ctx context.Context, state *game.GameState) Result {
	m.metrics.Start()
	depth := m.schedule.EffectiveDepth(m.baseDepth(), state)

	if o := game.StatusOf(state, nil); o.IsOver() {
		return Result{Score: terminalScore(o, depth), Metrics: m.metrics.Complete()}
	}

	s := &search{
		ctx:      ctx,
		weights:  m.weights,
		tt:       newTranspositionTable(),
		maxNodes: m.maxNodes,
		metrics:  m.metrics,
		debug:    m.debug,
	}
	if m.duration > 0 {
		s.deadline = time.Now().Add(m.duration)
	}

	var best Result
	for d := 1; d <= depth; d++ {
		s.enforce = d > 1
		r, completed := s.root(state, d)
		if !completed {
			m.metrics.Abort()
			break
		}
		best = r
		best.Depth = d
		m.metrics.CompleteDepth(d)
	}

	best.Metrics = m.metrics.Complete()
	if m.debug {
		log.Debug().
			Str("move", best.Move.String()).
			Float64("score", best.Score).
			Int("depth", best.Depth).
			Int64("nodes", s.nodes).
			Int("tt", s.tt.len()).
			Msg("best-move")
	}
	return best
}

type search struct {
	ctx      context.Context
	weights  game.Weights
	tt       *transpositionTable
	deadline time.Time
	maxNodes int64
	metrics  MetricsCollector
	debug    bool

	nodes   int64
	enforce bool // budgets apply to the current iteration
	aborted bool
}

// expired reports whether a budget interrupts the current iteration.
func (s *search) expired() bool {
	if s.aborted {
		return true
	}
	if !s.enforce {
		return false
	}
	switch {
	case s.maxNodes > 0 && s.nodes > s.maxNodes:
		s.aborted = true
	case s.ctx.Err() != nil:
		s.aborted = true
	case !s.deadline.IsZero() && time.Now().After(s.deadline):
		s.aborted = true
	}
	return s.aborted
}

// root searches every root move with a full window. Among equal scores the
// first move searched wins.
func (s *search) root(gs *game.GameState, depth int) (Result, bool) {
	s.aborted = false
	ordered := orderMoves(gs, game.LegalMoves(gs), s.weights)
	maximizing := gs.Turn() == game.White
	sign := gs.Turn().Sign()
	alpha, beta := -infinity, infinity

	var best Result
	flag := ttExact
	for i, sm := range ordered {
		score := s.minimax(sm.child, depth-1, alpha, beta)
		if s.aborted {
			return Result{}, false
		}
		if s.debug {
			log.Debug().Int("depth", depth).Str("move", sm.move.String()).Float64("score", score).Msg("root-move")
		}

		if i == 0 || sign*score > sign*best.Score {
			best = Result{Move: sm.move, Ok: true, Score: score}
		}
		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}

		if t := s.weights.WinningPositionThreshold; t > 0 && sign*best.Score >= t {
			// Skipped moves can only improve the score for the mover.
			if i < len(ordered)-1 {
				flag = ttLower
				if !maximizing {
					flag = ttUpper
				}
			}
			break
		}
	}

	s.tt.store(keyOf(gs, depth), ttEntry{score: best.Score, flag: flag, move: best.Move})
	return best, true
}

func (s *search) minimax(gs *game.GameState, depth int, alpha, beta float64) float64 {
	s.nodes++
	s.metrics.AddNode()
	if s.expired() {
		return 0
	}

	if o := game.StatusOf(gs, nil); o.IsOver() {
		return terminalScore(o, depth)
	}
	if depth == 0 {
		return game.Evaluate(gs, s.weights)
	}
	if t := s.weights.WinningScoreThreshold; t > 0 {
		if static := game.Evaluate(gs, s.weights); utils.Abs(static) >= t {
			return static
		}
	}

	key := keyOf(gs, depth)
	if e, ok := s.tt.probe(key); ok {
		if score, hit := e.cutoff(alpha, beta); hit {
			s.metrics.AddProbe(true)
			return score
		}
	}
	s.metrics.AddProbe(false)

	alphaOrig, betaOrig := alpha, beta
	maximizing := gs.Turn() == game.White
	best := infinity
	if maximizing {
		best = -infinity
	}
	var bestMove game.Move

	for _, sm := range orderMoves(gs, game.LegalMoves(gs), s.weights) {
		score := s.minimax(sm.child, depth-1, alpha, beta)
		if s.aborted {
			return 0
		}
		if maximizing {
			if score > best {
				best, bestMove = score, sm.move
			}
			alpha = max(alpha, score)
		} else {
			if score < best {
				best, bestMove = score, sm.move
			}
			beta = min(beta, score)
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}

	flag := ttExact
	switch {
	case best <= alphaOrig:
		flag = ttUpper
	case best >= betaOrig:
		flag = ttLower
	}
	s.tt.store(key, ttEntry{score: best, flag: flag, move: bestMove})
	return best
}
