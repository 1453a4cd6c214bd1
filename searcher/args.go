package searcher

import (
	"time"

	"tarati/game"
)

type Option func(m *Minimax)

// WithDepth sets the base depth before adaptive deepening. Non-positive
// values keep the depth selected by the weights.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithDifficulty(d Difficulty) Option {
	return WithDepth(d.Depth())
}

// WithWeights sets the evaluation weights of every search run by m.
func WithWeights(w game.Weights) Option {
	return func(m *Minimax) {
		m.weights = w
	}
}

func WithDepthSchedule(schedule DepthSchedule) Option {
	return func(m *Minimax) {
		m.schedule = schedule
	}
}

// WithDuration bounds the wall-clock time of a search.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithMaxNodes bounds the number of visited nodes of a search.
func WithMaxNodes(nodes int64) Option {
	return func(m *Minimax) {
		if nodes > 0 {
			m.maxNodes = nodes
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// WithDebug logs the score of every root move.
func WithDebug(enabled bool) Option {
	return func(m *Minimax) {
		m.debug = enabled
	}
}
