package metrics

import (
	"time"

	"tarati/game"
	"tarati/searcher"
)

type MoveMetric struct {
	Step    int
	Player  game.Color
	Move    game.Move
	Score   float64
	Opening bool // played by the opening agent
	searcher.Metrics
}

type GameMetric struct {
	StartingPlayer game.Color
	Status         game.Status
	Winner         string // "WHITE", "BLACK" or empty without a winner
	TimedOut       bool   // the move cap was reached first
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates the metrics of one game, move by move.
type Collector interface {
	Start(starting game.Color)
	AddMove(m MoveMetric)
	Complete(o game.Outcome, timedOut bool) (GameMetric, []MoveMetric)
}

type collector struct {
	starting  game.Color
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(starting game.Color) {
	c.starting = starting
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(m MoveMetric) {
	m.Step = len(c.moves) + 1
	c.moves = append(c.moves, m)
}

func (c *collector) Complete(o game.Outcome, timedOut bool) (GameMetric, []MoveMetric) {
	end := time.Now()
	gm := GameMetric{
		StartingPlayer: c.starting,
		Status:         o.Status,
		TimedOut:       timedOut,
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		TotalMoves:     len(c.moves),
	}
	if o.HasWinner {
		gm.Winner = o.Winner.String()
	}
	return gm, c.moves
}
