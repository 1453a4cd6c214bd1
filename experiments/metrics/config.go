package metrics

import (
	"fmt"
	"time"

	"tarati/game"
)

// AgentConfig describes one tournament participant.
type AgentConfig struct {
	ID       int
	Weights  game.Weights
	Depth    int           // base depth, falls back to Weights.SearchDepth
	Duration time.Duration // per-move budget, zero disables
	MaxNodes int64         // per-move budget, zero disables
}

func (c AgentConfig) Name() string {
	if c.Weights.Name == "" {
		return fmt.Sprintf("agent-%d", c.ID)
	}
	return fmt.Sprintf("%s-%d", c.Weights.Name, c.ID)
}
