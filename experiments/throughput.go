package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tarati/experiments/metrics"
)

// ThroughputStats summarizes the searches of self-play games.
type ThroughputStats struct {
	Searches     int
	Nodes        int64
	SearchTime   time.Duration
	NodesPerSec  float64
	AvgDepth     float64
	TTHitRate    float64
	AbortedShare float64 // searches cut short by a budget
}

// RunThroughput plays config against itself and measures how fast it
// searches. Opening plies are excluded from the statistics.
func RunThroughput(ctx context.Context, config metrics.AgentConfig, p MatchParams) (ThroughputStats, error) {
	log.Info().Msgf("starting throughput experiment for %s...", config.Name())

	match, err := RunMatch(ctx, config, config, p)
	if err != nil {
		return ThroughputStats{}, fmt.Errorf("throughput of %s: %w", config.Name(), err)
	}

	var stats ThroughputStats
	var depths, probes, hits, aborted int64
	for _, m := range match.Moves {
		if m.Opening {
			continue
		}
		stats.Searches++
		stats.Nodes += m.Nodes
		stats.SearchTime += m.Duration
		depths += int64(m.Depth)
		probes += m.TTProbes
		hits += m.TTHits
		if m.Aborted {
			aborted++
		}
	}
	if stats.Searches > 0 {
		stats.AvgDepth = float64(depths) / float64(stats.Searches)
		stats.AbortedShare = float64(aborted) / float64(stats.Searches)
	}
	if stats.SearchTime > 0 {
		stats.NodesPerSec = float64(stats.Nodes) / stats.SearchTime.Seconds()
	}
	if probes > 0 {
		stats.TTHitRate = float64(hits) / float64(probes)
	}

	log.Info().Msgf("completed throughput experiment: %d searches, %.0f nodes/s, depth %.2f", stats.Searches, stats.NodesPerSec, stats.AvgDepth)
	return stats, nil
}
