package experiments

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tarati/engine"
	"tarati/experiments/metrics"
	"tarati/game"
	"tarati/meta"
	"tarati/searcher"
	"tarati/searcher/agent"
	"tarati/utils"
)

// MatchParams configures every match of a tournament.
type MatchParams struct {
	Games        int    // per match up, alternating colors
	MaxMoves     int    // plies before a game is a timeout
	OpeningPlies int    // random plies before the searchers take over
	Seed         uint64 // seeds the opening agent of each game
	Parallelism  int    // concurrent games, at least one
}

func DefaultMatchParams() MatchParams {
	return MatchParams{
		Games:        meta.NUM_GAMES,
		MaxMoves:     meta.MAX_TURNS,
		OpeningPlies: meta.OPENING_PLIES,
		Seed:         1,
		Parallelism:  1,
	}
}

// SideStats is the record of one configuration in a match or tournament.
type SideStats struct {
	Games    int
	Wins     int
	Losses   int
	Draws    int
	Timeouts int
	AvgMoves float64
}

func (s SideStats) String() string {
	return fmt.Sprintf("W%d L%d D%d T%d (%.1f moves)", s.Wins, s.Losses, s.Draws, s.Timeouts, s.AvgMoves)
}

// MatchResult is the outcome of one match up between A and B.
type MatchResult struct {
	A, B   metrics.AgentConfig
	AStats SideStats
	BStats SideStats
	Games  []metrics.GameRecord
	Moves  []metrics.MoveRecord
}

type gameResult struct {
	white, black metrics.AgentConfig
	result       engine.Result
	game         metrics.GameMetric
	moves        []metrics.MoveMetric
}

// RunMatch plays p.Games games between a and b. Game i has a as WHITE when
// i is even.
func RunMatch(ctx context.Context, a, b metrics.AgentConfig, p MatchParams) (MatchResult, error) {
	return runMatch(ctx, a, b, p, 0)
}

func runMatch(ctx context.Context, a, b metrics.AgentConfig, p MatchParams, firstID int) (MatchResult, error) {
	results := make([]gameResult, p.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.Parallelism, 1))
	for i := range p.Games {
		white, black := a, b
		if i%2 == 1 {
			white, black = b, a
		}
		g.Go(func() error {
			log.Info().Msgf("starting game %d of %d: white=%s black=%s", i+1, p.Games, white.Name(), black.Name())
			r, err := runGame(ctx, white, black, p, p.Seed+uint64(firstID+i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = r
			log.Info().Msgf("completed game %d of %d: %s", i+1, p.Games, describe(r.result))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MatchResult{}, err
	}

	match := MatchResult{A: a, B: b}
	lengths := make([]int, 0, len(results))
	for i, r := range results {
		id := firstID + i + 1
		match.Games = append(match.Games, metrics.GameRecord{
			ID:         id,
			White:      r.white.ID,
			Black:      r.black.ID,
			GameMetric: r.game,
		})
		for _, mm := range r.moves {
			match.Moves = append(match.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
		}

		aColor := game.White
		if i%2 == 1 {
			aColor = game.Black
		}
		tally(&match.AStats, r.result, aColor)
		tally(&match.BStats, r.result, aColor.Opponent())
		lengths = append(lengths, r.result.Moves)
	}
	match.AStats.AvgMoves = utils.Mean(lengths)
	match.BStats.AvgMoves = match.AStats.AvgMoves
	return match, nil
}

func runGame(ctx context.Context, white, black metrics.AgentConfig, p MatchParams, seed uint64) (gameResult, error) {
	options := []engine.Option{engine.WithMaxMoves(p.MaxMoves)}
	if p.OpeningPlies > 0 {
		options = append(options, engine.WithOpening(agent.NewRandomAgent(seed), p.OpeningPlies))
	}
	e := engine.New(newAgent(white), newAgent(black), options...)

	result, gm, moves, err := e.Run(ctx)
	if err != nil {
		return gameResult{}, err
	}
	return gameResult{white: white, black: black, result: result, game: gm, moves: moves}, nil
}

func newAgent(config metrics.AgentConfig) agent.Agent {
	return agent.NewSearchAgent(createMinimax(config))
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{searcher.WithWeights(config.Weights)}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.MaxNodes > 0 {
		options = append(options, searcher.WithMaxNodes(config.MaxNodes))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMinimax(options...)
}

// tally counts one game from the point of view of the side playing c.
func tally(s *SideStats, r engine.Result, c game.Color) {
	s.Games++
	switch {
	case r.TimedOut:
		s.Timeouts++
	case !r.Outcome.HasWinner:
		s.Draws++
	case r.Outcome.Winner == c:
		s.Wins++
	default:
		s.Losses++
	}
}

func describe(r engine.Result) string {
	switch {
	case r.TimedOut:
		return fmt.Sprintf("timeout after %d moves", r.Moves)
	case r.Outcome.HasWinner:
		return fmt.Sprintf("%s wins by %s after %d moves", r.Outcome.Winner, r.Outcome.Status, r.Moves)
	default:
		return fmt.Sprintf("no winner by %s after %d moves", r.Outcome.Status, r.Moves)
	}
}

// RoundRobin plays a match between every pair of configurations. Game IDs
// are unique across the tournament.
func RoundRobin(ctx context.Context, configs []metrics.AgentConfig, p MatchParams) ([]MatchResult, error) {
	if len(configs) < 2 {
		panic("round robin needs at least two configurations")
	}

	var matches []MatchResult
	numMatchUps := len(configs) * (len(configs) - 1) / 2
	count := 0
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			log.Info().Msgf("starting matchup %d of %d between %s and %s...", len(matches)+1, numMatchUps, configs[i].Name(), configs[j].Name())

			match, err := runMatch(ctx, configs[i], configs[j], p, count)
			if err != nil {
				return nil, fmt.Errorf("matchup %s vs %s: %w", configs[i].Name(), configs[j].Name(), err)
			}
			count += p.Games
			matches = append(matches, match)

			log.Info().Msgf("completed matchup %d of %d: %s %s, %s %s", len(matches), numMatchUps, match.A.Name(), match.AStats, match.B.Name(), match.BStats)
		}
	}
	return matches, nil
}

// Standing is the aggregated record of one configuration.
type Standing struct {
	Config metrics.AgentConfig
	SideStats
}

// Standings aggregates matches per configuration, best first: most wins,
// then fewest losses, then lowest ID.
func Standings(matches []MatchResult) []Standing {
	byID := map[int]*Standing{}
	moves := map[int]float64{}
	add := func(config metrics.AgentConfig, s SideStats) {
		st, ok := byID[config.ID]
		if !ok {
			st = &Standing{Config: config}
			byID[config.ID] = st
		}
		st.Games += s.Games
		st.Wins += s.Wins
		st.Losses += s.Losses
		st.Draws += s.Draws
		st.Timeouts += s.Timeouts
		moves[config.ID] += s.AvgMoves * float64(s.Games)
	}
	for _, m := range matches {
		add(m.A, m.AStats)
		add(m.B, m.BStats)
	}

	standings := make([]Standing, 0, len(byID))
	for id, st := range byID {
		if st.Games > 0 {
			st.AvgMoves = moves[id] / float64(st.Games)
		}
		standings = append(standings, *st)
	}
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		return a.Config.ID < b.Config.ID
	})
	return standings
}

// PresetConfigs builds one configuration per named weight preset, with IDs
// starting at 1.
func PresetConfigs(names []string, depth int, duration time.Duration, maxNodes int64) ([]metrics.AgentConfig, error) {
	configs := make([]metrics.AgentConfig, 0, len(names))
	for i, name := range names {
		if utils.FindIndex(names[:i], name) >= 0 {
			return nil, fmt.Errorf("duplicate weight preset %q", name)
		}
		w, err := game.Preset(name)
		if err != nil {
			return nil, err
		}
		configs = append(configs, metrics.AgentConfig{
			ID:       i + 1,
			Weights:  w,
			Depth:    depth,
			Duration: duration,
			MaxNodes: maxNodes,
		})
	}
	return configs, nil
}
