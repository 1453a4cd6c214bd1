package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tarati/experiments"
	"tarati/experiments/metrics"
	"tarati/meta"
)

func main() {
	games := flag.Int("games", meta.NUM_GAMES, "Number of games per match up")
	depth := flag.Int("depth", 0, "Base search depth, 0 uses each preset's depth")
	duration := flag.Duration("duration", meta.TIME_BUDGET, "Time budget per move, 0 disables")
	maxNodes := flag.Int64("nodes", 0, "Node budget per move, 0 disables")
	maxMoves := flag.Int("max-moves", meta.MAX_TURNS, "Plies before a game is a timeout")
	opening := flag.Int("opening", meta.OPENING_PLIES, "Random opening plies per game")
	seed := flag.Uint64("seed", 1, "Seed of the random openings")
	parallel := flag.Int("parallel", 1, "Games played concurrently")
	out := flag.String("out", "experiments", "Directory of the CSV report, empty disables")
	presets := flag.String("presets", "default,aggressive,defensive,material,positional,balanced", "Comma-separated weight presets")
	throughput := flag.Bool("throughput", false, "Measure the search throughput of the first preset instead")
	level := flag.String("level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	configs, err := experiments.PresetConfigs(strings.Split(*presets, ","), *depth, *duration, *maxNodes)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build agent configs")
	}
	params := experiments.MatchParams{
		Games:        *games,
		MaxMoves:     *maxMoves,
		OpeningPlies: *opening,
		Seed:         *seed,
		Parallelism:  *parallel,
	}

	if *throughput {
		stats, err := experiments.RunThroughput(ctx, configs[0], params)
		if err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
		log.Info().Msgf("%+v", stats)
		return
	}

	if len(configs) < 2 {
		log.Fatal().Msg("a round robin needs at least two presets")
	}
	runID := uuid.New()
	log.Info().Str("run", runID.String()).Msgf("starting round robin between %d configs...", len(configs))
	matches, err := experiments.RoundRobin(ctx, configs, params)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	for i, st := range experiments.Standings(matches) {
		log.Info().Msgf("%d. %s %s", i+1, st.Config.Name(), st.SideStats)
	}

	if *out != "" {
		if err := writeReport(filepath.Join(*out, runID.String()), configs, matches); err != nil {
			log.Fatal().Err(err).Msg("failed to write report")
		}
	}
}

func writeReport(dir string, configs []metrics.AgentConfig, matches []experiments.MatchResult) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")

	var games []metrics.GameRecord
	var moves []metrics.MoveRecord
	for _, m := range matches {
		games = append(games, m.Games...)
		moves = append(moves, m.Moves...)
	}

	err = writer.WriteGameRecords(games)
	if err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return err
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
