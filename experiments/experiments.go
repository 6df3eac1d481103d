package experiments

import (
	"fmt"
	"stratego/engine"
	"stratego/experiments/metrics"
	"stratego/game"
	"stratego/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Config struct {
	Name     string
	Games    int
	Seed     uint64 // Game i uses Seed+i for its setups and players
	MaxTurns int
	Root     string // Results directory
}

func DefaultConfig() Config {
	return Config{
		Name:     "random_play",
		Games:    meta.GAMES,
		Seed:     meta.SEED,
		MaxTurns: meta.MAX_TURNS,
		Root:     meta.RESULTS_DIR,
	}
}

// RunRandomPlay plays cfg.Games games between random players and stores
// the game and move records as CSV. It returns the directory written to.
func RunRandomPlay(cfg Config) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for i := 0; i < cfg.Games; i++ {
		id := i + 1
		seed := cfg.Seed + uint64(i)
		log.Info().Msgf("starting game %d of %d with seed %d...", id, cfg.Games, seed)

		winner, gameMetric, moveMetrics, err := RunGame(seed, cfg.MaxTurns)
		if err != nil {
			return "", fmt.Errorf("game %d: %w", id, err)
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Seed:       seed,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %q", id, cfg.Games, winner)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)
	return store(cfg, gameRecords, moveRecords)
}

func store(cfg Config, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.Root, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// NewRandomGame returns an engine with both armies placed at random.
func NewRandomGame(seed uint64, options ...game.Option) (*game.Engine, error) {
	e := game.NewEngine(options...)
	rng := rand.New(rand.NewSource(seed))
	for _, team := range []game.Team{game.Red, game.Blue} {
		if err := game.RandomSetup(e, team, rng); err != nil {
			return nil, fmt.Errorf("failed to set up %s: %w", team, err)
		}
	}
	return e, nil
}

// RunGame executes a single game between two random players.
func RunGame(seed uint64, maxTurns int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := NewRandomGame(seed)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	red := engine.NewRandomPlayer(seed)
	blue := engine.NewRandomPlayer(seed + 1<<32)
	e := engine.LocalEngine(state, red, blue, engine.WithMaxTurns(maxTurns))

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}
