package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"stratego/engine"
	"stratego/experiments"
	"stratego/game"
	"stratego/gamemaster"
	"stratego/meta"
	"stratego/render"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "One of play, experiment, throughput")
	games := flag.Int("games", meta.GAMES, "Number of games for experiment and throughput modes")
	seed := flag.Uint64("seed", meta.SEED, "Seed for setups and random players")
	maxTurns := flag.Int("turns", meta.MAX_TURNS, "Maximum number of actions per game")
	workers := flag.Int("workers", 4, "Goroutines for throughput mode")
	results := flag.String("results", meta.RESULTS_DIR, "Directory for experiment CSV files")
	verbose := flag.Bool("v", false, "Log rejected moves and every capture")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	var err error
	switch *mode {
	case "play":
		err = play(*seed, *maxTurns)
	case "experiment":
		cfg := experiments.DefaultConfig()
		cfg.Games, cfg.Seed, cfg.MaxTurns, cfg.Root = *games, *seed, *maxTurns, *results
		var dir string
		dir, err = experiments.RunRandomPlay(cfg)
		if err == nil {
			fmt.Printf("Results written to %s\n", dir)
		}
	case "throughput":
		var result experiments.Throughput
		result, err = experiments.RunThroughput(context.Background(), *games, *workers, *seed, *maxTurns)
		if err == nil {
			fmt.Printf("%d games, %d moves in %v (%.0f moves/s on %d workers)\n",
				result.Games, result.Moves, result.Elapsed, result.PerSecond, result.Workers)
		}
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}

	if err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// play runs one random game through a session and prints the final board.
func play(seed uint64, maxTurns int) error {
	manager := gamemaster.NewManager(log.Logger)
	session, err := manager.NewGame(gamemaster.RandomSetup(seed))
	if err != nil {
		return err
	}
	defer manager.Remove(session.ID)

	players := map[game.Team]engine.Player{
		game.Red:  engine.NewRandomPlayer(seed),
		game.Blue: engine.NewRandomPlayer(seed + 1),
	}

	updates := session.Updates()
	for turn := 0; turn < maxTurns; turn++ {
		if _, over := session.Winner(); over {
			break
		}
		team := session.Turn()
		move, ok := players[team].NextMove(session)
		if !ok {
			log.Info().Msgf("team %s has no move left", team)
			break
		}
		if err := session.Play(move.Src, move.Dest); err != nil {
			return fmt.Errorf("session rejected %v: %w", move, err)
		}

		// Drain as we go so the buffer never drops anything
		u := <-updates
		if u.Record.Kind == game.AttackAction {
			log.Debug().Msgf("move %d: %v attacked %v (%s)", u.Record.Seq, u.Record.Piece, u.Record.Defender, u.Record.Result.Outcome)
		}
	}

	fmt.Println(render.Summary(session.Snapshot()))
	return nil
}
