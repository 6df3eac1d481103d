package experiments

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Throughput struct {
	Games     int
	Workers   int
	Moves     int64
	Elapsed   time.Duration
	PerSecond float64 // Moves per second over all workers
}

// RunThroughput plays games random games spread over workers goroutines.
// Engines share nothing, so each worker owns the games it plays.
func RunThroughput(ctx context.Context, games, workers int, seed uint64, maxTurns int) (Throughput, error) {
	if workers < 1 {
		workers = 1
	}
	log.Info().Msgf("starting throughput experiment with %d games on %d workers...", games, workers)

	var moves atomic.Int64
	jobs := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < games; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	start := time.Now()
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				_, gameMetric, _, err := RunGame(seed+uint64(i), maxTurns)
				if err != nil {
					return fmt.Errorf("game %d: %w", i+1, err)
				}
				moves.Add(int64(gameMetric.TotalMoves))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Throughput{}, err
	}

	elapsed := time.Since(start)
	result := Throughput{
		Games:   games,
		Workers: workers,
		Moves:   moves.Load(),
		Elapsed: elapsed,
	}
	if elapsed > 0 {
		result.PerSecond = float64(result.Moves) / elapsed.Seconds()
	}
	log.Info().Msgf("completed throughput experiment: %d moves in %v (%.0f moves/s)", result.Moves, elapsed, result.PerSecond)
	return result, nil
}
