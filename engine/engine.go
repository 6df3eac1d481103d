package engine

import "stratego/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner, a player runs out of moves, or
	// the turn cap is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
