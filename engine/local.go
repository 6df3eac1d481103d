package engine

import (
	"stratego/experiments/metrics"
	"stratego/game"
	"stratego/meta"

	"github.com/rs/zerolog"
)

type Option func(l *Local)

// Local runs a game between two in-process players.
type Local struct {
	State     *game.Engine
	Players   map[game.Team]Player
	logger    zerolog.Logger
	collector metrics.Collector
	maxTurns  int
}

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Local) {
		l.logger = logger.With().Str("component", "local_engine").Logger()
	}
}

func WithMaxTurns(turns int) Option {
	return func(l *Local) {
		if turns > 0 {
			l.maxTurns = turns
		}
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(l *Local) {
		if c != nil {
			l.collector = c
		}
	}
}

// LocalEngine wires two players to a set-up game. The collector is
// subscribed to the game's notifications.
func LocalEngine(state *game.Engine, red, blue Player, options ...Option) *Local {
	if state == nil {
		panic("need a game state")
	}
	if red == nil || blue == nil {
		panic("need two players")
	}

	l := &Local{ // Default values
		State:     state,
		Players:   map[game.Team]Player{game.Red: red, game.Blue: blue},
		logger:    zerolog.Nop(),
		collector: metrics.NewCollector(),
		maxTurns:  meta.MAX_TURNS,
	}
	for _, option := range options {
		option(l)
	}
	state.Subscribe(l.collector)
	return l
}

// Run executes the game loop until a winner is found, a player has no
// move left, or maxTurns actions have been played.
func (l *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	l.logger.Info().Msgf("team %s is starting", l.State.Turn())
	l.collector.Start(l.State.Turn())

	// Loop until there's a winner
	turnCount := 1
	for turnCount <= l.maxTurns {
		if _, over := l.State.Winner(); over {
			break
		}
		team := l.State.Turn()

		move, ok := l.Players[team].NextMove(l.State)
		if !ok {
			l.logger.Info().Msgf("team %s has no move left, stopping after %d turns", team, turnCount-1)
			break
		}

		if _, err := l.State.AttemptMove(move.Src, move.Dest); err != nil {
			// Fall back to the first legal move so the game keeps going
			l.logger.Warn().Err(err).Msgf("team %s proposed an illegal move, forcing a legal one", team)
			fallback := l.State.LegalMoves()
			if len(fallback) == 0 {
				l.logger.Info().Msgf("team %s has no legal move, stopping", team)
				break
			}
			if _, err := l.State.AttemptMove(fallback[0].Src, fallback[0].Dest); err != nil {
				panic(err) // LegalMoves only lists moves that validate
			}
		}
		turnCount++
	}

	winner := ""
	if w, over := l.State.Winner(); over {
		winner = w.String()
		l.logger.Info().Msgf("game ended with winner %s", winner)
	} else {
		l.logger.Info().Msgf("stopped after %d turns (no winner yet)", turnCount-1)
	}

	gameMetric, moveMetrics := l.collector.Complete()
	return winner, gameMetric, moveMetrics
}
