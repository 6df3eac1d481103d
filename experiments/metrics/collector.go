package metrics

import (
	"stratego/game"
	"sync"
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step    int
	Team    string
	Kind    string
	From    string
	To      string
	Outcome string // Combat outcome, empty for plain moves
}

type GameMetric struct {
	StartingTeam string
	Winner       string // Team name, "" if the game did not finish
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Attacks      int
	Captures     int // Pieces removed by combat
}

// Collector gathers metrics for one game by observing the engine.
type Collector interface {
	game.Observer
	Start(starting game.Team)
	Complete() (GameMetric, []MoveMetric)
}

type collector struct {
	starting  game.Team
	startTime time.Time
	moves     atomic.Int32
	attacks   atomic.Int32
	captures  atomic.Int32
	winner    atomic.Int32 // -1 until game over

	mu      sync.Mutex
	records []MoveMetric
}

func NewCollector() Collector {
	c := &collector{}
	c.winner.Store(-1)
	return c
}

func (c *collector) Start(starting game.Team) {
	c.startTime = time.Now()
	c.starting = starting
}

func (c *collector) MoveMade(src, dest game.Coordinate, p *game.Piece) {
	step := c.moves.Add(1)
	c.record(MoveMetric{
		Step: int(step),
		Team: p.Team.String(),
		Kind: game.MoveAction.String(),
		From: src.String(),
		To:   dest.String(),
	})
}

func (c *collector) AttackResolved(attacker, defender *game.Piece, result game.CombatResult) {
	step := c.moves.Add(1)
	c.attacks.Add(1)
	if result.Outcome == game.BothRemoved {
		c.captures.Add(2)
	} else {
		c.captures.Add(1)
	}
	c.record(MoveMetric{
		Step:    int(step),
		Team:    attacker.Team.String(),
		Kind:    game.AttackAction.String(),
		From:    result.Src.String(),
		To:      result.Dest.String(),
		Outcome: result.Outcome.String(),
	})
}

func (c *collector) GameOver(winner game.Team) {
	c.winner.Store(int32(winner))
}

func (c *collector) record(m MoveMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, m)
}

func (c *collector) Complete() (GameMetric, []MoveMetric) {
	end := time.Now()
	metric := GameMetric{
		StartingTeam: c.starting.String(),
		StartTime:    c.startTime,
		EndTime:      end,
		Duration:     end.Sub(c.startTime),
		TotalMoves:   int(c.moves.Load()),
		Attacks:      int(c.attacks.Load()),
		Captures:     int(c.captures.Load()),
	}
	if w := c.winner.Load(); w >= 0 {
		metric.Winner = game.Team(w).String()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	records := make([]MoveMetric, len(c.records))
	copy(records, c.records)
	return metric, records
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) MoveMade(src, dest game.Coordinate, p *game.Piece)                  {}
func (c *dummyCollector) AttackResolved(attacker, defender *game.Piece, r game.CombatResult) {}
func (c *dummyCollector) GameOver(winner game.Team)                                          {}
func (c *dummyCollector) Start(starting game.Team)                                           {}
func (c *dummyCollector) Complete() (GameMetric, []MoveMetric)                               { return GameMetric{}, nil }
