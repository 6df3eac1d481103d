package gamemaster

import (
	"fmt"
	"sort"
	"stratego/game"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Setup places the pieces of a fresh game.
type Setup func(e *game.Engine) error

// RandomSetup shuffles a standard army into both home areas.
func RandomSetup(seed uint64) Setup {
	return func(e *game.Engine) error {
		rng := rand.New(rand.NewSource(seed))
		for _, team := range []game.Team{game.Red, game.Blue} {
			if err := game.RandomSetup(e, team, rng); err != nil {
				return err
			}
		}
		return nil
	}
}

// Manager keeps the running sessions by id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	logger   zerolog.Logger
}

func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// NewGame creates an engine, runs setup on it and registers the session.
func (m *Manager) NewGame(setup Setup, options ...game.Option) (*Session, error) {
	id := uuid.NewString()
	options = append([]game.Option{game.WithLogger(m.logger.With().Str("game", id).Logger())}, options...)
	state := game.NewEngine(options...)
	if setup != nil {
		if err := setup(state); err != nil {
			return nil, fmt.Errorf("failed to set up game %s: %w", id, err)
		}
	}
	s := NewSession(id, state, WithSessionLogger(m.logger))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	m.logger.Info().Str("game", id).Msg("created game")
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("game %s: %w", id, ErrGameNotFound)
	}
	return s, nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("game %s: %w", id, ErrGameNotFound)
	}
	delete(m.sessions, id)
	return nil
}

// IDs returns the session ids in lexical order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
