package gamemaster

import (
	"errors"
	"fmt"
	"stratego/game"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

var (
	ErrSessionBusy  = errors.New("session is applying another move")
	ErrGameNotFound = errors.New("game not found")
)

const defaultUpdateBuffer = 64

// Update is pushed after every accepted action.
type Update struct {
	Record game.MoveRecord
	State  game.BoardState
	Hash   game.StateHash
}

type SessionOption func(s *Session)

func WithSessionLogger(logger zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithUpdateBuffer sets how many updates are kept for a slow reader.
func WithUpdateBuffer(size int) SessionOption {
	return func(s *Session) {
		if size > 0 {
			s.bufferSize = size
		}
	}
}

// Session owns one game and serializes every move on it. Play never
// blocks on another Play: overlapping calls, including calls made from
// inside an observer callback, fail with ErrSessionBusy.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex // held for a whole Play
	state      *game.Engine
	updateCh   chan Update
	bufferSize int
	gameOver   bool
	logger     zerolog.Logger

	viewMu sync.RWMutex // guards view only, never held while the engine runs
	view   view
}

// view is the last committed position, served to readers without
// touching the engine.
type view struct {
	snapshot  game.BoardState
	legal     []game.Move
	updatedAt time.Time
}

// NewSession wraps an engine whose pieces are already placed.
func NewSession(id string, state *game.Engine, options ...SessionOption) *Session {
	if state == nil {
		panic("need a game state")
	}
	now := time.Now()
	s := &Session{ // Default values
		ID:         id,
		CreatedAt:  now,
		state:      state,
		bufferSize: defaultUpdateBuffer,
		logger:     zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	s.logger = s.logger.With().Str("component", "session").Str("game", id).Logger()
	s.updateCh = make(chan Update, s.bufferSize)
	s.refresh(now)

	// A game can be over before the first move, e.g. a side set up without movable pieces
	if _, over := state.Winner(); over {
		s.gameOver = true
		close(s.updateCh)
	}
	return s
}

// Play applies src->dest for the team to move.
func (s *Session) Play(src, dest game.Coordinate) error {
	if !s.mu.TryLock() {
		return fmt.Errorf("cannot move %v to %v: %w", src, dest, ErrSessionBusy)
	}
	defer s.mu.Unlock()

	if s.gameOver {
		return fmt.Errorf("cannot move %v to %v: %w", src, dest, game.ErrGameOver)
	}

	record, err := s.state.AttemptMove(src, dest)
	if err != nil {
		return err
	}
	snapshot := s.refresh(time.Now())

	s.push(Update{
		Record: record,
		State:  snapshot,
		Hash:   s.state.Hash(),
	})

	if winner, over := s.state.Winner(); over {
		s.gameOver = true
		s.logger.Info().Stringer("winner", winner).Msg("session finished")
		close(s.updateCh)
	}
	return nil
}

// refresh publishes the engine's current position to readers. Callers
// hold mu.
func (s *Session) refresh(at time.Time) game.BoardState {
	v := view{
		snapshot:  s.state.Snapshot(),
		legal:     s.state.LegalMoves(),
		updatedAt: at,
	}
	s.viewMu.Lock()
	defer s.viewMu.Unlock()
	s.view = v
	return cloneState(v.snapshot)
}

func cloneState(state game.BoardState) game.BoardState {
	state.Pieces = slices.Clone(state.Pieces)
	return state
}

// push never blocks: with a full buffer the oldest update is dropped.
func (s *Session) push(u Update) {
	for {
		select {
		case s.updateCh <- u:
			return
		default:
		}
		select {
		case <-s.updateCh:
			s.logger.Warn().Msg("update buffer full, dropped oldest update")
		default:
		}
	}
}

// Updates is closed once the game is over and the last update was sent.
func (s *Session) Updates() <-chan Update {
	return s.updateCh
}

// Subscribe registers an observer on the underlying engine. Observers run
// while Play holds the session lock: a nested Play fails with
// ErrSessionBusy, and the read accessors return the position as it was
// before the move being notified.
func (s *Session) Subscribe(o game.Observer) error {
	if !s.mu.TryLock() {
		return ErrSessionBusy
	}
	defer s.mu.Unlock()
	s.state.Subscribe(o)
	return nil
}

// Snapshot returns the last committed position.
func (s *Session) Snapshot() game.BoardState {
	s.viewMu.RLock()
	defer s.viewMu.RUnlock()
	return cloneState(s.view.snapshot)
}

func (s *Session) LegalMoves() []game.Move {
	s.viewMu.RLock()
	defer s.viewMu.RUnlock()
	return slices.Clone(s.view.legal)
}

func (s *Session) Turn() game.Team {
	s.viewMu.RLock()
	defer s.viewMu.RUnlock()
	return s.view.snapshot.Turn
}

func (s *Session) Winner() (game.Team, bool) {
	s.viewMu.RLock()
	defer s.viewMu.RUnlock()
	return s.view.snapshot.Winner, s.view.snapshot.GameOver
}

func (s *Session) UpdatedAt() time.Time {
	s.viewMu.RLock()
	defer s.viewMu.RUnlock()
	return s.view.updatedAt
}
