package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Board maps every cell to at most one piece, indexed [col][row].
type Board [BOARD_SIZE][BOARD_SIZE]*Piece

func (b *Board) At(c Coordinate) *Piece {
	return b[c.Col][c.Row]
}

func (b *Board) set(c Coordinate, p *Piece) {
	b[c.Col][c.Row] = p
}

type StateHash uint64

type Option func(e *Engine)

// Engine is the rules engine for one game session. It owns the board, the
// team rosters, the turn and the move history. It is not safe for
// concurrent use; see gamemaster.Session for a serialized wrapper.
type Engine struct {
	board       Board
	rosters     map[Team][]*Piece // live pieces per team, in registration order
	turn        Team
	history     []MoveRecord
	stall       map[Team]*stallWindow
	winner      Team
	hasWinner   bool
	nextPieceID int
	positions   map[StateHash]int // only filled when repetitionLimit > 0

	rules           Rules
	observers       []Observer
	logger          zerolog.Logger
	stallSize       int
	repetitionLimit int
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger.With().Str("component", "rules_engine").Logger()
	}
}

func WithRules(rules Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// WithStallWindow sets how many completed actions per team are remembered
// for shuttle detection. Values below 2 are ignored.
func WithStallWindow(size int) Option {
	return func(e *Engine) {
		if size >= 2 {
			e.stallSize = size
		}
	}
}

// WithPositionRepetitionLimit rejects a plain move that would recreate a
// position already reached limit times. Zero disables the check.
func WithPositionRepetitionLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.repetitionLimit = limit
		}
	}
}

// NewEngine returns an empty board with Red to move.
func NewEngine(options ...Option) *Engine {
	e := &Engine{ // Default values
		rules:       NewStandardRules(),
		logger:      zerolog.Nop(),
		stallSize:   STALL_WINDOW,
		nextPieceID: 1, // Never reset, so ids stay unique across games
	}
	for _, option := range options {
		option(e)
	}
	e.Reset()
	return e
}

// Subscribe adds an observer for all later notifications.
func (e *Engine) Subscribe(o Observer) {
	if o != nil {
		e.observers = append(e.observers, o)
	}
}

// Reset clears all game state for a new game. Observers, options and the
// piece id counter are kept.
func (e *Engine) Reset() {
	for _, roster := range e.rosters {
		for _, p := range roster {
			p.placed = false
		}
	}
	e.board = Board{}
	e.rosters = map[Team][]*Piece{Red: {}, Blue: {}}
	e.turn = Red
	e.history = nil
	e.stall = map[Team]*stallWindow{
		Red:  newStallWindow(e.stallSize),
		Blue: newStallWindow(e.stallSize),
	}
	e.winner = Red
	e.hasWinner = false
	e.positions = make(map[StateHash]int)
	e.logger.Debug().Msg("engine reset")
}

// RegisterPiece puts p on the board at c and adds it to its team's roster.
func (e *Engine) RegisterPiece(p *Piece, c Coordinate) error {
	if p == nil {
		return ErrNilPiece
	}
	if !c.Valid() {
		return fmt.Errorf("cannot register %v at %v: %w", p, c, ErrOutOfBounds)
	}
	if !p.Rank.Valid() {
		return fmt.Errorf("cannot register %v: %w", p, ErrInvalidRank)
	}
	if p.placed {
		return fmt.Errorf("cannot register %v: %w", p, ErrAlreadyRegistered)
	}
	if IsLake(c) {
		return fmt.Errorf("cannot register %v at %v: %w", p, c, ErrLakeBlocked)
	}
	if occupant := e.board.At(c); occupant != nil {
		return fmt.Errorf("cannot register %v at %v: %w by %v", p, c, ErrCellOccupied, occupant)
	}

	if p.ID == 0 {
		p.ID = e.nextPieceID
		e.nextPieceID++
	}
	e.board.set(c, p)
	e.rosters[p.Team] = append(e.rosters[p.Team], p)
	p.coord = c
	p.placed = true
	return nil
}

// UnregisterPiece removes p from the board and its roster. Pieces not in
// this engine's rosters, including already removed ones, are ignored.
func (e *Engine) UnregisterPiece(p *Piece) {
	if p == nil {
		return
	}
	roster := e.rosters[p.Team]
	i := slices.Index(roster, p)
	if i < 0 {
		return // not ours, possibly placed in another engine
	}
	e.rosters[p.Team] = slices.Delete(roster, i, i+1)
	if p.coord.Valid() && e.board.At(p.coord) == p {
		e.board.set(p.coord, nil)
	}
	p.placed = false
}

// PieceAt returns the piece at c, or nil for an empty cell.
func (e *Engine) PieceAt(c Coordinate) (*Piece, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("no cell at %v: %w", c, ErrOutOfBounds)
	}
	return e.board.At(c), nil
}

// Turn returns the team to move.
func (e *Engine) Turn() Team {
	return e.turn
}

// Winner returns the winning team once the game is over.
func (e *Engine) Winner() (Team, bool) {
	return e.winner, e.hasWinner
}

// History returns a copy of all completed actions, oldest first.
func (e *Engine) History() []MoveRecord {
	return slices.Clone(e.history)
}

// Roster returns a copy of the team's live pieces.
func (e *Engine) Roster(team Team) []*Piece {
	return slices.Clone(e.rosters[team])
}

// Hash identifies the position: every cell's content plus the team to move.
func (e *Engine) Hash() StateHash {
	return hashPosition(&e.board, e.turn)
}

func hashPosition(b *Board, turn Team) StateHash {
	hasher := fnv.New64a()

	// Hash team to move
	binary.Write(hasher, binary.LittleEndian, int64(turn))

	// Hash cells; empty cells get a marker outside the rank domain
	for col := range b {
		for row := range b[col] {
			p := b[col][row]
			if p == nil {
				binary.Write(hasher, binary.LittleEndian, int64(-100))
				continue
			}
			binary.Write(hasher, binary.LittleEndian, int64(p.Rank))
			binary.Write(hasher, binary.LittleEndian, int64(p.Team))
		}
	}

	return StateHash(hasher.Sum64())
}

// PieceState is a serializable representation of a Piece on the board.
type PieceState struct {
	ID       int    `json:"id"`
	Team     Team   `json:"team"`
	TeamName string `json:"teamName"`
	Rank     Rank   `json:"rank"`
	RankName string `json:"rankName"`
	Col      int    `json:"col"`
	Row      int    `json:"row"`
}

// BoardState is a serializable snapshot of the game.
type BoardState struct {
	Pieces     []PieceState `json:"pieces"`
	Turn       Team         `json:"turn"`
	TurnName   string       `json:"turnName"`
	Moves      int          `json:"moves"`
	GameOver   bool         `json:"gameOver"`
	Winner     Team         `json:"winner"`
	WinnerName string       `json:"winnerName"`
}

// Snapshot copies the current position, scanning the board row by row.
func (e *Engine) Snapshot() BoardState {
	state := BoardState{
		Turn:     e.turn,
		TurnName: e.turn.String(),
		Moves:    len(e.history),
		GameOver: e.hasWinner,
	}
	if e.hasWinner {
		state.Winner = e.winner
		state.WinnerName = e.winner.String()
	}
	for row := 0; row < BOARD_SIZE; row++ {
		for col := 0; col < BOARD_SIZE; col++ {
			p := e.board[col][row]
			if p == nil {
				continue
			}
			state.Pieces = append(state.Pieces, PieceState{
				ID:       p.ID,
				Team:     p.Team,
				TeamName: p.Team.String(),
				Rank:     p.Rank,
				RankName: p.Rank.String(),
				Col:      col,
				Row:      row,
			})
		}
	}
	return state
}

// String dumps the board for debugging: one line per row, row 0 first,
// rank per occupied cell, '.' for empty cells and '~' for lakes.
func (e *Engine) String() string {
	var sb strings.Builder
	for row := 0; row < BOARD_SIZE; row++ {
		for col := 0; col < BOARD_SIZE; col++ {
			c := Coordinate{Col: col, Row: row}
			cell := "."
			if p := e.board.At(c); p != nil {
				cell = fmt.Sprint(int(p.Rank))
			} else if IsLake(c) {
				cell = "~"
			}
			fmt.Fprintf(&sb, "%3s", cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
