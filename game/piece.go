package game

import "fmt"

// Hooks lets a presentation layer react to what happens to a piece. Nil
// hooks are skipped.
type Hooks interface {
	// Reveal is called on attacker then defender once an attack has passed
	// validation, before combat is resolved. Both pieces are still on the board.
	Reveal(p *Piece)
	// Moved is called right after a piece relocated from one cell to another,
	// before any observer is notified.
	Moved(p *Piece, from, to Coordinate)
}

// Piece is a single playing piece. Its coordinate is only meaningful while
// the piece is registered with an Engine.
type Piece struct {
	ID    int // Assigned by the engine on first registration
	Rank  Rank
	Team  Team
	Hooks Hooks

	coord  Coordinate
	placed bool
}

func NewPiece(team Team, rank Rank) *Piece {
	return &Piece{Team: team, Rank: rank}
}

// Movable is false for bombs and flags.
func (p *Piece) Movable() bool {
	return p.Rank != Bomb && p.Rank != Flag
}

func (p *Piece) Special() Special {
	return p.Rank.Special()
}

// Coordinate returns the piece's cell and whether it is currently on the board.
func (p *Piece) Coordinate() (Coordinate, bool) {
	return p.coord, p.placed
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s#%d", p.Team, p.Rank, p.ID)
}

func (p *Piece) reveal() {
	if p.Hooks != nil {
		p.Hooks.Reveal(p)
	}
}

func (p *Piece) moved(from, to Coordinate) {
	if p.Hooks != nil {
		p.Hooks.Moved(p, from, to)
	}
}
