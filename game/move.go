package game

import "fmt"

// Move is a request to move the piece at Src to Dest.
type Move struct {
	Src  Coordinate
	Dest Coordinate
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.Src, m.Dest)
}

// MoveRecord describes one completed action. Defender and Result are only
// set for attacks.
type MoveRecord struct {
	Seq      int // 1-based position in the game history
	Kind     ActionType
	Team     Team
	Piece    *Piece
	Src      Coordinate
	Dest     Coordinate
	Defender *Piece
	Result   CombatResult
}

func (r MoveRecord) Move() Move {
	return Move{Src: r.Src, Dest: r.Dest}
}

// stallWindow is a fixed-size ring of the most recent moves made by one team.
type stallWindow struct {
	moves []Move
	head  int // index of the oldest entry
	count int
}

func newStallWindow(size int) *stallWindow {
	return &stallWindow{moves: make([]Move, size)}
}

func (w *stallWindow) push(m Move) {
	if w.count < len(w.moves) {
		w.moves[(w.head+w.count)%len(w.moves)] = m
		w.count++
		return
	}
	w.moves[w.head] = m
	w.head = (w.head + 1) % len(w.moves)
}

// recent returns the n-th most recent move, n starting at 1.
func (w *stallWindow) recent(n int) (Move, bool) {
	if n < 1 || n > w.count {
		return Move{}, false
	}
	return w.moves[(w.head+w.count-n)%len(w.moves)], true
}

func (w *stallWindow) len() int {
	return w.count
}

// isShuttle reports whether src->dest would be the third leg of an
// A->B, B->A, A->B shuttle.
func (w *stallWindow) isShuttle(src, dest Coordinate) bool {
	last, ok := w.recent(1)
	if !ok {
		return false
	}
	before, ok := w.recent(2)
	if !ok {
		return false
	}
	return last.Src == dest && last.Dest == src && before.Src == src && before.Dest == dest
}
