package engine

import (
	"stratego/game"

	"golang.org/x/exp/rand"
)

// State is what a player sees of the game. Both *game.Engine and
// *gamemaster.Session satisfy it.
type State interface {
	LegalMoves() []game.Move
}

// Player chooses moves for one team.
type Player interface {
	// NextMove returns a move for the team to move, or false if it has none
	NextMove(state State) (game.Move, bool)
}

// RandomPlayer picks uniformly among the legal moves. It drives test and
// demo games; it does not try to win.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) NextMove(state State) (game.Move, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[p.rng.Intn(len(moves))], true
}

// ScriptedPlayer replays a fixed list of moves.
type ScriptedPlayer struct {
	moves []game.Move
	next  int
}

func NewScriptedPlayer(moves ...game.Move) *ScriptedPlayer {
	return &ScriptedPlayer{moves: moves}
}

func (p *ScriptedPlayer) NextMove(state State) (game.Move, bool) {
	if p.next >= len(p.moves) {
		return game.Move{}, false
	}
	m := p.moves[p.next]
	p.next++
	return m, true
}
