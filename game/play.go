package game

import "fmt"

// Validate runs every check AttemptMove would run, without changing anything.
func (e *Engine) Validate(src, dest Coordinate) error {
	_, err := e.validate(src, dest)
	return err
}

func (e *Engine) validate(src, dest Coordinate) (*Piece, error) {
	reject := func(err error) (*Piece, error) {
		return nil, fmt.Errorf("cannot move %v to %v: %w", src, dest, err)
	}

	if e.hasWinner {
		return reject(ErrGameOver)
	}
	if !src.Valid() || !dest.Valid() {
		return reject(ErrOutOfBounds)
	}
	p := e.board.At(src)
	if p == nil {
		return reject(ErrNoPieceAtSource)
	}
	if p.Team != e.turn {
		return reject(ErrNotYourTurn)
	}
	if !p.Movable() {
		return reject(ErrImmobile)
	}
	if src == dest {
		return reject(ErrNullMove)
	}
	if IsLake(dest) {
		return reject(ErrLakeBlocked)
	}
	target := e.board.At(dest)
	if target != nil && target.Team == p.Team {
		return reject(ErrFriendlyFire)
	}
	if err := e.checkPath(p, src, dest); err != nil {
		return reject(err)
	}
	if e.stall[p.Team].isShuttle(src, dest) {
		return reject(ErrRepetitionBlocked)
	}
	if target == nil && e.repetitionLimit > 0 {
		if seen := e.positions[e.hashAfterMove(src, dest)]; seen >= e.repetitionLimit {
			return reject(fmt.Errorf("%w: position already reached %d times", ErrRepetitionBlocked, seen))
		}
	}
	return p, nil
}

// checkPath enforces orthogonal movement: one step for ordinary pieces, a
// clear straight line for long-range movers.
func (e *Engine) checkPath(p *Piece, src, dest Coordinate) error {
	dc, dr := dest.Col-src.Col, dest.Row-src.Row
	if dc != 0 && dr != 0 {
		return fmt.Errorf("%w: diagonal", ErrIllegalMovement)
	}
	if !e.rules.IsLongRangeMover(p) {
		if abs(dc)+abs(dr) != 1 {
			return fmt.Errorf("%w: %v moves one cell", ErrIllegalMovement, p.Rank)
		}
		return nil
	}

	step := Coordinate{Col: sign(dc), Row: sign(dr)}
	for c := src.Add(step); c != dest; c = c.Add(step) {
		if IsLake(c) {
			return fmt.Errorf("%w: path crosses %w at %v", ErrIllegalMovement, ErrLakeBlocked, c)
		}
		if occupant := e.board.At(c); occupant != nil {
			return fmt.Errorf("%w: path blocked by %v at %v", ErrIllegalMovement, occupant, c)
		}
	}
	return nil
}

func (e *Engine) hashAfterMove(src, dest Coordinate) StateHash {
	next := e.board
	next.set(dest, next.At(src))
	next.set(src, nil)
	return hashPosition(&next, e.turn.Opponent())
}

// AttemptMove validates and applies src->dest for the team to move. On
// rejection the engine is unchanged and nothing is notified. An enemy piece
// at dest is attacked.
func (e *Engine) AttemptMove(src, dest Coordinate) (MoveRecord, error) {
	p, err := e.validate(src, dest)
	if err != nil {
		e.logger.Debug().Err(err).Stringer("team", e.turn).Msg("move rejected")
		return MoveRecord{}, err
	}

	record := MoveRecord{
		Seq:   len(e.history) + 1,
		Kind:  MoveAction,
		Team:  p.Team,
		Piece: p,
		Src:   src,
		Dest:  dest,
	}

	defender := e.board.At(dest)
	if defender == nil {
		e.relocate(p, src, dest)
	} else {
		record.Kind = AttackAction
		record.Defender = defender
		record.Result = e.attack(p, defender, src, dest)
	}
	e.history = append(e.history, record)
	e.stall[record.Team].push(record.Move())

	if defender == nil {
		for _, o := range e.observers {
			o.MoveMade(src, dest, p)
		}
	} else {
		for _, o := range e.observers {
			o.AttackResolved(p, defender, record.Result)
		}
		// A flag can never win a fight under any sane Rules, but if one
		// does the attacker's side takes the game.
		if record.Result.Winner != nil && record.Result.Winner.Rank == Flag {
			e.declareWinner(p.Team)
		}
	}

	e.finishTurn()
	return record, nil
}

func (e *Engine) relocate(p *Piece, from, to Coordinate) {
	e.board.set(from, nil)
	e.board.set(to, p)
	p.coord = to
	p.moved(from, to)
}

// attack resolves combat and applies it: losers leave the board, a winning
// attacker takes the destination, a winning defender stays put.
func (e *Engine) attack(attacker, defender *Piece, src, dest Coordinate) CombatResult {
	attacker.reveal()
	defender.reveal()

	result := e.rules.ResolveCombat(attacker, defender)
	result.Src, result.Dest = src, dest
	switch result.Outcome {
	case AttackerWins:
		e.UnregisterPiece(defender)
		e.relocate(attacker, src, dest)
	case DefenderWins:
		e.UnregisterPiece(attacker)
	case BothRemoved:
		e.UnregisterPiece(attacker)
		e.UnregisterPiece(defender)
	}

	e.logger.Info().
		Stringer("attacker", attacker).
		Stringer("defender", defender).
		Stringer("at", dest).
		Stringer("outcome", result.Outcome).
		Msg("attack resolved")
	return result
}

// finishTurn hands the turn over and checks for a winner.
func (e *Engine) finishTurn() {
	e.turn = e.turn.Opponent()
	if e.repetitionLimit > 0 {
		e.positions[e.Hash()]++
	}

	if e.hasWinner {
		return
	}
	if winner, ok := e.evaluateWinner(); ok {
		e.declareWinner(winner)
	}
}

// evaluateWinner checks Red then Blue; a team without a flag or without a
// movable piece has lost.
func (e *Engine) evaluateWinner() (Team, bool) {
	for _, team := range []Team{Red, Blue} {
		hasFlag, hasMovable := false, false
		for _, p := range e.rosters[team] {
			if p.Rank == Flag {
				hasFlag = true
			}
			if p.Movable() {
				hasMovable = true
			}
		}
		if !hasFlag || !hasMovable {
			return team.Opponent(), true
		}
	}
	return Red, false
}

func (e *Engine) declareWinner(winner Team) {
	e.winner = winner
	e.hasWinner = true
	e.logger.Info().Stringer("winner", winner).Int("moves", len(e.history)).Msg("game over")
	for _, o := range e.observers {
		o.GameOver(winner)
	}
}

// LegalMoves lists every move the team to move could make right now.
func (e *Engine) LegalMoves() []Move {
	var moves []Move
	if e.hasWinner {
		return moves
	}
	for _, p := range e.rosters[e.turn] {
		if !p.Movable() {
			continue
		}
		longRange := e.rules.IsLongRangeMover(p)
		for _, dir := range directions {
			for c := p.coord.Add(dir); c.Valid() && !IsLake(c); c = c.Add(dir) {
				if e.Validate(p.coord, c) == nil {
					moves = append(moves, Move{Src: p.coord, Dest: c})
				}
				if !longRange || e.board.At(c) != nil {
					break
				}
			}
		}
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
