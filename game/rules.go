package game

// Rules decides the piece-specific parts of play: who may move far and who
// wins a fight.
type Rules interface {
	IsLongRangeMover(p *Piece) bool
	ResolveCombat(attacker, defender *Piece) CombatResult
}

type CombatOutcome int

const (
	AttackerWins CombatOutcome = iota
	DefenderWins
	BothRemoved
)

func (o CombatOutcome) String() string {
	switch o {
	case AttackerWins:
		return "attacker_wins"
	case DefenderWins:
		return "defender_wins"
	case BothRemoved:
		return "both_removed"
	default:
		return "unknown"
	}
}

// CombatResult names the surviving and captured piece. Both are nil when the
// outcome is BothRemoved. Src and Dest are the attacker's cell and the
// attacked cell; the engine fills them in, Rules leave them zero.
type CombatResult struct {
	Outcome CombatOutcome
	Winner  *Piece
	Loser   *Piece
	Src     Coordinate
	Dest    Coordinate
}

func attackerWins(attacker, defender *Piece) CombatResult {
	return CombatResult{Outcome: AttackerWins, Winner: attacker, Loser: defender}
}

func defenderWins(attacker, defender *Piece) CombatResult {
	return CombatResult{Outcome: DefenderWins, Winner: defender, Loser: attacker}
}
