package game

// StandardRules are the classic Stratego rules: scouts run, miners defuse
// bombs, and the spy takes the marshal when it strikes first.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) IsLongRangeMover(p *Piece) bool {
	return p.Special() == SpecialScout
}

func (sr *StandardRules) ResolveCombat(attacker, defender *Piece) CombatResult {
	switch {
	case defender.Rank == Bomb:
		// Bomb stays in place unless a miner defuses it
		if attacker.Special() == SpecialMiner {
			return attackerWins(attacker, defender)
		}
		return defenderWins(attacker, defender)
	case attacker.Special() == SpecialSpy && defender.Rank == Marshal:
		return attackerWins(attacker, defender)
	case attacker.Rank > defender.Rank:
		return attackerWins(attacker, defender)
	case attacker.Rank < defender.Rank:
		return defenderWins(attacker, defender)
	default:
		return CombatResult{Outcome: BothRemoved}
	}
}
