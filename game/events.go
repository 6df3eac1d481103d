package game

// Observer receives the engine's notifications. They fire only after the
// state change they describe has been committed, in the order
// MoveMade/AttackResolved, then GameOver.
type Observer interface {
	MoveMade(src, dest Coordinate, p *Piece)
	AttackResolved(attacker, defender *Piece, result CombatResult)
	GameOver(winner Team)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are ignored.
type ObserverFuncs struct {
	OnMoveMade       func(src, dest Coordinate, p *Piece)
	OnAttackResolved func(attacker, defender *Piece, result CombatResult)
	OnGameOver       func(winner Team)
}

func (f ObserverFuncs) MoveMade(src, dest Coordinate, p *Piece) {
	if f.OnMoveMade != nil {
		f.OnMoveMade(src, dest, p)
	}
}

func (f ObserverFuncs) AttackResolved(attacker, defender *Piece, result CombatResult) {
	if f.OnAttackResolved != nil {
		f.OnAttackResolved(attacker, defender, result)
	}
}

func (f ObserverFuncs) GameOver(winner Team) {
	if f.OnGameOver != nil {
		f.OnGameOver(winner)
	}
}
