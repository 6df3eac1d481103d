package game

// ActionType tells a plain move apart from an attack.
type ActionType int

const (
	MoveAction ActionType = iota
	AttackAction
)

func (a ActionType) String() string {
	if a == AttackAction {
		return "attack"
	}
	return "move"
}
