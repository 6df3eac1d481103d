package game

import "errors"

// Rejections from RegisterPiece, PieceAt, Validate and AttemptMove. A call
// that returns one of these has not changed the engine.
var (
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrNoPieceAtSource   = errors.New("no piece at source")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrImmobile          = errors.New("piece cannot move")
	ErrNullMove          = errors.New("source and destination are the same")
	ErrLakeBlocked       = errors.New("lake blocked")
	ErrFriendlyFire      = errors.New("destination holds a friendly piece")
	ErrIllegalMovement   = errors.New("illegal movement")
	ErrRepetitionBlocked = errors.New("repetition blocked")
	ErrGameOver          = errors.New("game is over")

	ErrNilPiece          = errors.New("nil piece")
	ErrInvalidRank       = errors.New("invalid rank")
	ErrCellOccupied      = errors.New("cell occupied")
	ErrAlreadyRegistered = errors.New("piece already registered")
)
