package game

import "errors"

// Engine errors are local rejections: the call returns the sentinel and the
// game state is left exactly as it was.
var (
	// ErrInsufficientChips is returned when a bet exceeds the available chips.
	ErrInsufficientChips = errors.New("game: bet exceeds available chips")

	// ErrInvalidTransition is returned when an action is called in a phase
	// that does not accept it.
	ErrInvalidTransition = errors.New("game: action not valid in current phase")

	// ErrInvalidBet is returned for a zero or negative bet amount.
	ErrInvalidBet = errors.New("game: bet must be a positive amount")
)
