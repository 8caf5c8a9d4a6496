package turns

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrNoLegalMoves  = errors.New("no legal moves")
	ErrNegativeValue = errors.New("value must be non-negative")
	ErrTurnLimit     = errors.New("turn limit reached")
)

// ParseError reports raw move text that could not be converted to a move.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse move %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalidMove[M comparable](move M) error {
	return fmt.Errorf("%w: %v", ErrInvalidMove, move)
}
