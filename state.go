package turns

import "fmt"

// State is an immutable snapshot of one position. Apply never mutates the
// receiver, it returns the successor.
type State[M comparable] interface {
	fmt.Stringer

	CurrentPlayer() Player
	Equal(other any) bool

	// LegalMoves is empty for a terminal position.
	LegalMoves() []M
	IsValid(move M) bool
	Apply(move M) (State[M], error)

	Terminal() bool
	HasWon(p Player) bool
}
