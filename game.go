package turns

// Game owns the current position and the rules around it. The driver swaps
// in each successor state with SetCurrent; a Game never advances itself.
type Game[M comparable] interface {
	Instructions() string
	IsOver(s State[M]) bool
	IsWinner(p Player) bool
	ParseMove(raw string) (M, error)
	CurrentStrategy(s Strategy[M]) (M, error)

	Current() State[M]
	SetCurrent(s State[M])
	FirstPlayer() Player
}

// base carries the bookkeeping shared by every game.
type base[M comparable] struct {
	first   Player
	current State[M]
}

func (t *base[M]) Current() State[M] {
	return t.current
}

func (t *base[M]) SetCurrent(s State[M]) {
	if s == nil {
		return
	}
	t.current = s
}

func (t *base[M]) FirstPlayer() Player {
	return t.first
}

// IsOver checks s, which need not be the current state.
func (t *base[M]) IsOver(s State[M]) bool {
	return s.Terminal()
}

func (t *base[M]) IsWinner(p Player) bool {
	return t.current.HasWon(p)
}
