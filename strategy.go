package turns

import (
	"fmt"
	"math/rand"
)

// MovePrompt is shown before an interactive move is read.
const MovePrompt = "Enter a move: "

// Strategy supplies the next move for whoever is to play in g.
type Strategy[M comparable] interface {
	Move(g Game[M]) (M, error)
}

// LineReader reads one line of input after showing prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// InteractiveStrategy asks a human for each move.
type InteractiveStrategy[M comparable] struct {
	in LineReader
}

func NewInteractiveStrategy[M comparable](in LineReader) *InteractiveStrategy[M] {
	return &InteractiveStrategy[M]{in: in}
}

func (s *InteractiveStrategy[M]) Move(g Game[M]) (M, error) {
	var zero M
	line, err := s.in.ReadLine(MovePrompt)
	if err != nil {
		return zero, err
	}
	return g.ParseMove(line)
}

// RandomStrategy picks uniformly among the legal moves of the current state.
type RandomStrategy[M comparable] struct {
	rng *rand.Rand
}

func NewRandomStrategy[M comparable](rng *rand.Rand) *RandomStrategy[M] {
	return &RandomStrategy[M]{rng: rng}
}

func (s *RandomStrategy[M]) Move(g Game[M]) (M, error) {
	var zero M
	moves := g.Current().LegalMoves()
	if len(moves) == 0 {
		return zero, fmt.Errorf("%w: %s", ErrNoLegalMoves, g.Current())
	}
	return moves[s.rng.Intn(len(moves))], nil
}
