package turns

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const subtractSquareInstructions = "Players take turns subtracting square numbers from " +
	"the starting number. The winner is the person who subtract to 0."

// SubtractSquareState is a position in the subtract-a-square game.
type SubtractSquareState struct {
	player Player
	value  int
}

var _ State[int] = SubtractSquareState{}

func NewSubtractSquareState(p Player, value int) (SubtractSquareState, error) {
	if !p.Valid() {
		return SubtractSquareState{}, fmt.Errorf("unknown player %d", int(p))
	}
	if value < 0 {
		return SubtractSquareState{}, fmt.Errorf("%w: %d", ErrNegativeValue, value)
	}
	return SubtractSquareState{player: p, value: value}, nil
}

func (s SubtractSquareState) CurrentPlayer() Player {
	return s.player
}

func (s SubtractSquareState) Value() int {
	return s.value
}

func (s SubtractSquareState) String() string {
	return fmt.Sprintf("Current Player: %s - Current Value: %d", s.player, s.value)
}

func (s SubtractSquareState) Equal(other any) bool {
	switch o := other.(type) {
	case SubtractSquareState:
		return s == o
	case *SubtractSquareState:
		return o != nil && s == *o
	}
	return false
}

// LegalMoves lists every square not above the current value, smallest first.
func (s SubtractSquareState) LegalMoves() []int {
	moves := []int{}
	for i := 1; i*i <= s.value; i++ {
		moves = append(moves, i*i)
	}
	return moves
}

func (s SubtractSquareState) IsValid(move int) bool {
	return slices.Contains(s.LegalMoves(), move)
}

func (s SubtractSquareState) Apply(move int) (State[int], error) {
	if !s.IsValid(move) {
		return nil, invalidMove(move)
	}
	return SubtractSquareState{
		player: s.player.Other(),
		value:  s.value - move,
	}, nil
}

func (s SubtractSquareState) Terminal() bool {
	return s.value == 0
}

// HasWon reports whether p made the move that reached zero.
func (s SubtractSquareState) HasWon(p Player) bool {
	return s.value == 0 && s.player != p
}

type SubtractSquareGame struct {
	base[int]
}

var _ Game[int] = (*SubtractSquareGame)(nil)

// NewSubtractSquareGame starts a game at start with first to move.
func NewSubtractSquareGame(first Player, start int) (*SubtractSquareGame, error) {
	state, err := NewSubtractSquareState(first, start)
	if err != nil {
		return nil, err
	}
	return &SubtractSquareGame{
		base: base[int]{first: first, current: state},
	}, nil
}

func (g *SubtractSquareGame) Instructions() string {
	return subtractSquareInstructions
}

func (g *SubtractSquareGame) ParseMove(raw string) (int, error) {
	move, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{Input: raw, Err: err}
	}
	return move, nil
}

func (g *SubtractSquareGame) CurrentStrategy(s Strategy[int]) (int, error) {
	return s.Move(g)
}
