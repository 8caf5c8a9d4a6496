package turns

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tkahng/turns/sticks"
)

const chopsticksInstructions = "Players take turns adding the values of one of their hands " +
	"to one of their opponents(modulo 5). A hand with a total of " +
	"5 (or 0; 5 modulo 5) is considered 'dead'. The first " +
	"player to have two dead hands is the loser."

// Chopsticks move tokens. The first letter names the acting hand, the
// second the tapped hand.
const (
	MoveLL = "ll"
	MoveLR = "lr"
	MoveRL = "rl"
	MoveRR = "rr"
)

var chopsticksMoves = []string{MoveLL, MoveLR, MoveRL, MoveRR}

// Absolute hand positions in a ChopsticksState.
const (
	P1Left = iota
	P1Right
	P2Left
	P2Right
)

// pruneTable lists, per mover and per dead hand, the tokens that hand rules out.
var pruneTable = map[Player][4][2]string{
	Player1: {
		P1Left:  {MoveLL, MoveLR},
		P1Right: {MoveRL, MoveRR},
		P2Left:  {MoveRL, MoveLL},
		P2Right: {MoveLR, MoveRR},
	},
	Player2: {
		P1Left:  {MoveLL, MoveRL},
		P1Right: {MoveLR, MoveRR},
		P2Left:  {MoveLR, MoveLL},
		P2Right: {MoveRL, MoveRR},
	},
}

// tap names the acting hand and the tapped hand of a token. Both players
// read tokens the same way.
type tap struct {
	withLeft   bool
	attackLeft bool
}

var tapTable = map[string]tap{
	MoveLL: {withLeft: true, attackLeft: true},
	MoveLR: {withLeft: true, attackLeft: false},
	MoveRL: {withLeft: false, attackLeft: true},
	MoveRR: {withLeft: false, attackLeft: false},
}

// ChopsticksState is a position in the finger game.
type ChopsticksState struct {
	player Player
	p1     sticks.Pair
	p2     sticks.Pair
}

var _ State[string] = ChopsticksState{}

// NewChopsticksState builds a position from (p1 left, p1 right, p2 left,
// p2 right). Counts are taken modulo 5.
func NewChopsticksState(p Player, fingers [4]int) (ChopsticksState, error) {
	if !p.Valid() {
		return ChopsticksState{}, fmt.Errorf("unknown player %d", int(p))
	}
	p1, err1 := sticks.PairWith(fingers[P1Left], fingers[P1Right])
	p2, err2 := sticks.PairWith(fingers[P2Left], fingers[P2Right])
	if err := errors.Join(err1, err2); err != nil {
		return ChopsticksState{}, fmt.Errorf("%w: %w", ErrNegativeValue, err)
	}
	return ChopsticksState{player: p, p1: p1, p2: p2}, nil
}

func (s ChopsticksState) CurrentPlayer() Player {
	return s.player
}

func (s ChopsticksState) hands() [4]sticks.Hand {
	return [4]sticks.Hand{s.p1.Left, s.p1.Right, s.p2.Left, s.p2.Right}
}

// Fingers returns (p1 left, p1 right, p2 left, p2 right).
func (s ChopsticksState) Fingers() [4]int {
	var out [4]int
	for i, h := range s.hands() {
		out[i] = h.Fingers()
	}
	return out
}

// Side returns the hands belonging to p.
func (s ChopsticksState) Side(p Player) sticks.Pair {
	if p == Player1 {
		return s.p1
	}
	return s.p2
}

func (s ChopsticksState) withSide(p Player, hands sticks.Pair) ChopsticksState {
	if p == Player1 {
		s.p1 = hands
	} else {
		s.p2 = hands
	}
	return s
}

func (s ChopsticksState) String() string {
	f := s.Fingers()
	return fmt.Sprintf("Current Player: %s, Player 1: %d - %d, Player 2: %d - %d",
		s.player, f[P1Left], f[P1Right], f[P2Left], f[P2Right])
}

func (s ChopsticksState) Equal(other any) bool {
	switch o := other.(type) {
	case ChopsticksState:
		return s == o
	case *ChopsticksState:
		return o != nil && s == *o
	}
	return false
}

// LegalMoves starts from every token and drops those touching a dead hand,
// keeping the ll, lr, rl, rr order.
func (s ChopsticksState) LegalMoves() []string {
	table, ok := pruneTable[s.player]
	if !ok {
		return []string{}
	}
	moves := slices.Clone(chopsticksMoves)
	for i, h := range s.hands() {
		if h.Alive() {
			continue
		}
		moves = slices.DeleteFunc(moves, func(m string) bool {
			return slices.Contains(table[i][:], m)
		})
	}
	return moves
}

func (s ChopsticksState) IsValid(move string) bool {
	return slices.Contains(s.LegalMoves(), move)
}

func (s ChopsticksState) Apply(move string) (State[string], error) {
	if !s.IsValid(move) {
		return nil, invalidMove(move)
	}
	t := tapTable[move]
	attacker := s.Side(s.player).GetHand(t.withLeft)
	defender := s.Side(s.player.Other()).GetHand(t.attackLeft)
	tapped, err := attacker.Attack(defender)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	next := s.withSide(s.player.Other(), s.Side(s.player.Other()).WithHand(t.attackLeft, tapped))
	next.player = s.player.Other()
	return next, nil
}

// Terminal reports whether either player has lost both hands.
func (s ChopsticksState) Terminal() bool {
	return !s.Side(Player1).Alive() || !s.Side(Player2).Alive()
}

func (s ChopsticksState) HasWon(p Player) bool {
	return !s.Side(p.Other()).Alive()
}

type ChopsticksGame struct {
	base[string]
}

var _ Game[string] = (*ChopsticksGame)(nil)

// NewChopsticksGame starts a game with every hand holding one finger.
func NewChopsticksGame(first Player) *ChopsticksGame {
	state := ChopsticksState{
		player: first,
		p1:     sticks.NewPair(),
		p2:     sticks.NewPair(),
	}
	return &ChopsticksGame{
		base: base[string]{first: first, current: state},
	}
}

func (g *ChopsticksGame) Instructions() string {
	return chopsticksInstructions
}

// ParseMove passes the token through; legality is checked by the state.
func (g *ChopsticksGame) ParseMove(raw string) (string, error) {
	return raw, nil
}

func (g *ChopsticksGame) CurrentStrategy(s Strategy[string]) (string, error) {
	return s.Move(g)
}
