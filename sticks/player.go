package sticks

import "errors"

// Pair holds one player's hands.
type Pair struct {
	Left  Hand
	Right Hand
}

func (p Pair) Alive() bool {
	return p.Left.Alive() ||
		p.Right.Alive()
}

func (p Pair) GetHand(isLeft bool) Hand {
	if isLeft {
		return p.Left
	}
	return p.Right
}

// WithHand returns a copy of p with the chosen hand replaced.
func (p Pair) WithHand(isLeft bool, h Hand) Pair {
	if isLeft {
		p.Left = h
	} else {
		p.Right = h
	}
	return p
}

// NewPair returns a fresh pair with one finger on each hand.
func NewPair() Pair {
	return Pair{
		Left:  NewHand(),
		Right: NewHand(),
	}
}

func PairWith(left, right int) (Pair, error) {
	l, lerr := HandWith(left)
	r, rerr := HandWith(right)
	if err := errors.Join(lerr, rerr); err != nil {
		return Pair{}, err
	}
	return Pair{
		Left:  l,
		Right: r,
	}, nil
}
