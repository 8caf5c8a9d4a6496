package sticks

import (
	"errors"
)

// Fingers is the count at which a hand rolls over to zero.
const Fingers = 5

type Hand struct {
	fingers int // 0–4 (5+ wraps around)
}

func (h Hand) Fingers() int {
	return h.fingers
}

// Attack taps opp with this hand and returns the tapped hand.
func (h Hand) Attack(opp Hand) (Hand, error) {
	if !h.Alive() {
		return Hand{}, errors.New("attacking hand is dead")
	}
	if !opp.Alive() {
		return Hand{}, errors.New("opponent hand is dead")
	}
	return Hand{fingers: (h.fingers + opp.fingers) % Fingers}, nil
}

func (h Hand) Alive() bool {
	return h.fingers != 0
}

// NewHand returns a hand holding one finger.
func NewHand() Hand {
	return Hand{
		fingers: 1,
	}
}

// HandWith returns a hand holding fingers modulo 5.
func HandWith(fingers int) (Hand, error) {
	if fingers < 0 {
		return Hand{}, errors.New("a hand cannot hold negative fingers")
	}
	return Hand{
		fingers: fingers % Fingers,
	}, nil
}
