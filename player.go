package turns

import (
	"fmt"
	"strings"
)

// Player identifies one side of a two-player game.
type Player int

const (
	Player1 Player = iota + 1
	Player2
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// Valid reports whether p is Player1 or Player2.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// ParsePlayer accepts "1", "2", "p1" or "p2".
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "p1":
		return Player1, nil
	case "2", "p2":
		return Player2, nil
	}
	return 0, fmt.Errorf("unknown player %q", s)
}
