package turns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtractSquareState_LegalMoves(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  []int
	}{
		{name: "twenty", value: 20, want: []int{1, 4, 9, 16}},
		{name: "one", value: 1, want: []int{1}},
		{name: "zero", value: 0, want: []int{}},
		{name: "exact square", value: 25, want: []int{1, 4, 9, 16, 25}},
		{name: "just below a square", value: 8, want: []int{1, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSubtractSquareState(Player1, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.LegalMoves())
		})
	}
}

func TestSubtractSquareState_ApplyDecreasesAndFlips(t *testing.T) {
	for start := 1; start <= 40; start++ {
		s, err := NewSubtractSquareState(Player2, start)
		require.NoError(t, err)
		for _, move := range s.LegalMoves() {
			next, err := s.Apply(move)
			require.NoError(t, err)
			got := next.(SubtractSquareState)
			assert.Less(t, got.Value(), s.Value())
			assert.GreaterOrEqual(t, got.Value(), 0)
			assert.Equal(t, Player1, got.CurrentPlayer())
		}
	}
}

func TestSubtractSquareState_ApplyDoesNotMutate(t *testing.T) {
	s, err := NewSubtractSquareState(Player1, 10)
	require.NoError(t, err)
	_, err = s.Apply(9)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Value())
	assert.Equal(t, Player1, s.CurrentPlayer())
}

func TestSubtractSquareState_ApplyInvalid(t *testing.T) {
	s, err := NewSubtractSquareState(Player1, 10)
	require.NoError(t, err)
	for _, move := range []int{0, 2, 16, -1} {
		next, err := s.Apply(move)
		assert.ErrorIs(t, err, ErrInvalidMove, "move %d", move)
		assert.Nil(t, next)
		assert.False(t, s.IsValid(move))
	}
	assert.True(t, s.IsValid(9))
}

func TestSubtractSquareState_Negative(t *testing.T) {
	_, err := NewSubtractSquareState(Player1, -3)
	assert.ErrorIs(t, err, ErrNegativeValue)
}

func TestSubtractSquareState_UnknownPlayer(t *testing.T) {
	_, err := NewSubtractSquareState(Player(0), 3)
	assert.Error(t, err)
	_, err = NewSubtractSquareGame(Player(7), 3)
	assert.Error(t, err)
}

func TestSubtractSquareState_String(t *testing.T) {
	s, err := NewSubtractSquareState(Player2, 20)
	require.NoError(t, err)
	assert.Equal(t, "Current Player: Player 2 - Current Value: 20", s.String())
}

func TestSubtractSquareState_Equal(t *testing.T) {
	a, _ := NewSubtractSquareState(Player1, 20)
	b, _ := NewSubtractSquareState(Player1, 20)
	c, _ := NewSubtractSquareState(Player2, 20)
	d, _ := NewSubtractSquareState(Player1, 19)
	chop, _ := NewChopsticksState(Player1, [4]int{1, 1, 1, 1})

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, a.Equal(&b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(chop))
	assert.False(t, a.Equal(nil))

	// asking for moves leaves equality alone
	_ = a.LegalMoves()
	assert.True(t, a.Equal(b))
}

func TestSubtractSquareState_Terminal(t *testing.T) {
	s, _ := NewSubtractSquareState(Player1, 0)
	assert.True(t, s.Terminal())
	assert.True(t, s.HasWon(Player2))
	assert.False(t, s.HasWon(Player1))

	s, _ = NewSubtractSquareState(Player1, 3)
	assert.False(t, s.Terminal())
	assert.False(t, s.HasWon(Player1))
	assert.False(t, s.HasWon(Player2))
}

func TestSubtractSquareGame_ParseMove(t *testing.T) {
	g, err := NewSubtractSquareGame(Player1, 20)
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "number", raw: "16", want: 16},
		{name: "surrounding space", raw: " 4\n", want: 4},
		{name: "letters", raw: "four", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "chopsticks token", raw: "ll", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.ParseMove(tt.raw)
			if tt.wantErr {
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.raw, perr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSubtractSquareGame(t *testing.T) {
	g, err := NewSubtractSquareGame(Player2, 7)
	require.NoError(t, err)
	assert.Equal(t, Player2, g.FirstPlayer())
	assert.Equal(t, Player2, g.Current().CurrentPlayer())
	assert.Equal(t, "Current Player: Player 2 - Current Value: 7", g.Current().String())
	assert.Equal(t, "Players take turns subtracting square numbers from the starting number. "+
		"The winner is the person who subtract to 0.", g.Instructions())

	_, err = NewSubtractSquareGame(Player1, -1)
	assert.ErrorIs(t, err, ErrNegativeValue)
}
