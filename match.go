package turns

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Reporter receives what happens during a match.
type Reporter interface {
	Instructions(text string)
	Position(s fmt.Stringer)
	Rejected(p Player, err error)
	Winner(p Player)
}

// Match drives one game from its current state to a terminal one.
type Match[M comparable] struct {
	ID         string
	Game       Game[M]
	Strategies map[Player]Strategy[M]
	Reporter   Reporter
	// MaxTurns stops the match after that many applied moves; 0 means no limit.
	MaxTurns  int
	StartTime time.Time

	moves  []M
	logger *slog.Logger
}

// NewMatch pairs a game with one strategy per player.
func NewMatch[M comparable](g Game[M], p1, p2 Strategy[M], r Reporter, logger *slog.Logger) *Match[M] {
	if logger == nil {
		logger = slog.Default()
	}
	id := fmt.Sprintf("match_%d", time.Now().UnixNano())
	return &Match[M]{
		ID:   id,
		Game: g,
		Strategies: map[Player]Strategy[M]{
			Player1: p1,
			Player2: p2,
		},
		Reporter: r,
		logger:   logger.With(slog.String("match", id)),
	}
}

// Moves returns the moves applied so far.
func (m *Match[M]) Moves() []M {
	return append([]M(nil), m.moves...)
}

// Play runs turns until the game is over and returns the winner. Unparseable
// or illegal moves are reported and the same player is asked again; any other
// strategy error ends the match.
func (m *Match[M]) Play(ctx context.Context) (Player, error) {
	m.StartTime = time.Now()
	m.logger.Info("match started", slog.String("first", m.Game.FirstPlayer().String()))
	defer func() {
		m.logger.Info("match ended",
			slog.Int("turns", len(m.moves)),
			slog.Duration("elapsed", time.Since(m.StartTime)))
	}()

	m.report(func(r Reporter) { r.Instructions(m.Game.Instructions()) })
	m.report(func(r Reporter) { r.Position(m.Game.Current()) })

	for !m.Game.IsOver(m.Game.Current()) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		if m.MaxTurns > 0 && len(m.moves) >= m.MaxTurns {
			return 0, fmt.Errorf("%w after %d moves", ErrTurnLimit, len(m.moves))
		}
		if err := m.turn(ctx); err != nil {
			return 0, err
		}
	}

	for _, p := range []Player{Player1, Player2} {
		if m.Game.IsWinner(p) {
			m.logger.Info("match won", slog.String("winner", p.String()))
			m.report(func(r Reporter) { r.Winner(p) })
			return p, nil
		}
	}
	return 0, errors.New("game is over without a winner")
}

func (m *Match[M]) turn(ctx context.Context) error {
	current := m.Game.Current()
	player := current.CurrentPlayer()
	strategy, ok := m.Strategies[player]
	if !ok || strategy == nil {
		return fmt.Errorf("no strategy for %s", player)
	}

	move, err := m.Game.CurrentStrategy(strategy)
	// a move that arrives after cancellation is dropped
	if cerr := ctx.Err(); cerr != nil {
		return cerr
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		m.reject(player, err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", player, err)
	}

	next, err := current.Apply(move)
	if errors.Is(err, ErrInvalidMove) {
		m.reject(player, err)
		return nil
	}
	if err != nil {
		return err
	}

	m.Game.SetCurrent(next)
	m.moves = append(m.moves, move)
	m.logger.Debug("move applied",
		slog.String("player", player.String()),
		slog.Any("move", move),
		slog.String("state", next.String()))
	m.report(func(r Reporter) { r.Position(next) })
	return nil
}

func (m *Match[M]) reject(p Player, err error) {
	m.logger.Debug("move rejected", slog.String("player", p.String()), slog.Any("error", err))
	m.report(func(r Reporter) { r.Rejected(p, err) })
}

func (m *Match[M]) report(f func(Reporter)) {
	if m.Reporter != nil {
		f(m.Reporter)
	}
}
