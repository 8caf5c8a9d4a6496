package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/tkahng/turns"
	"github.com/tkahng/turns/config"
	"github.com/tkahng/turns/console"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prompter := console.NewPrompter(ctx, os.Stdin, os.Stdout)
	printer := console.NewPrinter(os.Stdout, cfg.Color)
	rng := rand.New(rand.NewSource(cfg.Seed))
	logger.Debug("configured", slog.String("game", cfg.Game), slog.Int64("seed", cfg.Seed))

	switch cfg.Game {
	case config.GameChopsticks:
		err = play[string](ctx, cfg, turns.NewChopsticksGame(cfg.FirstPlayer), prompter, printer, rng, logger)
	default:
		start := cfg.StartValue
		if start < 0 {
			if start, err = prompter.StartValue(); err != nil {
				break
			}
		}
		var game *turns.SubtractSquareGame
		if game, err = turns.NewSubtractSquareGame(cfg.FirstPlayer, start); err != nil {
			break
		}
		err = play[int](ctx, cfg, game, prompter, printer, rng, logger)
	}

	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		logger.Info("match abandoned")
		return
	}
	if err != nil {
		log.Fatalf("match: %v", err)
	}
}

func play[M comparable](
	ctx context.Context,
	cfg config.Config,
	g turns.Game[M],
	in turns.LineReader,
	r turns.Reporter,
	rng *rand.Rand,
	logger *slog.Logger,
) error {
	strategy := func(name string) turns.Strategy[M] {
		if name == config.StrategyRandom {
			return turns.NewRandomStrategy[M](rng)
		}
		return turns.NewInteractiveStrategy[M](in)
	}

	m := turns.NewMatch(g, strategy(cfg.P1Strategy), strategy(cfg.P2Strategy), r, logger)
	m.MaxTurns = cfg.MaxTurns
	_, err := m.Play(ctx)
	return err
}
