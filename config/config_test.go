package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkahng/turns"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"TURNS_GAME", "TURNS_FIRST_PLAYER", "TURNS_P1_STRATEGY", "TURNS_P2_STRATEGY",
		"TURNS_SEED", "TURNS_START_VALUE", "TURNS_MAX_TURNS", "TURNS_COLOR", "TURNS_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, GameSubtract, cfg.Game)
	assert.Equal(t, turns.Player1, cfg.FirstPlayer)
	assert.Equal(t, StrategyInteractive, cfg.P1Strategy)
	assert.Equal(t, StrategyRandom, cfg.P2Strategy)
	assert.Equal(t, -1, cfg.StartValue)
	assert.Equal(t, 0, cfg.MaxTurns)
	assert.True(t, cfg.Color)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("TURNS_GAME", "Chopsticks")
	t.Setenv("TURNS_FIRST_PLAYER", "p2")
	t.Setenv("TURNS_P1_STRATEGY", "random")
	t.Setenv("TURNS_P2_STRATEGY", "interactive")
	t.Setenv("TURNS_SEED", "7")
	t.Setenv("TURNS_START_VALUE", "20")
	t.Setenv("TURNS_MAX_TURNS", "100")
	t.Setenv("TURNS_COLOR", "false")
	t.Setenv("TURNS_LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Game:        GameChopsticks,
		FirstPlayer: turns.Player2,
		P1Strategy:  StrategyRandom,
		P2Strategy:  StrategyInteractive,
		Seed:        7,
		StartValue:  20,
		MaxTurns:    100,
		Color:       false,
		LogLevel:    slog.LevelDebug,
	}, cfg)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("TURNS_GAME", "chess")
	t.Setenv("TURNS_FIRST_PLAYER", "3")
	t.Setenv("TURNS_P1_STRATEGY", "minimax")
	t.Setenv("TURNS_P2_STRATEGY", "")
	t.Setenv("TURNS_SEED", "x")
	t.Setenv("TURNS_START_VALUE", "-5")
	t.Setenv("TURNS_MAX_TURNS", "")
	t.Setenv("TURNS_COLOR", "")
	t.Setenv("TURNS_LOG_LEVEL", "loud")

	_, err := LoadFromEnv()
	require.Error(t, err)
	for _, key := range []string{
		"TURNS_GAME", "TURNS_FIRST_PLAYER", "TURNS_P1_STRATEGY",
		"TURNS_SEED", "TURNS_START_VALUE", "TURNS_LOG_LEVEL",
	} {
		assert.Contains(t, err.Error(), key)
	}
	assert.NotContains(t, err.Error(), "TURNS_P2_STRATEGY")
}
