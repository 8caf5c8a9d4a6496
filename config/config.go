package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tkahng/turns"
)

const (
	GameSubtract   = "subtract"
	GameChopsticks = "chopsticks"

	StrategyInteractive = "interactive"
	StrategyRandom      = "random"
)

type Config struct {
	Game        string
	FirstPlayer turns.Player

	P1Strategy string
	P2Strategy string
	Seed       int64

	// StartValue is the subtract-square starting number; negative means ask.
	StartValue int
	MaxTurns   int

	Color    bool
	LogLevel slog.Level
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		Game:        GameSubtract,
		FirstPlayer: turns.Player1,
		P1Strategy:  StrategyInteractive,
		P2Strategy:  StrategyRandom,
		Seed:        time.Now().UnixNano(),
		StartValue:  -1,
		Color:       true,
		LogLevel:    slog.LevelWarn,
	}

	var invalid []string
	bad := func(key, v string) {
		invalid = append(invalid, fmt.Sprintf("%s=%q", key, v))
	}

	if v := env("TURNS_GAME"); v != "" {
		switch v = strings.ToLower(v); v {
		case GameSubtract, GameChopsticks:
			cfg.Game = v
		default:
			bad("TURNS_GAME", v)
		}
	}
	if v := env("TURNS_FIRST_PLAYER"); v != "" {
		if p, err := turns.ParsePlayer(v); err == nil {
			cfg.FirstPlayer = p
		} else {
			bad("TURNS_FIRST_PLAYER", v)
		}
	}
	for key, dst := range map[string]*string{
		"TURNS_P1_STRATEGY": &cfg.P1Strategy,
		"TURNS_P2_STRATEGY": &cfg.P2Strategy,
	} {
		v := strings.ToLower(env(key))
		switch v {
		case "":
		case StrategyInteractive, StrategyRandom:
			*dst = v
		default:
			bad(key, v)
		}
	}
	if v := env("TURNS_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			bad("TURNS_SEED", v)
		}
	}
	if v := env("TURNS_START_VALUE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.StartValue = n
		} else {
			bad("TURNS_START_VALUE", v)
		}
	}
	if v := env("TURNS_MAX_TURNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxTurns = n
		} else {
			bad("TURNS_MAX_TURNS", v)
		}
	}
	if v := env("TURNS_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Color = b
		} else {
			bad("TURNS_COLOR", v)
		}
	}
	if v := env("TURNS_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			bad("TURNS_LOG_LEVEL", v)
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid env: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
