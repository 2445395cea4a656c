package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lox/chopsticksforbots/cmd/chopsticksforbots/shared"
	"github.com/lox/chopsticksforbots/internal/fileutil"
	"github.com/lox/chopsticksforbots/internal/simulator"
)

// SimulateCmd plays a head-to-head series between two strategies.
type SimulateCmd struct {
	Games       int           `kong:"default='100',help='Number of games to play'"`
	Player1     string        `kong:"default='greedy',help='Strategy for player1 (random, greedy, minimax[:depth])'"`
	Player2     string        `kong:"default='random',help='Strategy for player2'"`
	Seed        *int64        `kong:"help='Deterministic RNG seed (optional)'"`
	MaxTurns    int           `kong:"default='500',help='Turns before a game is declared drawn'"`
	Delay       time.Duration `kong:"help='Pause between moves, e.g. 50ms'"`
	Parallelism int           `kong:"default='4',help='Games to play concurrently'"`
	Output      string        `kong:"short='o',help='Write per-game results as JSON to this file'"`
	Debug       bool          `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("Using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
		logger.Info("Using random seed", "seed", seed)
	}

	sim := simulator.New(simulator.Config{
		Games:       c.Games,
		Player1:     c.Player1,
		Player2:     c.Player2,
		Seed:        seed,
		MaxTurns:    c.MaxTurns,
		MoveDelay:   c.Delay,
		Parallelism: c.Parallelism,
		Logger:      logger,
	})

	ctx := shared.SetupSignalHandler(logger)

	logger.Info("Starting simulation",
		"games", c.Games,
		"player1", c.Player1,
		"player2", c.Player2,
		"parallelism", c.Parallelism)

	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(stats.Summary())

	if c.Output != "" {
		data, err := json.MarshalIndent(stats.Results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		if err := fileutil.WriteFileAtomic(c.Output, data, 0o644); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		logger.Info("Wrote results", "path", c.Output, "games", len(stats.Results))
	}

	return nil
}
