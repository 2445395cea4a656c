package main

import (
	"fmt"
	"time"

	"github.com/lox/chopsticksforbots/cmd/chopsticksforbots/shared"
	"github.com/lox/chopsticksforbots/internal/bot"
	"github.com/lox/chopsticksforbots/internal/game"
	"github.com/lox/chopsticksforbots/internal/randutil"
)

// PlayCmd plays one game and prints every position and move.
type PlayCmd struct {
	Player1  string `kong:"default='greedy',help='Strategy for player1 (random, greedy, minimax[:depth])'"`
	Player2  string `kong:"default='minimax',help='Strategy for player2'"`
	Seed     *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	MaxTurns int    `kong:"default='500',help='Turns before the game is declared drawn'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	var strategies [2]bot.Strategy
	for i, spec := range []string{c.Player1, c.Player2} {
		strat, err := bot.New(spec, rng, logger)
		if err != nil {
			return err
		}
		strategies[i] = strat
	}

	logger.Info("Starting game",
		"player1", strategies[0].Name(),
		"player2", strategies[1].Name(),
		"seed", seed)

	s := game.New()
	for turn := 1; turn <= c.MaxTurns; turn++ {
		mover := s.CurrentPlayer()
		move, ok := strategies[mover].ChooseMove(s)
		if !ok {
			break
		}

		next, err := s.Apply(move)
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}

		fmt.Printf("%3d. %s (%s) %s  =>  %s\n",
			turn, mover, strategies[mover].Name(), move, next)

		s = next
		if s.IsTerminal() {
			break
		}
		s = s.SwitchTurn()
	}

	if winner, ok := s.Winner(); ok {
		fmt.Printf("\n%s (%s) wins\n", winner, strategies[winner].Name())
	} else {
		fmt.Println("\ndraw")
	}
	return nil
}
