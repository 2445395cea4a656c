// Package simulator plays Chopsticks strategies against each other and
// aggregates the outcomes. The engine is the only arbiter: each game is
// a loop of Moves/Apply/SwitchTurn, and any strategy output the engine
// rejects fails the run rather than being papered over.
package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/chopsticksforbots/internal/bot"
	"github.com/lox/chopsticksforbots/internal/game"
	"github.com/lox/chopsticksforbots/internal/gameid"
	"github.com/lox/chopsticksforbots/internal/randutil"
	"github.com/lox/chopsticksforbots/internal/statistics"
)

// DefaultMaxTurns is the draw cutoff. Chopsticks cycles under careful
// play, so every game needs a horizon.
const DefaultMaxTurns = 500

// Config holds configuration for a single matchup run.
type Config struct {
	// Games is the number of games to play.
	Games int
	// Player1 and Player2 are strategy specs as accepted by bot.New.
	// Seats alternate between games to cancel first-move advantage.
	Player1 string
	Player2 string
	// Seed is the base RNG seed; game i derives its own seed from Seed+i.
	Seed int64
	// MaxTurns is the per-game draw cutoff.
	MaxTurns int
	// MoveDelay paces each move, modelling think time. Zero means no
	// pacing. The delay is observed through Clock so tests can drive it.
	MoveDelay time.Duration
	// Parallelism bounds concurrently running games.
	Parallelism int

	Logger *log.Logger
	Clock  quartz.Clock
}

// Simulator runs one matchup.
type Simulator struct {
	config Config
}

// New creates a simulator, applying defaults for unset config fields.
func New(config Config) *Simulator {
	if config.Games <= 0 {
		config.Games = 1
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = DefaultMaxTurns
	}
	if config.Parallelism <= 0 {
		config.Parallelism = 1
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the aggregated statistics. Games run
// concurrently up to Parallelism, each deterministic in its own derived
// seed, so results are reproducible regardless of scheduling.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallelism)

	for i := 0; i < s.config.Games; i++ {
		g.Go(func() error {
			seats := [2]string{s.config.Player1, s.config.Player2}
			if i%2 == 1 {
				seats[0], seats[1] = seats[1], seats[0]
			}

			result, err := s.playGame(ctx, gameid.New(), s.config.Seed+int64(i), seats)
			if err != nil {
				return fmt.Errorf("game %d failed: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playGame runs a single game between the seated strategies. Both
// strategies draw from one per-game RNG so a (seed, seats) pair replays
// to the identical game.
func (s *Simulator) playGame(ctx context.Context, id string, seed int64, seats [2]string) (statistics.GameResult, error) {
	rng := randutil.New(seed)
	logger := s.config.Logger.With("game", id, "seed", seed)

	var strategies [2]bot.Strategy
	for i, spec := range seats {
		strat, err := bot.New(spec, rng, logger)
		if err != nil {
			return statistics.GameResult{}, err
		}
		strategies[i] = strat
	}

	state := game.New()
	turns := 0
	for !state.IsTerminal() && turns < s.config.MaxTurns {
		if err := s.pace(ctx); err != nil {
			return statistics.GameResult{}, err
		}

		strat := strategies[state.Current]
		move, ok := strat.ChooseMove(state)
		if !ok {
			return statistics.GameResult{}, fmt.Errorf("strategy %s offered no move in non-terminal state %s", strat.Name(), state)
		}

		next, err := state.Apply(move)
		if err != nil {
			return statistics.GameResult{}, fmt.Errorf("strategy %s produced illegal move %s: %w", strat.Name(), move, err)
		}
		state = next
		turns++

		if !state.IsTerminal() {
			state = state.SwitchTurn()
		}
	}

	result := statistics.GameResult{
		GameID:  id,
		Seed:    seed,
		Player1: seats[0],
		Player2: seats[1],
		Turns:   turns,
	}
	if winner, ok := state.Winner(); ok {
		result.Winner = seats[winner]
		result.WinnerSeat = winner.String()
	} else {
		result.Draw = true
	}

	logger.Debug("game finished", "turns", turns, "winner", result.Winner, "draw", result.Draw)
	return result, nil
}

// pace waits out the configured move delay on the injected clock.
func (s *Simulator) pace(ctx context.Context) error {
	if s.config.MoveDelay <= 0 {
		return nil
	}
	timer := s.config.Clock.NewTimer(s.config.MoveDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
