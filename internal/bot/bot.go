// Package bot provides move-selection strategies for Chopsticks.
//
// A Strategy consumes the engine's Moves/Apply contract and never
// mutates the state it is given; the engine's value semantics make that
// structural rather than a convention.
package bot

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/chopsticksforbots/internal/game"
)

// Strategy picks a move for the side to move. ok is false only when the
// position offers no legal moves (the side to move has already lost).
type Strategy interface {
	Name() string
	ChooseMove(s game.State) (move game.Move, ok bool)
}

var ErrUnknownStrategy = errors.New("unknown strategy")

const defaultMinimaxDepth = 8

// New resolves a strategy spec to an implementation. Specs are "random",
// "greedy", or "minimax" with an optional depth suffix like "minimax:6".
func New(spec string, rng *rand.Rand, logger *log.Logger) (Strategy, error) {
	name, arg, _ := strings.Cut(spec, ":")

	switch name {
	case "random":
		return NewRandom(rng), nil
	case "greedy":
		return NewGreedy(rng, logger), nil
	case "minimax":
		depth := defaultMinimaxDepth
		if arg != "" {
			d, err := strconv.Atoi(arg)
			if err != nil || d < 1 {
				return nil, fmt.Errorf("%w: bad minimax depth %q", ErrUnknownStrategy, arg)
			}
			depth = d
		}
		return NewMinimax(depth, rng, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, spec)
	}
}
