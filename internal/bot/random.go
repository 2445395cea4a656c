package bot

import (
	rand "math/rand/v2"

	"github.com/lox/chopsticksforbots/internal/game"
)

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random strategy using the given RNG.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string { return "random" }

func (r *Random) ChooseMove(s game.State) (game.Move, bool) {
	moves := s.Moves()
	if len(moves) == 0 {
		return nil, false
	}
	return moves[r.rng.IntN(len(moves))], true
}
