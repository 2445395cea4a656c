package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/chopsticksforbots/internal/game"
)

// Greedy plays one ply ahead: it takes a winning move if one exists,
// otherwise a move that kills an opponent hand, otherwise a move that
// does not hand the opponent an immediate win. Ties are broken randomly.
type Greedy struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewGreedy creates a Greedy strategy.
func NewGreedy(rng *rand.Rand, logger *log.Logger) *Greedy {
	return &Greedy{rng: rng, logger: logger.WithPrefix("greedy")}
}

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) ChooseMove(s game.State) (game.Move, bool) {
	moves := s.Moves()
	if len(moves) == 0 {
		return nil, false
	}

	var wins, kills, safe []game.Move
	me := s.Current
	opp := me.Other()

	for _, m := range moves {
		next, err := s.Apply(m)
		if err != nil {
			continue
		}
		if next.HasLost(opp) {
			wins = append(wins, m)
			continue
		}
		if aliveHands(next, opp) < aliveHands(s, opp) {
			kills = append(kills, m)
			continue
		}
		if !opponentCanWin(next.SwitchTurn()) {
			safe = append(safe, m)
		}
	}

	pick := func(pool []game.Move, reason string) (game.Move, bool) {
		m := pool[g.rng.IntN(len(pool))]
		g.logger.Debug("chose move", "move", m, "reason", reason, "state", s)
		return m, true
	}

	switch {
	case len(wins) > 0:
		return pick(wins, "wins the game")
	case len(kills) > 0:
		return pick(kills, "kills a hand")
	case len(safe) > 0:
		return pick(safe, "no immediate reply")
	default:
		return pick(moves, "all moves lose a hand")
	}
}

// opponentCanWin reports whether the side to move in s has a move that
// ends the game in their favor.
func opponentCanWin(s game.State) bool {
	for _, m := range s.Moves() {
		next, err := s.Apply(m)
		if err != nil {
			continue
		}
		if next.HasLost(s.Current.Other()) {
			return true
		}
	}
	return false
}

func aliveHands(s game.State, p game.Player) int {
	n := 0
	if s.Hands[p].Left > 0 {
		n++
	}
	if s.Hands[p].Right > 0 {
		n++
	}
	return n
}
