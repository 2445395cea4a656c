package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/chopsticksforbots/internal/game"
)

const (
	winScore = 1000
	minScore = -10 * winScore
)

// Minimax searches the game tree to a fixed depth with alpha-beta
// pruning. Chopsticks positions repeat under optimal play, so each
// search line carries a visited set and scores a repetition as a draw;
// without it the search would chase cycles to the depth limit on every
// branch. Wins found earlier score higher than wins found later, and
// ties at the root are broken randomly.
type Minimax struct {
	depth  int
	rng    *rand.Rand
	logger *log.Logger
}

// NewMinimax creates a Minimax strategy searching the given depth in plies.
func NewMinimax(depth int, rng *rand.Rand, logger *log.Logger) *Minimax {
	return &Minimax{depth: depth, rng: rng, logger: logger.WithPrefix("minimax")}
}

func (m *Minimax) Name() string { return "minimax" }

func (m *Minimax) ChooseMove(s game.State) (game.Move, bool) {
	moves := s.Moves()
	if len(moves) == 0 {
		return nil, false
	}

	visited := map[game.State]bool{s: true}
	bestScore := minScore - 1
	var best []game.Move
	for _, mv := range moves {
		score := m.scoreMove(s, mv, m.depth, minScore, -minScore, visited)
		if score > bestScore {
			bestScore = score
			best = best[:0]
		}
		if score == bestScore {
			best = append(best, mv)
		}
	}

	choice := best[m.rng.IntN(len(best))]
	m.logger.Debug("chose move", "move", choice, "score", bestScore, "state", s)
	return choice, true
}

// scoreMove values mv from the mover's perspective: positive is good for
// the player making the move in s.
func (m *Minimax) scoreMove(s game.State, mv game.Move, depth, alpha, beta int, visited map[game.State]bool) int {
	next, err := s.Apply(mv)
	if err != nil {
		return minScore
	}

	if next.IsTerminal() {
		winner, ok := next.Winner()
		switch {
		case ok && winner == s.Current:
			return winScore + depth
		case ok:
			return -(winScore + depth)
		default:
			return 0
		}
	}

	child := next.SwitchTurn()
	if visited[child] {
		return 0
	}
	if depth <= 0 {
		return eval(next, s.Current)
	}

	visited[child] = true
	score := -m.search(child, depth-1, -beta, -alpha, visited)
	delete(visited, child)
	return score
}

// search returns the best achievable score for the side to move in s.
func (m *Minimax) search(s game.State, depth, alpha, beta int, visited map[game.State]bool) int {
	moves := s.Moves()
	if len(moves) == 0 {
		return -(winScore + depth)
	}

	best := minScore
	for _, mv := range moves {
		score := m.scoreMove(s, mv, depth, alpha, beta, visited)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// eval is the leaf heuristic: material and alive-hand advantage for p.
func eval(s game.State, p game.Player) int {
	return material(s, p) - material(s, p.Other())
}

func material(s game.State, p game.Player) int {
	return s.Total(p) + 3*aliveHands(s, p)
}
