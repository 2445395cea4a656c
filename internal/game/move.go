package game

import "fmt"

// Move is a closed union of the two legal move kinds: AttackMove and
// SplitMove. The acting player is always the state's current player at
// the time the move is applied.
type Move interface {
	isMove()
	String() string
}

// AttackMove adds the attacking hand's count onto the target hand.
// Target may be the current player, which transfers fingers onto their
// own other hand.
type AttackMove struct {
	AttackerHand Hand
	Target       Player
	TargetHand   Hand
}

func (AttackMove) isMove() {}

func (m AttackMove) String() string {
	return fmt.Sprintf("attack %s -> %s %s", m.AttackerHand, m.Target, m.TargetHand)
}

// SplitMove redistributes the current player's total fingers as
// left/right.
type SplitMove struct {
	Left  int
	Right int
}

func (SplitMove) isMove() {}

func (m SplitMove) String() string {
	return fmt.Sprintf("split %d/%d", m.Left, m.Right)
}

// Apply plays the move for the current player and returns the resulting
// state. The move is validated by the same Attack/Split primitives that
// Moves probes, so the generator and the validator cannot drift apart.
// A nil or unrecognized move fails with ErrInvalidMove.
func (s State) Apply(m Move) (State, error) {
	switch mv := m.(type) {
	case AttackMove:
		return s.Attack(s.Current, mv.AttackerHand, mv.Target, mv.TargetHand)
	case SplitMove:
		return s.Split(s.Current, mv.Left, mv.Right)
	default:
		return s, fmt.Errorf("%w: %v", ErrInvalidMove, m)
	}
}

// Moves returns every legal move for the current player, in a fixed
// order: attacks on the opponent (attacking hand major), transfers onto
// the player's own other hand, then splits ascending by left value.
// Dead hands never appear as attacker or target, and each returned move
// is guaranteed to be accepted by Apply on this state.
func (s State) Moves() []Move {
	cur := s.Current
	opp := cur.Other()
	moves := make([]Move, 0, 8)

	for _, ah := range [2]Hand{Left, Right} {
		if s.Hands[cur].Get(ah) == 0 {
			continue
		}
		for _, th := range [2]Hand{Left, Right} {
			if s.Hands[opp].Get(th) == 0 {
				continue
			}
			moves = append(moves, AttackMove{AttackerHand: ah, Target: opp, TargetHand: th})
		}
	}

	for _, ah := range [2]Hand{Left, Right} {
		if s.Hands[cur].Get(ah) == 0 || s.Hands[cur].Get(ah.Other()) == 0 {
			continue
		}
		moves = append(moves, AttackMove{AttackerHand: ah, Target: cur, TargetHand: ah.Other()})
	}

	if s.CanSplit(cur) {
		total := s.Total(cur)
		for a := 1; a < total; a++ {
			b := total - a
			if a >= DeathThreshold || b >= DeathThreshold {
				continue
			}
			moves = append(moves, SplitMove{Left: a, Right: b})
		}
	}

	return moves
}
