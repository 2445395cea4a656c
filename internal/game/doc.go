// Package game implements the rules of Chopsticks, the two-player hand
// game where players attack each other's hands and redistribute fingers
// between their own.
//
// The main type is State, an immutable value describing whose turn it is
// and the finger count on each of the four hands. Every transition takes
// a State and returns a new State; the input is never modified. Because
// State is a plain value type with no interior pointers, copies are
// always structurally independent and a State can be shared across
// goroutines by read-only reference.
//
// # Basic Usage
//
// Create a game and play a move:
//
//	s := game.New()
//	s, err := s.Apply(game.AttackMove{
//		AttackerHand: game.Left,
//		Target:       game.Player2,
//		TargetHand:   game.Right,
//	})
//	if err != nil {
//	    // illegal move, s is unchanged
//	}
//	if !s.IsTerminal() {
//	    s = s.SwitchTurn()
//	}
//
// # Search
//
// Moves enumerates every legal move for the side to move, and every move
// it returns is guaranteed to be accepted by Apply on the same state.
// Search-based callers can branch freely:
//
//	for _, m := range s.Moves() {
//	    next, _ := s.Apply(m)
//	    // explore next; s is untouched
//	}
package game
