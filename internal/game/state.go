package game

import (
	"errors"
	"fmt"
)

// DeathThreshold is the finger count at which a hand dies. An attack
// that would push a hand to this value or beyond resets it to zero.
const DeathThreshold = 5

// Player identifies one of the two fixed players.
type Player uint8

const (
	Player1 Player = iota
	Player2
)

// Other returns the opposing player.
func (p Player) Other() Player {
	return 1 - p
}

func (p Player) String() string {
	if p == Player1 {
		return "player1"
	}
	return "player2"
}

// MarshalText implements encoding.TextMarshaler so snapshots serialize
// with readable player names.
func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Hand identifies one of a player's two hands.
type Hand uint8

const (
	Left Hand = iota
	Right
)

// Other returns the player's other hand.
func (h Hand) Other() Hand {
	return 1 - h
}

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Pair holds the finger counts of a player's two hands.
type Pair struct {
	Left  int
	Right int
}

// Get returns the count of the given hand.
func (p Pair) Get(h Hand) int {
	if h == Left {
		return p.Left
	}
	return p.Right
}

func (p Pair) with(h Hand, v int) Pair {
	if h == Left {
		p.Left = v
	} else {
		p.Right = v
	}
	return p
}

// Errors returned by engine transitions. All are wrapped with context
// describing the offending move; use errors.Is to classify.
var (
	ErrInvalidPlayer = errors.New("invalid player")
	ErrInvalidHand   = errors.New("invalid hand")
	ErrDeadHand      = errors.New("cannot attack with a dead hand")
	ErrDeadTarget    = errors.New("cannot target a dead hand")
	ErrSameHand      = errors.New("cannot attack a hand with itself")
	ErrCannotSplit   = errors.New("split is not available")
	ErrSplitBounds   = errors.New("split values must be between 1 and 4")
	ErrSplitSum      = errors.New("split must conserve the player's total fingers")
	ErrInvalidMove   = errors.New("invalid move")
)

// State is the complete game position: whose turn it is and the finger
// count on each hand. It is a value type; methods never mutate the
// receiver and transitions return a fresh State.
type State struct {
	// Current is the player to move next.
	Current Player
	// Hands holds each player's finger counts, indexed by Player.
	Hands [2]Pair
}

// New returns the canonical starting position: every hand at one finger,
// player1 to move.
func New() State {
	return State{
		Current: Player1,
		Hands: [2]Pair{
			{Left: 1, Right: 1},
			{Left: 1, Right: 1},
		},
	}
}

// Clone returns an independent copy. State has value semantics so the
// copy is already deep; Clone exists so callers branching from a
// position (search, speculative play) can be explicit about it.
func (s State) Clone() State {
	return s
}

// CurrentPlayer returns the player to move next.
func (s State) CurrentPlayer() Player {
	return s.Current
}

// Total returns the player's combined finger count across both hands.
func (s State) Total(p Player) int {
	return s.Hands[p].Left + s.Hands[p].Right
}

// HasLost reports whether both of the player's hands are dead.
func (s State) HasLost(p Player) bool {
	return s.Hands[p].Left == 0 && s.Hands[p].Right == 0
}

// IsTerminal reports whether either player has lost.
func (s State) IsTerminal() bool {
	return s.HasLost(Player1) || s.HasLost(Player2)
}

// Winner returns the winning player. ok is false when nobody has lost
// yet, and also when both players are at zero simultaneously: a double
// knockout is terminal but has no single winner.
func (s State) Winner() (winner Player, ok bool) {
	lost1, lost2 := s.HasLost(Player1), s.HasLost(Player2)
	switch {
	case lost1 && lost2:
		return 0, false
	case lost1:
		return Player2, true
	case lost2:
		return Player1, true
	}
	return 0, false
}

// SwitchTurn returns a copy with the turn flipped to the other player.
// It does not check terminality; callers decide whether a finished game
// still switches.
func (s State) SwitchTurn() State {
	s.Current = s.Current.Other()
	return s
}

// CanSplit reports whether the player may split: exactly one hand alive
// and holding more than one finger, so there is something to move onto
// the dead hand.
func (s State) CanSplit(p Player) bool {
	l, r := s.Hands[p].Left, s.Hands[p].Right
	if (l == 0) == (r == 0) {
		return false
	}
	return l > 1 || r > 1
}

// Attack returns the state after attackerHand strikes targetHand. The
// target's new count is the sum of both hands, resetting to zero at
// DeathThreshold; the attacking hand keeps its count. Self-attacks
// (attacker == target) are how fingers are moved onto the player's own
// other hand, but a hand may never attack itself: that is rejected here
// rather than left to move generation, so the primitive enforces every
// rule the generator relies on.
func (s State) Attack(attacker Player, attackerHand Hand, target Player, targetHand Hand) (State, error) {
	if attacker > Player2 || target > Player2 {
		return s, fmt.Errorf("%w: attack %d -> %d", ErrInvalidPlayer, attacker, target)
	}
	if attackerHand > Right || targetHand > Right {
		return s, fmt.Errorf("%w: attack %d -> %d", ErrInvalidHand, attackerHand, targetHand)
	}
	if attacker == target && attackerHand == targetHand {
		return s, fmt.Errorf("%w: %s %s", ErrSameHand, attacker, attackerHand)
	}

	av := s.Hands[attacker].Get(attackerHand)
	tv := s.Hands[target].Get(targetHand)
	if av == 0 {
		return s, fmt.Errorf("%w: %s %s", ErrDeadHand, attacker, attackerHand)
	}
	if tv == 0 {
		return s, fmt.Errorf("%w: %s %s", ErrDeadTarget, target, targetHand)
	}

	sum := tv + av
	if sum >= DeathThreshold {
		sum = 0
	}
	s.Hands[target] = s.Hands[target].with(targetHand, sum)
	return s, nil
}

// Split returns the state after the player redistributes their total
// finger count as left/right. Unlike an attack, a split may not kill or
// overflow a hand: both values must be in [1, DeathThreshold) and sum
// exactly to the player's current total.
func (s State) Split(p Player, left, right int) (State, error) {
	if p > Player2 {
		return s, fmt.Errorf("%w: split by %d", ErrInvalidPlayer, p)
	}
	if !s.CanSplit(p) {
		return s, fmt.Errorf("%w: %s has hands %d/%d", ErrCannotSplit, p, s.Hands[p].Left, s.Hands[p].Right)
	}
	if left < 1 || right < 1 || left >= DeathThreshold || right >= DeathThreshold {
		return s, fmt.Errorf("%w: got %d/%d", ErrSplitBounds, left, right)
	}
	if total := s.Total(p); left+right != total {
		return s, fmt.Errorf("%w: %d+%d != %d", ErrSplitSum, left, right, total)
	}

	s.Hands[p] = Pair{Left: left, Right: right}
	return s, nil
}

// Board is a plain snapshot of the position for display and logging.
// Hand slots are left at index 0, right at index 1.
type Board struct {
	Current Player `json:"current"`
	Player1 [2]int `json:"player1"`
	Player2 [2]int `json:"player2"`
}

// Board returns a snapshot of the current position.
func (s State) Board() Board {
	return Board{
		Current: s.Current,
		Player1: [2]int{s.Hands[Player1].Left, s.Hands[Player1].Right},
		Player2: [2]int{s.Hands[Player2].Left, s.Hands[Player2].Right},
	}
}

func (s State) String() string {
	return fmt.Sprintf("p1[%d %d] p2[%d %d] %s to move",
		s.Hands[Player1].Left, s.Hands[Player1].Right,
		s.Hands[Player2].Left, s.Hands[Player2].Right,
		s.Current)
}
