package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/chopsticksforbots/internal/game"
	"github.com/lox/chopsticksforbots/internal/randutil"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestNewResolvesStrategies(t *testing.T) {
	t.Parallel()
	cases := []struct {
		spec string
		want string
	}{
		{"random", "random"},
		{"greedy", "greedy"},
		{"minimax", "minimax"},
		{"minimax:3", "minimax"},
	}
	for _, tc := range cases {
		strat, err := New(tc.spec, randutil.New(1), testLogger())
		require.NoError(t, err, tc.spec)
		assert.Equal(t, tc.want, strat.Name(), tc.spec)
	}
}

func TestNewRejectsUnknownSpecs(t *testing.T) {
	t.Parallel()
	for _, spec := range []string{"", "psychic", "minimax:zero", "minimax:-1"} {
		_, err := New(spec, randutil.New(1), testLogger())
		assert.ErrorIs(t, err, ErrUnknownStrategy, spec)
	}
}

func TestRandomPicksLegalMoves(t *testing.T) {
	t.Parallel()
	strat := NewRandom(randutil.New(42))
	s := game.New()

	legal := make(map[game.Move]bool)
	for _, m := range s.Moves() {
		legal[m] = true
	}

	for i := 0; i < 50; i++ {
		m, ok := strat.ChooseMove(s)
		require.True(t, ok)
		assert.True(t, legal[m], "move %v not legal", m)
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()
	a := NewRandom(randutil.New(7))
	b := NewRandom(randutil.New(7))
	s := game.New()

	for i := 0; i < 20; i++ {
		ma, _ := a.ChooseMove(s)
		mb, _ := b.ChooseMove(s)
		assert.Equal(t, ma, mb, "draw %d", i)
	}
}

func TestStrategiesReportNoMoveWhenLost(t *testing.T) {
	t.Parallel()
	s := game.New()
	s.Hands[game.Player1] = game.Pair{}

	strategies := []Strategy{
		NewRandom(randutil.New(1)),
		NewGreedy(randutil.New(1), testLogger()),
		NewMinimax(4, randutil.New(1), testLogger()),
	}
	for _, strat := range strategies {
		_, ok := strat.ChooseMove(s)
		assert.False(t, ok, strat.Name())
	}
}

func TestGreedyTakesWinningMove(t *testing.T) {
	t.Parallel()
	s := game.New()
	s.Hands[game.Player2] = game.Pair{Left: 0, Right: 4}

	strat := NewGreedy(randutil.New(1), testLogger())
	for i := 0; i < 10; i++ {
		m, ok := strat.ChooseMove(s)
		require.True(t, ok)

		next, err := s.Apply(m)
		require.NoError(t, err)
		assert.True(t, next.HasLost(game.Player2), "move %v did not win", m)
	}
}

func TestGreedyPrefersKill(t *testing.T) {
	t.Parallel()
	s := game.New()
	s.Hands[game.Player1] = game.Pair{Left: 2, Right: 2}
	s.Hands[game.Player2] = game.Pair{Left: 3, Right: 1}

	strat := NewGreedy(randutil.New(1), testLogger())
	for i := 0; i < 10; i++ {
		m, ok := strat.ChooseMove(s)
		require.True(t, ok)

		atk, isAttack := m.(game.AttackMove)
		require.True(t, isAttack, "expected an attack, got %v", m)
		assert.Equal(t, game.Player2, atk.Target)
		assert.Equal(t, game.Left, atk.TargetHand, "2+3 kills the left hand")
	}
}

func TestGreedyDoesNotMutateState(t *testing.T) {
	t.Parallel()
	s := game.New()
	s.Hands[game.Player2] = game.Pair{Left: 2, Right: 3}
	before := s

	strat := NewGreedy(randutil.New(1), testLogger())
	_, ok := strat.ChooseMove(s)
	require.True(t, ok)
	assert.Equal(t, before, s)
}

func TestMinimaxTakesImmediateWin(t *testing.T) {
	t.Parallel()
	s := game.New()
	s.Hands[game.Player2] = game.Pair{Left: 0, Right: 4}

	strat := NewMinimax(4, randutil.New(1), testLogger())
	m, ok := strat.ChooseMove(s)
	require.True(t, ok)

	next, err := s.Apply(m)
	require.NoError(t, err)
	assert.True(t, next.HasLost(game.Player2), "move %v did not win", m)
}

func TestMinimaxAvoidsImmediateLoss(t *testing.T) {
	t.Parallel()
	// Player1 has a single finger on one hand. Feeding player2's left
	// hand to 4 lets it kill that finger next turn; bumping the right
	// hand to 2 leaves no lethal reply.
	s := game.New()
	s.Hands[game.Player1] = game.Pair{Left: 1, Right: 0}
	s.Hands[game.Player2] = game.Pair{Left: 3, Right: 1}

	strat := NewMinimax(4, randutil.New(1), testLogger())
	m, ok := strat.ChooseMove(s)
	require.True(t, ok)

	atk, isAttack := m.(game.AttackMove)
	require.True(t, isAttack, "expected an attack, got %v", m)
	assert.Equal(t, game.Right, atk.TargetHand, "attacking left hands player2 a mate in one")
}

func TestMinimaxBeatsRandomFromEqualPosition(t *testing.T) {
	t.Parallel()
	// Self-contained playout: minimax as player1 against random, from
	// the standard opening. Minimax should never lose a short game it
	// can read to the end of.
	strategies := [2]Strategy{
		NewMinimax(10, randutil.New(5), testLogger()),
		NewRandom(randutil.New(5)),
	}

	wins, losses := 0, 0
	for round := 0; round < 5; round++ {
		s := game.New()
		for turns := 0; turns < 200 && !s.IsTerminal(); turns++ {
			m, ok := strategies[s.Current].ChooseMove(s)
			if !ok {
				break
			}
			next, err := s.Apply(m)
			if err != nil {
				t.Fatalf("illegal move from %s: %v", strategies[s.Current].Name(), err)
			}
			s = next
			if !s.IsTerminal() {
				s = s.SwitchTurn()
			}
		}
		if w, ok := s.Winner(); ok {
			if w == game.Player1 {
				wins++
			} else {
				losses++
			}
		}
	}
	assert.Zero(t, losses, "minimax should never lose to random")
	assert.Greater(t, wins, 0, "minimax should convert at least one blunder")
}
