package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(winner, seat string, turns int) GameResult {
	return GameResult{
		Player1:    "random",
		Player2:    "greedy",
		Winner:     winner,
		WinnerSeat: seat,
		Turns:      turns,
	}
}

func TestAddAndWinRate(t *testing.T) {
	t.Parallel()
	s := New()
	s.Add(result("greedy", "player2", 10))
	s.Add(result("greedy", "player1", 14))
	s.Add(result("random", "player1", 9))
	s.Add(result("", "", 200))

	assert.Equal(t, 4, s.Games)
	assert.Equal(t, 1, s.Draws)
	assert.Equal(t, 2, s.WinsByStrategy["greedy"])
	assert.Equal(t, 1, s.WinsByStrategy["random"])
	assert.Equal(t, 2, s.WinsBySeat["player1"])
	assert.InDelta(t, 0.5, s.WinRate("greedy"), 1e-9)
	require.NoError(t, s.Validate())
}

func TestLengths(t *testing.T) {
	t.Parallel()
	s := New()
	for _, turns := range []int{10, 20, 30, 100} {
		s.Add(result("greedy", "player1", turns))
	}

	assert.InDelta(t, 40.0, s.MeanLength(), 1e-9)
	assert.InDelta(t, 25.0, s.MedianLength(), 1e-9)
	assert.Equal(t, 100, s.Longest)
}

func TestConfidenceIntervalClamped(t *testing.T) {
	t.Parallel()
	s := New()
	s.Add(result("greedy", "player1", 5))

	lo, hi := s.ConfidenceInterval95("greedy")
	assert.GreaterOrEqual(t, lo, 0.0)
	assert.LessOrEqual(t, hi, 1.0)

	lo, hi = s.ConfidenceInterval95("random")
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
}

func TestValidateCatchesMismatch(t *testing.T) {
	t.Parallel()
	s := New()
	s.Add(result("greedy", "player1", 5))
	s.Games++ // simulate a lost result

	assert.Error(t, s.Validate())
}

func TestSummaryMentionsStrategies(t *testing.T) {
	t.Parallel()
	s := New()
	s.Add(result("greedy", "player1", 12))
	s.Add(result("random", "player2", 8))

	out := s.Summary()
	assert.Contains(t, out, "greedy")
	assert.Contains(t, out, "random")
	assert.Contains(t, out, "games: 2")
}

func TestEmptyStatistics(t *testing.T) {
	t.Parallel()
	s := New()
	assert.Equal(t, 0.0, s.WinRate("anything"))
	assert.Equal(t, 0.0, s.MeanLength())
	assert.Equal(t, 0.0, s.MedianLength())
	require.NoError(t, s.Validate())
}
