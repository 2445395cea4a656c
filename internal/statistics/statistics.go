// Package statistics aggregates the outcomes of simulated Chopsticks
// games into per-strategy and per-seat results.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// GameResult is the outcome of a single simulated game.
type GameResult struct {
	GameID  string `json:"game_id"`
	Seed    int64  `json:"seed"` // RNG seed for this game (for replay)
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	// Winner is the winning strategy's name, empty on a draw.
	Winner string `json:"winner,omitempty"`
	// WinnerSeat is "player1" or "player2", empty on a draw.
	WinnerSeat string `json:"winner_seat,omitempty"`
	// Turns is the number of moves played.
	Turns int `json:"turns"`
	// Draw is set when the game hit the turn limit without a winner.
	Draw bool `json:"draw,omitempty"`
}

// Statistics accumulates game results for one matchup.
type Statistics struct {
	Games int `json:"games"`
	Draws int `json:"draws"`

	// WinsByStrategy counts wins per strategy name; WinsBySeat counts
	// wins per seat, which exposes any residual first-move advantage.
	WinsByStrategy map[string]int `json:"wins_by_strategy"`
	WinsBySeat     map[string]int `json:"wins_by_seat"`

	// Lengths stores every game length for median/percentile math.
	Lengths   []int `json:"-"`
	SumTurns  int   `json:"sum_turns"`
	LongestID string `json:"longest_game_id,omitempty"`
	Longest   int    `json:"longest_game_turns,omitempty"`

	Results []GameResult `json:"results,omitempty"`
}

// New returns empty statistics.
func New() *Statistics {
	return &Statistics{
		WinsByStrategy: make(map[string]int),
		WinsBySeat:     make(map[string]int),
	}
}

// Add incorporates a game result.
func (s *Statistics) Add(result GameResult) {
	s.Games++
	s.SumTurns += result.Turns
	s.Lengths = append(s.Lengths, result.Turns)
	s.Results = append(s.Results, result)

	if result.Turns > s.Longest {
		s.Longest = result.Turns
		s.LongestID = result.GameID
	}

	if result.Winner == "" {
		s.Draws++
		return
	}
	s.WinsByStrategy[result.Winner]++
	s.WinsBySeat[result.WinnerSeat]++
}

// WinRate returns the fraction of games won by the named strategy.
func (s *Statistics) WinRate(strategy string) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.WinsByStrategy[strategy]) / float64(s.Games)
}

// StdError returns the standard error of the strategy's win rate.
func (s *Statistics) StdError(strategy string) float64 {
	if s.Games == 0 {
		return 0
	}
	p := s.WinRate(strategy)
	return math.Sqrt(p * (1 - p) / float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the
// strategy's win rate, clamped to [0, 1].
func (s *Statistics) ConfidenceInterval95(strategy string) (float64, float64) {
	p := s.WinRate(strategy)
	margin := 1.96 * s.StdError(strategy)
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// MeanLength returns the mean game length in turns.
func (s *Statistics) MeanLength() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumTurns) / float64(s.Games)
}

// MedianLength returns the median game length in turns.
func (s *Statistics) MedianLength() float64 {
	if len(s.Lengths) == 0 {
		return 0
	}
	sorted := make([]int, len(s.Lengths))
	copy(sorted, s.Lengths)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

// Validate checks internal consistency before results are reported.
func (s *Statistics) Validate() error {
	wins := 0
	for _, n := range s.WinsByStrategy {
		wins += n
	}
	if wins+s.Draws != s.Games {
		return fmt.Errorf("wins (%d) + draws (%d) != games (%d)", wins, s.Draws, s.Games)
	}
	if len(s.Lengths) != s.Games {
		return fmt.Errorf("recorded %d lengths for %d games", len(s.Lengths), s.Games)
	}
	return nil
}

// Summary renders a human-readable report.
func (s *Statistics) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "games: %d  draws: %d (%.1f%%)\n", s.Games, s.Draws, 100*float64(s.Draws)/math.Max(1, float64(s.Games)))
	fmt.Fprintf(&b, "length: mean %.1f  median %.0f  longest %d turns\n", s.MeanLength(), s.MedianLength(), s.Longest)

	names := make([]string, 0, len(s.WinsByStrategy))
	for name := range s.WinsByStrategy {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lo, hi := s.ConfidenceInterval95(name)
		fmt.Fprintf(&b, "%-12s %5d wins  %5.1f%%  (95%% CI %.1f%%-%.1f%%)\n",
			name, s.WinsByStrategy[name], 100*s.WinRate(name), 100*lo, 100*hi)
	}
	if seat1, seat2 := s.WinsBySeat["player1"], s.WinsBySeat["player2"]; seat1+seat2 > 0 {
		fmt.Fprintf(&b, "by seat: player1 %d, player2 %d\n", seat1, seat2)
	}

	return b.String()
}
