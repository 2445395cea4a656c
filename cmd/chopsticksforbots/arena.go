package main

import (
	"encoding/json"
	"fmt"

	"github.com/lox/chopsticksforbots/cmd/chopsticksforbots/shared"
	"github.com/lox/chopsticksforbots/internal/fileutil"
	"github.com/lox/chopsticksforbots/internal/simulator"
	"github.com/lox/chopsticksforbots/internal/statistics"
)

// ArenaCmd runs every matchup declared in an HCL suite config.
type ArenaCmd struct {
	Config string `kong:"default='matchups.hcl',help='Path to the matchup suite config'"`
	Output string `kong:"short='o',help='Write per-matchup results as JSON to this file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

type matchupReport struct {
	Name    string                  `json:"name"`
	Player1 string                  `json:"player1"`
	Player2 string                  `json:"player2"`
	Games   int                     `json:"games"`
	Draws   int                     `json:"draws"`
	Wins    map[string]int          `json:"wins"`
	Results []statistics.GameResult `json:"results"`
}

func (c *ArenaCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := simulator.LoadFileConfig(c.Config)
	if err != nil {
		return fmt.Errorf("loading %s: %w", c.Config, err)
	}

	ctx := shared.SetupSignalHandler(logger)

	reports := make([]matchupReport, 0, len(cfg.Matchups))
	for _, m := range cfg.Matchups {
		runCfg := cfg.MatchupRunConfig(m)
		runCfg.Logger = logger.WithPrefix(m.Name)

		logger.Info("Running matchup",
			"name", m.Name,
			"player1", m.Player1,
			"player2", m.Player2,
			"games", runCfg.Games)

		stats, err := simulator.New(runCfg).Run(ctx)
		if err != nil {
			return fmt.Errorf("matchup %s: %w", m.Name, err)
		}

		fmt.Printf("=== %s ===\n%s\n", m.Name, stats.Summary())

		reports = append(reports, matchupReport{
			Name:    m.Name,
			Player1: m.Player1,
			Player2: m.Player2,
			Games:   stats.Games,
			Draws:   stats.Draws,
			Wins:    stats.WinsByStrategy,
			Results: stats.Results,
		})
	}

	if c.Output != "" {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling reports: %w", err)
		}
		if err := fileutil.WriteFileAtomic(c.Output, data, 0o644); err != nil {
			return fmt.Errorf("writing reports: %w", err)
		}
		logger.Info("Wrote reports", "path", c.Output, "matchups", len(reports))
	}

	return nil
}
