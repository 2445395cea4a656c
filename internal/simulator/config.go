package simulator

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is an HCL-described suite of matchups:
//
//	simulation {
//	  games       = 1000
//	  seed        = 42
//	  max_turns   = 500
//	  parallelism = 4
//	}
//
//	matchup "greedy-vs-random" {
//	  player1 = "greedy"
//	  player2 = "random"
//	}
type FileConfig struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Matchups   []MatchupConfig     `hcl:"matchup,block"`
}

// SimulationSettings are suite-wide defaults.
type SimulationSettings struct {
	Games       int   `hcl:"games,optional"`
	Seed        int64 `hcl:"seed,optional"`
	MaxTurns    int   `hcl:"max_turns,optional"`
	Parallelism int   `hcl:"parallelism,optional"`
}

// MatchupConfig pairs two strategy specs. Games overrides the
// suite-wide count when set.
type MatchupConfig struct {
	Name    string `hcl:"name,label"`
	Player1 string `hcl:"player1"`
	Player2 string `hcl:"player2"`
	Games   int    `hcl:"games,optional"`
}

var ErrNoMatchups = errors.New("config declares no matchups")

// DefaultFileConfig returns the configuration used when no file exists.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Simulation: &SimulationSettings{
			Games:       100,
			Seed:        1,
			MaxTurns:    DefaultMaxTurns,
			Parallelism: 1,
		},
		Matchups: []MatchupConfig{
			{Name: "greedy-vs-random", Player1: "greedy", Player2: "random"},
		},
	}
}

// LoadFileConfig loads a matchup suite from an HCL file, falling back to
// DefaultFileConfig when the file does not exist.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Simulation == nil {
		config.Simulation = &SimulationSettings{}
	}
	if config.Simulation.Games == 0 {
		config.Simulation.Games = 100
	}
	if config.Simulation.Seed == 0 {
		config.Simulation.Seed = 1
	}
	if config.Simulation.MaxTurns == 0 {
		config.Simulation.MaxTurns = DefaultMaxTurns
	}
	if config.Simulation.Parallelism == 0 {
		config.Simulation.Parallelism = 1
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *FileConfig) validate() error {
	if len(c.Matchups) == 0 {
		return ErrNoMatchups
	}
	seen := make(map[string]bool, len(c.Matchups))
	for _, m := range c.Matchups {
		if m.Player1 == "" || m.Player2 == "" {
			return fmt.Errorf("matchup %q must set player1 and player2", m.Name)
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate matchup name %q", m.Name)
		}
		seen[m.Name] = true
	}
	return nil
}

// MatchupRunConfig resolves a matchup into a Config with suite defaults
// applied.
func (c *FileConfig) MatchupRunConfig(m MatchupConfig) Config {
	games := c.Simulation.Games
	if m.Games > 0 {
		games = m.Games
	}
	return Config{
		Games:       games,
		Player1:     m.Player1,
		Player2:     m.Player2,
		Seed:        c.Simulation.Seed,
		MaxTurns:    c.Simulation.MaxTurns,
		Parallelism: c.Simulation.Parallelism,
	}
}
