package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/inbetween/internal/game"
)

// ServerConfig represents the complete server configuration
type ServerConfig struct {
	Server ServerSettings `hcl:"server,block"`
	Game   *GameSettings  `hcl:"game,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// GameSettings overrides the default table tunables. Amounts are cents,
// durations are milliseconds.
type GameSettings struct {
	MinPlayers         int `hcl:"min_players,optional"`
	MaxSeats           int `hcl:"max_seats,optional"`
	Decks              int `hcl:"decks,optional"`
	AnteCents          int `hcl:"ante_cents,optional"`
	PairPenaltyCents   int `hcl:"pair_penalty_cents,optional"`
	ChallengeFineCents int `hcl:"challenge_fine_cents,optional"`
	DramaticBetCents   int `hcl:"dramatic_bet_cents,optional"`
	ChallengeWindowMs  int `hcl:"challenge_window_ms,optional"`
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
	}
}

// LoadServerConfig loads server configuration from an HCL file, falling
// back to defaults when the file doesn't exist.
func LoadServerConfig(filename string) (*ServerConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultServerConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ServerConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}

	return &config, nil
}

// Addr returns the listen address in host:port form
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// GameConfig overlays any configured game settings onto the defaults.
func (c *ServerConfig) GameConfig() game.Config {
	cfg := game.DefaultConfig()
	g := c.Game
	if g == nil {
		return cfg
	}
	if g.MinPlayers > 0 {
		cfg.MinPlayers = g.MinPlayers
	}
	if g.MaxSeats > 0 {
		cfg.MaxSeats = g.MaxSeats
	}
	if g.Decks > 0 {
		cfg.NumDecks = g.Decks
	}
	if g.AnteCents > 0 {
		cfg.AnteCents = g.AnteCents
	}
	if g.PairPenaltyCents > 0 {
		cfg.PairPenaltyCents = g.PairPenaltyCents
	}
	if g.ChallengeFineCents > 0 {
		cfg.ChallengeFineCents = g.ChallengeFineCents
	}
	if g.DramaticBetCents > 0 {
		cfg.DramaticBetCents = g.DramaticBetCents
	}
	if g.ChallengeWindowMs > 0 {
		cfg.ChallengeWindow = time.Duration(g.ChallengeWindowMs) * time.Millisecond
	}
	return cfg
}
