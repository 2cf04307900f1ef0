// Package config loads server and game settings from an HCL file with
// environment overrides.
//
//	game {
//	  rows                 = 10
//	  cols                 = 10
//	  obstacle_probability = 0.2
//	  slow_probability     = 0.1
//	  move_limit           = 30
//	  max_attempts         = 100
//	  seed                 = 42
//	  strategy             = "heap"
//	  symmetric            = false
//	}
//
//	server {
//	  addr            = ":8080"
//	  mode            = "development"
//	  allowed_origins = ["http://localhost:3000"]
//	}
//
// Every attribute and both blocks are optional; missing values keep their
// Default. APP_ADDR overrides server.addr and DEVELOPMENT=1 forces
// development mode.
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/game"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrInvalid indicates a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Server modes.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Game holds the generator and session settings.
type Game struct {
	Rows                int
	Cols                int
	ObstacleProbability float64
	SlowProbability     float64
	MoveLimit           int
	MaxAttempts         int
	Seed                uint64
	Seeded              bool // Seed was set explicitly
	Strategy            dijkstra.Strategy
	Symmetric           bool // use dijkstra.TerrainCost instead of DirectionalCost
}

// Server holds the transport settings.
type Server struct {
	Addr           string
	Mode           string
	AllowedOrigins []string
}

// Config is the full application configuration.
type Config struct {
	Game   Game
	Server Server
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: Game{
			Rows:                game.DefaultRows,
			Cols:                game.DefaultCols,
			ObstacleProbability: game.DefaultObstacleProbability,
			SlowProbability:     game.DefaultSlowProbability,
			MoveLimit:           game.DefaultMoveLimit,
			MaxAttempts:         game.DefaultMaxAttempts,
			Strategy:            dijkstra.StrategyHeap,
		},
		Server: Server{
			Addr: ":8080",
			Mode: ModeProduction,
		},
	}
}

// hclFile mirrors the file layout. Pointer attributes distinguish "absent"
// from zero so that absent values keep their defaults.
type hclFile struct {
	Game   *hclGame   `hcl:"game,block"`
	Server *hclServer `hcl:"server,block"`
}

type hclGame struct {
	Rows                *int     `hcl:"rows,optional"`
	Cols                *int     `hcl:"cols,optional"`
	ObstacleProbability *float64 `hcl:"obstacle_probability,optional"`
	SlowProbability     *float64 `hcl:"slow_probability,optional"`
	MoveLimit           *int     `hcl:"move_limit,optional"`
	MaxAttempts         *int     `hcl:"max_attempts,optional"`
	Seed                *int64   `hcl:"seed,optional"`
	Strategy            *string  `hcl:"strategy,optional"`
	Symmetric           *bool    `hcl:"symmetric,optional"`
}

type hclServer struct {
	Addr           *string  `hcl:"addr,optional"`
	Mode           *string  `hcl:"mode,optional"`
	AllowedOrigins []string `hcl:"allowed_origins,optional"`
}

// Load reads path (an empty path means defaults only), applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		parser := hclparse.NewParser()
		f, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
		}
		if err := cfg.decode(f.Body); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}
	return cfg.finish()
}

// Parse is Load for in-memory sources; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	cfg := Default()
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	if err := cfg.decode(f.Body); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, err)
	}
	return cfg.finish()
}

func (c *Config) finish() (*Config, error) {
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) decode(body hcl.Body) error {
	var root hclFile
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return diags
	}

	if g := root.Game; g != nil {
		setIf(&c.Game.Rows, g.Rows)
		setIf(&c.Game.Cols, g.Cols)
		setIf(&c.Game.ObstacleProbability, g.ObstacleProbability)
		setIf(&c.Game.SlowProbability, g.SlowProbability)
		setIf(&c.Game.MoveLimit, g.MoveLimit)
		setIf(&c.Game.MaxAttempts, g.MaxAttempts)
		setIf(&c.Game.Symmetric, g.Symmetric)
		if g.Seed != nil {
			if *g.Seed < 0 {
				return fmt.Errorf("%w: seed must be non-negative", ErrInvalid)
			}
			c.Game.Seed = uint64(*g.Seed)
			c.Game.Seeded = true
		}
		if g.Strategy != nil {
			s, err := dijkstra.ParseStrategy(*g.Strategy)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalid, err)
			}
			c.Game.Strategy = s
		}
	}

	if s := root.Server; s != nil {
		setIf(&c.Server.Addr, s.Addr)
		setIf(&c.Server.Mode, s.Mode)
		if s.AllowedOrigins != nil {
			c.Server.AllowedOrigins = s.AllowedOrigins
		}
	}

	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (c *Config) applyEnv() {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok && addr != "" {
		c.Server.Addr = addr
	}
	if dev, ok := os.LookupEnv("DEVELOPMENT"); ok {
		switch strings.ToLower(dev) {
		case "1", "true", "yes":
			c.Server.Mode = ModeDevelopment
		}
	}
}

// Validate checks every setting and wraps failures in ErrInvalid.
func (c *Config) Validate() error {
	g := c.Game
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, g.Rows, g.Cols)
	}
	if err := gridgraph.ValidateProbabilities(g.ObstacleProbability, g.SlowProbability); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.GameParams().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Server.Mode {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Server.Mode)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: empty server address", ErrInvalid)
	}
	return nil
}

// Development reports whether the server runs in development mode.
func (c *Config) Development() bool {
	return c.Server.Mode == ModeDevelopment
}

// GameParams returns the session parameters.
func (c *Config) GameParams() game.Params {
	return game.Params{
		MoveLimit:   c.Game.MoveLimit,
		MaxAttempts: c.Game.MaxAttempts,
	}
}

// PathOptions returns the solver options implied by the game settings.
func (c *Config) PathOptions() []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithStrategy(c.Game.Strategy)}
	if c.Game.Symmetric {
		opts = append(opts, dijkstra.WithCostFunc(dijkstra.TerrainCost))
	}
	return opts
}

// RandomSource returns a grid source with the configured layout. With an
// explicit seed every call yields the same grid sequence.
func (c *Config) RandomSource() *game.RandomSource {
	src := &game.RandomSource{
		Rows:                c.Game.Rows,
		Cols:                c.Game.Cols,
		ObstacleProbability: c.Game.ObstacleProbability,
		SlowProbability:     c.Game.SlowProbability,
	}
	if c.Game.Seeded {
		src.Rand = rand.New(rand.NewPCG(c.Game.Seed, c.Game.Seed^0x9e3779b97f4a7c15))
	}
	return src
}

// Fields returns the configuration as log fields.
func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{
		"mode":                 c.Server.Mode,
		"addr":                 c.Server.Addr,
		"allowed_origins":      strings.Join(c.Server.AllowedOrigins, ","),
		"rows":                 c.Game.Rows,
		"cols":                 c.Game.Cols,
		"obstacle_probability": c.Game.ObstacleProbability,
		"slow_probability":     c.Game.SlowProbability,
		"move_limit":           c.Game.MoveLimit,
		"max_attempts":         c.Game.MaxAttempts,
		"seeded":               c.Game.Seeded,
		"strategy":             c.Game.Strategy.String(),
		"symmetric":            c.Game.Symmetric,
	}
}
