package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/OCharnyshevich/blossom-gen/pkg/world/gen"
	"github.com/OCharnyshevich/blossom-gen/pkg/world/gen/sakura"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TREEGEN_"

// Generators lists the accepted terrain generator names.
var Generators = []string{"flat", "meadow", "hills"}

// Config holds the generator configuration.
type Config struct {
	Seed          int64  `json:"seed" env:"SEED"`
	GeneratorType string `json:"generator_type" env:"GENERATOR"`  // "flat", "meadow" or "hills"
	Biome         string `json:"biome" env:"BIOME"`               // flat and meadow only
	WorldRadius   int    `json:"world_radius" env:"WORLD_RADIUS"` // loaded area in chunks around the origin
	TreesPerChunk int    `json:"trees_per_chunk" env:"TREES_PER_CHUNK"`
	Version       string `json:"version" env:"VERSION"`
	JournalPath   string `json:"journal_path" env:"JOURNAL"`
	PresetSource  string `json:"preset_source" env:"PRESET"`
	LogLevel      string `json:"log_level" env:"LOG_LEVEL"`

	Tree sakura.Params `json:"tree" envPrefix:"TREE_"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Seed:          1234,
		GeneratorType: "meadow",
		Biome:         "forest",
		WorldRadius:   4,
		TreesPerChunk: 2,
		Version:       "pc-1.8",
		JournalPath:   "journal.db",
		LogLevel:      "info",
		Tree:          sakura.DefaultParams(),
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["biome"] {
		cfg.Biome = fromFile.Biome
	}
	if !explicitFlags["world-radius"] {
		cfg.WorldRadius = fromFile.WorldRadius
	}
	if !explicitFlags["trees-per-chunk"] {
		cfg.TreesPerChunk = fromFile.TreesPerChunk
	}
	if !explicitFlags["version"] {
		cfg.Version = fromFile.Version
	}
	if !explicitFlags["journal"] {
		cfg.JournalPath = fromFile.JournalPath
	}
	if !explicitFlags["preset"] {
		cfg.PresetSource = fromFile.PresetSource
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
	// Tree proportions have no flags of their own.
	cfg.Tree = fromFile.Tree
}

// LoadEnv overrides cfg with any TREEGEN_* variables that are set.
func LoadEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Generators, c.GeneratorType) {
		errs = append(errs, fmt.Errorf("unknown generator %q, want one of %s",
			c.GeneratorType, strings.Join(Generators, ", ")))
	}
	if _, ok := gen.BiomeByName[c.Biome]; !ok && c.GeneratorType != "hills" {
		errs = append(errs, fmt.Errorf("unknown biome %q", c.Biome))
	}
	if c.WorldRadius < 1 {
		errs = append(errs, fmt.Errorf("world_radius must be at least 1, got %d", c.WorldRadius))
	}
	if c.TreesPerChunk < 0 {
		errs = append(errs, fmt.Errorf("trees_per_chunk must not be negative, got %d", c.TreesPerChunk))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Tree.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tree: %w", err))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// NewGenerator builds the terrain generator the config names.
func (c *Config) NewGenerator() (gen.Generator, error) {
	switch c.GeneratorType {
	case "hills":
		return gen.NewHillsGenerator(c.Seed), nil
	case "flat", "meadow":
		biome, ok := gen.BiomeByName[c.Biome]
		if !ok {
			return nil, fmt.Errorf("unknown biome %q", c.Biome)
		}
		if c.GeneratorType == "flat" {
			return gen.NewFlatGenerator(c.Seed).WithBiome(biome), nil
		}
		return gen.NewMeadowGenerator(c.Seed, biome), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", c.GeneratorType)
	}
}
