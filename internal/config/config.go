// Package config loads dungeongen settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dungeongen/internal/dungeon"
	"github.com/samdwyer/dungeongen/internal/logger"
	"github.com/samdwyer/dungeongen/internal/telemetry"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// MinDimension is the smallest accepted width or height.
const MinDimension = 10

// Config is the top-level configuration file.
type Config struct {
	Generator GeneratorConfig  `yaml:"generator"`
	Logging   logger.Config    `yaml:"logging"`
	Telemetry telemetry.Config `yaml:"telemetry"`
}

// GeneratorConfig mirrors dungeon.Options in YAML form.
type GeneratorConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Seed        int64  `yaml:"seed"` // 0 picks a seed from the clock
	DungeonType string `yaml:"dungeon_type"`
	MapType     string `yaml:"map_type"`

	RoomDensity     float64 `yaml:"room_density"`
	CorridorWidth   int     `yaml:"corridor_width"`
	WaterPools      float64 `yaml:"water_pools"`
	TreasureDensity float64 `yaml:"treasure_density"`
	MonsterDensity  float64 `yaml:"monster_density"`
	RoomSizeMin     int     `yaml:"room_size_min"`
	RoomSizeMax     int     `yaml:"room_size_max"`
	CaveRoundness   float64 `yaml:"cave_roundness"`
	OpenSpaceAmount float64 `yaml:"open_space_amount"`
	ModuleSize      int     `yaml:"module_size"`

	SmoothIterations int     `yaml:"smooth_iterations"`
	DungeonLevel     int     `yaml:"dungeon_level"`
	LockRatio        float64 `yaml:"lock_ratio"`
	SecretPassages   int     `yaml:"secret_passages"`
	TrapDensity      float64 `yaml:"trap_density"`
	TreasureVault    bool    `yaml:"treasure_vault"`
	Decorate         bool    `yaml:"decorate"`
	ColumnFrequency  float64 `yaml:"column_frequency"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	o := dungeon.DefaultOptions()
	return &Config{
		Generator: GeneratorConfig{
			Width:            o.Width,
			Height:           o.Height,
			Seed:             o.Seed,
			DungeonType:      o.DungeonType,
			MapType:          string(o.MapType),
			RoomDensity:      o.RoomDensity,
			CorridorWidth:    o.CorridorWidth,
			WaterPools:       o.WaterPools,
			TreasureDensity:  o.TreasureDensity,
			MonsterDensity:   o.MonsterDensity,
			RoomSizeMin:      o.RoomSizeMin,
			RoomSizeMax:      o.RoomSizeMax,
			CaveRoundness:    o.CaveRoundness,
			OpenSpaceAmount:  o.OpenSpaceAmount,
			ModuleSize:       o.ModuleSize,
			SmoothIterations: o.SmoothIterations,
			DungeonLevel:     o.DungeonLevel,
			LockRatio:        o.LockRatio,
			SecretPassages:   o.SecretPassages,
			TrapDensity:      o.TrapDensity,
			TreasureVault:    o.TreasureVault,
			Decorate:         o.Decorate,
			ColumnFrequency:  o.ColumnFrequency,
		},
		Logging:   logger.DefaultConfig(),
		Telemetry: telemetry.DefaultConfig(),
	}
}

// LoadConfig reads path over the defaults, applies environment overrides
// and validates the result. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv applies DUNGEONGEN_* and LOG_* environment overrides.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DUNGEONGEN_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: DUNGEONGEN_SEED=%q", ErrInvalid, v)
		}
		c.Generator.Seed = seed
	}
	for name, dst := range map[string]*int{
		"DUNGEONGEN_WIDTH":  &c.Generator.Width,
		"DUNGEONGEN_HEIGHT": &c.Generator.Height,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, name, v)
		}
		*dst = n
	}
	if v := os.Getenv("DUNGEONGEN_MAP_TYPE"); v != "" {
		c.Generator.MapType = v
	}
	if v := os.Getenv("DUNGEONGEN_DUNGEON_TYPE"); v != "" {
		c.Generator.DungeonType = v
	}

	c.Logging = c.Logging.ApplyEnv()
	return nil
}

// Validate rejects settings the generator cannot honour.
func (c *Config) Validate() error {
	g := c.Generator
	if g.Width < MinDimension || g.Height < MinDimension {
		return fmt.Errorf("%w: size %dx%d is below %dx%d", ErrInvalid, g.Width, g.Height, MinDimension, MinDimension)
	}
	if _, err := dungeon.ParseMapType(g.MapType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	densities := []struct {
		name  string
		value float64
	}{
		{"room_density", g.RoomDensity},
		{"water_pools", g.WaterPools},
		{"treasure_density", g.TreasureDensity},
		{"monster_density", g.MonsterDensity},
		{"lock_ratio", g.LockRatio},
		{"trap_density", g.TrapDensity},
		{"column_frequency", g.ColumnFrequency},
	}
	for _, d := range densities {
		if d.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalid, d.name, d.value)
		}
	}
	if g.RoomSizeMin > g.RoomSizeMax {
		return fmt.Errorf("%w: room_size_min %d exceeds room_size_max %d", ErrInvalid, g.RoomSizeMin, g.RoomSizeMax)
	}
	if g.SecretPassages < 0 || g.SmoothIterations < 0 {
		return fmt.Errorf("%w: counts must not be negative", ErrInvalid)
	}
	return nil
}

// Options converts the generator section into dungeon.Options.
func (g GeneratorConfig) Options() dungeon.Options {
	return dungeon.Options{
		Width:            g.Width,
		Height:           g.Height,
		Seed:             g.Seed,
		DungeonType:      g.DungeonType,
		MapType:          dungeon.MapType(g.MapType),
		RoomDensity:      g.RoomDensity,
		CorridorWidth:    g.CorridorWidth,
		WaterPools:       g.WaterPools,
		TreasureDensity:  g.TreasureDensity,
		MonsterDensity:   g.MonsterDensity,
		RoomSizeMin:      g.RoomSizeMin,
		RoomSizeMax:      g.RoomSizeMax,
		CaveRoundness:    g.CaveRoundness,
		OpenSpaceAmount:  g.OpenSpaceAmount,
		ModuleSize:       g.ModuleSize,
		SmoothIterations: g.SmoothIterations,
		DungeonLevel:     g.DungeonLevel,
		LockRatio:        g.LockRatio,
		SecretPassages:   g.SecretPassages,
		TrapDensity:      g.TrapDensity,
		TreasureVault:    g.TreasureVault,
		Decorate:         g.Decorate,
		ColumnFrequency:  g.ColumnFrequency,
	}
}
