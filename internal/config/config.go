package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game      GameConfig      `toml:"game"`
	Spawn     SpawnConfig     `toml:"spawn"`
	Loop      LoopConfig      `toml:"loop"`
	Input     InputConfig     `toml:"input"`
	Data      DataConfig      `toml:"data"`
	Scripting ScriptingConfig `toml:"scripting"`
	Logging   LoggingConfig   `toml:"logging"`
}

type GameConfig struct {
	DisplayRatio float64 `toml:"display_ratio"` // height/width; 0 = derive from the terminal
	LifeLimit    int     `toml:"life_limit"`
	BulletLimit  int     `toml:"bullet_limit"` // simultaneous live bullets
	MaxBulletID  int     `toml:"max_bullet_id"`
	MaxEnemyID   int     `toml:"max_enemy_id"`
	Seed         int64   `toml:"seed"` // 0 = seed from the clock
}

type SpawnConfig struct {
	MinInterval int `toml:"min_interval"` // ticks, inclusive
	MaxInterval int `toml:"max_interval"` // ticks, exclusive
}

type LoopConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
}

type InputConfig struct {
	QueueSize          int     `toml:"queue_size"`
	MaxCommandsPerTick int     `toml:"max_commands_per_tick"`
	AimStep            float64 `toml:"aim_step"` // degrees per key press
	MinAngle           float64 `toml:"min_angle"`
	MaxAngle           float64 `toml:"max_angle"`
	StartAngle         float64 `toml:"start_angle"`
}

type DataConfig struct {
	Tuning string `toml:"tuning"` // yaml path; empty = built-in tuning
}

type ScriptingConfig struct {
	Dir string `toml:"dir"` // empty = no scripts
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Output string `toml:"output"` // file path, "stderr" or "stdout"
}

// Load reads a toml file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			DisplayRatio: 0,
			LifeLimit:    3,
			BulletLimit:  3,
			MaxBulletID:  10,
			MaxEnemyID:   30,
		},
		Spawn: SpawnConfig{
			MinInterval: 50,
			MaxInterval: 350,
		},
		Loop: LoopConfig{
			TickRate: 16 * time.Millisecond,
		},
		Input: InputConfig{
			QueueSize:          64,
			MaxCommandsPerTick: 8,
			AimStep:            5,
			MinAngle:           10,
			MaxAngle:           170,
			StartAngle:         90,
		},
		Data: DataConfig{
			Tuning: "data/tuning.yaml",
		},
		Scripting: ScriptingConfig{
			Dir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "shooter.log",
		},
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Game.DisplayRatio < 0 {
		errs = append(errs, fmt.Errorf("game.display_ratio must not be negative, got %v", c.Game.DisplayRatio))
	}
	if c.Game.LifeLimit < 1 {
		errs = append(errs, fmt.Errorf("game.life_limit must be at least 1, got %d", c.Game.LifeLimit))
	}
	if c.Game.BulletLimit < 0 {
		errs = append(errs, fmt.Errorf("game.bullet_limit must not be negative, got %d", c.Game.BulletLimit))
	}
	if c.Game.MaxBulletID < 1 || c.Game.MaxEnemyID < 1 {
		errs = append(errs, fmt.Errorf("game.max_bullet_id and game.max_enemy_id must be at least 1"))
	}
	if c.Spawn.MinInterval < 1 || c.Spawn.MaxInterval < c.Spawn.MinInterval {
		errs = append(errs, fmt.Errorf("spawn interval must satisfy 1 <= min_interval <= max_interval, got [%d, %d)",
			c.Spawn.MinInterval, c.Spawn.MaxInterval))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %s", c.Loop.TickRate))
	}
	if c.Input.QueueSize < 1 || c.Input.MaxCommandsPerTick < 1 {
		errs = append(errs, fmt.Errorf("input.queue_size and input.max_commands_per_tick must be at least 1"))
	}
	if c.Input.MinAngle > c.Input.MaxAngle {
		errs = append(errs, fmt.Errorf("input.min_angle %v is above input.max_angle %v", c.Input.MinAngle, c.Input.MaxAngle))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}
