package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BodyTuning is the shared size and per-tick speed of one entity kind,
// in virtual coordinates.
type BodyTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // distance per tick
}

// Tuning holds entity constants loaded from tuning.yaml.
type Tuning struct {
	Bullet BodyTuning `yaml:"bullet"`
	Enemy  BodyTuning `yaml:"enemy"`
}

// DefaultTuning returns the built-in entity constants.
func DefaultTuning() Tuning {
	return Tuning{
		Bullet: BodyTuning{Width: 2, Height: 2, Speed: 1.5},
		Enemy:  BodyTuning{Width: 8, Height: 6, Speed: 0.25},
	}
}

// LoadTuning loads tuning.yaml on top of DefaultTuning. Keys missing from
// the file keep their default.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	if err := t.Bullet.validate("bullet"); err != nil {
		return err
	}
	return t.Enemy.validate("enemy")
}

func (b BodyTuning) validate(kind string) error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%s size must be positive, got %vx%v", kind, b.Width, b.Height)
	}
	if b.Speed <= 0 {
		return fmt.Errorf("%s speed must be positive, got %v", kind, b.Speed)
	}
	return nil
}
