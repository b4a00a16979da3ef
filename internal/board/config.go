package board

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the root structure of a board.toml file.
type Config struct {
	Board BoardConfig `toml:"board"`
}

// BoardConfig holds the configurable dimensions. Zero values fall back to
// the defaults, so a partial file only overrides what it names.
type BoardConfig struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Thickness float64 `toml:"thickness"`
}

// LoadConfig reads a TOML file and returns the resulting geometry.
func LoadConfig(path string) (Geometry, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Geometry{}, fmt.Errorf("board config %s: %w", path, err)
	}
	return cfg.Board.Geometry(), nil
}

// Geometry applies defaults for unset dimensions.
func (c BoardConfig) Geometry() Geometry {
	g := Default()
	if c.Width > 0 {
		g.Width = c.Width
	}
	if c.Height > 0 {
		g.Height = c.Height
	}
	if c.Thickness > 0 {
		g.Thickness = c.Thickness
	}
	return g
}
