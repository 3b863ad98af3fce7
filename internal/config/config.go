package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/tensorpeek/pkg/render"
	"github.com/san-kum/tensorpeek/pkg/termcap"
)

const (
	DefaultRamp     = "density"
	DefaultColor    = "auto"
	DefaultLogLevel = "info"
)

type Config struct {
	MaxRows  int    `yaml:"max_rows"`
	MaxCols  int    `yaml:"max_cols"`
	Ramp     string `yaml:"ramp"`
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxRows:  render.DefaultMaxRows,
		MaxCols:  render.DefaultMaxCols,
		Ramp:     DefaultRamp,
		Color:    DefaultColor,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options translates the file settings into render options. Ramp may name a
// preset or spell out the glyphs directly; color resolution happens per call
// through Capability, so Options leaves it zeroed.
func (c *Config) Options() (render.Options, error) {
	ramp := GetRamp(c.Ramp)
	if ramp == "" {
		return render.Options{}, fmt.Errorf("unknown ramp: %s (available: %v)", c.Ramp, ListRamps())
	}
	return render.Options{
		MaxRows: c.MaxRows,
		MaxCols: c.MaxCols,
		Ramp:    ramp,
	}, nil
}

// Capability applies the color override: "always" and "never" pin the
// answer, "auto" defers to the COLORTERM check.
func (c *Config) Capability() (termcap.Capability, error) {
	switch c.Color {
	case "always":
		return termcap.Capability{TrueColor: true}, nil
	case "never":
		return termcap.Capability{}, nil
	case "auto", "":
		return termcap.Detect(), nil
	default:
		return termcap.Capability{}, fmt.Errorf("unknown color mode: %s (auto, always, never)", c.Color)
	}
}

// Level parses the configured log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
