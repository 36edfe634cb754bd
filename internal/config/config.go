// Package config loads the YAML file shared by the slider example programs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/elastic"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Settle  SettleConfig   `yaml:"settle"`
	Debug   bool           `yaml:"debug"`
	Sliders []SliderConfig `yaml:"sliders"`
}

type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"show_fps"`
}

// SettleConfig selects how stretch and fill return to rest.
type SettleConfig struct {
	Mode      string  `yaml:"mode"`     // "tween" or "spring"
	Duration  float64 `yaml:"duration"` // tween seconds
	FPS       int     `yaml:"fps"`      // spring step rate
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

type SliderConfig struct {
	Label   string   `yaml:"label"`
	Suffix  string   `yaml:"suffix"`
	Value   int      `yaml:"value"`
	Min     int      `yaml:"min"`
	Max     int      `yaml:"max"`
	Presets []string `yaml:"presets"`
}

const (
	SettleTween  = "tween"
	SettleSpring = "spring"
)

var ErrUnknownSettle = errors.New("unknown settle mode")

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Elastic Slider",
			Width:  480,
			Height: 360,
		},
		Settle: SettleConfig{
			Mode:      SettleTween,
			Duration:  elastic.DefaultSettleDuration,
			FPS:       60,
			Frequency: 6,
			Damping:   0.4,
		},
	}
}

// Default returns the built-in configuration: a 0..100 slider with preset
// buttons and a 0..300 slider with a "K" suffix.
func Default() *Config {
	cfg := defaults()
	cfg.Sliders = []SliderConfig{
		{
			Label:   "test score 0-100",
			Value:   25,
			Max:     100,
			Presets: []string{"1-5", "5-10", "11-25", "26-50", "51-99", "100"},
		},
		{
			Label:  "test score with prefix",
			Suffix: "K",
			Value:  184,
			Max:    300,
		},
	}
	return cfg
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. A document
// without sliders gets the built-in ones.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if len(cfg.Sliders) == 0 {
		cfg.Sliders = Default().Sliders
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks window size, settle mode, slider ranges and presets.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.Settle.Mode {
	case SettleTween:
		if c.Settle.Duration <= 0 {
			return fmt.Errorf("config: settle duration %v must be positive", c.Settle.Duration)
		}
	case SettleSpring:
		if c.Settle.FPS <= 0 {
			return fmt.Errorf("config: settle fps %d must be positive", c.Settle.FPS)
		}
	default:
		return fmt.Errorf("config: settle mode %q: %w", c.Settle.Mode, ErrUnknownSettle)
	}
	for i, s := range c.Sliders {
		if err := s.Range().Validate(); err != nil {
			return fmt.Errorf("config: slider %d (%q): range [%d, %d]: %w", i, s.Label, s.Min, s.Max, err)
		}
		for _, p := range s.Presets {
			v, err := PresetValue(p)
			if err != nil {
				return fmt.Errorf("config: slider %d (%q): %w", i, s.Label, err)
			}
			if r := s.Range(); v < r.Min || v > r.Max {
				return fmt.Errorf("config: slider %d (%q): preset %q outside [%d, %d]", i, s.Label, p, r.Min, r.Max)
			}
		}
	}
	return nil
}

// Range returns the slider's domain. Leaving min and max both zero selects
// 0..100.
func (s SliderConfig) Range() elastic.Range {
	if s.Min == 0 && s.Max == 0 {
		return elastic.DefaultRange
	}
	return elastic.Range{Min: s.Min, Max: s.Max}
}

// Factory returns the settler constructor for the configured mode.
func (s SettleConfig) Factory() func() elastic.Settler {
	if s.Mode == SettleSpring {
		return elastic.SpringFactory(s.FPS, s.Frequency, s.Damping)
	}
	return elastic.TweenFactory(float32(s.Duration))
}

// PresetValue returns the value a preset label selects: the integer before
// the first dash, so "26-50" selects 26 and "100" selects 100.
func PresetValue(label string) (int, error) {
	head, _, _ := strings.Cut(label, "-")
	v, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, fmt.Errorf("preset %q: %w", label, err)
	}
	return v, nil
}

// PresetActive reports whether a preset is highlighted for value. Only
// single-value presets (no dash) highlight, when they equal value.
func PresetActive(label string, value int) bool {
	if strings.Contains(label, "-") {
		return false
	}
	v, err := PresetValue(label)
	return err == nil && v == value
}
