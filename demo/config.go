package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v2"

	"github.com/gekko3d/postfx"
)

// Config is the demo configuration, loaded from YAML.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	Effects EffectsConfig `yaml:"effects"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type InputConfig struct {
	Image string `yaml:"image"` // PNG path; empty uses a built-in gradient
}

type EffectsConfig struct {
	Bloom         *BloomConfig         `yaml:"bloom"`
	ChannelMixing *ChannelMixingConfig `yaml:"channel_mixing"`
	Tonemapping   string               `yaml:"tonemapping"` // none, normal, aces
}

type BloomConfig struct {
	Threshold float32    `yaml:"threshold"`
	Intensity float32    `yaml:"intensity"`
	Scatter   float32    `yaml:"scatter"`
	Tint      [4]float32 `yaml:"tint"`
	Clamp     float32    `yaml:"clamp"`
}

type ChannelMixingConfig struct {
	Red   [3]float32 `yaml:"red"`
	Green [3]float32 `yaml:"green"`
	Blue  [3]float32 `yaml:"blue"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "postfx demo",
		},
		Effects: EffectsConfig{
			Tonemapping: "aces",
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Settings converts the effect section into the library's per-camera
// settings.
func (c *Config) Settings() (*postfx.Settings, error) {
	s := &postfx.Settings{}

	if b := c.Effects.Bloom; b != nil {
		s.Bloom = &postfx.Bloom{
			Threshold: b.Threshold,
			Intensity: b.Intensity,
			Scatter:   b.Scatter,
			Tint:      mgl32.Vec4{b.Tint[0], b.Tint[1], b.Tint[2], b.Tint[3]},
			Clamp:     b.Clamp,
		}
	}

	if m := c.Effects.ChannelMixing; m != nil {
		s.ChannelMixing = &postfx.ChannelMixing{
			Red:   mgl32.Vec3{m.Red[0], m.Red[1], m.Red[2]},
			Green: mgl32.Vec3{m.Green[0], m.Green[1], m.Green[2]},
			Blue:  mgl32.Vec3{m.Blue[0], m.Blue[1], m.Blue[2]},
		}
	}

	switch c.Effects.Tonemapping {
	case "", "none":
		s.Tonemapping = postfx.TonemappingNone
	case "normal":
		s.Tonemapping = postfx.TonemappingNormal
	case "aces":
		s.Tonemapping = postfx.TonemappingACES
	default:
		return nil, fmt.Errorf("unknown tonemapping %q", c.Effects.Tonemapping)
	}

	return s, nil
}
