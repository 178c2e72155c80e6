package postfx

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Bloom configures the bright-pass glow effect. The fields are uploaded to
// the GPU parameter block but the blur/scatter chain itself is not wired up
// yet, so changing them has no visible effect.
type Bloom struct {
	Threshold float32
	Intensity float32
	Scatter   float32
	Tint      mgl32.Vec4
	Clamp     float32
}

func DefaultBloom() Bloom {
	return Bloom{
		Threshold: 0.9,
		Intensity: 0.0,
		Scatter:   0.7,
		Tint:      mgl32.Vec4{1, 1, 1, 1},
		Clamp:     65472.0,
	}
}

// ChannelMixing remixes the RGB channels with a 3x3 matrix. Each row holds
// the source-channel weights for one output channel, so the default is the
// identity mix.
type ChannelMixing struct {
	Red   mgl32.Vec3
	Green mgl32.Vec3
	Blue  mgl32.Vec3
}

func DefaultChannelMixing() ChannelMixing {
	return ChannelMixing{
		Red:   mgl32.Vec3{1, 0, 0},
		Green: mgl32.Vec3{0, 1, 0},
		Blue:  mgl32.Vec3{0, 0, 1},
	}
}

// Mat3 returns the mixing matrix with Red/Green/Blue as its rows.
// mgl32 matrices are column-major, same as WGSL.
func (c ChannelMixing) Mat3() mgl32.Mat3 {
	return mgl32.Mat3{
		c.Red.X(), c.Green.X(), c.Blue.X(),
		c.Red.Y(), c.Green.Y(), c.Blue.Y(),
		c.Red.Z(), c.Green.Z(), c.Blue.Z(),
	}
}

type Tonemapping int

const (
	TonemappingNone Tonemapping = iota
	TonemappingNormal
	TonemappingACES
)

// Settings bundles the per-camera effect configuration. A nil Bloom or
// ChannelMixing means "effect not attached": defaults are packed in its
// place so the fixed shader chain stays a no-op for it.
type Settings struct {
	Bloom         *Bloom
	ChannelMixing *ChannelMixing
	Tonemapping   Tonemapping
}

// Flags reports which effects are attached. The word is uploaded with the
// parameter block; the fragment chain does not consult it yet (effect
// toggling at pipeline-variant level is still an open point).
func (s *Settings) Flags() UberFlags {
	var flags UberFlags
	if s.Bloom != nil {
		flags |= FlagBloom
	}
	if s.ChannelMixing != nil {
		flags |= FlagChannelMixing
	}
	switch s.Tonemapping {
	case TonemappingNormal:
		flags |= FlagNormalTonemapping
	case TonemappingACES:
		flags |= FlagACESTonemapping
	}
	return flags
}

func (s *Settings) bloomOrDefault() Bloom {
	if s.Bloom != nil {
		return *s.Bloom
	}
	return DefaultBloom()
}

func (s *Settings) mixingOrDefault() ChannelMixing {
	if s.ChannelMixing != nil {
		return *s.ChannelMixing
	}
	return DefaultChannelMixing()
}
