package postfx

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ACESFilm is the fixed-coefficient ACES filmic curve approximation used by
// the fragment stage, applied per channel:
//
//	clamp01((x*(2.51x+0.03)) / (x*(2.43x+0.59)+0.14))
//
// Negative input is treated as 0; the rational form would otherwise map
// negative values above zero. Note the curve does not reach 1.0 at x=1; it
// saturates around x≈7.2.
func ACESFilm(x float32) float32 {
	if x < 0 {
		x = 0
	}
	return clamp01((x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14))
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// GradeColor runs the fragment transform chain on the CPU: channel mixing
// first, then ACES tonemapping, alpha untouched. This mirrors fs_main in
// shaders/uber.wgsl exactly, including the fact that the chain is fixed and
// the flag word is not consulted.
func GradeColor(c mgl32.Vec4, s *Settings) mgl32.Vec4 {
	rgb := s.mixingOrDefault().Mat3().Mul3x1(mgl32.Vec3{c.X(), c.Y(), c.Z()})
	return mgl32.Vec4{
		ACESFilm(rgb.X()),
		ACESFilm(rgb.Y()),
		ACESFilm(rgb.Z()),
		c.W(),
	}
}
