package postfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// edgeSign returns which side of edge a->b the point p lies on.
func edgeSign(a, b, p mgl32.Vec2) float32 {
	return (b.X()-a.X())*(p.Y()-a.Y()) - (b.Y()-a.Y())*(p.X()-a.X())
}

func triangleContains(a, b, c, p mgl32.Vec2) bool {
	d0 := edgeSign(a, b, p)
	d1 := edgeSign(b, c, p)
	d2 := edgeSign(c, a, p)

	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	return !(hasNeg && hasPos)
}

func TestFullscreenVertex_CoversViewport(t *testing.T) {
	var clip [3]mgl32.Vec2
	for i := uint32(0); i < 3; i++ {
		pos, _ := FullscreenVertex(i)
		assert.Equal(t, float32(0), pos.Z())
		assert.Equal(t, float32(1), pos.W())
		clip[i] = mgl32.Vec2{pos.X(), pos.Y()}
	}

	// Every corner of the clip-space viewport must fall inside the
	// triangle, so rasterization leaves no gaps.
	corners := []mgl32.Vec2{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, {0, 0}}
	for _, p := range corners {
		if !triangleContains(clip[0], clip[1], clip[2], p) {
			t.Errorf("viewport point %v not covered by fullscreen triangle %v", p, clip)
		}
	}
}

func TestFullscreenVertex_WindingIsCounterClockwise(t *testing.T) {
	// The pipeline culls back faces with CCW as front, so the emitted order
	// must have positive signed area in clip space or nothing is drawn.
	var clip [3]mgl32.Vec2
	for i := uint32(0); i < 3; i++ {
		pos, _ := FullscreenVertex(i)
		clip[i] = mgl32.Vec2{pos.X(), pos.Y()}
	}
	area := edgeSign(clip[0], clip[1], clip[2])
	assert.Greater(t, area, float32(0), "fullscreen triangle %v is not counter-clockwise", clip)
}

func TestFullscreenVertex_UVMatchesClipSpace(t *testing.T) {
	// UV must be the y-flipped remap of clip space onto [0,1], so the
	// interpolated UV over the visible region spans exactly 0..1.
	for i := uint32(0); i < 3; i++ {
		pos, uv := FullscreenVertex(i)
		assert.InDelta(t, (pos.X()+1)/2, uv.X(), 1e-6)
		assert.InDelta(t, (1-pos.Y())/2, uv.Y(), 1e-6)
	}
}

func TestFullscreenVertex_PureFunction(t *testing.T) {
	for i := uint32(0); i < 3; i++ {
		p1, uv1 := FullscreenVertex(i)
		p2, uv2 := FullscreenVertex(i)
		assert.Equal(t, p1, p2)
		assert.Equal(t, uv1, uv2)
	}
}
