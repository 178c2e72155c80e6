package postfx

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FullscreenVertex is the CPU mirror of vs_main in shaders/uber.wgsl.
// For indices 0, 1, 2 it synthesizes an oversized triangle that covers the
// whole viewport, with no vertex buffer bound: the low two bits of the
// index pick the corner combination, ordered counter-clockwise in clip
// space so the pipeline's back-face culling keeps the triangle.
//
//	index 0: clip (-1,  1), uv (0, 0)
//	index 1: clip (-1, -3), uv (0, 2)
//	index 2: clip ( 3,  1), uv (2, 0)
//
// UV origin is the top-left corner, y down, matching texture space.
func FullscreenVertex(index uint32) (pos mgl32.Vec4, uv mgl32.Vec2) {
	uv = mgl32.Vec2{
		float32(index>>1) * 2,
		float32(index&1) * 2,
	}
	pos = mgl32.Vec4{uv.X()*2 - 1, 1 - uv.Y()*2, 0, 1}
	return pos, uv
}
