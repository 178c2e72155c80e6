package postfx

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// UberFlags is the effect-selection bit word carried in the first field of
// the uber parameter block.
type UberFlags uint32

const (
	FlagBloom             UberFlags = 1 << 0
	FlagNormalTonemapping UberFlags = 1 << 1
	FlagACESTonemapping   UberFlags = 1 << 2
	FlagChannelMixing     UberFlags = 1 << 3
)

// WGSL uniform layout of the uber parameter block:
//
//	struct Bloom {
//	  threshold: f32,     -- 16
//	  intensity: f32,     -- 20
//	  scatter: f32,       -- 24
//	  tint: vec4<f32>,    -- 32
//	  clamp: f32,         -- 48
//	}                     -- size 48 (align 16)
//	struct Uber {
//	  flags: u32,                   -- 0
//	  bloom: Bloom,                 -- 16
//	  channel_mixing: mat3x3<f32>,  -- 64 (vec3 columns at 64, 80, 96)
//	}                               -- 112 bytes
const UberUniformSize = 112

// WGSL uniform layout of the per-camera view block:
//
//	struct View {
//	  view_proj: mat4x4<f32>,           -- 0
//	  view: mat4x4<f32>,                -- 64
//	  inverse_view: mat4x4<f32>,        -- 128
//	  projection: mat4x4<f32>,          -- 192
//	  inverse_projection: mat4x4<f32>,  -- 256
//	  world_position: vec3<f32>,        -- 320
//	}                                   -- 336 bytes (padded)
const ViewUniformSize = 336

// View holds the per-camera matrices and world-space camera position. It is
// rebuilt by the host once per frame and uploaded as a single uniform block.
type View struct {
	ViewProj      mgl32.Mat4
	View          mgl32.Mat4
	InvView       mgl32.Mat4
	Proj          mgl32.Mat4
	InvProj       mgl32.Mat4
	WorldPosition mgl32.Vec3
}

// NewView derives the combined and inverse matrices from a view and
// projection matrix pair.
func NewView(view, proj mgl32.Mat4, worldPosition mgl32.Vec3) *View {
	return &View{
		ViewProj:      proj.Mul4(view),
		View:          view,
		InvView:       view.Inv(),
		Proj:          proj,
		InvProj:       proj.Inv(),
		WorldPosition: worldPosition,
	}
}

func putF32(buf []byte, offset int, v float32) {
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v))
}

func putMat4(buf []byte, offset int, m mgl32.Mat4) {
	for i, v := range m {
		putF32(buf, offset+i*4, v)
	}
}

func putVec4(buf []byte, offset int, v mgl32.Vec4) {
	putF32(buf, offset, v.X())
	putF32(buf, offset+4, v.Y())
	putF32(buf, offset+8, v.Z())
	putF32(buf, offset+12, v.W())
}

// PackUberUniform serializes the effect settings into the 112-byte uber
// parameter block. Absent sub-records are packed with their defaults, which
// keeps the always-applied channel mix an identity transform.
func PackUberUniform(s *Settings) []byte {
	buf := make([]byte, UberUniformSize)

	binary.LittleEndian.PutUint32(buf[0:], uint32(s.Flags()))

	bloom := s.bloomOrDefault()
	putF32(buf, 16, bloom.Threshold)
	putF32(buf, 20, bloom.Intensity)
	putF32(buf, 24, bloom.Scatter)
	putVec4(buf, 32, bloom.Tint)
	putF32(buf, 48, bloom.Clamp)

	// mat3x3<f32>: three vec3 columns, each padded to 16 bytes.
	m := s.mixingOrDefault().Mat3()
	for col := 0; col < 3; col++ {
		base := 64 + col*16
		putF32(buf, base, m.At(0, col))
		putF32(buf, base+4, m.At(1, col))
		putF32(buf, base+8, m.At(2, col))
	}

	return buf
}

// PackViewUniform serializes the per-camera view block (336 bytes).
func PackViewUniform(v *View) []byte {
	buf := make([]byte, ViewUniformSize)

	putMat4(buf, 0, v.ViewProj)
	putMat4(buf, 64, v.View)
	putMat4(buf, 128, v.InvView)
	putMat4(buf, 192, v.Proj)
	putMat4(buf, 256, v.InvProj)

	putF32(buf, 320, v.WorldPosition.X())
	putF32(buf, 324, v.WorldPosition.Y())
	putF32(buf, 328, v.WorldPosition.Z())

	return buf
}
