package postfx

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNewViewId_Unique(t *testing.T) {
	seen := make(map[ViewId]bool)
	for i := 0; i < 100; i++ {
		id := NewViewId()
		if seen[id] {
			t.Fatalf("duplicate view id %s", id)
		}
		seen[id] = true
	}
}

func TestViewTargetStale(t *testing.T) {
	target := &ViewTarget{
		Width:  1280,
		Height: 720,
		Format: wgpu.TextureFormatRGBA8Unorm,
	}

	assert.False(t, viewTargetStale(target, 1280, 720, wgpu.TextureFormatRGBA8Unorm))
	assert.True(t, viewTargetStale(target, 1920, 720, wgpu.TextureFormatRGBA8Unorm), "resize width")
	assert.True(t, viewTargetStale(target, 1280, 1080, wgpu.TextureFormatRGBA8Unorm), "resize height")
	assert.True(t, viewTargetStale(target, 1280, 720, wgpu.TextureFormatBGRA8Unorm), "format change")
}
