package postfx

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"
)

// ViewId identifies one camera view registered with the cache.
type ViewId string

func NewViewId() ViewId {
	return ViewId(uuid.NewString())
}

// ViewTarget is the offscreen color target the uber pass renders into for
// one view.
type ViewTarget struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView
	Width   uint32
	Height  uint32
	Format  wgpu.TextureFormat
}

// ViewTargetCache hands out per-view color targets and reuses them across
// frames, reallocating only when the view is resized or its format changes.
type ViewTargetCache struct {
	Device  *wgpu.Device
	Log     Logger
	targets map[ViewId]*ViewTarget
}

func NewViewTargetCache(device *wgpu.Device) *ViewTargetCache {
	return &ViewTargetCache{
		Device:  device,
		Log:     NewNopLogger(),
		targets: make(map[ViewId]*ViewTarget),
	}
}

// Get returns the color target for the view, creating or reallocating it if
// the requested size or format no longer matches.
func (c *ViewTargetCache) Get(id ViewId, width, height uint32, format wgpu.TextureFormat) (*ViewTarget, error) {
	if t, ok := c.targets[id]; ok && !viewTargetStale(t, width, height, format) {
		return t, nil
	}

	c.Remove(id)

	texture, err := c.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "UberViewTarget",
		Size:          wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, err
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, err
	}

	t := &ViewTarget{
		Texture: texture,
		View:    view,
		Width:   width,
		Height:  height,
		Format:  format,
	}
	c.targets[id] = t
	c.Log.Debugf("view target %s: allocated %dx%d", id, width, height)
	return t, nil
}

// Remove releases the target of one view, if any.
func (c *ViewTargetCache) Remove(id ViewId) {
	if t, ok := c.targets[id]; ok {
		t.View.Release()
		t.Texture.Release()
		delete(c.targets, id)
	}
}

// Release frees all cached targets.
func (c *ViewTargetCache) Release() {
	for id := range c.targets {
		c.Remove(id)
	}
}

func viewTargetStale(t *ViewTarget, width, height uint32, format wgpu.TextureFormat) bool {
	return t.Width != width || t.Height != height || t.Format != format
}
