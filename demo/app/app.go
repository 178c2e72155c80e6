package app

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/postfx"
)

// App is the windowed demo host: it uploads one source image as the "scene
// color" texture and runs the uber pass into the swapchain every frame.
type App struct {
	Window   *glfw.Window
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Surface  *wgpu.Surface
	Config   *wgpu.SurfaceConfiguration

	Pass     *postfx.UberRenderPass
	Settings *postfx.Settings
	Targets  *postfx.ViewTargetCache
	ViewId   postfx.ViewId

	SourceTexture *wgpu.Texture
	SourceView    *wgpu.TextureView

	Source image.Image
	Log    postfx.Logger

	CapturePath string
}

func NewApp(window *glfw.Window, settings *postfx.Settings, source image.Image, log postfx.Logger) *App {
	if log == nil {
		log = postfx.NewNopLogger()
	}
	return &App{
		Window:   window,
		Settings: settings,
		Source:   source,
		Log:      log,
	}
}

func (a *App) Init() error {
	a.Instance = wgpu.CreateInstance(nil)

	surface := a.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(a.Window))
	a.Surface = surface

	adapter, err := a.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return err
	}
	a.Adapter = adapter

	a.Device, err = adapter.RequestDevice(nil)
	if err != nil {
		return err
	}
	a.Queue = a.Device.GetQueue()

	width, height := a.Window.GetFramebufferSize()
	caps := surface.GetCapabilities(adapter)
	format := caps.Formats[0]

	a.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, a.Device, a.Config)

	a.Pass, err = postfx.NewUberRenderPass(a.Device, format)
	if err != nil {
		return err
	}
	a.Pass.Log = a.Log

	a.Targets = postfx.NewViewTargetCache(a.Device)
	a.Targets.Log = a.Log
	a.ViewId = postfx.NewViewId()

	if err := a.uploadSource(a.Source); err != nil {
		return err
	}
	if err := a.Pass.SetSource(a.SourceView); err != nil {
		return err
	}
	a.Pass.UpdateSettings(a.Queue, a.Settings)

	a.Log.Infof("demo initialized: %dx%d, surface format %v", width, height, format)
	return nil
}

func (a *App) Resize(w, h int) {
	if w > 0 && h > 0 {
		a.Config.Width = uint32(w)
		a.Config.Height = uint32(h)
		a.Surface.Configure(a.Adapter, a.Device, a.Config)
	}
}

// Update rebuilds the per-camera view block. The uber pass itself only
// needs the matrices as an opaque input, so a fixed camera is enough here.
func (a *App) Update() {
	aspect := float32(a.Config.Width) / float32(a.Config.Height)
	if aspect == 0 {
		aspect = 1.0
	}

	eye := mgl32.Vec3{0, 2, 5}
	view := mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), aspect, 0.1, 1000.0)

	a.Pass.UpdateView(a.Queue, postfx.NewView(view, proj, eye))
}

func (a *App) Render() error {
	nextTexture, err := a.Surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := a.Device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}

	rPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	a.Pass.Draw(rPass)
	if err := rPass.End(); err != nil {
		return err
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	a.Queue.Submit(cmd)
	a.Surface.Present()

	if a.CapturePath != "" {
		path := a.CapturePath
		a.CapturePath = ""
		if err := a.Capture(path); err != nil {
			a.Log.Errorf("capture failed: %v", err)
		} else {
			a.Log.Infof("captured frame to %s", path)
		}
	}
	return nil
}

func (a *App) Release() {
	if a.SourceView != nil {
		a.SourceView.Release()
	}
	if a.SourceTexture != nil {
		a.SourceTexture.Release()
	}
	if a.Targets != nil {
		a.Targets.Release()
	}
	if a.Pass != nil {
		a.Pass.Release()
	}
}
