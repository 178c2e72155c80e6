package postfx

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/postfx/shaders"
)

// UberRenderPass composites the post-processing chain in a single fullscreen
// draw: it samples the scene color texture and applies channel mixing and
// ACES tonemapping in one fragment invocation per pixel.
//
// The host is responsible for sequencing the pass after the scene color pass
// and for keeping the source texture view alive for the duration of the
// draw. Uniform updates assume a single writer per camera.
type UberRenderPass struct {
	Pipeline *wgpu.RenderPipeline
	Sampler  *wgpu.Sampler
	ViewBuf  *wgpu.Buffer
	UberBuf  *wgpu.Buffer
	Device   *wgpu.Device
	Log      Logger

	sourceBindGroup *wgpu.BindGroup
	paramsBindGroup *wgpu.BindGroup
}

// NewUberRenderPass builds the uber pipeline for the given output format.
// Bind group layout, fixed by convention:
//
//	group 0: binding 0 view uniform, binding 1 color texture, binding 2 sampler
//	group 1: binding 0 uber parameter uniform
func NewUberRenderPass(device *wgpu.Device, format wgpu.TextureFormat) (*UberRenderPass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "UberShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.UberWGSL},
	})
	if err != nil {
		return nil, err
	}

	sourceBgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "UberSourceBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					MinBindingSize:   ViewUniformSize,
					HasDynamicOffset: false,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
					Multisampled:  false,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	paramsBgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "UberParamsBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					MinBindingSize:   UberUniformSize,
					HasDynamicOffset: false,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{
			sourceBgl,
			paramsBgl,
		},
	})
	if err != nil {
		return nil, err
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "UberPipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, err
	}

	sampler, err := device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "UberSampler",
		MinFilter:     wgpu.FilterModeLinear,
		MagFilter:     wgpu.FilterModeLinear,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return nil, err
	}

	viewBuf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "UberViewUB",
		Size:  ViewUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}

	uberBuf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "UberParamsUB",
		Size:  UberUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}

	p := &UberRenderPass{
		Pipeline: pipeline,
		Sampler:  sampler,
		ViewBuf:  viewBuf,
		UberBuf:  uberBuf,
		Device:   device,
		Log:      NewNopLogger(),
	}

	// Defined contents even if the host never calls the update methods.
	queue := device.GetQueue()
	queue.WriteBuffer(viewBuf, 0, PackViewUniform(NewView(mgl32.Ident4(), mgl32.Ident4(), mgl32.Vec3{})))
	queue.WriteBuffer(uberBuf, 0, PackUberUniform(&Settings{}))

	p.paramsBindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "UberParamsBG",
		Layout: paramsBgl,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  uberBuf,
				Size:    UberUniformSize,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// UpdateView uploads the per-camera view block. Call once per frame before
// encoding the draw.
func (p *UberRenderPass) UpdateView(queue *wgpu.Queue, view *View) {
	queue.WriteBuffer(p.ViewBuf, 0, PackViewUniform(view))
}

// UpdateSettings uploads the packed effect parameters. Call whenever the
// user-facing configuration changes.
func (p *UberRenderPass) UpdateSettings(queue *wgpu.Queue, settings *Settings) {
	queue.WriteBuffer(p.UberBuf, 0, PackUberUniform(settings))
}

// SetSource points the pass at a new scene color texture. The texture view
// must stay valid until the pass is drawn.
func (p *UberRenderPass) SetSource(colorView *wgpu.TextureView) error {
	bg, err := p.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "UberSourceBG",
		Layout: p.Pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  p.ViewBuf,
				Size:    ViewUniformSize,
			},
			{
				Binding:     1,
				TextureView: colorView,
			},
			{
				Binding: 2,
				Sampler: p.Sampler,
			},
		},
	})
	if err != nil {
		return err
	}

	if p.sourceBindGroup != nil {
		p.sourceBindGroup.Release()
	}
	p.sourceBindGroup = bg
	p.Log.Debugf("uber pass: source bind group rebuilt")
	return nil
}

// Draw encodes the fullscreen triangle into an already-begun render pass.
// No-op until a source texture has been set.
func (p *UberRenderPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.sourceBindGroup == nil {
		return
	}

	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.sourceBindGroup, nil)
	pass.SetBindGroup(1, p.paramsBindGroup, nil)
	pass.Draw(3, 1, 0, 0)
}

// Release frees the GPU objects owned by the pass.
func (p *UberRenderPass) Release() {
	if p.sourceBindGroup != nil {
		p.sourceBindGroup.Release()
		p.sourceBindGroup = nil
	}
	if p.paramsBindGroup != nil {
		p.paramsBindGroup.Release()
		p.paramsBindGroup = nil
	}
	p.UberBuf.Release()
	p.ViewBuf.Release()
	p.Sampler.Release()
	p.Pipeline.Release()
}
