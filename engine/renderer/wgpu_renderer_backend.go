package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-museum/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	msaaTexture          *wgpu.Texture
	msaaTextureView      *wgpu.TextureView
	depthTexture         *wgpu.Texture
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	presentMode wgpu.PresentMode // defaults to PresentModeImmediate (Uncapped)
	sampleCount MSAASampleCount  // MSAA sample count for the main render pass
	clearColor  wgpu.Color

	// Frame state for batched rendering across multiple draw calls
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

type wgpuRendererBackend interface {
	// ConfigureSurface is a wrapper for boilerplate logic required when calling ConfigureSurface on a surface.
	// It also recreates the MSAA and depth attachments for the new size.
	//
	// Parameters:
	//   - width: the width of the surface in pixels
	//   - height: the height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode. A ConfigureSurface call is required afterwards.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the main pass clears to, applied from the next frame.
	//
	// Parameters:
	//   - c: RGBA clear color
	SetClearColor(c [4]float32)

	// RegisterRenderPipeline compiles the pipeline's WGSL module and creates its bind group layout,
	// pipeline layout and render pipeline, storing them back on the Pipeline.
	//
	// Parameters:
	//   - p: the pipeline description
	//
	// Returns:
	//   - error: an error if any GPU object could not be created
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// CreateBuffer allocates a GPU buffer.
	//
	// Parameters:
	//   - label: debug label
	//   - size: size in bytes
	//   - usage: buffer usage flags, CopyDst is always added
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer
	//   - error: an error if allocation fails
	CreateBuffer(label string, size uint64, usage wgpu.BufferUsage) (*wgpu.Buffer, error)

	// WriteBuffer queues a write of data into buf at offset.
	WriteBuffer(buf *wgpu.Buffer, offset uint64, data []byte)

	// CreateBindGroup binds buffers to group 0 of a registered pipeline. buffers[i] is bound at
	// the binding of the pipeline's i-th layout entry.
	//
	// Parameters:
	//   - p: a registered pipeline
	//   - buffers: one buffer per layout entry
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group
	//   - error: an error if the counts differ or creation fails
	CreateBindGroup(p pipeline.Pipeline, buffers ...*wgpu.Buffer) (*wgpu.BindGroup, error)

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// Draw encodes a non-indexed instanced draw within the current render pass.
	//
	// Parameters:
	//   - p: a registered pipeline
	//   - bindGroup: the group 0 bind group
	//   - vertexBuffer: the slot 0 vertex buffer
	//   - vertexCount: vertices per instance
	//   - instanceCount: number of instances
	Draw(p pipeline.Pipeline, bindGroup *wgpu.BindGroup, vertexBuffer *wgpu.Buffer, vertexCount, instanceCount uint32)

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	Present()

	// Release frees the surface attachments, device and instance.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) (wgpuRendererBackend, error) {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeImmediate,
		sampleCount: sampleCount,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Museum Device",
	})
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w, nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if width <= 0 || height <= 0 {
		return
	}

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseAttachments()

	count := uint32(b.sampleCount)
	msaaEnabled := count > 1
	size := wgpu.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1}

	if msaaEnabled {
		// The render pass draws into the MSAA texture and resolves into the swapchain view.
		msaaTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label:         "MSAA Texture",
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   count,
			Dimension:     wgpu.TextureDimension2D,
			Format:        *b.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			panic(err)
		}
		b.msaaTexture = msaaTexture
		b.msaaTextureView, err = msaaTexture.CreateView(nil)
		if err != nil {
			panic(err)
		}
	}

	// Depth texture sample count must match the color attachment.
	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Depth Texture",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   count,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	b.depthTexture = depthTexture
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.msaaTextureView, // nil when MSAA is off; set in BeginFrame
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    storeOp,
				ClearValue: b.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

// releaseAttachments frees the size-dependent textures. Callers hold b.mu.
func (b *wgpuRendererBackendImpl) releaseAttachments() {
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTextureView = nil
	}
	if b.msaaTexture != nil {
		b.msaaTexture.Release()
		b.msaaTexture = nil
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeVSync:
		b.presentMode = wgpu.PresentModeFifo
	case PresentModeUncapped:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeImmediate
	}
}

func (b *wgpuRendererBackendImpl) SetClearColor(c [4]float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clearColor = wgpu.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])}
	if b.renderPassDescriptor != nil {
		b.renderPassDescriptor.ColorAttachments[0].ClearValue = b.clearColor
	}
}

func (b *wgpuRendererBackendImpl) RegisterRenderPipeline(p pipeline.Pipeline) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.surfaceFormat == nil {
		return fmt.Errorf("pipeline %s: surface not configured", p.PipelineKey())
	}

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: p.PipelineKey(),
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: p.Source(),
		},
	})
	if err != nil {
		return fmt.Errorf("pipeline %s: shader module: %w", p.PipelineKey(), err)
	}

	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   p.PipelineKey() + " Bind Group Layout",
		Entries: p.BindingEntries(),
	})
	if err != nil {
		return fmt.Errorf("pipeline %s: bind group layout: %w", p.PipelineKey(), err)
	}

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            p.PipelineKey(),
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return fmt.Errorf("pipeline %s: pipeline layout: %w", p.PipelineKey(), err)
	}

	target := wgpu.ColorTargetState{
		Format:    *b.surfaceFormat,
		WriteMask: p.WriteMask(),
	}
	if p.BlendEnabled() {
		target.Blend = p.BlendState()
	}

	depthCompare := wgpu.CompareFunctionLess
	if !p.DepthTestEnabled() {
		depthCompare = wgpu.CompareFunctionAlways
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: p.VertexEntryPoint(),
			Buffers:    p.VertexLayouts(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: p.FragmentEntryPoint(),
			Targets:    []wgpu.ColorTargetState{target},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.Topology(),
			FrontFace: p.FrontFace(),
			CullMode:  p.CullMode(),
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: p.DepthWriteEnabled(),
			DepthCompare:      depthCompare,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("pipeline %s: render pipeline: %w", p.PipelineKey(), err)
	}

	p.SetRenderPipeline(created, layout)
	return nil
}

func (b *wgpuRendererBackendImpl) CreateBuffer(label string, size uint64, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
}

func (b *wgpuRendererBackendImpl) WriteBuffer(buf *wgpu.Buffer, offset uint64, data []byte) {
	if buf == nil || len(data) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.queue.WriteBuffer(buf, offset, data)
}

func (b *wgpuRendererBackendImpl) CreateBindGroup(p pipeline.Pipeline, buffers ...*wgpu.Buffer) (*wgpu.BindGroup, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	layoutEntries := p.BindingEntries()
	if len(buffers) != len(layoutEntries) {
		return nil, fmt.Errorf("pipeline %s: %d buffers for %d bindings", p.PipelineKey(), len(buffers), len(layoutEntries))
	}
	if p.BindGroupLayout() == nil {
		return nil, fmt.Errorf("pipeline %s: not registered", p.PipelineKey())
	}

	entries := make([]wgpu.BindGroupEntry, len(buffers))
	for i, buf := range buffers {
		entries[i] = wgpu.BindGroupEntry{
			Binding: layoutEntries[i].Binding,
			Buffer:  buf,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}
	}

	return b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   p.PipelineKey() + " Bind Group",
		Layout:  p.BindGroupLayout(),
		Entries: entries,
	})
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.renderPassDescriptor == nil {
		return fmt.Errorf("surface not configured")
	}
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	if b.sampleCount > 1 {
		b.renderPassDescriptor.ColorAttachments[0].ResolveTarget = view
	} else {
		b.renderPassDescriptor.ColorAttachments[0].View = view
	}
	pass := encoder.BeginRenderPass(b.renderPassDescriptor)

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) Draw(p pipeline.Pipeline, bindGroup *wgpu.BindGroup, vertexBuffer *wgpu.Buffer, vertexCount, instanceCount uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil || p.RenderPipeline() == nil || vertexCount == 0 || instanceCount == 0 {
		return
	}

	b.framePass.SetPipeline(p.RenderPipeline())
	b.framePass.SetBindGroup(0, bindGroup, nil)
	b.framePass.SetVertexBuffer(0, vertexBuffer, 0, wgpu.WholeSize)
	b.framePass.Draw(vertexCount, instanceCount, 0, 0)
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}
	b.framePass.End()

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.framePass = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.framePass = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.releaseAttachments()
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
