package renderer

import (
	_ "embed"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/camera"
	"github.com/Carmen-Shannon/oxy-museum/engine/light"
	"github.com/Carmen-Shannon/oxy-museum/engine/particle"
	"github.com/Carmen-Shannon/oxy-museum/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-museum/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-museum/engine/scene"
	"github.com/Carmen-Shannon/oxy-museum/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/scene.wgsl
var sceneShaderSource string

//go:embed assets/billboard.wgsl
var billboardShaderSource string

const (
	// DefaultMaxInstances is the instance buffer capacity of each scene slot.
	DefaultMaxInstances = 4096

	// DefaultMaxBillboards is the particle capacity of the billboard vertex buffer.
	DefaultMaxBillboards = 1000

	billboardVertexSize = 24
)

// sceneSlot holds the GPU resources of one DrawScene call within a frame.
type sceneSlot struct {
	camera    *wgpu.Buffer
	lights    *wgpu.Buffer
	effects   *wgpu.Buffer
	instances *wgpu.Buffer
	bindGroup *wgpu.BindGroup
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backend RendererBackend

	scenePipeline     pipeline.Pipeline
	billboardPipeline pipeline.Pipeline

	cubeBuffer *wgpu.Buffer

	slots     []*sceneSlot
	slotIndex int

	billboardBuffer    *wgpu.Buffer
	billboardCamera    *wgpu.Buffer
	billboardTint      *wgpu.Buffer
	billboardBindGroup *wgpu.BindGroup
	billboards         []particle.Vertex
	billboardColor     [4]float32

	effects       material.Effects
	clearColor    [4]float32
	truncatedOnce bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	msaa                 MSAASampleCount
	maxInstances         int
	maxBillboards        int
}

// Renderer draws prepared scene frames with a single lit pass: every draw item is an instanced
// unit cube shaded by the scene's lights and the current display effects, followed by the
// particle billboards.
type Renderer interface {
	// BeginFrame acquires the next surface texture and begins the render pass.
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired
	BeginFrame() error

	// DrawScene uploads one prepared frame and records its draw call. Each call within a frame
	// gets its own buffers; billboards are drawn with the first scene's camera.
	//
	// Parameters:
	//   - frame: the prepared frame
	DrawScene(frame scene.Frame)

	// EndFrame submits the recorded work and presents the surface.
	EndFrame()

	// Resize reconfigures the surface and its attachments.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// SetEffects sets the display effects used from the next DrawScene.
	//
	// Parameters:
	//   - e: the effects
	SetEffects(e material.Effects)

	// Effects returns the current display effects.
	//
	// Returns:
	//   - material.Effects: the effects
	Effects() material.Effects

	// SetBillboards replaces the particle quads drawn from the next frame. Vertices beyond the
	// billboard capacity are dropped.
	//
	// Parameters:
	//   - vertices: six world-space vertices per particle
	//   - tint: the RGBA particle color
	SetBillboards(vertices []particle.Vertex, tint [4]float32)

	// SetPresentMode changes the present mode and reconfigures the surface at the given size.
	//
	// Parameters:
	//   - mode: the present mode
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	SetPresentMode(mode PresentMode, width, height int)

	// MaxInstances returns the number of draw items a single DrawScene can upload.
	//
	// Returns:
	//   - int: the instance capacity
	MaxInstances() int

	// Release frees every GPU resource held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into the given window's surface.
//
// Parameters:
//   - w: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: an error if the device, pipelines or buffers could not be created
func NewRenderer(w window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:            &sync.Mutex{},
		effects:       material.NeutralEffects(),
		clearColor:    [4]float32{0.1, 0.1, 0.1, 1},
		msaa:          MSAA4x,
		maxInstances:  DefaultMaxInstances,
		maxBillboards: DefaultMaxBillboards,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	backend, err := newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	r.backend = backend

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(w.Width(), w.Height())

	if err := r.initPipelines(); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("renderer: %w", err)
	}
	if err := r.initBuffers(); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	log.Printf("[Renderer] ready: msaa=%d instances=%d billboards=%d", r.msaa, r.maxInstances, r.maxBillboards)
	return r, nil
}

func (r *renderer) initPipelines() error {
	meshLayout := wgpu.VertexBufferLayout{
		ArrayStride: material.VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		},
	}
	visibility := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment

	r.scenePipeline = pipeline.NewPipeline("Museum Scene", sceneShaderSource,
		pipeline.WithVertexLayouts(meshLayout),
		pipeline.WithCullMode(wgpu.CullModeBack),
		pipeline.WithBindingEntries(
			uniformEntry(0, visibility),
			storageEntry(1, visibility),
			uniformEntry(2, wgpu.ShaderStageFragment),
			storageEntry(3, visibility),
		),
	)

	r.billboardPipeline = pipeline.NewPipeline("Particle Billboards", billboardShaderSource,
		pipeline.WithVertexLayouts(wgpu.VertexBufferLayout{
			ArrayStride: billboardVertexSize,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			},
		}),
		pipeline.WithBlendEnabled(true),
		pipeline.WithDepthWriteEnabled(false),
		pipeline.WithBindingEntries(
			uniformEntry(0, wgpu.ShaderStageVertex),
			uniformEntry(1, wgpu.ShaderStageFragment),
		),
	)

	for _, p := range []pipeline.Pipeline{r.scenePipeline, r.billboardPipeline} {
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return err
		}
	}
	return nil
}

func uniformEntry(binding uint32, visibility wgpu.ShaderStage) wgpu.BindGroupLayoutEntry {
	entry := wgpu.BindGroupLayoutEntry{Binding: binding, Visibility: visibility}
	entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	return entry
}

func storageEntry(binding uint32, visibility wgpu.ShaderStage) wgpu.BindGroupLayoutEntry {
	entry := wgpu.BindGroupLayoutEntry{Binding: binding, Visibility: visibility}
	entry.Buffer.Type = wgpu.BufferBindingTypeReadOnlyStorage
	return entry
}

func (r *renderer) initBuffers() error {
	cube := common.SliceToBytes(material.CubeVertices())
	buf, err := r.backend.CreateBuffer("Cube Vertex Buffer", uint64(len(cube)), wgpu.BufferUsageVertex)
	if err != nil {
		return err
	}
	r.backend.WriteBuffer(buf, 0, cube)
	r.cubeBuffer = buf

	r.billboardBuffer, err = r.backend.CreateBuffer("Billboard Vertex Buffer", uint64(r.maxBillboards*6*billboardVertexSize), wgpu.BufferUsageVertex)
	if err != nil {
		return err
	}
	camUniform := camera.GPUCameraUniform{}
	r.billboardCamera, err = r.backend.CreateBuffer("Billboard Camera", uint64(camUniform.Size()), wgpu.BufferUsageUniform)
	if err != nil {
		return err
	}
	tint := material.GPUTintParams{}
	r.billboardTint, err = r.backend.CreateBuffer("Billboard Tint", uint64(tint.Size()), wgpu.BufferUsageUniform)
	if err != nil {
		return err
	}
	r.billboardBindGroup, err = r.backend.CreateBindGroup(r.billboardPipeline, r.billboardCamera, r.billboardTint)
	return err
}

// slot returns the resources for the next DrawScene call of the frame, creating them on first use.
func (r *renderer) slot() (*sceneSlot, error) {
	if r.slotIndex < len(r.slots) {
		s := r.slots[r.slotIndex]
		r.slotIndex++
		return s, nil
	}

	var err error
	s := &sceneSlot{}
	cam := camera.GPUCameraUniform{}
	if s.camera, err = r.backend.CreateBuffer("Scene Camera", uint64(cam.Size()), wgpu.BufferUsageUniform); err != nil {
		return nil, err
	}
	lightBytes := len(light.MarshalLightBuffer(nil, [3]float32{}))
	if s.lights, err = r.backend.CreateBuffer("Scene Lights", uint64(lightBytes), wgpu.BufferUsageStorage); err != nil {
		return nil, err
	}
	fx := material.GPUEffectParams{}
	if s.effects, err = r.backend.CreateBuffer("Scene Effects", uint64(fx.Size()), wgpu.BufferUsageUniform); err != nil {
		return nil, err
	}
	inst := material.GPUInstance{}
	if s.instances, err = r.backend.CreateBuffer("Scene Instances", uint64(r.maxInstances*inst.Size()), wgpu.BufferUsageStorage); err != nil {
		return nil, err
	}
	if s.bindGroup, err = r.backend.CreateBindGroup(r.scenePipeline, s.camera, s.lights, s.effects, s.instances); err != nil {
		return nil, err
	}

	r.slots = append(r.slots, s)
	r.slotIndex++
	return s, nil
}

func (r *renderer) BeginFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slotIndex = 0
	return r.backend.BeginFrame()
}

func (r *renderer) DrawScene(frame scene.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.slot()
	if err != nil {
		log.Printf("[Renderer] scene buffers: %v", err)
		return
	}

	if frame.ClearColor != r.clearColor {
		r.clearColor = frame.ClearColor
		r.backend.SetClearColor(frame.ClearColor)
	}

	cam := camera.NewGPUCameraUniform(frame.ViewProjection, frame.CameraPosition)
	camBytes := cam.Marshal()
	r.backend.WriteBuffer(s.camera, 0, camBytes)
	r.backend.WriteBuffer(s.lights, 0, light.MarshalLightBuffer(frame.Lights, frame.AmbientColor))
	fx := material.NewGPUEffectParams(r.effects)
	r.backend.WriteBuffer(s.effects, 0, fx.Marshal())

	instances, count := material.MarshalInstances(frame.Items, r.maxInstances)
	if count < len(frame.Items) && !r.truncatedOnce {
		log.Printf("[Renderer] %d draw items exceed the instance capacity of %d", len(frame.Items), r.maxInstances)
		r.truncatedOnce = true
	}
	r.backend.WriteBuffer(s.instances, 0, instances)
	r.backend.Draw(r.scenePipeline, s.bindGroup, r.cubeBuffer, material.CubeVertexCount, uint32(count))

	if r.slotIndex == 1 && len(r.billboards) > 0 {
		r.backend.WriteBuffer(r.billboardCamera, 0, camBytes)
		tint := material.GPUTintParams{Tint: r.billboardColor}
		r.backend.WriteBuffer(r.billboardTint, 0, tint.Marshal())
		r.backend.WriteBuffer(r.billboardBuffer, 0, common.SliceToBytes(r.billboards))
		r.backend.Draw(r.billboardPipeline, r.billboardBindGroup, r.billboardBuffer, uint32(len(r.billboards)), 1)
	}
}

func (r *renderer) EndFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend.EndFrame()
	r.backend.Present()
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetEffects(e material.Effects) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.effects = e
}

func (r *renderer) Effects() material.Effects {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.effects
}

func (r *renderer) SetBillboards(vertices []particle.Vertex, tint [4]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := r.maxBillboards * 6
	if len(vertices) > limit {
		vertices = vertices[:limit]
	}
	r.billboards = append(r.billboards[:0], vertices...)
	r.billboardColor = tint
}

func (r *renderer) SetPresentMode(mode PresentMode, width, height int) {
	r.backend.SetPresentMode(mode)
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) MaxInstances() int {
	return r.maxInstances
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.slots {
		s.bindGroup.Release()
		s.camera.Release()
		s.lights.Release()
		s.effects.Release()
		s.instances.Release()
	}
	r.slots = nil

	for _, b := range []*wgpu.Buffer{r.cubeBuffer, r.billboardBuffer, r.billboardCamera, r.billboardTint} {
		if b != nil {
			b.Release()
		}
	}
	if r.billboardBindGroup != nil {
		r.billboardBindGroup.Release()
	}
	r.backend.Release()
}
