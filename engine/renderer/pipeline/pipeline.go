package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// pipeline is the implementation of the Pipeline interface.
// It holds the WGSL module, the resource layout and the fixed-function state of a render pipeline.
type pipeline struct {
	// pipelineKey is the unique identifier for this pipeline, used for labels and lookups
	pipelineKey string

	source         string
	vertexEntry    string
	fragmentEntry  string
	vertexLayouts  []wgpu.VertexBufferLayout
	bindingEntries []wgpu.BindGroupLayoutEntry

	renderPipeline  *wgpu.RenderPipeline
	bindGroupLayout *wgpu.BindGroupLayout

	depthTestEnabled  bool
	depthWriteEnabled bool
	blendEnabled      bool
	cullMode          wgpu.CullMode
	topology          wgpu.PrimitiveTopology
	frontFace         wgpu.FrontFace
	writeMask         wgpu.ColorWriteMask
	blendState        *wgpu.BlendState
}

// Pipeline describes a render pipeline built from a single WGSL module with vertex and fragment
// entry points and one bind group (group 0). The backend creates the GPU objects and stores them
// back on the Pipeline.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Source returns the WGSL module source.
	Source() string

	// VertexEntryPoint returns the vertex stage entry point name.
	VertexEntryPoint() string

	// FragmentEntryPoint returns the fragment stage entry point name.
	FragmentEntryPoint() string

	// VertexLayouts returns the vertex buffer layouts, one per vertex buffer slot.
	VertexLayouts() []wgpu.VertexBufferLayout

	// BindingEntries returns the layout entries of bind group 0.
	BindingEntries() []wgpu.BindGroupLayoutEntry

	// RenderPipeline returns the created GPU pipeline, or nil before registration.
	RenderPipeline() *wgpu.RenderPipeline

	// BindGroupLayout returns the created layout of bind group 0, or nil before registration.
	BindGroupLayout() *wgpu.BindGroupLayout

	DepthTestEnabled() bool
	DepthWriteEnabled() bool
	BlendEnabled() bool
	CullMode() wgpu.CullMode
	Topology() wgpu.PrimitiveTopology
	FrontFace() wgpu.FrontFace
	WriteMask() wgpu.ColorWriteMask
	BlendState() *wgpu.BlendState

	// SetRenderPipeline stores the created GPU pipeline and its bind group layout.
	//
	// Parameters:
	//   - p: the created render pipeline
	//   - layout: the layout of bind group 0
	SetRenderPipeline(p *wgpu.RenderPipeline, layout *wgpu.BindGroupLayout)
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a render Pipeline description with depth testing and writing enabled,
// back-face culling off, triangle-list topology and straight alpha blending available but disabled.
//
// Parameters:
//   - pipelineKey: the unique key for the pipeline
//   - source: the WGSL module source
//   - opts: builder options
//
// Returns:
//   - Pipeline: the pipeline description
func NewPipeline(pipelineKey, source string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		source:            source,
		vertexEntry:       "vs_main",
		fragmentEntry:     "fs_main",
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		blendEnabled:      false,
		cullMode:          wgpu.CullModeNone,
		topology:          wgpu.PrimitiveTopologyTriangleList,
		frontFace:         wgpu.FrontFaceCCW,
		writeMask:         wgpu.ColorWriteMaskAll,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Source() string {
	return p.source
}

func (p *pipeline) VertexEntryPoint() string {
	return p.vertexEntry
}

func (p *pipeline) FragmentEntryPoint() string {
	return p.fragmentEntry
}

func (p *pipeline) VertexLayouts() []wgpu.VertexBufferLayout {
	return p.vertexLayouts
}

func (p *pipeline) BindingEntries() []wgpu.BindGroupLayoutEntry {
	return p.bindingEntries
}

func (p *pipeline) RenderPipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) BindGroupLayout() *wgpu.BindGroupLayout {
	return p.bindGroupLayout
}

func (p *pipeline) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipeline) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipeline) BlendEnabled() bool {
	return p.blendEnabled
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipeline) BlendState() *wgpu.BlendState {
	return p.blendState
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline, layout *wgpu.BindGroupLayout) {
	p.renderPipeline = rp
	p.bindGroupLayout = layout
}
