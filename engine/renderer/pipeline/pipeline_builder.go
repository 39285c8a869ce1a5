package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithEntryPoints overrides the vertex and fragment entry point names (default vs_main / fs_main).
//
// Parameters:
//   - vertex: the vertex entry point
//   - fragment: the fragment entry point
//
// Returns:
//   - PipelineBuilderOption: a function that sets the entry points for this pipeline
func WithEntryPoints(vertex, fragment string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexEntry = vertex
		p.fragmentEntry = fragment
	}
}

// WithVertexLayouts sets the vertex buffer layouts in slot order.
//
// Parameters:
//   - layouts: the vertex buffer layouts
//
// Returns:
//   - PipelineBuilderOption: a function that sets the vertex layouts for this pipeline
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexLayouts = layouts
	}
}

// WithBindingEntries sets the layout entries of bind group 0.
//
// Parameters:
//   - entries: the bind group layout entries
//
// Returns:
//   - PipelineBuilderOption: a function that sets the binding entries for this pipeline
func WithBindingEntries(entries ...wgpu.BindGroupLayoutEntry) PipelineBuilderOption {
	return func(p *pipeline) {
		p.bindingEntries = entries
	}
}

// WithDepthTestEnabled sets whether depth testing is enabled for this pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether depth testing should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth test enabled state for this pipeline
func WithDepthTestEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled sets whether fragments write to the depth buffer.
//
// Parameters:
//   - enabled: a boolean indicating whether depth writes should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth write enabled state for this pipeline
func WithDepthWriteEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthWriteEnabled = enabled
	}
}

// WithBlendEnabled sets whether the pipeline's blend state is applied to its color target.
//
// Parameters:
//   - enabled: a boolean indicating whether blending should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend enabled state for this pipeline
func WithBlendEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendEnabled = enabled
	}
}

// WithBlendState replaces the blend state used when blending is enabled.
//
// Parameters:
//   - blendState: the blend state
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend state for this pipeline
func WithBlendState(blendState *wgpu.BlendState) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendState = blendState
	}
}

// WithCullMode sets the face culling mode.
//
// Parameters:
//   - mode: the cull mode
//
// Returns:
//   - PipelineBuilderOption: a function that sets the cull mode for this pipeline
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology sets the primitive topology.
//
// Parameters:
//   - topology: the primitive topology
//
// Returns:
//   - PipelineBuilderOption: a function that sets the topology for this pipeline
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithWriteMask sets the color channels the pipeline writes.
//
// Parameters:
//   - writeMask: the color write mask
//
// Returns:
//   - PipelineBuilderOption: a function that sets the write mask for this pipeline
func WithWriteMask(writeMask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = writeMask
	}
}
