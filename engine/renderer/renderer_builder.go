package renderer

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the renderer.
// When not specified, the default is MSAA4x. Use MSAAOff to disable MSAA entirely.
//
// Parameters:
//   - count: the MSAASampleCount to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.msaa = count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithMaxInstances sets how many draw items one DrawScene call can upload. Non-positive values are ignored.
//
// Parameters:
//   - n: the instance capacity
//
// Returns:
//   - RendererBuilderOption: a function that applies the capacity to a renderer
func WithMaxInstances(n int) RendererBuilderOption {
	return func(r *renderer) {
		if n > 0 {
			r.maxInstances = n
		}
	}
}

// WithMaxBillboards sets how many particle quads the billboard buffer holds. Non-positive values are ignored.
//
// Parameters:
//   - n: the particle capacity
//
// Returns:
//   - RendererBuilderOption: a function that applies the capacity to a renderer
func WithMaxBillboards(n int) RendererBuilderOption {
	return func(r *renderer) {
		if n > 0 {
			r.maxBillboards = n
		}
	}
}
