package scene

import (
	"github.com/Carmen-Shannon/oxy-museum/engine/game_object"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects registers initial objects in the scene, in order.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.objects = append(s.objects, obj)
			obj.SetID(uint64(len(s.objects)))
			if l := obj.Light(); l != nil {
				s.lights = append(s.lights, l)
				s.lightObjects = append(s.lightObjects, obj)
			}
		}
	}
}

// WithComputeWorkers sets the number of worker goroutines used by PrepareDraw.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of compute workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}

// WithBatchSize sets how many objects each PrepareDraw task processes.
//
// Parameters:
//   - n: objects per task (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBatchSize(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.batchSize = n
	}
}

// WithCullingDisabled disables frustum culling for the scene. By default culling is
// enabled (disabled = false).
//
// Parameters:
//   - disabled: true to disable frustum culling, false to enable it (default)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}

// WithAmbientColor sets the scene ambient light color.
//
// Parameters:
//   - color: RGB ambient color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAmbientColor(color [3]float32) SceneBuilderOption {
	return func(s *scene) {
		s.ambientColor = color
	}
}

// WithClearColor sets the background color.
//
// Parameters:
//   - color: RGBA background color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithClearColor(color [4]float32) SceneBuilderOption {
	return func(s *scene) {
		s.clearColor = color
	}
}
