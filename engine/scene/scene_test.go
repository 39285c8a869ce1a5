package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-museum/engine/camera"
	"github.com/Carmen-Shannon/oxy-museum/engine/game_object"
	"github.com/Carmen-Shannon/oxy-museum/engine/light"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(options ...SceneBuilderOption) Scene {
	cam := camera.NewCamera(
		camera.WithAspect(1),
		camera.WithController(camera.NewFirstPersonController(camera.WithStartPosition(0, 5, 0))),
	)
	return NewScene("test", cam, options...)
}

func TestNewScenePanicsWithoutCamera(t *testing.T) {
	assert.PanicsWithValue(t, "scene: NewScene requires a non-nil Camera", func() {
		NewScene("broken", nil)
	})
}

func TestAddAssignsStableHandles(t *testing.T) {
	s := newTestScene()
	a := game_object.NewGameObject(game_object.WithName("a"))
	b := game_object.NewGameObject(game_object.WithName("b"))

	assert.Equal(t, uint64(1), s.Add(a))
	assert.Equal(t, uint64(2), s.Add(b))
	assert.Equal(t, uint64(1), s.Add(a), "re-adding returns the existing handle")
	assert.Equal(t, 2, s.Count())

	assert.Same(t, a, s.Get(1))
	assert.Same(t, b, s.Get(2))
	assert.Nil(t, s.Get(0))
	assert.Nil(t, s.Get(3))
}

func TestAddPanicsOnNil(t *testing.T) {
	s := newTestScene()
	assert.Panics(t, func() { s.Add(nil) })
}

func TestWithObjectsRegistersInOrder(t *testing.T) {
	a := game_object.NewGameObject()
	b := game_object.NewGameObject()
	s := newTestScene(WithObjects(a, b))

	require.Equal(t, 2, s.Count())
	assert.Equal(t, uint64(1), a.ID())
	assert.Equal(t, uint64(2), b.ID())
	assert.Equal(t, uint64(3), s.Add(game_object.NewGameObject()))
}

func TestClearResetsRegistry(t *testing.T) {
	s := newTestScene()
	obj := game_object.NewGameObject(game_object.WithLight(light.NewLight(light.LightTypePoint)))
	s.Add(obj)
	s.AddLight(light.NewLight(light.LightTypeDirectional))
	require.Len(t, s.Lights(), 2)

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Lights())
	assert.Equal(t, uint64(0), obj.ID())
	assert.Equal(t, uint64(1), s.Add(obj))
}

func TestPrepareDrawCullsBehindCamera(t *testing.T) {
	s := newTestScene(WithBatchSize(1), WithComputeWorkers(2))
	front := game_object.NewGameObject(game_object.WithPosition(0, 5, -20))
	behind := game_object.NewGameObject(game_object.WithPosition(0, 5, 20))
	hidden := game_object.NewGameObject(game_object.WithPosition(0, 5, -10), game_object.WithEnabled(false))
	s.Add(front)
	s.Add(behind)
	s.Add(hidden)

	frame := s.PrepareDraw()
	require.Len(t, frame.Items, 1)
	assert.Equal(t, front.ID(), frame.Items[0].ID)
	assert.Equal(t, front.Transform().WorldMatrix(), frame.Items[0].World)
	assert.InDelta(t, 5, frame.CameraPosition[1], 1e-6)
}

func TestPrepareDrawWithoutCullingKeepsOrder(t *testing.T) {
	s := newTestScene(WithCullingDisabled(true), WithBatchSize(2))
	var ids []uint64
	for i := range 7 {
		ids = append(ids, s.Add(game_object.NewGameObject(game_object.WithPosition(0, 0, float32(i*10)))))
	}

	frame := s.PrepareDraw()
	require.Len(t, frame.Items, len(ids))
	for i, item := range frame.Items {
		assert.Equal(t, ids[i], item.ID)
	}
}

func TestPrepareDrawSyncsAttachedLights(t *testing.T) {
	s := newTestScene(WithAmbientColor([3]float32{0.2, 0.3, 0.4}))
	lamp := light.NewLight(light.LightTypePoint)
	fixture := game_object.NewGameObject(game_object.WithPosition(1, 2, 3), game_object.WithLight(lamp))
	s.Add(fixture)

	fixture.Transform().MoveAbsolute(mgl32.Vec3{10, 0, 0})
	frame := s.PrepareDraw()

	require.Len(t, frame.Lights, 1)
	assert.Equal(t, [3]float32{11, 2, 3}, lamp.Position())
	assert.Equal(t, [3]float32{0.2, 0.3, 0.4}, frame.AmbientColor)
}
