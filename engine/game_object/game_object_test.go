package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/light"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	assert.Equal(t, uint64(0), obj.ID())
	assert.True(t, obj.Enabled())
	require.NotNil(t, obj.Transform())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, obj.Transform().Scale())
	assert.Nil(t, obj.Light())
}

func TestGameObjectOptions(t *testing.T) {
	lamp := light.NewLight(light.LightTypePoint)
	app := common.NewAppearance(0.2, 0.4, 0.6).WithEmissive(0.5)
	obj := NewGameObject(
		WithName("pillar"),
		WithEnabled(false),
		WithAppearance(app),
		WithPosition(1, 2, 3),
		WithScale(4, 5, 6),
		WithRotation(0, 1, 0),
		WithLight(lamp),
	)

	assert.Equal(t, "pillar", obj.Name())
	assert.False(t, obj.Enabled())
	assert.Equal(t, app, obj.Appearance())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, obj.Transform().Position())
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, obj.Transform().Scale())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, obj.Transform().Rotation())
	assert.Same(t, lamp, obj.Light())
}

func TestTransformIsShared(t *testing.T) {
	obj := NewGameObject()
	obj.Transform().SetPosition(mgl32.Vec3{5, 0, 5})
	assert.Equal(t, mgl32.Vec3{5, 0, 5}, obj.Transform().Position())
}
