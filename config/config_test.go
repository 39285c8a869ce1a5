package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-museum/engine/camera"
	"github.com/Carmen-Shannon/oxy-museum/engine/exhibit"
	"github.com/Carmen-Shannon/oxy-museum/engine/museum"
	"github.com/Carmen-Shannon/oxy-museum/engine/particle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "museum.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	style := cfg.Style()
	def := exhibit.DefaultStyle()
	assert.Equal(t, def.Thickness, style.Thickness)
	assert.Equal(t, def.WallHeight, style.WallHeight)
	assert.Equal(t, def.DoorGap, style.DoorGap)
	assert.Equal(t, def.CollisionBuffer, style.CollisionBuffer)
	assert.Equal(t, def.Wall.Tint, style.Wall.Tint)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
[window]
title = "Gallery"
width = 800

[exhibit]
door_gap = 5.5

[particles]
capacity = 250
tint = [0.5, 0.5, 1.0, 1.0]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "Gallery", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, def.Window.Height, cfg.Window.Height)
	assert.Equal(t, float32(5.5), cfg.Exhibit.DoorGap)
	assert.Equal(t, def.Exhibit.WallHeight, cfg.Exhibit.WallHeight)
	assert.Equal(t, 250, cfg.Particles.Capacity)
	assert.Equal(t, [4]float32{0.5, 0.5, 1, 1}, cfg.Particles.Tint)
	assert.Equal(t, def.Camera, cfg.Camera)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[window]
widht = 800
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := writeConfig(t, "[window\nwidth = 1")
	_, err := Load(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadValidates(t *testing.T) {
	path := writeConfig(t, `
[camera]
near = 5.0
far = 1.0
`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero width":        func(c *Config) { c.Window.Width = 0 },
		"msaa 2":            func(c *Config) { c.Window.MSAA = 2 },
		"tick rate":         func(c *Config) { c.Engine.TickRate = 0 },
		"negative limit":    func(c *Config) { c.Engine.FrameLimit = -1 },
		"no workers":        func(c *Config) { c.Engine.ComputeWorkers = 0 },
		"fov":               func(c *Config) { c.Camera.Fov = 180 },
		"height bounds":     func(c *Config) { c.Camera.MinHeight = 10 },
		"thickness":         func(c *Config) { c.Exhibit.Thickness = 0 },
		"negative buffer":   func(c *Config) { c.Exhibit.CollisionBuffer = -1 },
		"nan thickness":     func(c *Config) { c.Exhibit.Thickness = float32(math.NaN()) },
		"inf wall height":   func(c *Config) { c.Exhibit.WallHeight = float32(math.Inf(1)) },
		"nan door gap":      func(c *Config) { c.Exhibit.DoorGap = float32(math.NaN()) },
		"nan buffer":        func(c *Config) { c.Exhibit.CollisionBuffer = float32(math.NaN()) },
		"particle capacity": func(c *Config) { c.Particles.Capacity = 0 },
		"particle rate":     func(c *Config) { c.Particles.Rate = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadRejectsNaNDoorGap(t *testing.T) {
	path := writeConfig(t, `
[exhibit]
door_gap = nan
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsDoorGapWiderThanRooms(t *testing.T) {
	path := writeConfig(t, `
[exhibit]
door_gap = 25.0
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, museum.ErrDoorGapTooWide)
}

func TestValidateDoorGapAgainstBuffer(t *testing.T) {
	cfg := Default()
	cfg.Exhibit.DoorGap = 2
	cfg.Exhibit.CollisionBuffer = 1

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, museum.ErrDoorGapTooNarrow)
}

func TestMarshalLoadsBack(t *testing.T) {
	cfg := Default()
	cfg.Window.Title = "Round"
	cfg.Particles.Seed = 42

	data, err := cfg.Marshal()
	require.NoError(t, err)

	loaded, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEmitterOptions(t *testing.T) {
	cfg := Default()
	cfg.Particles.Capacity = 64
	cfg.Particles.Tint = [4]float32{0.1, 0.2, 0.3, 0.4}

	e := particle.NewEmitter(cfg.EmitterOptions()...)
	assert.Equal(t, 64, e.Capacity())
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 0.4}, e.Tint())
}

func TestCameraOptions(t *testing.T) {
	cfg := Default()
	cfg.Camera.Fov = 90
	cfg.Camera.StartPosition = [3]float32{2, 3, 4}
	cfg.Camera.StartYaw = 90

	cam := camera.NewCamera(cfg.CameraOptions()...)
	assert.InDelta(t, math.Pi/2, cam.Fov(), 1e-6)
	assert.InDelta(t, 1280.0/720.0, cam.Aspect(), 1e-6)

	tr := cam.Transform()
	require.NotNil(t, tr)
	assert.InDelta(t, 2, tr.Position().X(), 1e-6)
	assert.InDelta(t, 3, tr.Position().Y(), 1e-6)
	assert.InDelta(t, 4, tr.Position().Z(), 1e-6)
	assert.InDelta(t, math.Pi/2, tr.Rotation().Y(), 1e-6)
}
