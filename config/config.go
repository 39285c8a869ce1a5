// Package config loads the museum's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/camera"
	"github.com/Carmen-Shannon/oxy-museum/engine/exhibit"
	"github.com/Carmen-Shannon/oxy-museum/engine/museum"
	"github.com/Carmen-Shannon/oxy-museum/engine/particle"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the configuration file.
type Config struct {
	Window    WindowConfig   `toml:"window"`
	Engine    EngineConfig   `toml:"engine"`
	Camera    CameraConfig   `toml:"camera"`
	Exhibit   ExhibitConfig  `toml:"exhibit"`
	Particles ParticleConfig `toml:"particles"`
}

// WindowConfig configures the platform window and its surface.
type WindowConfig struct {
	Title          string `toml:"title"`
	Width          int    `toml:"width"`
	Height         int    `toml:"height"`
	CursorCaptured bool   `toml:"cursor_captured"`
	VSync          bool   `toml:"vsync"`
	MSAA           int    `toml:"msaa"`
}

// EngineConfig configures the simulation and render loops.
type EngineConfig struct {
	TickRate         float64 `toml:"tick_rate"`
	FrameLimit       float64 `toml:"frame_limit"`
	Profiling        bool    `toml:"profiling"`
	ProfilerInterval float64 `toml:"profiler_interval"` // seconds
	ComputeWorkers   int     `toml:"compute_workers"`
}

// CameraConfig configures the projection and the first-person controller.
type CameraConfig struct {
	Fov           float32    `toml:"fov"` // degrees
	Near          float32    `toml:"near"`
	Far           float32    `toml:"far"`
	MoveSpeed     float32    `toml:"move_speed"`
	LookSpeed     float32    `toml:"look_speed"`
	MinHeight     float32    `toml:"min_height"`
	MaxHeight     float32    `toml:"max_height"`
	StartPosition [3]float32 `toml:"start_position"`
	StartYaw      float32    `toml:"start_yaw"` // degrees
}

// ExhibitConfig holds the structural constants and colors shared by every room.
type ExhibitConfig struct {
	Thickness       float32    `toml:"thickness"`
	WallHeight      float32    `toml:"wall_height"`
	DoorGap         float32    `toml:"door_gap"`
	CollisionBuffer float32    `toml:"collision_buffer"`
	FloorColor      [3]float32 `toml:"floor_color"`
	WallColor       [3]float32 `toml:"wall_color"`
}

// ParticleConfig configures the Particles room emitter. A zero seed picks a random one.
type ParticleConfig struct {
	Capacity      int        `toml:"capacity"`
	Lifespan      float32    `toml:"lifespan"`
	Rate          float32    `toml:"rate"`
	VelocityRange float32    `toml:"velocity_range"`
	Size          float32    `toml:"size"`
	Tint          [4]float32 `toml:"tint"`
	Seed          uint64     `toml:"seed"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - Config: the defaults
func Default() Config {
	style := exhibit.DefaultStyle()
	return Config{
		Window: WindowConfig{
			Title:          "Oxy Museum",
			Width:          1280,
			Height:         720,
			CursorCaptured: true,
			VSync:          true,
			MSAA:           4,
		},
		Engine: EngineConfig{
			TickRate:         60,
			FrameLimit:       0,
			Profiling:        false,
			ProfilerInterval: 1,
			ComputeWorkers:   4,
		},
		Camera: CameraConfig{
			Fov:           45,
			Near:          0.1,
			Far:           200,
			MoveSpeed:     10,
			LookSpeed:     0.5,
			MinHeight:     1,
			MaxHeight:     9,
			StartPosition: [3]float32{0, 5, 0},
			StartYaw:      0,
		},
		Exhibit: ExhibitConfig{
			Thickness:       style.Thickness,
			WallHeight:      style.WallHeight,
			DoorGap:         style.DoorGap,
			CollisionBuffer: style.CollisionBuffer,
			FloorColor:      [3]float32{style.Floor.Tint[0], style.Floor.Tint[1], style.Floor.Tint[2]},
			WallColor:       [3]float32{style.Wall.Tint[0], style.Wall.Tint[1], style.Wall.Tint[2]},
		},
		Particles: ParticleConfig{
			Capacity:      1000,
			Lifespan:      3,
			Rate:          10,
			VelocityRange: 1,
			Size:          0.1,
			Tint:          [4]float32{1, 0.8, 0.3, 1},
		},
	}
}

// Load decodes the TOML file at path on top of Default and validates the result.
// Keys missing from the file keep their default; unknown keys are an error.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Config: the loaded configuration
//   - error: an open, decode or validation error
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return cfg, fmt.Errorf("config: %s: %w: %s", path, ErrInvalidConfig, missing.String())
		}
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as TOML.
//
// Returns:
//   - []byte: the encoded file
//   - error: an encoding error
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate reports the first out-of-range value.
//
// Returns:
//   - error: nil, or an error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.MSAA != 1 && c.Window.MSAA != 4:
		return invalid("window.msaa %d, want 1 or 4", c.Window.MSAA)
	case c.Engine.TickRate <= 0:
		return invalid("engine.tick_rate %v", c.Engine.TickRate)
	case c.Engine.FrameLimit < 0:
		return invalid("engine.frame_limit %v", c.Engine.FrameLimit)
	case c.Engine.ProfilerInterval <= 0:
		return invalid("engine.profiler_interval %v", c.Engine.ProfilerInterval)
	case c.Engine.ComputeWorkers <= 0:
		return invalid("engine.compute_workers %d", c.Engine.ComputeWorkers)
	case c.Camera.Fov <= 0 || c.Camera.Fov >= 180:
		return invalid("camera.fov %v", c.Camera.Fov)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return invalid("camera near %v far %v", c.Camera.Near, c.Camera.Far)
	case c.Camera.MoveSpeed < 0 || c.Camera.LookSpeed < 0:
		return invalid("camera speeds %v/%v", c.Camera.MoveSpeed, c.Camera.LookSpeed)
	case c.Camera.MinHeight > c.Camera.MaxHeight:
		return invalid("camera heights %v > %v", c.Camera.MinHeight, c.Camera.MaxHeight)
	case !finite(c.Exhibit.Thickness) || c.Exhibit.Thickness <= 0 || !finite(c.Exhibit.WallHeight) || c.Exhibit.WallHeight <= 0:
		return invalid("exhibit thickness %v wall_height %v", c.Exhibit.Thickness, c.Exhibit.WallHeight)
	case !finite(c.Exhibit.DoorGap) || c.Exhibit.DoorGap <= 0:
		return invalid("exhibit.door_gap %v", c.Exhibit.DoorGap)
	case !finite(c.Exhibit.CollisionBuffer) || c.Exhibit.CollisionBuffer < 0:
		return invalid("exhibit.collision_buffer %v", c.Exhibit.CollisionBuffer)
	case c.Particles.Capacity <= 0 || c.Particles.Lifespan <= 0 || c.Particles.Size <= 0:
		return invalid("particles capacity %d lifespan %v size %v", c.Particles.Capacity, c.Particles.Lifespan, c.Particles.Size)
	case c.Particles.Rate < 0 || c.Particles.VelocityRange < 0:
		return invalid("particles rate %v velocity_range %v", c.Particles.Rate, c.Particles.VelocityRange)
	}

	if err := museum.ValidateStyle(c.Style(), museum.RoomSizes()...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Style converts the exhibit section into the style shared by every room.
//
// Returns:
//   - exhibit.Style: the style
func (c Config) Style() exhibit.Style {
	e := c.Exhibit
	return exhibit.Style{
		Floor:           common.NewAppearance(e.FloorColor[0], e.FloorColor[1], e.FloorColor[2]),
		Wall:            common.NewAppearance(e.WallColor[0], e.WallColor[1], e.WallColor[2]),
		Thickness:       e.Thickness,
		WallHeight:      e.WallHeight,
		DoorGap:         e.DoorGap,
		CollisionBuffer: e.CollisionBuffer,
	}
}

// EmitterOptions converts the particles section into emitter options.
//
// Returns:
//   - []particle.EmitterBuilderOption: the options
func (c Config) EmitterOptions() []particle.EmitterBuilderOption {
	p := c.Particles
	opts := []particle.EmitterBuilderOption{
		particle.WithCapacity(p.Capacity),
		particle.WithLifespan(p.Lifespan),
		particle.WithRate(p.Rate),
		particle.WithVelocityRange(p.VelocityRange),
		particle.WithSize(p.Size),
		particle.WithTint(p.Tint[0], p.Tint[1], p.Tint[2], p.Tint[3]),
	}
	if p.Seed != 0 {
		opts = append(opts, particle.WithSeed(p.Seed))
	}
	return opts
}

// ControllerOptions converts the camera section into first-person controller options. Mouse look
// starts enabled only when the window captures the cursor.
//
// Returns:
//   - []camera.FirstPersonControllerOption: the options
func (c Config) ControllerOptions() []camera.FirstPersonControllerOption {
	cam := c.Camera
	return []camera.FirstPersonControllerOption{
		camera.WithStartPosition(cam.StartPosition[0], cam.StartPosition[1], cam.StartPosition[2]),
		camera.WithStartYaw(degToRad(cam.StartYaw)),
		camera.WithMoveSpeed(cam.MoveSpeed),
		camera.WithLookSpeed(cam.LookSpeed),
		camera.WithHeightBounds(cam.MinHeight, cam.MaxHeight),
		camera.WithFirstPerson(c.Window.CursorCaptured),
	}
}

// CameraOptions converts the camera section into camera options, attaching a controller built
// from ControllerOptions.
//
// Returns:
//   - []camera.CameraBuilderOption: the options
func (c Config) CameraOptions() []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithFov(degToRad(c.Camera.Fov)),
		camera.WithAspect(float32(c.Window.Width) / float32(c.Window.Height)),
		camera.WithNear(c.Camera.Near),
		camera.WithFar(c.Camera.Far),
		camera.WithController(camera.NewFirstPersonController(c.ControllerOptions()...)),
	}
}

func degToRad(d float32) float32 {
	return d * math.Pi / 180
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
