// Command museum opens the walkable exhibit museum in a window.
//
// Controls: WASD to walk, mouse to look, R to toggle cursor capture, arrow keys to nudge the
// current room's effect, scroll or P/O to zoom, Esc to quit.
package main

import (
	"flag"
	"log"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/config"
	"github.com/Carmen-Shannon/oxy-museum/engine"
	"github.com/Carmen-Shannon/oxy-museum/engine/camera"
	"github.com/Carmen-Shannon/oxy-museum/engine/input"
	"github.com/Carmen-Shannon/oxy-museum/engine/museum"
	"github.com/Carmen-Shannon/oxy-museum/engine/renderer"
	"github.com/Carmen-Shannon/oxy-museum/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-museum/engine/scene"
	"github.com/Carmen-Shannon/oxy-museum/engine/window"
)

// radians per scroll notch
const scrollZoom = 0.05

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (defaults are used when empty)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	// ── Window + Renderer ───────────────────────────────────────────────
	w := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithCursorCaptured(cfg.Window.CursorCaptured),
	)

	presentMode := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		presentMode = renderer.PresentModeVSync
	}
	r, err := renderer.NewRenderer(w,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.Window.MSAA)),
		renderer.WithMaxBillboards(cfg.Particles.Capacity),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Release()

	// ── Camera + Scene + Museum ─────────────────────────────────────────
	cam := camera.NewCamera(cfg.CameraOptions()...)
	sc := scene.NewScene("Museum", cam,
		scene.WithActive(true),
		scene.WithComputeWorkers(cfg.Engine.ComputeWorkers),
	)

	m, err := museum.NewMuseum(sc,
		museum.WithStyle(cfg.Style()),
		museum.WithEmitterOptions(cfg.EmitterOptions()...),
	)
	if err != nil {
		log.Fatal(err)
	}

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithRenderer(r),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithProfilerInterval(time.Duration(cfg.Engine.ProfilerInterval*float64(time.Second))),
		engine.WithProfilerStatus(func() string { return m.CurrentRoom().String() }),
		engine.WithScene(0, sc),
	)

	in := input.NewState()
	setupInput(eng, cam, in)

	eng.SetTickCallback(func(dt float32) {
		m.Step(dt, in)
	})
	eng.SetRenderCallback(func(_ float32) {
		r.SetEffects(toEffects(m.Effects()))
		r.SetBillboards(m.Billboards(), m.Layout().Emitter().Tint())
	})

	log.Printf("[Museum] WASD walk, mouse look, R cursor, arrows nudge effects, Esc quit")
	eng.Run()
}

// setupInput feeds window events into the input state. R toggles cursor capture, Esc quits and
// scrolling zooms the camera. The window is closed from its update callback, outside event dispatch.
//
// Parameters:
//   - eng: the engine providing the window
//   - cam: the camera to zoom
//   - in: the input state the museum steps with
func setupInput(eng engine.Engine, cam camera.Camera, in input.State) {
	w := eng.Window()
	var quit atomic.Bool

	w.SetUpdateCallback(func() {
		if quit.Load() {
			eng.Quit()
			if err := w.Close(); err != nil {
				log.Printf("[Museum] close window: %v", err)
			}
		}
	})

	w.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyEsc:
			quit.Store(true)
			return
		case common.KeyR:
			w.SetCursorCaptured(!w.CursorCaptured())
		}
		in.Press(keyCode)
	})

	w.SetKeyUpCallback(func(keyCode uint32) {
		in.Release(keyCode)
	})

	w.SetMouseMoveCallback(func(dx, dy float32) {
		if w.CursorCaptured() {
			in.MoveMouse(dx, dy)
		}
	})

	w.SetScrollCallback(func(delta float32) {
		cam.SetFov(common.Clamp(cam.Fov()-delta*scrollZoom, camera.MinFov, camera.MaxFov))
	})
}

func toEffects(p museum.PostProcessParams) material.Effects {
	return material.Effects{
		Brightness:     p.Brightness,
		Contrast:       p.Contrast,
		BloomThreshold: p.BloomThreshold,
		BloomIntensity: p.BloomIntensity,
		CelBands:       p.CelBands,
	}
}
