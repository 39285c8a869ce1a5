package museum

import (
	"math"

	"github.com/Carmen-Shannon/oxy-museum/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type animationKind int

const (
	animBob animationKind = iota
	animSpin
)

// Animation drives one decor transform with a looping tween. A bob moves the target up and
// down around the position it had when the animation was created, reversing at each end.
// A spin turns the target a full revolution around Y and restarts.
// There is no global animation manager; the museum calls Update every step.
type Animation struct {
	target transform.Transform
	kind   animationKind
	base   mgl32.Vec3
	baseR  mgl32.Vec3

	from, to float32
	duration float32
	easing   ease.TweenFunc
	tween    *gween.Tween
}

// NewBob creates an animation that moves the target between its current height and
// height units above it, taking duration seconds each way.
//
// Parameters:
//   - t: the transform to drive
//   - height: the bob amplitude
//   - duration: seconds per half cycle
//
// Returns:
//   - *Animation: the animation
func NewBob(t transform.Transform, height, duration float32) *Animation {
	return &Animation{
		target:   t,
		kind:     animBob,
		base:     t.Position(),
		to:       height,
		duration: duration,
		easing:   ease.InOutSine,
		tween:    gween.New(0, height, duration, ease.InOutSine),
	}
}

// NewSpin creates an animation that turns the target once around Y every duration seconds.
//
// Parameters:
//   - t: the transform to drive
//   - duration: seconds per revolution
//
// Returns:
//   - *Animation: the animation
func NewSpin(t transform.Transform, duration float32) *Animation {
	return &Animation{
		target:   t,
		kind:     animSpin,
		baseR:    t.Rotation(),
		to:       2 * math.Pi,
		duration: duration,
		easing:   ease.Linear,
		tween:    gween.New(0, 2*math.Pi, duration, ease.Linear),
	}
}

// Update advances the tween by dt seconds and writes the value to the target.
func (a *Animation) Update(dt float32) {
	v, done := a.tween.Update(dt)
	switch a.kind {
	case animBob:
		a.target.SetPosition(a.base.Add(mgl32.Vec3{0, v, 0}))
		if done {
			a.from, a.to = a.to, a.from
			a.tween = gween.New(a.from, a.to, a.duration, a.easing)
		}
	case animSpin:
		r := a.baseR
		r[1] += v
		a.target.SetRotation(r)
		if done {
			a.tween.Reset()
		}
	}
}
