package museum

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-museum/engine/transform"
	"github.com/stretchr/testify/assert"
)

func TestBobPingPongs(t *testing.T) {
	tr := transform.NewTransform(transform.WithPosition(1, 2, 3))
	a := NewBob(tr, 1, 1)

	a.Update(0.5)
	assert.InDelta(t, 2.5, tr.Position()[1], 1e-4)

	a.Update(0.5)
	assert.InDelta(t, 3, tr.Position()[1], 1e-4)

	a.Update(1)
	assert.InDelta(t, 2, tr.Position()[1], 1e-4, "returns to the base height")
	assert.InDelta(t, 1, tr.Position()[0], 1e-6)
	assert.InDelta(t, 3, tr.Position()[2], 1e-6)
}

func TestSpinTurnsAroundY(t *testing.T) {
	tr := transform.NewTransform()
	a := NewSpin(tr, 4)

	a.Update(1)
	assert.InDelta(t, math.Pi/2, tr.Rotation()[1], 1e-4)

	a.Update(3)
	assert.InDelta(t, 2*math.Pi, tr.Rotation()[1], 1e-4)

	a.Update(1)
	assert.InDelta(t, math.Pi/2, tr.Rotation()[1], 1e-4, "restarts after a full turn")
	assert.InDelta(t, 0, tr.Rotation()[0], 1e-6)
}
