package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithTimeout(t *testing.T, e Engine, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		require.FailNow(t, "engine did not stop")
	}
}

func TestHeadlessRunStopsOnQuit(t *testing.T) {
	var ticks atomic.Int32
	e := NewEngine(WithTickRate(200))
	e.SetTickCallback(func(float32) {
		if ticks.Add(1) == 5 {
			e.Quit()
		}
	})

	runWithTimeout(t, e, 5*time.Second)
	assert.GreaterOrEqual(t, ticks.Load(), int32(5))
	assert.NotPanics(t, e.Quit)
}

func TestSetTickRateWhileRunning(t *testing.T) {
	var ticks atomic.Int32
	stop := make(chan struct{})
	defer close(stop)

	e := NewEngine(WithTickRate(50))
	e.SetTickCallback(func(float32) {
		switch ticks.Add(1) {
		case 1:
			go func() {
				for {
					select {
					case <-stop:
						return
					default:
						e.SetTickRate(500)
						time.Sleep(time.Millisecond)
					}
				}
			}()
		case 10:
			e.Quit()
		}
	})

	runWithTimeout(t, e, 5*time.Second)
	assert.GreaterOrEqual(t, ticks.Load(), int32(10))
}
