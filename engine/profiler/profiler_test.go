package profiler

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickLogsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	p := NewProfiler()
	p.SetInterval(time.Hour)
	assert.False(t, p.Tick())
	assert.Empty(t, buf.String())

	p.SetInterval(time.Nanosecond)
	p.SetStatus(func() string { return "Room: Intro" })
	time.Sleep(time.Millisecond)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "[Profiler] FPS:")
	assert.Contains(t, buf.String(), "| Room: Intro")
}
