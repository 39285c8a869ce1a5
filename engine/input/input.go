package input

import "sync"

// Reader is the read side of the input state consumed by simulation code.
type Reader interface {
	// Down reports whether the key is currently held.
	//
	// Parameters:
	//   - key: GLFW key code (see common.Key*)
	//
	// Returns:
	//   - bool: true while the key is held
	Down(key uint32) bool

	// Pressed reports whether the key went down since the last EndFrame.
	//
	// Parameters:
	//   - key: GLFW key code (see common.Key*)
	//
	// Returns:
	//   - bool: true once per press
	Pressed(key uint32) bool

	// MouseDelta returns the cursor movement accumulated since the last EndFrame.
	//
	// Returns:
	//   - dx, dy: movement in pixels (positive x is right, positive y is down)
	MouseDelta() (dx, dy float32)
}

// State tracks keyboard and mouse input fed from window callbacks and read by the
// tick goroutine. Thread-safe for concurrent access.
type State interface {
	Reader

	// Press records a key press.
	//
	// Parameters:
	//   - key: GLFW key code
	Press(key uint32)

	// Release records a key release.
	//
	// Parameters:
	//   - key: GLFW key code
	Release(key uint32)

	// MoveMouse accumulates a cursor movement.
	//
	// Parameters:
	//   - dx, dy: movement in pixels
	MoveMouse(dx, dy float32)

	// EndFrame clears per-frame state: press edges and the accumulated mouse delta.
	EndFrame()
}

type state struct {
	mu      *sync.Mutex
	down    map[uint32]bool
	pressed map[uint32]bool
	dx, dy  float32
}

var _ State = &state{}

// NewState creates an empty input State.
//
// Returns:
//   - State: the newly created input state
func NewState() State {
	return &state{
		mu:      &sync.Mutex{},
		down:    make(map[uint32]bool),
		pressed: make(map[uint32]bool),
	}
}

func (s *state) Press(key uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.down[key] {
		s.pressed[key] = true
	}
	s.down[key] = true
}

func (s *state) Release(key uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down[key] = false
}

func (s *state) Down(key uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.down[key]
}

func (s *state) Pressed(key uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pressed[key]
}

func (s *state) MoveMouse(dx, dy float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dx += dx
	s.dy += dy
}

func (s *state) MouseDelta() (dx, dy float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dx, s.dy
}

func (s *state) EndFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.pressed)
	s.dx, s.dy = 0, 0
}
