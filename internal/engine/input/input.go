// Package input turns SDL2 events and keyboard state into camera input.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/flycam/internal/engine/camera"
	"github.com/Faultbox/flycam/pkg/math"
)

// EventType identifies the window-level events the viewer reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Bindings maps movement directions to scancodes. Any listed key activates
// the direction.
type Bindings struct {
	Forward  []sdl.Scancode
	Backward []sdl.Scancode
	Left     []sdl.Scancode
	Right    []sdl.Scancode
	Up       []sdl.Scancode
	Down     []sdl.Scancode
	Boost    []sdl.Scancode
}

// DefaultBindings returns WASD movement with E/Space up, Q/Ctrl down and
// Shift to boost.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:  []sdl.Scancode{sdl.SCANCODE_W},
		Backward: []sdl.Scancode{sdl.SCANCODE_S},
		Left:     []sdl.Scancode{sdl.SCANCODE_A},
		Right:    []sdl.Scancode{sdl.SCANCODE_D},
		Up:       []sdl.Scancode{sdl.SCANCODE_E, sdl.SCANCODE_SPACE},
		Down:     []sdl.Scancode{sdl.SCANCODE_Q, sdl.SCANCODE_LCTRL},
		Boost:    []sdl.Scancode{sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT},
	}
}

func anyPressed(keys []sdl.Scancode, pressed func(sdl.Scancode) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// MovementFromKeys builds the movement set for the keys reported as held.
// Opposite directions may both be set.
func MovementFromKeys(b Bindings, pressed func(sdl.Scancode) bool) camera.MovementFlags {
	var flags camera.MovementFlags
	bound := []struct {
		keys     []sdl.Scancode
		movement camera.Movement
	}{
		{b.Forward, camera.Forward},
		{b.Backward, camera.Backward},
		{b.Left, camera.Left},
		{b.Right, camera.Right},
		{b.Up, camera.Up},
		{b.Down, camera.Down},
	}
	for _, bk := range bound {
		if anyPressed(bk.keys, pressed) {
			flags.Set(bk.movement)
		}
	}
	return flags
}

// Input holds the per-frame input snapshot.
type Input struct {
	bindings Bindings
	events   []Event

	movement      camera.MovementFlags
	boost         bool
	cursor        math.Vec2
	rotating      bool
	rotateStarted bool
}

// New creates an input handler with the given bindings.
func New(bindings Bindings) *Input {
	return &Input{
		bindings: bindings,
		events:   make([]Event, 0, 16),
	}
}

// Update polls SDL events and samples the keyboard.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.rotateStarted = false
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
			}

		case *sdl.MouseMotionEvent:
			i.cursor = math.Vec2{X: float32(e.X), Y: float32(e.Y)}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_RIGHT {
				continue
			}
			i.cursor = math.Vec2{X: float32(e.X), Y: float32(e.Y)}
			pressed := e.State == sdl.PRESSED
			if pressed && !i.rotating {
				i.rotateStarted = true
			}
			i.rotating = pressed
		}
	}

	keys := sdl.GetKeyboardState()
	pressed := func(sc sdl.Scancode) bool {
		return int(sc) < len(keys) && keys[sc] != 0
	}
	i.movement = MovementFromKeys(i.bindings, pressed)
	i.boost = anyPressed(i.bindings.Boost, pressed)

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Movement returns the movement keys held during the last Update.
func (i *Input) Movement() camera.MovementFlags {
	return i.movement
}

// Boost reports whether a boost key is held.
func (i *Input) Boost() bool {
	return i.boost
}

// Cursor returns the last known cursor position in window pixels.
func (i *Input) Cursor() math.Vec2 {
	return i.cursor
}

// Rotating reports whether the rotate button is held.
func (i *Input) Rotating() bool {
	return i.rotating
}

// RotateStarted reports whether the rotate button went down this frame.
func (i *Input) RotateStarted() bool {
	return i.rotateStarted
}
