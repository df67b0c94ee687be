package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/flycam/internal/engine/camera"
)

func held(keys ...sdl.Scancode) func(sdl.Scancode) bool {
	set := make(map[sdl.Scancode]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(sc sdl.Scancode) bool { return set[sc] }
}

func TestMovementFromKeys(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		name string
		keys []sdl.Scancode
		want camera.MovementFlags
	}{
		{"nothing", nil, 0},
		{"forward", []sdl.Scancode{sdl.SCANCODE_W}, camera.NewMovementFlags(camera.Forward)},
		{"diagonal", []sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_D}, camera.NewMovementFlags(camera.Forward, camera.Right)},
		{"opposites", []sdl.Scancode{sdl.SCANCODE_A, sdl.SCANCODE_D}, camera.NewMovementFlags(camera.Left, camera.Right)},
		{"up via space", []sdl.Scancode{sdl.SCANCODE_SPACE}, camera.NewMovementFlags(camera.Up)},
		{"up via both keys", []sdl.Scancode{sdl.SCANCODE_E, sdl.SCANCODE_SPACE}, camera.NewMovementFlags(camera.Up)},
		{"down", []sdl.Scancode{sdl.SCANCODE_Q}, camera.NewMovementFlags(camera.Down)},
		{"unbound key", []sdl.Scancode{sdl.SCANCODE_Z}, 0},
		{"boost alone", []sdl.Scancode{sdl.SCANCODE_LSHIFT}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovementFromKeys(b, held(tt.keys...))
			if got != tt.want {
				t.Errorf("MovementFromKeys() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMovementFromKeysCustomBindings(t *testing.T) {
	b := Bindings{
		Forward: []sdl.Scancode{sdl.SCANCODE_UP},
		Left:    []sdl.Scancode{sdl.SCANCODE_LEFT},
	}

	got := MovementFromKeys(b, held(sdl.SCANCODE_UP, sdl.SCANCODE_LEFT, sdl.SCANCODE_W))
	want := camera.NewMovementFlags(camera.Forward, camera.Left)
	if got != want {
		t.Errorf("MovementFromKeys() = %v, want %v", got, want)
	}
}

func TestNewInputStartsIdle(t *testing.T) {
	in := New(DefaultBindings())

	if !in.Movement().IsEmpty() {
		t.Errorf("expected no movement, got %v", in.Movement())
	}
	if in.Rotating() || in.RotateStarted() || in.Boost() {
		t.Error("expected idle input")
	}
	if len(in.Events()) != 0 {
		t.Errorf("expected no events, got %d", len(in.Events()))
	}
}
