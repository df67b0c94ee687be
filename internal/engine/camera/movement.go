package camera

import "strings"

// Movement is a single movement direction relative to the camera basis.
type Movement uint8

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down

	movementCount
)

var movementNames = [movementCount]string{
	Forward:  "Forward",
	Backward: "Backward",
	Left:     "Left",
	Right:    "Right",
	Up:       "Up",
	Down:     "Down",
}

func (m Movement) String() string {
	if m >= movementCount {
		return "Movement(?)"
	}
	return movementNames[m]
}

// MovementFlags is a set of Movement values. Flags are independent and
// combinable; opposite directions are not mutually exclusive and cancel out
// when the displacement is summed.
type MovementFlags uint8

// NewMovementFlags returns a set holding the given movements.
func NewMovementFlags(movements ...Movement) MovementFlags {
	var f MovementFlags
	for _, m := range movements {
		f.Set(m)
	}
	return f
}

func bit(m Movement) MovementFlags {
	return 1 << m
}

// Set adds m to the set.
func (f *MovementFlags) Set(m Movement) {
	*f |= bit(m)
}

// Clear removes m from the set.
func (f *MovementFlags) Clear(m Movement) {
	*f &^= bit(m)
}

// Has reports whether m is in the set.
func (f MovementFlags) Has(m Movement) bool {
	return f&bit(m) != 0
}

// ClearAll empties the set.
func (f *MovementFlags) ClearAll() {
	*f = 0
}

// IsEmpty reports whether no movement is set.
func (f MovementFlags) IsEmpty() bool {
	return f == 0
}

// String lists the set members joined by '|', or "None".
func (f MovementFlags) String() string {
	if f.IsEmpty() {
		return "None"
	}
	var names []string
	for m := Movement(0); m < movementCount; m++ {
		if f.Has(m) {
			names = append(names, m.String())
		}
	}
	return strings.Join(names, "|")
}
