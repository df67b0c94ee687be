package camera

import (
	"errors"
	gomath "math"

	"github.com/Faultbox/flycam/pkg/math"
)

// Specs describes the perspective projection.
type Specs struct {
	FOV         float32 // Vertical field of view, radians
	Near        float32 // Near clip plane
	Far         float32 // Far clip plane
	AspectRatio float32 // Width / height
}

// DefaultSpecs returns a 45 degree, 16:9 projection clipping at [0.1, 100].
func DefaultSpecs() Specs {
	return Specs{
		FOV:         math.Radians(45),
		Near:        0.1,
		Far:         100,
		AspectRatio: 16.0 / 9.0,
	}
}

var (
	ErrInvalidFOV    = errors.New("camera: fov must be in (0, pi)")
	ErrInvalidClip   = errors.New("camera: clip planes must satisfy 0 < near < far")
	ErrInvalidAspect = errors.New("camera: aspect ratio must be positive")
)

// Validate reports every violated invariant. The controller never rejects
// specs; this exists for diagnostics.
func (s Specs) Validate() error {
	var errs []error
	if !(s.FOV > 0 && s.FOV < gomath.Pi) {
		errs = append(errs, ErrInvalidFOV)
	}
	if !(s.Near > 0 && s.Near < s.Far) {
		errs = append(errs, ErrInvalidClip)
	}
	if !(s.AspectRatio > 0) {
		errs = append(errs, ErrInvalidAspect)
	}
	return errors.Join(errs...)
}
