// Package camera implements the free-fly editor camera.
package camera

import (
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/flycam/pkg/math"
)

// Pitch limits in degrees. Stopping short of the poles keeps forward from
// becoming parallel to world up, which would collapse the basis.
const (
	MinPitch float32 = -89.0
	MaxPitch float32 = 89.0
)

// Defaults for a freshly constructed controller.
const (
	DefaultLinearSpeed   float32 = 5.0 // world units per second
	DefaultRotationSpeed float32 = 0.1 // degrees per cursor unit
	DefaultYaw           float32 = -90.0
	DefaultPitch         float32 = 0.0
)

// DefaultPosition is where a new controller starts.
var DefaultPosition = math.Vec3{X: 0, Y: 0, Z: 5}

// Controller is a free-fly camera driven once per frame.
//
// Yaw and pitch are the source of truth for orientation: the basis vectors
// are rederived from them whenever they change, so no rotation error
// accumulates. The only exception is SetOrientation, which installs an
// external basis verbatim until the next rotating Update.
//
// View and projection matrices are recomputed eagerly by every mutator and
// are never stale. A Controller is not safe for concurrent use.
type Controller struct {
	specs Specs

	position math.Vec3
	forward  math.Vec3
	right    math.Vec3
	up       math.Vec3

	yaw   float32 // degrees
	pitch float32 // degrees
	roll  float32 // degrees, informational only

	linearSpeed   float32
	rotationSpeed float32
	lastCursor    math.Vec2

	view       math.Mat4
	projection math.Mat4

	log *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSpecs overrides the default projection specs.
func WithSpecs(specs Specs) Option {
	return func(c *Controller) {
		c.specs = specs
	}
}

// New creates a controller at the default pose with both matrices computed.
func New(opts ...Option) *Controller {
	c := &Controller{
		specs:         DefaultSpecs(),
		position:      DefaultPosition,
		yaw:           DefaultYaw,
		pitch:         DefaultPitch,
		linearSpeed:   DefaultLinearSpeed,
		rotationSpeed: DefaultRotationSpeed,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.forward, c.right, c.up = BasisFromYawPitch(c.yaw, c.pitch, math.WorldUp)
	c.updateProjection()
	c.updateView()
	return c
}

// SetSpecs replaces the projection specs and recomputes the projection.
// Out-of-range specs are accepted as-is.
func (c *Controller) SetSpecs(specs Specs) {
	if err := specs.Validate(); err != nil {
		c.log.Debug("camera specs out of range",
			zap.Float32("fov", specs.FOV),
			zap.Float32("near", specs.Near),
			zap.Float32("far", specs.Far),
			zap.Float32("aspect", specs.AspectRatio),
			zap.Error(err),
		)
	}
	c.specs = specs
	c.updateProjection()
}

// Specs returns the current projection specs.
func (c *Controller) Specs() Specs {
	return c.specs
}

// SetPosition moves the camera without changing its orientation.
func (c *Controller) SetPosition(position math.Vec3) {
	c.position = position
	c.updateView()
}

// SetOrientation installs an external basis. Columns 0, 1 and 2 of m are
// the right, up and forward axes; each is normalized but orthogonality is
// not enforced.
//
// Yaw, pitch and roll are decomposed from the basis so that a following
// Update continues from the same heading. The decomposition is one-way:
// Update only ever rebuilds forward from yaw and pitch, so any roll is
// dropped by the next rotating Update.
func (c *Controller) SetOrientation(m math.Mat3) {
	c.right = m.Col(0).Normalize()
	c.up = m.Col(1).Normalize()
	c.forward = m.Col(2).Normalize()

	f := c.forward
	c.yaw = math.Degrees(float32(gomath.Atan2(float64(f.Z), float64(f.X))))
	c.pitch = math.Degrees(float32(gomath.Asin(float64(math.Clamp(f.Y, -1, 1)))))
	c.roll = math.Degrees(float32(gomath.Atan2(float64(c.right.Y), float64(c.up.Y))))

	c.updateView()
}

// Update advances the camera by one frame.
//
// The position moves along the current basis by linearSpeed*dt for every
// flag set; simultaneous flags add up and are not renormalized. When rotate
// is true the cursor delta since the last rotating frame turns the camera
// (moving the cursor up pitches up) and the cursor becomes the new
// reference. When rotate is false the reference is left untouched, so the
// first rotating frame afterwards measures its delta from the old position.
func (c *Controller) Update(dt time.Duration, flags MovementFlags, cursor math.Vec2, rotate bool) {
	speed := c.linearSpeed * float32(dt.Seconds())

	var movement math.Vec3
	if flags.Has(Forward) {
		movement = movement.Add(c.forward.Scale(speed))
	}
	if flags.Has(Backward) {
		movement = movement.Sub(c.forward.Scale(speed))
	}
	if flags.Has(Left) {
		movement = movement.Sub(c.right.Scale(speed))
	}
	if flags.Has(Right) {
		movement = movement.Add(c.right.Scale(speed))
	}
	if flags.Has(Up) {
		movement = movement.Add(c.up.Scale(speed))
	}
	if flags.Has(Down) {
		movement = movement.Sub(c.up.Scale(speed))
	}
	c.position = c.position.Add(movement)

	if rotate {
		delta := cursor.Sub(c.lastCursor)
		c.yaw += delta.X * c.rotationSpeed
		c.pitch -= delta.Y * c.rotationSpeed
		c.pitch = math.Clamp(c.pitch, MinPitch, MaxPitch)
		c.lastCursor = cursor

		c.forward, c.right, c.up = BasisFromYawPitch(c.yaw, c.pitch, math.WorldUp)
	}

	c.updateView()
}

// ResetCursor makes p the reference for the next rotating Update.
func (c *Controller) ResetCursor(p math.Vec2) {
	c.lastCursor = p
}

// BasisFromYawPitch converts yaw and pitch (degrees) into a unit forward
// vector and completes it into a right-handed orthonormal basis against
// worldUp. Roll cannot be expressed.
func BasisFromYawPitch(yaw, pitch float32, worldUp math.Vec3) (forward, right, up math.Vec3) {
	yawRad := float64(math.Radians(yaw))
	pitchRad := float64(math.Radians(pitch))

	forward = math.Vec3{
		X: float32(gomath.Cos(yawRad) * gomath.Cos(pitchRad)),
		Y: float32(gomath.Sin(pitchRad)),
		Z: float32(gomath.Sin(yawRad) * gomath.Cos(pitchRad)),
	}.Normalize()
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// ViewMatrix returns the cached world-to-camera transform.
func (c *Controller) ViewMatrix() math.Mat4 {
	return c.view
}

// ProjectionMatrix returns the cached camera-to-clip transform.
func (c *Controller) ProjectionMatrix() math.Mat4 {
	return c.projection
}

// ViewProjection returns projection * view.
func (c *Controller) ViewProjection() math.Mat4 {
	return c.projection.Mul(c.view)
}

// Position returns the camera position in world space.
func (c *Controller) Position() math.Vec3 { return c.position }

// Forward returns the unit view direction.
func (c *Controller) Forward() math.Vec3 { return c.forward }

// Right returns the unit right axis.
func (c *Controller) Right() math.Vec3 { return c.right }

// Up returns the unit up axis.
func (c *Controller) Up() math.Vec3 { return c.up }

// Yaw returns the yaw in degrees.
func (c *Controller) Yaw() float32 { return c.yaw }

// Pitch returns the pitch in degrees.
func (c *Controller) Pitch() float32 { return c.pitch }

// Roll returns the roll decomposed by the last SetOrientation, in degrees.
func (c *Controller) Roll() float32 { return c.roll }

// LinearSpeed returns the movement speed in units per second.
func (c *Controller) LinearSpeed() float32 { return c.linearSpeed }

// RotationSpeed returns the rotation speed in degrees per cursor unit.
func (c *Controller) RotationSpeed() float32 { return c.rotationSpeed }

// SetLinearSpeed sets the movement speed used by the next Update.
func (c *Controller) SetLinearSpeed(speed float32) {
	c.linearSpeed = speed
}

// SetRotationSpeed sets the rotation speed used by the next Update.
func (c *Controller) SetRotationSpeed(speed float32) {
	c.rotationSpeed = speed
}

func (c *Controller) updateProjection() {
	c.projection = math.Perspective(c.specs.FOV, c.specs.AspectRatio, c.specs.Near, c.specs.Far)
}

func (c *Controller) updateView() {
	c.view = math.LookAt(c.position, c.position.Add(c.forward), c.up)
}
