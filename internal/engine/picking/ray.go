// Package picking casts rays from the viewport cursor into the scene.
package picking

import (
	gomath "math"

	"github.com/Faultbox/flycam/internal/engine/camera"
	"github.com/Faultbox/flycam/pkg/math"
)

// Ray is a half-line in world space. Direction is unit length.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay returns the ray from the camera through a cursor position.
// cursor is in the same pixel space as viewportW/H, origin top-left.
func ScreenToRay(cursor math.Vec2, viewportW, viewportH float32, cam *camera.Controller) Ray {
	ndcX := 2*cursor.X/viewportW - 1
	ndcY := 1 - 2*cursor.Y/viewportH // Flip Y

	specs := cam.Specs()
	tanHalf := float32(gomath.Tan(float64(specs.FOV) / 2))

	dir := cam.Forward().
		Add(cam.Right().Scale(ndcX * tanHalf * specs.AspectRatio)).
		Add(cam.Up().Scale(ndcY * tanHalf))

	return Ray{Origin: cam.Position(), Direction: dir.Normalize()}
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
// Rays parallel to the plane or pointing away from it miss.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	if math.Abs(r.Direction.Y) < 1e-4 {
		return math.Vec3{}, false
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false
	}
	return r.At(t), true
}
