// Package viewport runs the interactive editor viewport: it feeds input to
// the free-fly camera every frame and draws a reference grid with the
// camera's matrices.
package viewport

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/flycam/internal/config"
	"github.com/Faultbox/flycam/internal/engine/camera"
	"github.com/Faultbox/flycam/internal/engine/input"
	"github.com/Faultbox/flycam/internal/engine/picking"
	"github.com/Faultbox/flycam/internal/engine/window"
	"github.com/Faultbox/flycam/internal/logger"
	"github.com/Faultbox/flycam/pkg/math"
)

// Grid dimensions in world units.
const (
	gridHalfCells  = 50
	gridCellSize   = 1.0
	gridMajorEvery = 10
)

// Viewport owns the window, input, camera and grid.
type Viewport struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.Controller
	grid   *gridRenderer
	log    *zap.Logger
}

// New opens the window and sets up the camera from cfg.
func New(cfg *config.Config) (*Viewport, error) {
	v := &Viewport{
		cfg: cfg,
		log: logger.Named("viewport"),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL entry points resolve against the current context
	if err := gl.Init(); err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	v.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)

	v.grid, err = newGridRenderer(GenerateGrid(gridHalfCells, gridCellSize, gridMajorEvery))
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	v.camera = NewCamera(cfg.Camera, v.window.AspectRatio(), logger.Named("camera"))
	v.input = input.New(input.DefaultBindings())
	v.resize()

	v.log.Info("viewport ready",
		zap.Any("position", v.camera.Position()),
		zap.Float32("yaw", v.camera.Yaw()),
		zap.Float32("pitch", v.camera.Pitch()),
	)
	return v, nil
}

// NewCamera builds a controller seeded from the camera config.
func NewCamera(cc config.CameraConfig, aspect float32, log *zap.Logger) *camera.Controller {
	cam := camera.New(camera.WithLogger(log), camera.WithSpecs(cc.Specs(aspect)))
	cam.SetLinearSpeed(cc.LinearSpeed)
	cam.SetRotationSpeed(cc.RotationSpeed)
	cam.SetPosition(cc.StartPosition())

	forward, right, up := camera.BasisFromYawPitch(cc.Yaw, math.Clamp(cc.Pitch, camera.MinPitch, camera.MaxPitch), math.WorldUp)
	cam.SetOrientation(math.Mat3FromCols(right, up, forward))
	return cam
}

// Camera returns the viewport camera.
func (v *Viewport) Camera() *camera.Controller {
	return v.camera
}

// Run drives the frame loop until the window is closed or Escape is pressed.
func (v *Viewport) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			if event.Type == input.EventWindowResize {
				v.resize()
			}
		}

		Step(v.camera, v.input, dt, v.cfg.Camera)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		v.grid.draw(v.camera.ViewMatrix(), v.camera.ProjectionMatrix())
		if err := glError(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Any("position", v.camera.Position()),
			)
			v.window.SetTitle(v.title(frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// FrameInput is what Step reads from the input system each frame.
type FrameInput interface {
	Movement() camera.MovementFlags
	Boost() bool
	Cursor() math.Vec2
	Rotating() bool
	RotateStarted() bool
}

// Step applies one frame of input to the camera. The cursor reference is
// re-anchored on the frame rotation engages, so grabbing the view never
// jumps by however far the cursor travelled while it was released.
func Step(cam *camera.Controller, in FrameInput, dt time.Duration, cc config.CameraConfig) {
	speed := cc.LinearSpeed
	if in.Boost() && cc.BoostMultiplier > 0 {
		speed *= cc.BoostMultiplier
	}
	cam.SetLinearSpeed(speed)

	if in.RotateStarted() {
		cam.ResetCursor(in.Cursor())
	}
	cam.Update(dt, in.Movement(), in.Cursor(), in.Rotating())
}

// title reports the frame rate and the ground point under the cursor.
func (v *Viewport) title(fps int) string {
	width, height := v.window.Size()
	ray := picking.ScreenToRay(v.input.Cursor(), float32(width), float32(height), v.camera)
	if p, ok := ray.IntersectPlaneY(0); ok {
		return fmt.Sprintf("%s | %d fps | ground %.2f, %.2f", v.cfg.Window.Title, fps, p.X, p.Z)
	}
	return fmt.Sprintf("%s | %d fps", v.cfg.Window.Title, fps)
}

// resize matches the GL viewport and projection aspect to the drawable.
func (v *Viewport) resize() {
	width, height := v.window.DrawableSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	specs := v.camera.Specs()
	specs.AspectRatio = v.window.AspectRatio()
	v.camera.SetSpecs(specs)

	v.log.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("aspect", specs.AspectRatio),
	)
}

func glError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// Close releases GL resources and the window.
func (v *Viewport) Close() {
	v.log.Info("closing viewport")

	if v.grid != nil {
		v.grid.close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
