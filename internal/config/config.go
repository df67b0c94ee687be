// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/Faultbox/flycam/internal/engine/camera"
	"github.com/Faultbox/flycam/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig seeds the editor camera at start-up.
type CameraConfig struct {
	FOVDegrees      float32    `yaml:"fov_degrees"`
	Near            float32    `yaml:"near"`
	Far             float32    `yaml:"far"`
	LinearSpeed     float32    `yaml:"linear_speed"`
	RotationSpeed   float32    `yaml:"rotation_speed"`
	BoostMultiplier float32    `yaml:"boost_multiplier"`
	Position        [3]float32 `yaml:"position,flow"`
	Yaw             float32    `yaml:"yaw"`
	Pitch           float32    `yaml:"pitch"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "flycam",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOVDegrees:      45,
			Near:            0.1,
			Far:             100,
			LinearSpeed:     camera.DefaultLinearSpeed,
			RotationSpeed:   camera.DefaultRotationSpeed,
			BoostMultiplier: 4,
			Position:        [3]float32{camera.DefaultPosition.X, camera.DefaultPosition.Y, camera.DefaultPosition.Z},
			Yaw:             camera.DefaultYaw,
			Pitch:           camera.DefaultPitch,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Specs converts the camera section into projection specs for the given
// viewport aspect ratio.
func (c CameraConfig) Specs(aspect float32) camera.Specs {
	return camera.Specs{
		FOV:         math.Radians(c.FOVDegrees),
		Near:        c.Near,
		Far:         c.Far,
		AspectRatio: aspect,
	}
}

// StartPosition returns the configured position as a vector.
func (c CameraConfig) StartPosition() math.Vec3 {
	return math.Vec3{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]}
}

// AspectRatio returns width/height, or 1 for a degenerate window.
func (w WindowConfig) AspectRatio() float32 {
	if w.Width <= 0 || w.Height <= 0 {
		return 1
	}
	return float32(w.Width) / float32(w.Height)
}
