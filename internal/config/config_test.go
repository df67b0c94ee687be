package config

import (
	gomath "math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/flycam/internal/engine/camera"
	"github.com/Faultbox/flycam/pkg/math"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.FOVDegrees != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOVDegrees)
	}
	if cfg.Camera.LinearSpeed != camera.DefaultLinearSpeed {
		t.Errorf("expected linear speed %f, got %f", camera.DefaultLinearSpeed, cfg.Camera.LinearSpeed)
	}
	if cfg.Camera.StartPosition() != camera.DefaultPosition {
		t.Errorf("expected start position %v, got %v", camera.DefaultPosition, cfg.Camera.StartPosition())
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestDefaultCameraMatchesControllerDefaults(t *testing.T) {
	cfg := Default()
	specs := cfg.Camera.Specs(16.0 / 9.0)

	if specs != camera.DefaultSpecs() {
		t.Errorf("default camera config should produce %+v, got %+v", camera.DefaultSpecs(), specs)
	}
	if err := specs.Validate(); err != nil {
		t.Errorf("default specs should be valid: %v", err)
	}
}

func TestCameraSpecsConvertsDegrees(t *testing.T) {
	cc := CameraConfig{FOVDegrees: 90, Near: 1, Far: 10}
	specs := cc.Specs(2)

	if math.Abs(specs.FOV-gomath.Pi/2) > 1e-6 {
		t.Errorf("expected fov pi/2, got %f", specs.FOV)
	}
	if specs.Near != 1 || specs.Far != 10 || specs.AspectRatio != 2 {
		t.Errorf("unexpected specs %+v", specs)
	}
}

func TestWindowAspectRatio(t *testing.T) {
	tests := []struct {
		w, h int
		want float32
	}{
		{1280, 720, 1280.0 / 720.0},
		{800, 800, 1},
		{800, 0, 1},
	}
	for _, tt := range tests {
		got := WindowConfig{Width: tt.w, Height: tt.h}.AspectRatio()
		if got != tt.want {
			t.Errorf("AspectRatio(%dx%d) = %f, want %f", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  title: "level editor"
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  fov_degrees: 60
  near: 0.5
  far: 2000
  linear_speed: 12
  rotation_speed: 0.25
  boost_multiplier: 3
  position: [10, 4, -2]
  yaw: 45
  pitch: -15

logging:
  level: "debug"
  log_file: "flycam.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Title != "level editor" {
		t.Errorf("expected title 'level editor', got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOVDegrees)
	}
	if cfg.Camera.Far != 2000 {
		t.Errorf("expected far 2000, got %f", cfg.Camera.Far)
	}
	if cfg.Camera.LinearSpeed != 12 {
		t.Errorf("expected linear speed 12, got %f", cfg.Camera.LinearSpeed)
	}
	if cfg.Camera.RotationSpeed != 0.25 {
		t.Errorf("expected rotation speed 0.25, got %f", cfg.Camera.RotationSpeed)
	}
	if cfg.Camera.StartPosition() != (math.Vec3{X: 10, Y: 4, Z: -2}) {
		t.Errorf("expected position (10,4,-2), got %v", cfg.Camera.StartPosition())
	}
	if cfg.Camera.Yaw != 45 || cfg.Camera.Pitch != -15 {
		t.Errorf("expected yaw/pitch 45/-15, got %f/%f", cfg.Camera.Yaw, cfg.Camera.Pitch)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "flycam.log" {
		t.Errorf("expected log file 'flycam.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  linear_speed: 20\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Camera.LinearSpeed != 20 {
		t.Errorf("expected linear speed 20, got %f", cfg.Camera.LinearSpeed)
	}
	// Untouched keys keep their defaults.
	if cfg.Camera.FOVDegrees != 45 {
		t.Errorf("expected default fov 45, got %f", cfg.Camera.FOVDegrees)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", cfg.Window.Width)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("flycam.yaml", []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find flycam.yaml in current directory")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Camera.Position = [3]float32{1, 2, 3}
	cfg.Camera.Yaw = 135
	cfg.Logging.Level = "warn"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config differs:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "speed flag",
			setup: func() { *flagSpeed = 25 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.LinearSpeed != 25 {
					t.Errorf("expected linear speed 25, got %f", cfg.Camera.LinearSpeed)
				}
			},
			teardown: func() { *flagSpeed = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from the flag, height from the file
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}
