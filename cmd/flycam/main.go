// Package main is the entry point for the flycam editor viewport.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/flycam/internal/config"
	"github.com/Faultbox/flycam/internal/logger"
	"github.com/Faultbox/flycam/internal/viewport"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== flycam ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	vp, err := viewport.New(cfg)
	if err != nil {
		logger.Error("failed to create viewport", zap.Error(err))
		os.Exit(1)
	}
	defer vp.Close()

	if err := vp.Run(); err != nil {
		logger.Error("viewport error", zap.Error(err))
		os.Exit(1)
	}

	cam := vp.Camera()
	logger.Info("viewport closed normally",
		zap.Any("position", cam.Position()),
		zap.Float32("yaw", cam.Yaw()),
		zap.Float32("pitch", cam.Pitch()),
	)
}
