package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/gekko3d/lumen"

	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := lumen.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logger := lumen.NewDefaultLogger("lumen", cfg.Debug)
	if err := cfg.Validate(); err != nil {
		logger.Criticalf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	logger.Infof("Creating engine context")
	app := lumen.NewAppBuilder().
		UseStates(lumen.StateRunning, lumen.StateStopped).
		UseModule(
			lumen.LoggingModule{Logger: logger},
			lumen.PlatformWindowModule{
				Width:      cfg.WindowWidth,
				Height:     cfg.WindowHeight,
				Title:      cfg.WindowTitle,
				IconPath:   cfg.IconPath,
				Borderless: cfg.Borderless,
			},
			lumen.InputModule{},
			lumen.TimeModule{},
			lumen.QuadRendererModule{
				VertexShaderPath:   cfg.VertexShaderPath,
				FragmentShaderPath: cfg.FragmentShaderPath,
				TexturePath:        cfg.TexturePath,
				Origin:             mgl32.Vec2{256, 256},
				ClearColor:         mgl32.Vec4{0, 0, 0, 1},
				MaxLights:          cfg.MaxPointLights,
			},
			lumen.LightingModule{
				MaxLights: cfg.MaxPointLights,
				Lights:    lumen.DemoLights(),
				Animated:  lumen.DemoAnimatedLights(),
				Scene:     lumen.DemoScene(),
			},
			lumen.FrameLimiterModule{Delay: cfg.FrameDelay},
		).
		Build()

	app.Run()
}
