package lumen

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// Config holds the command line settings of the demo.
type Config struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
	Borderless   bool
	IconPath     string

	TexturePath        string
	VertexShaderPath   string
	FragmentShaderPath string

	MaxPointLights int
	FrameDelay     time.Duration
	Debug          bool
}

func DefaultConfig() Config {
	return Config{
		WindowTitle:    "Lumen",
		Borderless:     true,
		IconPath:       "icon.bmp",
		TexturePath:    "assets/textures/brick_00/diffuse.jpg",
		MaxPointLights: DefaultMaxPointLights,
		FrameDelay:     16 * time.Millisecond,
	}
}

func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width, 0 uses the primary monitor")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height, 0 uses the primary monitor")
	fs.StringVar(&c.WindowTitle, "title", c.WindowTitle, "window title")
	fs.BoolVar(&c.Borderless, "borderless", c.Borderless, "create the window without decorations")
	fs.StringVar(&c.IconPath, "icon", c.IconPath, "window icon image, empty for none")
	fs.StringVar(&c.TexturePath, "texture", c.TexturePath, "quad texture image")
	fs.StringVar(&c.VertexShaderPath, "vs", c.VertexShaderPath, "vertex shader file, empty uses the built-in shader")
	fs.StringVar(&c.FragmentShaderPath, "fs", c.FragmentShaderPath, "fragment shader file, empty uses the built-in shader")
	fs.IntVar(&c.MaxPointLights, "max-lights", c.MaxPointLights, "size of the shader point light array")
	fs.DurationVar(&c.FrameDelay, "frame-delay", c.FrameDelay, "sleep after every frame, 0 disables")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

func (c Config) Validate() error {
	var errs []error
	if c.WindowWidth < 0 || c.WindowHeight < 0 {
		errs = append(errs, fmt.Errorf("window size must not be negative, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.MaxPointLights <= 0 {
		errs = append(errs, fmt.Errorf("max point lights must be positive, got %d", c.MaxPointLights))
	}
	if c.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("frame delay must not be negative, got %v", c.FrameDelay))
	}
	return errors.Join(errs...)
}
