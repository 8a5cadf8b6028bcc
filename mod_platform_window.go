package lumen

import (
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState owns the glfw window and its OpenGL context.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

type windowOptions struct {
	width      int
	height     int
	title      string
	borderless bool
}

// PlatformWindowModule creates the window and an OpenGL 3.3 core context,
// presents every frame and destroys the window when the app stops.
// Install is idempotent: an existing WindowState resource is reused.
type PlatformWindowModule struct {
	Width      int // 0 uses the primary monitor's mode
	Height     int
	Title      string
	IconPath   string
	Borderless bool
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[WindowState](app); ok {
		return
	}
	logger := app.Logger()

	title := m.Title
	if title == "" {
		title = "Lumen"
	}

	logger.Debugf("Creating window")
	ws, err := createWindowState(windowOptions{
		width:      m.Width,
		height:     m.Height,
		title:      title,
		borderless: m.Borderless,
	})
	if err != nil {
		app.Abort("Failed to create window: %v", err)
		return
	}

	if m.IconPath != "" {
		icon, err := LoadImage(m.IconPath)
		if err != nil {
			logger.Warnf("Could not load window icon `%s`: %v", m.IconPath, err)
		} else {
			ws.windowGlfw.SetIcon([]image.Image{icon})
		}
	}

	logger.Infof("Created window (%dx%d) '%s', OpenGL %s",
		ws.WindowWidth, ws.WindowHeight, ws.windowTitle, gl.GoStr(gl.GetString(gl.VERSION)))

	cmd.AddResources(ws)
	app.UseSystem(
		System(presentSystem).
			InStage(PostRender).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(destroyWindowSystem).
			InStage(Finale).
			InState(OnExit(StateStopped)),
	)
}

func createWindowState(opts windowOptions) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	width, height := opts.width, opts.height
	if width <= 0 || height <= 0 {
		if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
			mode := monitor.GetVideoMode()
			width, height = mode.Width, mode.Height
		}
	}
	if width <= 0 || height <= 0 {
		width, height = 1280, 720
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 16)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if opts.borderless {
		glfw.WindowHint(glfw.Decorated, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, opts.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("load OpenGL functions: %w", err)
	}

	fbWidth, fbHeight := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  width,
		WindowHeight: height,
		windowTitle:  opts.title,
	}, nil
}

func presentSystem(s *WindowState) {
	s.windowGlfw.SwapBuffers()
}

func destroyWindowSystem(s *WindowState, cmd *Commands) {
	cmd.Logger().Infof("Terminating window context")
	s.destroy()
}

// destroy releases the window and terminates glfw. Safe to call twice.
func (s *WindowState) destroy() {
	if s.windowGlfw == nil {
		return
	}
	s.windowGlfw.Destroy()
	s.windowGlfw = nil
	glfw.Terminate()
}
