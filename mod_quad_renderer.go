package lumen

import (
	"fmt"
	"os"

	"github.com/gekko3d/lumen/shaders"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// QuadRendererModule draws one textured quad lit by the point light shader.
// It needs a WindowState with a current GL context.
type QuadRendererModule struct {
	VertexShaderPath   string // empty uses the embedded shader
	FragmentShaderPath string
	TexturePath        string
	Origin             mgl32.Vec2
	ClearColor         mgl32.Vec4
	MaxLights          int
}

type quadRenderer struct {
	program    uint32
	mesh       quadMesh
	texture    uint32
	textureId  AssetId
	sink       *glUniformSink
	model      mgl32.Mat4
	view       mgl32.Mat4
	projection mgl32.Mat4
	clearColor mgl32.Vec4
	released   bool
}

func (m QuadRendererModule) Install(app *App, cmd *Commands) {
	logger := app.Logger()

	ws, ok := Resource[WindowState](app)
	if !ok {
		app.Abort("Quad renderer requires a window, install PlatformWindowModule first")
		return
	}

	maxLights := m.MaxLights
	if maxLights <= 0 {
		maxLights = DefaultMaxPointLights
	}

	vertexSource, err := shaderSource(m.VertexShaderPath, shaders.GenericVertex)
	if err != nil {
		ws.destroy()
		app.Abort("Failed to read vertex shader: %v", err)
		return
	}
	fragmentSource, err := shaderSource(m.FragmentShaderPath, shaders.GenericFragment)
	if err != nil {
		ws.destroy()
		app.Abort("Failed to read fragment shader: %v", err)
		return
	}
	fragmentSource = shaders.WithMaxPointLights(fragmentSource, maxLights)

	program, err := createGenericShader(vertexSource, fragmentSource, logger)
	if err != nil {
		ws.destroy()
		app.Abort("[SHADER] Failed to build shader program: %v", err)
		return
	}

	asset, err := LoadTextureAsset(m.TexturePath)
	if err != nil {
		logger.Errorf("[TEXTURE] Could not load texture from `%s`: %v", m.TexturePath, err)
		asset = PlaceholderTexture()
	}
	logger.Debugf("Loaded texture %s (%dx%d) as %s", asset.Path, asset.Width, asset.Height, asset.Id)

	r := &quadRenderer{
		program:   program,
		mesh:      createQuadMesh(),
		texture:   createTexture(asset),
		textureId: asset.Id,
		sink:      newGLUniformSink(program),
		model: mgl32.Translate3D(m.Origin[0], m.Origin[1], 0).
			Mul4(mgl32.Scale3D(float32(asset.Width), float32(asset.Height), 1)),
		view:       mgl32.Ident4(),
		projection: mgl32.Ortho(0, float32(ws.WindowWidth), float32(ws.WindowHeight), 0, -128, 128),
		clearColor: m.ClearColor,
	}

	gl.UseProgram(program)
	r.sink.SetInt("u_texture", 0)

	cmd.AddResources(r, &ShaderTarget{Sink: r.sink})

	app.UseSystem(
		System(beginFrameSystem).
			InStage(PreRender).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(drawQuadSystem).
			InStage(Render).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(releaseQuadRendererSystem).
			InStage(Finale).
			InState(OnEnter(StateStopped)),
	)
}

func shaderSource(path, embedded string) (string, error) {
	if path == "" {
		return embedded, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// beginFrameSystem clears the frame and binds the program, texture and
// matrices that light uniforms are written against.
func beginFrameSystem(r *quadRenderer) {
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)

	r.sink.SetMat4("u_model_matrix", r.model)
	r.sink.SetMat4("u_view_matrix", r.view)
	r.sink.SetMat4("u_projection_matrix", r.projection)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
}

func drawQuadSystem(r *quadRenderer) {
	r.mesh.draw()
}

func releaseQuadRendererSystem(r *quadRenderer, cmd *Commands) {
	if r.released {
		return
	}
	r.released = true
	cmd.Logger().Infof("Releasing GPU resources")

	r.mesh.release()
	gl.DeleteProgram(r.program)
	gl.DeleteTextures(1, &r.texture)
}
