package lumen

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaxPointLights is the size of the u_point_lights array in the
// bundled shader.
const DefaultMaxPointLights = 32

const (
	uniformAmbientLight    = "u_ambient_light"
	uniformCameraPos       = "u_camera_pos"
	uniformViewportSize    = "u_viewport_size"
	uniformPointLightCount = "u_point_light_count"
)

// UniformSink writes named parameters of the active shader program.
// Setting a name the program doesn't declare is a no-op.
type UniformSink interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
}

// ShaderTarget is the resource through which per-frame uniforms reach the
// renderer's shader program.
type ShaderTarget struct {
	Sink UniformSink
}

// SceneUniforms are the scene-wide values uploaded every frame.
type SceneUniforms struct {
	AmbientLight mgl32.Vec3
	CameraPos    mgl32.Vec2
	ViewportSize mgl32.Vec2
}

type pointLightSlot struct {
	color                string
	position             string
	energy               string
	radius               string
	height               string
	attenuationLinear    string
	attenuationQuadratic string
}

func newPointLightSlot(i int) pointLightSlot {
	field := func(name string) string {
		return fmt.Sprintf("u_point_lights[%d].%s", i, name)
	}
	return pointLightSlot{
		color:                field("color"),
		position:             field("position"),
		energy:               field("energy"),
		radius:               field("radius"),
		height:               field("height"),
		attenuationLinear:    field("attenuation_linear"),
		attenuationQuadratic: field("attenuation_quadratic"),
	}
}

// UniformSynchronizer copies a LightStore into the u_point_lights array of a
// shader. Lights past the array capacity are dropped with a warning.
type UniformSynchronizer struct {
	maxLights int
	slots     []pointLightSlot
}

func NewUniformSynchronizer(maxLights int) *UniformSynchronizer {
	if maxLights <= 0 {
		maxLights = DefaultMaxPointLights
	}
	slots := make([]pointLightSlot, maxLights)
	for i := range slots {
		slots[i] = newPointLightSlot(i)
	}
	return &UniformSynchronizer{
		maxLights: maxLights,
		slots:     slots,
	}
}

func (s *UniformSynchronizer) MaxLights() int {
	return s.maxLights
}

// Sync writes the scene uniforms and every light that fits into the shader
// array, and returns the number of lights written.
func (s *UniformSynchronizer) Sync(sink UniformSink, store *LightStore, scene SceneUniforms, logger Logger) int {
	sink.SetVec3(uniformAmbientLight, scene.AmbientLight)
	sink.SetVec2(uniformCameraPos, scene.CameraPos)
	sink.SetVec2(uniformViewportSize, scene.ViewportSize)

	written := 0
	for i, light := range store.All() {
		if i >= s.maxLights {
			logger.Warnf("Point light count %d exceeds MAX_POINT_LIGHT_COUNT (%d), dropping %d light(s)",
				store.Len(), s.maxLights, store.Len()-s.maxLights)
			break
		}

		slot := s.slots[i]
		sink.SetVec3(slot.color, light.Color)
		sink.SetVec2(slot.position, light.Position)
		sink.SetFloat(slot.energy, light.Energy)
		sink.SetFloat(slot.radius, light.Radius)
		sink.SetFloat(slot.height, light.Height)
		sink.SetFloat(slot.attenuationLinear, light.Attenuation.Linear)
		sink.SetFloat(slot.attenuationQuadratic, light.Attenuation.Quadratic)
		written++
	}

	sink.SetInt(uniformPointLightCount, int32(written))
	return written
}
