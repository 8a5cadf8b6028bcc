package lumen

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DemoLights returns the startup light set: three static colored lights and
// two flickering torches. DemoAnimatedLights names the torches.
func DemoLights() []PointLight {
	colored := func(x, y float32, color mgl32.Vec3) PointLight {
		l := NewPointLight()
		l.Position = mgl32.Vec2{x, y}
		l.Color = color
		l.Height = 0
		return l
	}
	torch := func(x, y float32) PointLight {
		l := NewPointLight()
		l.Position = mgl32.Vec2{x, y}
		l.Color = mgl32.Vec3{1.0, 0.6, 0.25}
		l.Radius = 320
		return l
	}

	return []PointLight{
		colored(512, 512, mgl32.Vec3{1, 0, 0}),
		colored(512+256, 512-256, mgl32.Vec3{0, 1, 0}),
		colored(512+256, 512+256, mgl32.Vec3{0, 0, 1}),
		torch(384, 640),
		torch(896, 512),
	}
}

func DemoAnimatedLights() []int {
	return []int{3, 4}
}

func DemoScene() SceneUniforms {
	return SceneUniforms{
		AmbientLight: mgl32.Vec3{0.059, 0.055, 0.09},
	}
}
