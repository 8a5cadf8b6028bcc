package lumen

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightingModule installs the light store and runs the animate and upload
// steps of every frame.
//
// It must be installed after the renderer so the program is bound before
// the lights are synchronized.
type LightingModule struct {
	MaxLights int
	Lights    []PointLight
	Animated  []int
	Scene     SceneUniforms
}

func (m LightingModule) Install(app *App, cmd *Commands) {
	store, err := NewLightStore(m.Lights...)
	if err != nil {
		app.Abort("Invalid light set: %v", err)
		return
	}
	for _, index := range m.Animated {
		if _, err := store.GetMutable(index); err != nil {
			app.Abort("Invalid animated light: %v", err)
			return
		}
	}

	scene := m.Scene
	if ws, ok := Resource[WindowState](app); ok && scene.ViewportSize == (mgl32.Vec2{}) {
		scene.ViewportSize[0] = float32(ws.WindowWidth)
		scene.ViewportSize[1] = float32(ws.WindowHeight)
	}

	sync := NewUniformSynchronizer(m.MaxLights)
	if store.Len() > sync.MaxLights() {
		app.Logger().Warnf("%d point lights configured, only the first %d will be rendered",
			store.Len(), sync.MaxLights())
	}
	app.Logger().Infof("Installed %d point light(s), %d animated", store.Len(), len(m.Animated))

	cmd.AddResources(
		store,
		&LightAnimation{Animated: append([]int(nil), m.Animated...)},
		&scene,
		sync,
	)

	app.UseSystem(
		System(animateLightsSystem).
			InStage(PostUpdate).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(syncLightsSystem).
			InStage(PreRender).
			InState(OnExecute(StateRunning)),
	)
}

func animateLightsSystem(t *Time, store *LightStore, anim *LightAnimation, cmd *Commands) {
	if err := AnimateLights(store, anim.Animated, t.ElapsedMillis()); err != nil {
		cmd.Logger().Errorf("%v", err)
	}
}

func syncLightsSystem(target *ShaderTarget, sync *UniformSynchronizer, store *LightStore, scene *SceneUniforms, cmd *Commands) {
	sync.Sync(target.Sink, store, *scene, cmd.Logger())
}
