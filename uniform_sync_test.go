package lumen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testScene = SceneUniforms{
	AmbientLight: mgl32.Vec3{0.059, 0.055, 0.09},
	CameraPos:    mgl32.Vec2{10, 20},
	ViewportSize: mgl32.Vec2{1920, 1080},
}

func syncLights(t *testing.T, maxLights int, lights []PointLight) (*recordingSink, *recordingLogger, int) {
	t.Helper()
	store, err := NewLightStore(lights...)
	require.NoError(t, err)

	sink := newRecordingSink()
	logger := &recordingLogger{}
	written := NewUniformSynchronizer(maxLights).Sync(sink, store, testScene, logger)
	return sink, logger, written
}

func TestNewUniformSynchronizer_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultMaxPointLights, NewUniformSynchronizer(0).MaxLights())
	assert.Equal(t, DefaultMaxPointLights, NewUniformSynchronizer(-3).MaxLights())
	assert.Equal(t, 4, NewUniformSynchronizer(4).MaxLights())
}

func TestSync_TwoLights(t *testing.T) {
	a := lightAt(512, 512, mgl32.Vec3{1, 0, 0})
	b := lightAt(768, 256, mgl32.Vec3{0, 1, 0})
	b.Energy = 0.5
	b.Height = 0
	b.Attenuation = Attenuation{Linear: 0.01, Quadratic: 0.002}

	sink, logger, written := syncLights(t, 32, []PointLight{a, b})

	assert.Equal(t, 2, written)
	assert.Empty(t, logger.warnings)
	assert.Equal(t, []int{0, 1}, sink.lightSlots())

	for i, l := range []PointLight{a, b} {
		assert.Equal(t, l.Color, sink.light(i, "color"))
		assert.Equal(t, l.Position, sink.light(i, "position"))
		assert.Equal(t, l.Energy, sink.light(i, "energy"))
		assert.Equal(t, l.Radius, sink.light(i, "radius"))
		assert.Equal(t, l.Height, sink.light(i, "height"))
		assert.Equal(t, l.Attenuation.Linear, sink.light(i, "attenuation_linear"))
		assert.Equal(t, l.Attenuation.Quadratic, sink.light(i, "attenuation_quadratic"))
	}
	assert.Equal(t, int32(2), sink.values["u_point_light_count"])
}

func TestSync_SceneUniformsAlwaysWritten(t *testing.T) {
	for _, n := range []int{0, 3, 40} {
		sink, _, _ := syncLights(t, 32, makeLights(n))

		assert.Equal(t, testScene.AmbientLight, sink.values["u_ambient_light"], "n=%d", n)
		assert.Equal(t, testScene.CameraPos, sink.values["u_camera_pos"], "n=%d", n)
		assert.Equal(t, testScene.ViewportSize, sink.values["u_viewport_size"], "n=%d", n)
	}
}

func TestSync_AtCapacity(t *testing.T) {
	sink, logger, written := syncLights(t, 4, makeLights(4))

	assert.Equal(t, 4, written)
	assert.Empty(t, logger.warnings)
	assert.Equal(t, []int{0, 1, 2, 3}, sink.lightSlots())
}

func TestSync_OverCapacity(t *testing.T) {
	sink, logger, written := syncLights(t, 32, makeLights(40))

	assert.Equal(t, 32, written)
	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0], "32")
	assert.Empty(t, logger.errors)

	slots := sink.lightSlots()
	require.Len(t, slots, 32)
	assert.Equal(t, 0, slots[0])
	assert.Equal(t, 31, slots[31])
	assert.Nil(t, sink.light(32, "color"))
	assert.Equal(t, int32(32), sink.values["u_point_light_count"])
}

func TestSync_WarnsEveryFrame(t *testing.T) {
	store, err := NewLightStore(makeLights(3)...)
	require.NoError(t, err)
	sync := NewUniformSynchronizer(2)
	logger := &recordingLogger{}

	for frame := 0; frame < 3; frame++ {
		sync.Sync(newRecordingSink(), store, testScene, logger)
	}
	assert.Len(t, logger.warnings, 3)
}

func TestSync_OrderDeterminesSlot(t *testing.T) {
	red := lightAt(1, 2, mgl32.Vec3{1, 0, 0})
	blue := lightAt(3, 4, mgl32.Vec3{0, 0, 1})
	blue.Energy = 0.3

	first, _, _ := syncLights(t, 32, []PointLight{red, blue})
	swapped, _, _ := syncLights(t, 32, []PointLight{blue, red})

	assert.Equal(t, red.Color, first.light(0, "color"))
	assert.Equal(t, blue.Color, swapped.light(0, "color"))

	// Each light keeps its own values whichever slot it lands in.
	assert.Equal(t, first.light(0, "position"), swapped.light(1, "position"))
	assert.Equal(t, first.light(0, "energy"), swapped.light(1, "energy"))
	assert.Equal(t, first.light(1, "position"), swapped.light(0, "position"))
	assert.Equal(t, first.light(1, "energy"), swapped.light(0, "energy"))
}

func TestSync_ReflectsAnimatedEnergy(t *testing.T) {
	store, err := NewLightStore(makeLights(2)...)
	require.NoError(t, err)
	require.NoError(t, AnimateLights(store, []int{1}, 250))

	sink := newRecordingSink()
	NewUniformSynchronizer(32).Sync(sink, store, testScene, NewNopLogger())

	assert.Equal(t, float32(1), sink.light(0, "energy"))
	assert.Equal(t, FlickerEnergy(250, 0), sink.light(1, "energy"))
}
