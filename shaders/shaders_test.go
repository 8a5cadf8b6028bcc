package shaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedSources(t *testing.T) {
	assert.Contains(t, GenericVertex, "#version 330 core")
	assert.Contains(t, GenericFragment, "uniform PointLight u_point_lights[MAX_POINT_LIGHT_COUNT];")
	assert.Contains(t, GenericFragment, "#define MAX_POINT_LIGHT_COUNT 32")
}

func TestWithMaxPointLights(t *testing.T) {
	src := WithMaxPointLights(GenericFragment, 8)

	assert.Contains(t, src, "#define MAX_POINT_LIGHT_COUNT 8\n")
	assert.NotContains(t, src, "#define MAX_POINT_LIGHT_COUNT 32")
	assert.Equal(t, strings.Count(GenericFragment, "\n"), strings.Count(src, "\n"))
}

func TestWithMaxPointLights_NoDefine(t *testing.T) {
	assert.Equal(t, GenericVertex, WithMaxPointLights(GenericVertex, 4))
}
