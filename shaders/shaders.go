package shaders

import (
	_ "embed"
	"fmt"
	"regexp"
)

//go:embed generic.vert
var GenericVertex string

//go:embed generic.frag
var GenericFragment string

var maxPointLightsDefine = regexp.MustCompile(`(?m)^#define MAX_POINT_LIGHT_COUNT \d+$`)

// WithMaxPointLights rewrites the MAX_POINT_LIGHT_COUNT define of source so
// the u_point_lights array holds n lights. Sources without the define are
// returned unchanged.
func WithMaxPointLights(source string, n int) string {
	return maxPointLightsDefine.ReplaceAllString(source, fmt.Sprintf("#define MAX_POINT_LIGHT_COUNT %d", n))
}
