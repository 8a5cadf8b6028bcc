package lumen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type moduleFunc func(app *App, cmd *Commands)

func (f moduleFunc) Install(app *App, cmd *Commands) { f(app, cmd) }

type recordingSink struct {
	values map[string]any
	writes int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{values: make(map[string]any)}
}

func (s *recordingSink) set(name string, v any) {
	s.values[name] = v
	s.writes++
}

func (s *recordingSink) SetInt(name string, v int32)       { s.set(name, v) }
func (s *recordingSink) SetFloat(name string, v float32)   { s.set(name, v) }
func (s *recordingSink) SetVec2(name string, v mgl32.Vec2) { s.set(name, v) }
func (s *recordingSink) SetVec3(name string, v mgl32.Vec3) { s.set(name, v) }

// lightSlots returns the sorted u_point_lights indices that received at
// least one write.
func (s *recordingSink) lightSlots() []int {
	seen := make(map[int]bool)
	for name := range s.values {
		rest, ok := strings.CutPrefix(name, "u_point_lights[")
		if !ok {
			continue
		}
		idx, _, _ := strings.Cut(rest, "]")
		i, err := strconv.Atoi(idx)
		if err != nil {
			continue
		}
		seen[i] = true
	}
	slots := make([]int, 0, len(seen))
	for i := range seen {
		slots = append(slots, i)
	}
	sort.Ints(slots)
	return slots
}

func (s *recordingSink) light(i int, field string) any {
	return s.values[fmt.Sprintf("u_point_lights[%d].%s", i, field)]
}

type recordingLogger struct {
	infos     []string
	warnings  []string
	errors    []string
	criticals []string
}

func (l *recordingLogger) DebugEnabled() bool                { return false }
func (l *recordingLogger) SetDebug(enabled bool)             {}
func (l *recordingLogger) Debugf(format string, args ...any) {}
func (l *recordingLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Criticalf(format string, args ...any) {
	l.criticals = append(l.criticals, fmt.Sprintf(format, args...))
}

func lightAt(x, y float32, color mgl32.Vec3) PointLight {
	l := NewPointLight()
	l.Position = mgl32.Vec2{x, y}
	l.Color = color
	return l
}

func makeLights(n int) []PointLight {
	lights := make([]PointLight, n)
	for i := range lights {
		lights[i] = lightAt(float32(i*10), float32(i*20), mgl32.Vec3{1, float32(i) / float32(n), 0})
	}
	return lights
}
