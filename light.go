package lumen

import (
	"errors"
	"fmt"
	"iter"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrLightIndexOutOfRange = errors.New("light index out of range")

// Attenuation holds the linear and quadratic falloff coefficients of a light.
type Attenuation struct {
	Linear    float32
	Quadratic float32
}

// PointLight is a light source lit by the quad shader rather than drawn as
// geometry. Only Energy changes after creation.
type PointLight struct {
	Color       mgl32.Vec3 // normalized RGB
	Position    mgl32.Vec2 // same space as the quad
	Energy      float32
	Radius      float32
	Height      float32 // pseudo-3D falloff
	Attenuation Attenuation
}

func NewPointLight() PointLight {
	return PointLight{
		Color:    mgl32.Vec3{1, 1, 1},
		Position: mgl32.Vec2{0, 0},
		Energy:   1,
		Radius:   256,
		Height:   64,
		Attenuation: Attenuation{
			Linear:    0.0035,
			Quadratic: 0.0001,
		},
	}
}

func (l PointLight) Validate() error {
	if l.Energy < 0 {
		return fmt.Errorf("energy must be non-negative, got %v", l.Energy)
	}
	if l.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", l.Radius)
	}
	if l.Attenuation.Linear < 0 || l.Attenuation.Quadratic < 0 {
		return fmt.Errorf("attenuation coefficients must be non-negative, got (%v, %v)",
			l.Attenuation.Linear, l.Attenuation.Quadratic)
	}
	return nil
}

// LightStore holds point lights in insertion order. The order is the shader
// array index each light is uploaded to.
type LightStore struct {
	lights []PointLight
}

func NewLightStore(lights ...PointLight) (*LightStore, error) {
	store := &LightStore{lights: make([]PointLight, 0, len(lights))}
	for _, l := range lights {
		if err := store.Add(l); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func (s *LightStore) Add(light PointLight) error {
	if err := light.Validate(); err != nil {
		return fmt.Errorf("light %d: %w", len(s.lights), err)
	}
	s.lights = append(s.lights, light)
	return nil
}

func (s *LightStore) Len() int {
	return len(s.lights)
}

// GetMutable returns the light at index for in-place modification.
func (s *LightStore) GetMutable(index int) (*PointLight, error) {
	if index < 0 || index >= len(s.lights) {
		return nil, fmt.Errorf("%w: %d (count %d)", ErrLightIndexOutOfRange, index, len(s.lights))
	}
	return &s.lights[index], nil
}

// All yields (index, light) pairs in insertion order. Lights are yielded by
// value.
func (s *LightStore) All() iter.Seq2[int, PointLight] {
	return func(yield func(int, PointLight) bool) {
		for i, l := range s.lights {
			if !yield(i, l) {
				return
			}
		}
	}
}
