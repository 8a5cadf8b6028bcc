package lumen

import (
	"fmt"
	"math"
)

type flickerWave struct {
	freq   float64
	phase  float64
	bias   float64
	weight float64
}

// (freq, phase, bias, weight) per sinusoid.
var flickerWaves = [...]flickerWave{
	{freq: 0.002, phase: 120, bias: 1.25, weight: 0.1},
	{freq: 0.0025, phase: 300, bias: 1.25, weight: 0.05},
	{freq: 0.002, phase: 60, bias: 1.25, weight: 0.15},
	{freq: 0.001, phase: 400, bias: 1.25, weight: 0.12},
}

// FlickerEnergy returns the energy of the i-th animated light t milliseconds
// after start. The i offset dephases lights so they don't pulse in unison.
func FlickerEnergy(t float64, i int) float32 {
	var energy float64
	for _, w := range flickerWaves {
		energy += (math.Sin((t+float64(i)*w.phase)*w.freq) + w.bias) * w.weight
	}
	return float32(energy)
}

// FlickerEnergyBounds returns the range every FlickerEnergy result lies in.
func FlickerEnergyBounds() (lo, hi float64) {
	for _, w := range flickerWaves {
		lo += (w.bias - 1) * w.weight
		hi += (w.bias + 1) * w.weight
	}
	return lo, hi
}

// LightAnimation names the lights driven by FlickerEnergy. A light's ordinal
// in Animated is the i passed to FlickerEnergy.
type LightAnimation struct {
	Animated []int
}

// AnimateLights updates the energy of every animated light for elapsed time
// t in milliseconds. Other lights are left untouched.
func AnimateLights(store *LightStore, animated []int, t float64) error {
	for ordinal, index := range animated {
		light, err := store.GetMutable(index)
		if err != nil {
			return fmt.Errorf("animate light %d: %w", ordinal, err)
		}
		light.Energy = FlickerEnergy(t, ordinal)
	}
	return nil
}
