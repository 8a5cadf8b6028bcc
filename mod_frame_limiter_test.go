package lumen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameLimiterSystem(t *testing.T) {
	var slept []time.Duration
	l := &FrameLimiter{
		Delay: 16 * time.Millisecond,
		sleep: func(d time.Duration) { slept = append(slept, d) },
	}

	frameLimiterSystem(l)
	frameLimiterSystem(l)
	assert.Equal(t, []time.Duration{16 * time.Millisecond, 16 * time.Millisecond}, slept)

	l.Delay = 0
	frameLimiterSystem(l)
	assert.Len(t, slept, 2, "zero delay doesn't sleep")
}

func TestFrameLimiterModule_Install(t *testing.T) {
	app := NewAppBuilder().
		UseStates(StateRunning, StateStopped).
		UseModule(FrameLimiterModule{Delay: 5 * time.Millisecond}).
		Build()

	l, ok := Resource[FrameLimiter](app)
	require.True(t, ok)
	assert.Equal(t, 5*time.Millisecond, l.Delay)
	assert.Len(t, app.systems[Finale.Name][StateRunning][execute], 1)
}
