package lumen

import (
	"time"
)

// FrameLimiter sleeps Delay at the end of every frame. A zero Delay leaves
// the frame rate to buffer swapping alone.
type FrameLimiter struct {
	Delay time.Duration
	sleep func(time.Duration)
}

type FrameLimiterModule struct {
	Delay time.Duration
}

func (m FrameLimiterModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&FrameLimiter{Delay: m.Delay, sleep: time.Sleep})
	app.UseSystem(
		System(frameLimiterSystem).
			InStage(Finale).
			InState(OnExecute(StateRunning)),
	)
}

func frameLimiterSystem(l *FrameLimiter) {
	if l.Delay <= 0 {
		return
	}
	l.sleep(l.Delay)
}
