package lumen

import (
	"time"
)

// Time is the frame clock. Elapsed is measured from Start on the monotonic
// clock.
type Time struct {
	Start   time.Time
	Time    time.Time
	Dt      time.Duration
	Elapsed time.Duration
}

func NewTime(now time.Time) *Time {
	return &Time{
		Start: now,
		Time:  now,
	}
}

// ElapsedMillis returns the time since Start in milliseconds.
func (t *Time) ElapsedMillis() float64 {
	return float64(t.Elapsed) / float64(time.Millisecond)
}

func (t *Time) advance(now time.Time) {
	t.Dt = now.Sub(t.Time)
	t.Time = now
	t.Elapsed = now.Sub(t.Start)
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewTime(time.Now()))
	app.UseSystem(
		System(timeSystem).
			InStage(Update).
			RunAlways(),
	)
}

func timeSystem(timeResource *Time) {
	timeResource.advance(time.Now())
}
