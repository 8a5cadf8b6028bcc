package lumen

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type InputModule struct{}

// Input is the per-frame result of polling window events.
type Input struct {
	EscapePressed  bool
	CloseRequested bool

	quitIssued bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			InState(OnExecute(StateRunning)),
	)
	app.UseSystem(
		System(quitSystem).
			InStage(PreUpdate).
			InState(OnExecute(StateRunning)),
	)
}

// inputSystem drains pending window events without blocking.
func inputSystem(s *WindowState, input *Input) {
	glfw.PollEvents()

	input.EscapePressed = s.windowGlfw.GetKey(glfw.KeyEscape) == glfw.Press
	input.CloseRequested = s.windowGlfw.ShouldClose() || input.EscapePressed
}

func quitSystem(input *Input, cmd *Commands) {
	if !input.CloseRequested || input.quitIssued {
		return
	}
	input.quitIssued = true
	cmd.Logger().Infof("Quit requested")
	cmd.ChangeState(StateStopped)
}
