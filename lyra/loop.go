package lyra

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/tessel/facet"
	"github.com/oliverbestmann/tessel/glint"
)

type loopState struct {
	window glint.Window
	device *facet.Device
	app    App

	clearColor facet.Color

	// set once a quit event came in, the rest of the frame is skipped and
	// the window closes the loop
	terminating bool

	times FrameTimes
}

func loopOnce(state *loopState, events []glint.Event) error {
	for _, ev := range events {
		switch ev.Kind {
		case glint.EventResize:
			slog.Debug("Resize viewport",
				slog.Int("width", ev.Width),
				slog.Int("height", ev.Height),
			)

			state.device.SetViewport(0, 0, int32(ev.Width), int32(ev.Height))

		case glint.EventQuit:
			slog.Debug("Shutdown requested")
			state.terminating = true
		}
	}

	if state.terminating {
		return nil
	}

	state.device.Clear(state.clearColor)

	if err := state.app.Draw(state.device); err != nil {
		return fmt.Errorf("draw app: %w", err)
	}

	state.window.Swap()

	if state.times.Tick() {
		slog.Debug("Frame statistics",
			slog.Float64("fps", state.times.FPS()),
			slog.Duration("max", state.times.MaxDuration),
		)
	}

	return nil
}
