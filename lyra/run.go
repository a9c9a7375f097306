package lyra

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/tessel/facet"
	"github.com/oliverbestmann/tessel/glint"
)

type RunOptions struct {
	// app to run. This is the only field that is required
	App App

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// color the screen is cleared to at the start of every frame. The zero
	// value is opaque white.
	ClearColor facet.Color

	// Window replaces the glfw window, used by tests
	Window glint.Window

	// Driver replaces the opengl driver, used by tests
	Driver facet.Driver
}

func Run(opts RunOptions) error {
	app := opts.App
	if app == nil {
		return errors.New("App must not be nil")
	}

	if opts.WindowWidth == 0 {
		opts.WindowWidth = 800
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Lyra"
	}

	win := opts.Window
	if win == nil {
		var err error
		win, err = glint.NewWindow(
			opts.WindowWidth,
			opts.WindowHeight,
			opts.WindowTitle,
		)

		if err != nil {
			glint.ShowError("Error creating window", err.Error())
			return fmt.Errorf("create window: %w", err)
		}
	}

	defer win.Terminate()

	driver := opts.Driver
	if driver == nil {
		driver = facet.GLDriver()
	}

	dev, err := facet.Open(driver)
	if err != nil {
		glint.ShowError("Error creating OpenGL 4.1 context", err.Error())
		return fmt.Errorf("open device: %w", err)
	}

	defer dev.Release()

	// shader diagnostics should reach the user, not just the log
	dev.Notify = glint.ShowError

	width, height := win.GetSize()
	dev.SetViewport(0, 0, int32(width), int32(height))

	if err := app.Initialize(dev); err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}

	defer app.Release(dev)

	state := &loopState{
		window:     win,
		device:     dev,
		app:        app,
		clearColor: opts.ClearColor,
	}

	return win.Run(func(events []glint.Event) error {
		return loopOnce(state, events)
	})
}
