package lyra_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/oliverbestmann/tessel/facet"
	"github.com/oliverbestmann/tessel/facet/facettest"
	"github.com/oliverbestmann/tessel/glint"
	"github.com/oliverbestmann/tessel/lyra"
	"github.com/oliverbestmann/tessel/quad"
)

// fakeWindow drives a fixed number of frames and can inject events at a
// given frame index. Window level calls are recorded into the shared
// driver so ordering across window and gpu can be asserted.
type fakeWindow struct {
	driver *facettest.Driver

	frames int
	events map[int][]glint.Event

	width, height int
}

func (w *fakeWindow) GetSize() (int, int) {
	return w.width, w.height
}

func (w *fakeWindow) Swap() {
	w.driver.Record("swap")
}

func (w *fakeWindow) Terminate() {
	w.driver.Record("terminate window")
}

func (w *fakeWindow) Run(frame func(events []glint.Event) error) error {
	for idx := 0; idx < w.frames; idx++ {
		if err := frame(w.events[idx]); err != nil {
			return err
		}
	}

	return nil
}

// quadApp renders a small quad batch, the smallest app exercising the full
// resource lifecycle.
type quadApp struct {
	driver *facettest.Driver

	batch   *quad.Batch
	draws   int
	initErr error
}

func (a *quadApp) Initialize(dev *facet.Device) error {
	if a.initErr != nil {
		return a.initErr
	}

	rng := rand.New(rand.NewPCG(1, 2))
	a.batch = quad.NewBatch(dev, quad.Generate(2, 2, rng), quad.BatchOptions{})

	return nil
}

func (a *quadApp) Draw(dev *facet.Device) error {
	a.draws++
	a.batch.Draw()

	return nil
}

func (a *quadApp) Release(dev *facet.Device) {
	a.driver.Record("app release")

	if a.batch != nil {
		a.batch.Release()
	}
}

func run(t *testing.T, driver *facettest.Driver, win *fakeWindow, app *quadApp) error {
	t.Helper()

	return lyra.Run(lyra.RunOptions{
		App:    app,
		Window: win,
		Driver: driver,
	})
}

func TestRunTeardownOrder(t *testing.T) {
	driver := &facettest.Driver{}
	win := &fakeWindow{driver: driver, frames: 1, width: 800, height: 600}
	app := &quadApp{driver: driver}

	if err := run(t, driver, win, app); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// stages, program, buffer, vertex array, device, window
	order := []string{
		"delete shader",
		"delete program",
		"delete buffer",
		"delete vertex array",
		"close device",
		"terminate window",
	}

	last := -1
	for _, prefix := range order {
		idx := driver.IndexOf(prefix)
		if idx == -1 {
			t.Fatalf("missing %q in calls: %v", prefix, driver.Calls)
		}

		if idx < last {
			t.Fatalf("%q released out of order: %v", prefix, driver.Calls)
		}

		last = idx
	}
}

func TestRunResizeUpdatesViewport(t *testing.T) {
	driver := &facettest.Driver{}
	win := &fakeWindow{
		driver: driver,
		frames: 2,
		width:  800,
		height: 600,
		events: map[int][]glint.Event{
			1: {{Kind: glint.EventResize, Width: 640, Height: 480}},
		},
	}

	app := &quadApp{driver: driver}

	if err := run(t, driver, win, app); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	viewports := driver.CallsMatching("viewport")
	want := []string{
		"viewport 0 0 800 600",
		"viewport 0 0 640 480",
	}

	if len(viewports) != len(want) {
		t.Fatalf("viewport calls = %v, want %v", viewports, want)
	}

	for idx := range want {
		if viewports[idx] != want[idx] {
			t.Errorf("viewport[%d] = %q, want %q", idx, viewports[idx], want[idx])
		}
	}
}

func TestRunQuitSkipsRestOfFrame(t *testing.T) {
	driver := &facettest.Driver{}
	win := &fakeWindow{
		driver: driver,
		frames: 2,
		width:  800,
		height: 600,
		events: map[int][]glint.Event{
			1: {{Kind: glint.EventQuit}},
		},
	}

	app := &quadApp{driver: driver}

	if err := run(t, driver, win, app); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if app.draws != 1 {
		t.Errorf("draws = %d, want 1, the quit frame must not render", app.draws)
	}

	if swaps := driver.CallsMatching("swap"); len(swaps) != 1 {
		t.Errorf("swap calls = %v, want exactly one", swaps)
	}
}

func TestRunQuitStopsRendering(t *testing.T) {
	driver := &facettest.Driver{}
	win := &fakeWindow{
		driver: driver,
		frames: 3,
		width:  800,
		height: 600,
		events: map[int][]glint.Event{
			1: {{Kind: glint.EventQuit}},
		},
	}

	app := &quadApp{driver: driver}

	if err := run(t, driver, win, app); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// frames delivered after the quit must not render either
	if app.draws != 1 {
		t.Errorf("draws = %d, want 1", app.draws)
	}

	if swaps := driver.CallsMatching("swap"); len(swaps) != 1 {
		t.Errorf("swap calls = %v, want exactly one", swaps)
	}
}

func TestRunRequiresApp(t *testing.T) {
	err := lyra.Run(lyra.RunOptions{})
	if err == nil || !strings.Contains(err.Error(), "App") {
		t.Errorf("Run() error = %v", err)
	}
}

func TestRunDriverInitError(t *testing.T) {
	driver := &facettest.Driver{InitErr: errors.New("no gl")}
	win := &fakeWindow{driver: driver, frames: 1, width: 800, height: 600}
	app := &quadApp{driver: driver}

	err := run(t, driver, win, app)
	if err == nil || !strings.Contains(err.Error(), "open device") {
		t.Fatalf("Run() error = %v", err)
	}

	// the window is still torn down
	if idx := driver.IndexOf("terminate window"); idx == -1 {
		t.Errorf("window not terminated: %v", driver.Calls)
	}
}

func TestRunAppInitializeError(t *testing.T) {
	driver := &facettest.Driver{}
	win := &fakeWindow{driver: driver, frames: 1, width: 800, height: 600}
	app := &quadApp{driver: driver, initErr: errors.New("boom")}

	err := run(t, driver, win, app)
	if err == nil || !strings.Contains(err.Error(), "initialize app") {
		t.Fatalf("Run() error = %v", err)
	}

	if app.draws != 0 {
		t.Errorf("draws = %d after failed Initialize", app.draws)
	}

	// Release must not run for an app that never initialized
	if calls := driver.CallsMatching("app release"); len(calls) != 0 {
		t.Errorf("app released after failed Initialize: %v", calls)
	}

	if idx := driver.IndexOf("close device"); idx == -1 {
		t.Errorf("device not closed: %v", driver.Calls)
	}
}
