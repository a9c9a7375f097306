package glint

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestEventQueueDrainPreservesOrder(t *testing.T) {
	var queue eventQueue

	queue.push(Event{Kind: EventResize, Width: 640, Height: 480})
	queue.push(Event{Kind: EventResize, Width: 800, Height: 600})
	queue.push(Event{Kind: EventQuit})

	events := queue.drain()
	if len(events) != 3 {
		t.Fatalf("drain() returned %d events", len(events))
	}

	if events[0].Width != 640 || events[1].Width != 800 {
		t.Errorf("events out of order: %+v", events)
	}

	if events[2].Kind != EventQuit {
		t.Errorf("events[2].Kind = %v", events[2].Kind)
	}
}

func TestEventQueueDrainEmpties(t *testing.T) {
	var queue eventQueue

	queue.push(Event{Kind: EventQuit})
	queue.drain()

	if events := queue.drain(); events != nil {
		t.Errorf("second drain() = %v, want nil", events)
	}
}

func TestNewWindowCreateFailureShutsDownGLFW(t *testing.T) {
	defer func(init func() error, create func(int, int, string) (*glfw.Window, error), terminate func()) {
		glfwInit, glfwCreateWindow, glfwTerminate = init, create, terminate
	}(glfwInit, glfwCreateWindow, glfwTerminate)

	terminated := false
	glfwInit = func() error { return nil }
	glfwTerminate = func() { terminated = true }
	glfwCreateWindow = func(int, int, string) (*glfw.Window, error) {
		return nil, errors.New("GLX: Failed to create context: GLXBadFBConfig")
	}

	_, err := NewWindow(800, 600, "Quads")
	if err == nil || !strings.Contains(err.Error(), "create window") {
		t.Fatalf("NewWindow() error = %v", err)
	}

	// Init succeeded, so the failed window must not leak the subsystem
	if !terminated {
		t.Error("glfw left initialized after the window failed to open")
	}
}

func TestEventKindString(t *testing.T) {
	if got := EventResize.String(); got != "Resize" {
		t.Errorf("EventResize.String() = %q", got)
	}

	if got := EventQuit.String(); got != "Quit" {
		t.Errorf("EventQuit.String() = %q", got)
	}

	if got := EventKind(7).String(); got != "EventKind(7)" {
		t.Errorf("EventKind(7).String() = %q", got)
	}
}
