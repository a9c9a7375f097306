package glint

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

// LogLevel is the level the examples hand to their slog handler. It is
// preconfigured from the TESSEL_LOG environment variable.
var LogLevel = new(slog.LevelVar)

var noVsync = os.Getenv("GLINT_NOVSYNC") == "1"
var profileCPU = os.Getenv("GLINT_PROFILE") == "1"

func init() {
	// glfw and the gl context are bound to the main thread
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("TESSEL_LOG")) {
	case "ERROR":
		LogLevel.Set(slog.LevelError)
	case "WARN":
		LogLevel.Set(slog.LevelWarn)
	case "INFO":
		LogLevel.Set(slog.LevelInfo)
	case "DEBUG":
		LogLevel.Set(slog.LevelDebug)
	}
}

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	queue eventQueue
}

// replaced by tests, exercising real glfw needs a display
var glfwInit = glfw.Init
var glfwTerminate = glfw.Terminate
var glfwCreateWindow = createGLWindow

func createGLWindow(width, height int, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	return glfw.CreateWindow(width, height, title, nil, nil)
}

// NewWindow opens a resizable window with an OpenGL 4.1 core context and
// makes the context current on the calling thread.
func NewWindow(width, height int, title string) (Window, error) {
	if err := glfwInit(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	window, err := glfwCreateWindow(width, height, title)
	if err != nil {
		// glfw is already initialized at this point, wind it down again
		glfwTerminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	window.MakeContextCurrent()

	if noVsync {
		glfw.SwapInterval(0)
	} else {
		glfw.SwapInterval(1)
	}

	w := &glfwWindow{
		win:  window,
		prof: startProfile(),
	}

	configureCallbacks(window, &w.queue)

	return w, nil
}

func startProfile() interface{ Stop() } {
	if profileCPU {
		return profile.Start(profile.CPUProfile)
	}

	return noProfile{}
}

type noProfile struct{}

func (noProfile) Stop() {}

func (g *glfwWindow) GetSize() (int, int) {
	return g.win.GetFramebufferSize()
}

func (g *glfwWindow) Swap() {
	g.win.SwapBuffers()
}

func (g *glfwWindow) Terminate() {
	g.prof.Stop()
	g.win.Destroy()
	glfwTerminate()
}

func (g *glfwWindow) Run(frame func(events []Event) error) error {
	for !g.win.ShouldClose() {
		glfw.PollEvents()

		if err := frame(g.queue.drain()); err != nil {
			return err
		}
	}

	return nil
}

func configureCallbacks(window *glfw.Window, queue *eventQueue) {
	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		queue.push(Event{Kind: EventResize, Width: width, Height: height})
	})

	window.SetCloseCallback(func(_win *glfw.Window) {
		queue.push(Event{Kind: EventQuit})
	})

	window.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			slog.Debug("Escape pressed, closing window")

			win.SetShouldClose(true)
			queue.push(Event{Kind: EventQuit})
		}
	})
}
