package glint

//go:generate go tool stringer -type=EventKind -trimprefix=Event

type EventKind uint32

const (
	// the framebuffer changed size, Width and Height carry the new size
	EventResize EventKind = iota

	// the user asked to close the window
	EventQuit
)

// Event is one window event. Events are queued by the window callbacks and
// handed to the frame function once per frame.
type Event struct {
	Kind EventKind

	// framebuffer size in pixels, only set for EventResize
	Width, Height int
}

type Window interface {
	// GetSize returns the current framebuffer size in pixels.
	GetSize() (int, int)

	// Run drives the frame loop until the window should close or the frame
	// function returns an error. The events queued since the previous frame
	// are passed to every call.
	Run(frame func(events []Event) error) error

	// Swap presents the rendered frame.
	Swap()

	Terminate()
}

type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) drain() []Event {
	events := q.events
	q.events = nil
	return events
}
