package core

import (
	"github.com/hubastard/winkel/engine/colors"
	"github.com/hubastard/winkel/engine/ui"
)

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	// Size is the window size in screen coordinates, the space pointer
	// events are reported in and layout is computed in.
	Size() (int, int)
	// FramebufferSize is the drawable size in pixels.
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Renderer draws a computed layout into the current framebuffer.
type Renderer interface {
	Resize(fbWidth, fbHeight int)
	Clear(c colors.Color)
	Render(l *ui.Layout, windowWidth, windowHeight float64)
	Shutdown()
}

// Event model: raw window input, before translation into ui events.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize reports the new window size in screen coordinates.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventCursorPos struct{ X, Y float64 }

func (EventCursorPos) isEvent() {}

// EventCursorLeave is sent when the cursor leaves the window.
type EventCursorLeave struct{}

func (EventCursorLeave) isEvent() {}

type EventMouseButton struct {
	Button uint8
	Down   bool
}

func (EventMouseButton) isEvent() {}
