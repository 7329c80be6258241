package core

import "github.com/hubastard/winkel/engine/ui"

// Outside is the pointer position used while the cursor is not over the window.
const Outside = -1.0

// Input tracks the pointer and turns raw window events into ui events.
type Input struct {
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{mouseX: Outside, mouseY: Outside} }

// Translate returns the ui event for ev, or nil if ev is not pointer input.
// Button events are reported at the last known cursor position.
func (in *Input) Translate(ev Event) ui.Event {
	switch e := ev.(type) {
	case EventCursorPos:
		return in.moveTo(e.X, e.Y)
	case EventCursorLeave:
		return in.moveTo(Outside, Outside)
	case EventMouseButton:
		if e.Down {
			return ui.EventMouseDown{X: in.mouseX, Y: in.mouseY, Button: e.Button}
		}
		return ui.EventMouseUp{X: in.mouseX, Y: in.mouseY, Button: e.Button}
	}
	return nil
}

func (in *Input) moveTo(x, y float64) ui.Event {
	ev := ui.EventMouseMove{PrevX: in.mouseX, PrevY: in.mouseY, X: x, Y: y}
	in.mouseX, in.mouseY = x, y
	return ev
}

func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
