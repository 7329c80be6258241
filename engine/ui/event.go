package ui

// Event is a pointer event in window coordinates. A nil Event returned from
// Dispatch means the event was consumed.
type Event interface{ isEvent() }

// EventMouseDown is a button press at (X, Y).
type EventMouseDown struct {
	X, Y   float64
	Button uint8
}

func (EventMouseDown) isEvent() {}

// EventMouseUp is a button release at (X, Y).
type EventMouseUp struct {
	X, Y   float64
	Button uint8
}

func (EventMouseUp) isEvent() {}

// EventMouseMove carries both ends of the motion so that gesture areas can
// detect enter and leave transitions without keeping their own hover state.
type EventMouseMove struct {
	PrevX, PrevY float64
	X, Y         float64
}

func (EventMouseMove) isEvent() {}
