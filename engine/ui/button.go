package ui

import "github.com/hubastard/winkel/engine/colors"

// ButtonBuilder assembles a clickable rectangle: a MouseGesture around a Stack
// of [rectangle, child]. Visual feedback is written into the rectangle's
// state from the gesture callbacks and picked up by the next compute pass.
type ButtonBuilder struct {
	child     Widget
	base      colors.Color
	hover     colors.Color
	active    colors.Color
	radius    float64
	onPressed func(button uint8)
}

// NewButton starts a button whose hover and active colors default to base.
func NewButton(base colors.Color) *ButtonBuilder {
	return &ButtonBuilder{base: base, hover: base, active: base}
}

func (b *ButtonBuilder) Child(w Widget) *ButtonBuilder {
	b.child = w
	return b
}

func (b *ButtonBuilder) Hover(c colors.Color) *ButtonBuilder {
	b.hover = c
	return b
}

func (b *ButtonBuilder) Active(c colors.Color) *ButtonBuilder {
	b.active = c
	return b
}

func (b *ButtonBuilder) Border(radius float64) *ButtonBuilder {
	b.radius = radius
	return b
}

// OnPressed is called when a button is released over the widget.
func (b *ButtonBuilder) OnPressed(fn func(button uint8)) *ButtonBuilder {
	b.onPressed = fn
	return b
}

// Build binds state to the background rectangle. A nil state is replaced by
// a private one.
func (b *ButtonBuilder) Build(state *State[Rectangle]) *MouseGesture {
	if state == nil {
		state = NewState[Rectangle]()
	}
	rect := NewRectangle(b.base).Border(b.radius).BuildStateful(state)

	stack := NewStack().Add(rect)
	if b.child != nil {
		stack.Add(b.child)
	}

	base, hover, active := b.base, b.hover, b.active
	onPressed := b.onPressed
	paint := func(c colors.Color) bool {
		state.Update(func(r *Rectangle) { r.Color = c })
		return true
	}

	return NewMouseGesture(stack.Build()).
		Border(b.radius).
		OnClick(func(uint8) bool { return paint(active) }).
		OnRelease(func(button uint8) bool {
			paint(hover)
			if onPressed != nil {
				onPressed(button)
			}
			return true
		}).
		OnEnter(func() bool { return paint(hover) }).
		OnLeave(func() bool { return paint(base) }).
		Build()
}
