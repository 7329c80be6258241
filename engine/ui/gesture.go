package ui

// MouseGesture turns pointer events over its child's box into callbacks. It
// paints nothing; its layout entry is only a hit-test rectangle.
//
// Each callback reports whether it mutated shared state.
type MouseGesture struct {
	node
	child     Widget
	onClick   func(button uint8) bool
	onRelease func(button uint8) bool
	onEnter   func() bool
	onLeave   func() bool
	radius    float64
	rounded   bool
}

type MouseGestureBuilder struct {
	g MouseGesture
}

func NewMouseGesture(child Widget) *MouseGestureBuilder {
	return &MouseGestureBuilder{g: MouseGesture{child: child}}
}

func (b *MouseGestureBuilder) OnClick(fn func(button uint8) bool) *MouseGestureBuilder {
	b.g.onClick = fn
	return b
}

func (b *MouseGestureBuilder) OnRelease(fn func(button uint8) bool) *MouseGestureBuilder {
	b.g.onRelease = fn
	return b
}

func (b *MouseGestureBuilder) OnEnter(fn func() bool) *MouseGestureBuilder {
	b.g.onEnter = fn
	return b
}

func (b *MouseGestureBuilder) OnLeave(fn func() bool) *MouseGestureBuilder {
	b.g.onLeave = fn
	return b
}

// Border sets the corner radius of the area. It only affects hit testing
// when RoundedHitTest is enabled.
func (b *MouseGestureBuilder) Border(radius float64) *MouseGestureBuilder {
	b.g.radius = radius
	return b
}

// RoundedHitTest excludes the corner arcs from the area. Off by default, in
// which case the full rectangle is hit even where the corners are not painted.
func (b *MouseGestureBuilder) RoundedHitTest(on bool) *MouseGestureBuilder {
	b.g.rounded = on
	return b
}

func (b *MouseGestureBuilder) Build() *MouseGesture {
	g := b.g
	g.node = newNode()
	return &g
}

func (g *MouseGesture) Compute(x, y float64, z int, width, height float64, l *Layout) {
	g.child.Compute(x, y, z, width, height, l)
	l.Insert(g.id, Computed{X: x, Y: y, Z: z, Width: width, Height: height})
}

func (g *MouseGesture) Dispatch(ev Event, changed bool, l *Layout) (Event, bool) {
	c := l.MustGet(g.id, "MouseGesture.Dispatch")
	hit := func(x, y float64) bool {
		if g.rounded {
			return c.ContainsRounded(x, y, g.radius)
		}
		return c.Contains(x, y)
	}

	switch e := ev.(type) {
	case EventMouseDown:
		if hit(e.X, e.Y) {
			ch := call1(g.onClick, e.Button)
			return nil, changed || ch
		}
	case EventMouseUp:
		if hit(e.X, e.Y) {
			ch := call1(g.onRelease, e.Button)
			return nil, changed || ch
		}
	case EventMouseMove:
		in, wasIn := hit(e.X, e.Y), hit(e.PrevX, e.PrevY)
		switch {
		case in && !wasIn:
			ch := call0(g.onEnter)
			return nil, changed || ch
		case !in && wasIn:
			ch := call0(g.onLeave)
			return nil, changed || ch
		}
	}
	return ev, changed
}

func call0(fn func() bool) bool {
	return fn != nil && fn()
}

func call1(fn func(uint8) bool, button uint8) bool {
	return fn != nil && fn(button)
}
