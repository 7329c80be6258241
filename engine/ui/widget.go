package ui

// ID identifies a widget for its whole lifetime and joins the tree to a Layout.
type ID uint64

var lastID ID

// nextID hands out process-unique ids. The tree is built and used on a single
// thread, so the counter is not synchronized.
func nextID() ID {
	lastID++
	return lastID
}

// Widget is a node of the declarative UI tree.
type Widget interface {
	// Compute lays the widget out in the box (x, y, width, height) at paint
	// order z and records the result in l.
	Compute(x, y float64, z int, width, height float64, l *Layout)
	// Dispatch offers ev to the widget. It returns nil if the event was
	// consumed, the event itself otherwise, and changed OR-ed with whether any
	// callback mutated shared state.
	Dispatch(ev Event, changed bool, l *Layout) (Event, bool)
	ID() ID
}

// Renderer paints a Layout. Implementations draw Layout.Paintables in order.
type Renderer interface {
	Render(l *Layout, windowWidth, windowHeight float64)
}

type node struct {
	id ID
}

func newNode() node   { return node{id: nextID()} }
func (n node) ID() ID { return n.id }

// Compute lays out tree in a width x height window.
func Compute(tree Widget, width, height float64) *Layout {
	l := NewLayout()
	tree.Compute(0, 0, 0, max(width, 0), max(height, 0), l)
	return l
}

// Dispatch routes ev through tree against the layout it was last computed
// into and reports whether the layout is now stale.
func Dispatch(tree Widget, ev Event, l *Layout) bool {
	_, changed := tree.Dispatch(ev, false, l)
	return changed
}

// dispatchChildren offers ev to each child in order until one consumes it.
func dispatchChildren(children []Widget, ev Event, changed bool, l *Layout) (Event, bool) {
	for _, c := range children {
		var ch bool
		ev, ch = c.Dispatch(ev, changed, l)
		changed = changed || ch
		if ev == nil {
			break
		}
	}
	return ev, changed
}
