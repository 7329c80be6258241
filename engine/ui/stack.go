package ui

// Stack paints its children on top of each other, first child at the back.
// Every child gets the full box; only the paint order differs.
type Stack struct {
	node
	children []Widget
}

type StackBuilder struct {
	children []Widget
}

func NewStack() *StackBuilder { return &StackBuilder{} }

func (b *StackBuilder) Add(child Widget) *StackBuilder {
	b.children = append(b.children, child)
	return b
}

func (b *StackBuilder) Build() *Stack {
	return &Stack{node: newNode(), children: b.children}
}

func (s *Stack) Compute(x, y float64, z int, width, height float64, l *Layout) {
	for i, c := range s.children {
		c.Compute(x, y, z+i, width, height, l)
	}
}

func (s *Stack) Dispatch(ev Event, changed bool, l *Layout) (Event, bool) {
	return dispatchChildren(s.children, ev, changed, l)
}
