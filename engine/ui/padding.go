package ui

// Padding insets its child. Insets larger than the box leave the child with a
// zero size, never a negative one.
type Padding struct {
	node
	left, top, right, bottom float64
	child                    Widget
}

// PaddingBuilder collects the insets of a Padding.
type PaddingBuilder struct {
	child                    Widget
	left, top, right, bottom float64
}

func NewPadding(child Widget) *PaddingBuilder {
	return &PaddingBuilder{child: child}
}

func (b *PaddingBuilder) All(p float64) *PaddingBuilder {
	return b.Each(p, p, p, p)
}

func (b *PaddingBuilder) Symmetric(horizontal, vertical float64) *PaddingBuilder {
	return b.Each(horizontal, vertical, horizontal, vertical)
}

func (b *PaddingBuilder) Each(left, top, right, bottom float64) *PaddingBuilder {
	b.left, b.top, b.right, b.bottom = left, top, right, bottom
	return b
}

func (b *PaddingBuilder) Build() *Padding {
	return &Padding{
		node:   newNode(),
		left:   b.left,
		top:    b.top,
		right:  b.right,
		bottom: b.bottom,
		child:  b.child,
	}
}

func (p *Padding) Compute(x, y float64, z int, width, height float64, l *Layout) {
	w := max(0, width-p.left-p.right)
	h := max(0, height-p.top-p.bottom)
	p.child.Compute(x+p.left, y+p.top, z, w, h, l)
}

func (p *Padding) Dispatch(ev Event, changed bool, l *Layout) (Event, bool) {
	return p.child.Dispatch(ev, changed, l)
}
