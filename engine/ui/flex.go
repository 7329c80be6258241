package ui

import "fmt"

// Axis is the direction a Flex splits its box along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "Column"
	}
	return "Row"
}

// Flex is a row or a column. The box is split along the axis in proportion to
// each child's weight; the cross axis and z pass through unchanged.
type Flex struct {
	node
	axis     Axis
	children []Widget
	weights  []int
	total    int
}

type FlexBuilder struct {
	axis     Axis
	children []Widget
	weights  []int
}

func NewRow() *FlexBuilder    { return &FlexBuilder{axis: Horizontal} }
func NewColumn() *FlexBuilder { return &FlexBuilder{axis: Vertical} }

// Add appends child with weight 1.
func (b *FlexBuilder) Add(child Widget) *FlexBuilder {
	return b.AddFlex(child, 1)
}

// AddFlex appends child with the given weight. A zero weight yields a child
// of zero extent; negative weights are rejected by Build.
func (b *FlexBuilder) AddFlex(child Widget, weight int) *FlexBuilder {
	b.children = append(b.children, child)
	b.weights = append(b.weights, weight)
	return b
}

func (b *FlexBuilder) Build() (*Flex, error) {
	op := b.axis.String() + ".Build"
	if len(b.children) == 0 {
		return nil, &Error{Op: op, Kind: KindBuild, Err: ErrNoChildren}
	}
	total := 0
	for i, w := range b.weights {
		if w < 0 {
			return nil, &Error{Op: op, Kind: KindBuild, Err: fmt.Errorf("child %d has negative weight %d", i, w)}
		}
		total += w
	}
	if total == 0 {
		return nil, &Error{Op: op, Kind: KindBuild, Err: ErrZeroFlex}
	}
	return &Flex{
		node:     newNode(),
		axis:     b.axis,
		children: b.children,
		weights:  b.weights,
		total:    total,
	}, nil
}

// MustBuild is Build for trees declared in code; it panics on misuse.
func (b *FlexBuilder) MustBuild() *Flex {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Flex) Axis() Axis { return f.axis }

func (f *Flex) Compute(x, y float64, z int, width, height float64, l *Layout) {
	extent := width
	if f.axis == Vertical {
		extent = height
	}
	unit := extent / float64(f.total)
	prefix := 0
	for i, c := range f.children {
		offset := float64(prefix) * unit
		size := float64(f.weights[i]) * unit
		prefix += f.weights[i]
		if f.axis == Horizontal {
			c.Compute(x+offset, y, z, size, height, l)
		} else {
			c.Compute(x, y+offset, z, width, size, l)
		}
	}
}

func (f *Flex) Dispatch(ev Event, changed bool, l *Layout) (Event, bool) {
	return dispatchChildren(f.children, ev, changed, l)
}
